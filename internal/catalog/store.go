package catalog

import (
	"context"
	"errors"

	"tuarica/internal/domain"
)

var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrStoreUnavailable covers every other store failure: connection, timeout, schema mismatch.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Store is the read surface over the relational schema. Implementations return
// errors wrapping ErrNotFound or ErrStoreUnavailable.
type Store interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	FindCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	ListCommercesByCategory(ctx context.Context, categoryID uint) ([]domain.Commerce, error)
	ListCommerces(ctx context.Context, offset, limit int) ([]domain.Commerce, int64, error)
	FindCommerceBySlug(ctx context.Context, slug string) (*domain.Commerce, error)
	ListProductsByCommerce(ctx context.Context, commerceID uint) ([]domain.Product, error)
	ListCommercesByOwner(ctx context.Context, userID uint) ([]domain.Commerce, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id uint) (*domain.User, error)
}
