// Package catalog implements the directory read path: categories, commerces,
// products and the merchants that own them.
package catalog

import (
	"context"
	"math"
	"strings"

	"tuarica/internal/domain"
)

// Source tells where a category listing came from.
type Source string

const (
	SourceStore    Source = "store"
	SourceFallback Source = "fallback"
)

// CategoryListing is the outcome of ListCategories. Cause is set only when
// Source is SourceFallback.
type CategoryListing struct {
	Categories []domain.Category
	Source     Source
	Cause      error
}

// Degraded reports whether the listing was replaced by fallback data.
func (l CategoryListing) Degraded() bool { return l.Source == SourceFallback }

// FallbackCategories returns the fixed listing served while the store is unreachable.
func FallbackCategories() []domain.Category {
	return []domain.Category{
		{Code: "01", Name: "Restaurantes", Slug: "restaurantes"},
		{Code: "02", Name: "Hoteles", Slug: "hoteles"},
		{Code: "03", Name: "Servicios", Slug: "servicios"},
	}
}

// Page is one page of a paginated commerce listing.
type Page struct {
	Commerces  []domain.Commerce `json:"comercios"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	Total      int64             `json:"total"`
	TotalPages int               `json:"total_pages"`
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// ListCategories never fails: any store error yields FallbackCategories with
// the classified cause attached.
func (s *Service) ListCategories(ctx context.Context) CategoryListing {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return CategoryListing{Categories: FallbackCategories(), Source: SourceFallback, Cause: err}
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return CategoryListing{Categories: categories, Source: SourceStore}
}

func (s *Service) GetCategory(ctx context.Context, slug string) (*domain.Category, error) {
	return s.store.FindCategoryBySlug(ctx, normalizeSlug(slug))
}

// CategoryCommerces lists the commerces filed under any subcategory of the category.
func (s *Service) CategoryCommerces(ctx context.Context, slug string) ([]domain.Commerce, error) {
	category, err := s.store.FindCategoryBySlug(ctx, normalizeSlug(slug))
	if err != nil {
		return nil, err
	}
	commerces, err := s.store.ListCommercesByCategory(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	return nonNil(commerces), nil
}

// ListCommerces clamps page to [1, MaxInt/pageSize] and pageSize to
// [1, MaxPageSize], using DefaultPageSize for out-of-range sizes.
func (s *Service) ListCommerces(ctx context.Context, page, pageSize int) (*Page, error) {
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	if maxPage := math.MaxInt / pageSize; page > maxPage {
		page = maxPage // (page-1)*pageSize must not overflow
	}
	commerces, total, err := s.store.ListCommerces(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	return &Page{
		Commerces:  nonNil(commerces),
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
	}, nil
}

// GetCommerce returns the commerce with its subcategory, category and products.
func (s *Service) GetCommerce(ctx context.Context, slug string) (*domain.Commerce, error) {
	commerce, err := s.store.FindCommerceBySlug(ctx, normalizeSlug(slug))
	if err != nil {
		return nil, err
	}
	commerce.Products = nonNil(commerce.Products)
	return commerce, nil
}

func (s *Service) CommerceProducts(ctx context.Context, slug string) ([]domain.Product, error) {
	commerce, err := s.store.FindCommerceBySlug(ctx, normalizeSlug(slug))
	if err != nil {
		return nil, err
	}
	products, err := s.store.ListProductsByCommerce(ctx, commerce.ID)
	if err != nil {
		return nil, err
	}
	return nonNil(products), nil
}

func (s *Service) OwnedCommerces(ctx context.Context, userID uint) ([]domain.Commerce, error) {
	commerces, err := s.store.ListCommercesByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	return nonNil(commerces), nil
}

func (s *Service) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.store.FindUserByEmail(ctx, domain.NormalizeEmail(email))
}

func (s *Service) UserByID(ctx context.Context, id uint) (*domain.User, error) {
	return s.store.FindUserByID(ctx, id)
}

func normalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

// nonNil keeps empty collections serialized as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
