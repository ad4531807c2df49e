package catalog

import (
	"context"
	"errors"
	"fmt"

	"tuarica/internal/domain"

	"gorm.io/gorm"
)

// GormStore implements Store on top of a GORM handle.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// classify maps a GORM error onto the package sentinels.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}

func (s *GormStore) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := s.db.WithContext(ctx).Order("cod_categoria ASC").Find(&categories).Error
	return categories, classify("list categorias", err)
}

func (s *GormStore) FindCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	var category domain.Category
	err := s.db.WithContext(ctx).
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB { return db.Order("cod_subcategoria ASC") }).
		Where("slug_categoria = ?", slug).
		First(&category).Error
	if err != nil {
		return nil, classify("find categoria", err)
	}
	return &category, nil
}

func (s *GormStore) ListCommercesByCategory(ctx context.Context, categoryID uint) ([]domain.Commerce, error) {
	var commerces []domain.Commerce
	subcategories := s.db.Model(&domain.Subcategory{}).Select("id_subcategoria").Where("id_categoria = ?", categoryID)
	err := s.db.WithContext(ctx).
		Preload("Subcategory").
		Where("id_subcategoria IN (?)", subcategories).
		Order("nombre ASC").
		Find(&commerces).Error
	return commerces, classify("list comercios by categoria", err)
}

func (s *GormStore) ListCommerces(ctx context.Context, offset, limit int) ([]domain.Commerce, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&domain.Commerce{}).Count(&total).Error; err != nil {
		return nil, 0, classify("count comercios", err)
	}
	var commerces []domain.Commerce
	err := s.db.WithContext(ctx).
		Preload("Subcategory").
		Order("nombre ASC").
		Offset(offset).
		Limit(limit).
		Find(&commerces).Error
	if err != nil {
		return nil, 0, classify("list comercios", err)
	}
	return commerces, total, nil
}

func (s *GormStore) FindCommerceBySlug(ctx context.Context, slug string) (*domain.Commerce, error) {
	var commerce domain.Commerce
	err := s.db.WithContext(ctx).
		Preload("Subcategory.Category").
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("cod_producto ASC") }).
		Where("slug_comercio = ?", slug).
		First(&commerce).Error
	if err != nil {
		return nil, classify("find comercio", err)
	}
	return &commerce, nil
}

func (s *GormStore) ListProductsByCommerce(ctx context.Context, commerceID uint) ([]domain.Product, error) {
	var products []domain.Product
	err := s.db.WithContext(ctx).
		Where("id_comercio = ?", commerceID).
		Order("cod_producto ASC").
		Find(&products).Error
	return products, classify("list productos", err)
}

func (s *GormStore) ListCommercesByOwner(ctx context.Context, userID uint) ([]domain.Commerce, error) {
	var commerces []domain.Commerce
	err := s.db.WithContext(ctx).
		Preload("Subcategory").
		Where("id_usuario = ?", userID).
		Order("nombre ASC").
		Find(&commerces).Error
	return commerces, classify("list comercios by usuario", err)
}

func (s *GormStore) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, classify("find usuario", err)
	}
	return &user, nil
}

func (s *GormStore) FindUserByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, classify("find usuario", err)
	}
	return &user, nil
}
