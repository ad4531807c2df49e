package catalog_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"tuarica/internal/catalog"
	"tuarica/internal/db/dbtest"
	"tuarica/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore fails every call with err.
type failingStore struct {
	catalog.Store
	err error
}

func (f failingStore) ListCategories(context.Context) ([]domain.Category, error) {
	return nil, f.err
}

func TestListCategoriesFallsBackOnAnyStoreFailure(t *testing.T) {
	want := []domain.Category{
		{Code: "01", Name: "Restaurantes", Slug: "restaurantes"},
		{Code: "02", Name: "Hoteles", Slug: "hoteles"},
		{Code: "03", Name: "Servicios", Slug: "servicios"},
	}
	causes := []error{
		fmt.Errorf("list categorias: %w: dial tcp 127.0.0.1:3306: connect: connection refused", catalog.ErrStoreUnavailable),
		fmt.Errorf("list categorias: %w: no such table: categoria", catalog.ErrStoreUnavailable),
		context.DeadlineExceeded,
	}
	for _, cause := range causes {
		t.Run(cause.Error(), func(t *testing.T) {
			svc := catalog.NewService(failingStore{err: cause})

			listing := svc.ListCategories(context.Background())

			assert.True(t, listing.Degraded())
			assert.Equal(t, catalog.SourceFallback, listing.Source)
			assert.ErrorIs(t, listing.Cause, cause)
			if diff := cmp.Diff(want, listing.Categories); diff != "" {
				t.Errorf("fallback mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListCategoriesFallbackIsNotShared(t *testing.T) {
	svc := catalog.NewService(failingStore{err: catalog.ErrStoreUnavailable})

	first := svc.ListCategories(context.Background())
	first.Categories[0].Name = "mutated"

	second := svc.ListCategories(context.Background())
	assert.Equal(t, "Restaurantes", second.Categories[0].Name)
}

func TestListCategoriesFromBrokenDatabase(t *testing.T) {
	svc := catalog.NewService(catalog.NewGormStore(dbtest.Broken(t)))

	listing := svc.ListCategories(context.Background())

	require.True(t, listing.Degraded())
	assert.True(t, errors.Is(listing.Cause, catalog.ErrStoreUnavailable))
	assert.Len(t, listing.Categories, 3)
}

func TestListCategoriesFromStore(t *testing.T) {
	svc := catalog.NewService(catalog.NewGormStore(dbtest.Seeded(t)))

	listing := svc.ListCategories(context.Background())

	assert.False(t, listing.Degraded())
	assert.NoError(t, listing.Cause)
	require.Len(t, listing.Categories, 2)
	assert.Equal(t, "01", listing.Categories[0].Code)
	assert.Equal(t, "Servicios", listing.Categories[1].Name)
	assert.NotZero(t, listing.Categories[0].ID)
}

func TestListCategoriesEmptyStoreIsNotFallback(t *testing.T) {
	svc := catalog.NewService(catalog.NewGormStore(dbtest.New(t)))

	listing := svc.ListCategories(context.Background())

	assert.Equal(t, catalog.SourceStore, listing.Source)
	assert.NotNil(t, listing.Categories)
	assert.Empty(t, listing.Categories)
}

func TestGetCategory(t *testing.T) {
	svc := catalog.NewService(catalog.NewGormStore(dbtest.Seeded(t)))

	category, err := svc.GetCategory(context.Background(), " Restaurantes ")
	require.NoError(t, err)
	assert.Equal(t, "restaurantes", category.Slug)
	require.Len(t, category.Subcategories, 2)
	assert.Equal(t, "comida-rapida", category.Subcategories[0].Slug)

	_, err = svc.GetCategory(context.Background(), "hoteles")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.NotErrorIs(t, err, catalog.ErrStoreUnavailable)
}

func TestCategoryCommerces(t *testing.T) {
	svc := catalog.NewService(catalog.NewGormStore(dbtest.Seeded(t)))

	commerces, err := svc.CategoryCommerces(context.Background(), "restaurantes")
	require.NoError(t, err)
	require.Len(t, commerces, 1)
	assert.Equal(t, "Restaurante El Sabor", commerces[0].Name)
	require.NotNil(t, commerces[0].Subcategory)
	assert.Equal(t, "Comida Rápida", commerces[0].Subcategory.Name)

	commerces, err = svc.CategoryCommerces(context.Background(), "servicios")
	require.NoError(t, err)
	assert.NotNil(t, commerces)
	assert.Empty(t, commerces)

	_, err = svc.CategoryCommerces(context.Background(), "hoteles")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestGetCommerce(t *testing.T) {
	svc := catalog.NewService(catalog.NewGormStore(dbtest.Seeded(t)))

	commerce, err := svc.GetCommerce(context.Background(), "restaurante-el-sabor")
	require.NoError(t, err)
	require.NotNil(t, commerce.Subcategory)
	require.NotNil(t, commerce.Subcategory.Category)
	assert.Equal(t, "Restaurantes", commerce.Subcategory.Category.Name)
	require.Len(t, commerce.Products, 2)
	assert.Equal(t, "PROD00001", commerce.Products[0].Code)
	assert.Equal(t, "150.00", commerce.Products[1].Price.Decimal.StringFixed(2))

	_, err = svc.GetCommerce(context.Background(), "no-existe")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestCommerceProducts(t *testing.T) {
	svc := catalog.NewService(catalog.NewGormStore(dbtest.Seeded(t)))

	products, err := svc.CommerceProducts(context.Background(), "restaurante-el-sabor")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "papas-fritas", products[1].Slug)
}

func TestListCommercesPagination(t *testing.T) {
	svc := catalog.NewService(catalog.NewGormStore(dbtest.Seeded(t)))

	page, err := svc.ListCommerces(context.Background(), 0, 500)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, catalog.DefaultPageSize, page.PageSize)
	assert.EqualValues(t, 1, page.Total)
	assert.Equal(t, 1, page.TotalPages)
	assert.Len(t, page.Commerces, 1)

	page, err = svc.ListCommerces(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.Empty(t, page.Commerces)
	assert.NotNil(t, page.Commerces)

	page, err = svc.ListCommerces(context.Background(), math.MaxInt, 20)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt/20, page.Page)
	assert.Empty(t, page.Commerces, "a huge page is past the end, not page one")
	assert.EqualValues(t, 1, page.Total)
}

func TestStoreFailuresAreClassified(t *testing.T) {
	svc := catalog.NewService(catalog.NewGormStore(dbtest.Broken(t)))
	ctx := context.Background()

	_, err := svc.GetCommerce(ctx, "restaurante-el-sabor")
	assert.ErrorIs(t, err, catalog.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, catalog.ErrNotFound)

	_, err = svc.ListCommerces(ctx, 1, 20)
	assert.ErrorIs(t, err, catalog.ErrStoreUnavailable)

	_, err = svc.UserByEmail(ctx, "comerciante@tuarica.com")
	assert.ErrorIs(t, err, catalog.ErrStoreUnavailable)
}

func TestUsersAndOwnedCommerces(t *testing.T) {
	svc := catalog.NewService(catalog.NewGormStore(dbtest.Seeded(t)))
	ctx := context.Background()

	user, err := svc.UserByEmail(ctx, "  Comerciante@TuArica.com ")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMerchant, user.Role)

	byID, err := svc.UserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	owned, err := svc.OwnedCommerces(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "restaurante-el-sabor", owned[0].Slug)

	_, err = svc.UserByID(ctx, user.ID+100)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
