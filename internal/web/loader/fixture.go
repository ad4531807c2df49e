package loader

import (
	"context"

	"github.com/shopspring/decimal"
)

// FixtureSource serves fixed development data. Category echoes the
// requested slug into the fixed record; Commerce ignores its slug.
type FixtureSource struct{}

var _ Source = FixtureSource{}

func NewFixtureSource() FixtureSource { return FixtureSource{} }

func (FixtureSource) Categories(context.Context) ([]Category, error) {
	return []Category{
		{ID: 1, Code: "01", Name: "Restaurantes", Slug: "restaurantes"},
		{ID: 2, Code: "02", Name: "Servicios", Slug: "servicios"},
	}, nil
}

func (FixtureSource) Category(_ context.Context, slug string) (*Category, []Commerce, error) {
	category := &Category{ID: 1, Code: "01", Name: "Restaurantes", Slug: slug}
	return category, []Commerce{fixtureCommerce()}, nil
}

func (FixtureSource) Commerce(context.Context, string) (*Commerce, error) {
	commerce := fixtureCommerce()
	commerce.Description = "El mejor sabor de la ciudad. Ofrecemos comida rápida de alta calidad con ingredientes frescos y sabores auténticos que te harán volver por más."
	commerce.Subcategory.Category = &Category{ID: 1, Code: "01", Name: "Restaurantes", Slug: "restaurantes"}
	commerce.Products = []Product{
		{
			ID:          1,
			Code:        "PROD00001",
			Name:        "Hamburguesa Clásica",
			Description: "Hamburguesa con carne, lechuga, tomate y queso",
			Price:       decimal.NewNullDecimal(decimal.RequireFromString("350.00")),
		},
		{
			ID:          2,
			Code:        "PROD00002",
			Name:        "Papas Fritas",
			Description: "Papas fritas doradas y crujientes",
			Price:       decimal.NewNullDecimal(decimal.RequireFromString("150.00")),
		},
	}
	return &commerce, nil
}

func (FixtureSource) Featured(_ context.Context, limit int) ([]Commerce, error) {
	featured := []Commerce{fixtureCommerce()}
	if len(featured) > limit {
		featured = featured[:limit]
	}
	return featured, nil
}

func fixtureCommerce() Commerce {
	return Commerce{
		ID:          1,
		Code:        "COM001",
		Name:        "Restaurante El Sabor",
		Slug:        "restaurante-el-sabor",
		Description: "El mejor sabor de la ciudad",
		Address:     "Calle Principal 123, Santo Domingo",
		Phone:       "809-555-0123",
		Website:     "https://elsabor.com",
		Subcategory: Subcategory{ID: 1, Code: "001", Name: "Comida Rápida", Slug: "comida-rapida"},
	}
}
