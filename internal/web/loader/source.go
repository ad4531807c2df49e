// Package loader fetches the data of each web page from a Source and
// turns it into a view.
package loader

import (
	"context"
	"errors"
	"fmt"

	"tuarica/internal/config"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when the requested slug does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable covers transport failures and unexpected responses.
	ErrUnavailable = errors.New("data source unavailable")
)

// Source is where page data comes from.
type Source interface {
	Categories(ctx context.Context) ([]Category, error)
	// Category returns the category and the commerces filed under it.
	Category(ctx context.Context, slug string) (*Category, []Commerce, error)
	Commerce(ctx context.Context, slug string) (*Commerce, error)
	Featured(ctx context.Context, limit int) ([]Commerce, error)
}

// NewSource builds the Source named by cfg.WebDataSource.
func NewSource(cfg *config.Config) (Source, error) {
	switch cfg.WebDataSource {
	case config.SourceLive:
		return NewLiveSource(cfg.APIURL, cfg.APITimeout), nil
	case config.SourceFixture:
		return NewFixtureSource(), nil
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.WebDataSource)
	}
}

type Category struct {
	ID   uint   `json:"id_categoria,omitempty"`
	Code string `json:"cod_categoria"`
	Name string `json:"nombre"`
	Slug string `json:"slug_categoria"`
}

type Subcategory struct {
	ID       uint      `json:"id_subcategoria,omitempty"`
	Code     string    `json:"cod_subcategoria"`
	Name     string    `json:"nombre"`
	Slug     string    `json:"slug_subcategoria"`
	Category *Category `json:"categoria,omitempty"`
}

type Commerce struct {
	ID          uint        `json:"id_comercio,omitempty"`
	Code        string      `json:"cod_comercio"`
	Name        string      `json:"nombre"`
	Slug        string      `json:"slug_comercio"`
	Description string      `json:"descripcion,omitempty"`
	Address     string      `json:"direccion,omitempty"`
	Phone       string      `json:"telefono,omitempty"`
	Website     string      `json:"web,omitempty"`
	Subcategory Subcategory `json:"subcategoria"`
	Products    []Product   `json:"productos,omitempty"`
}

// CategoryName is the name of the commerce's category, or "" when unknown.
func (c Commerce) CategoryName() string {
	if c.Subcategory.Category == nil {
		return ""
	}
	return c.Subcategory.Category.Name
}

type Product struct {
	ID          uint                `json:"id_producto,omitempty"`
	Code        string              `json:"cod_producto"`
	Name        string              `json:"nombre"`
	Description string              `json:"descripcion,omitempty"`
	Price       decimal.NullDecimal `json:"precio"`
}
