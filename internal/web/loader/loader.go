package loader

import (
	"context"
	"errors"
	"net/http"

	"tuarica/internal/web/view"

	log "github.com/sirupsen/logrus"
)

// FeaturedLimit is how many commerces the home page features.
const FeaturedLimit = 3

// User-facing error messages.
const (
	MsgCategoryError    = "Error al cargar los datos"
	MsgCategoryNotFound = "La categoría que buscas no existe"
	MsgCommerceError    = "Error al cargar los datos del comercio"
	MsgCommerceNotFound = "El comercio que buscas no existe"
)

// HomeFallback returns the categories shown when the home listing cannot be fetched.
func HomeFallback() []Category {
	return []Category{
		{Code: "01", Name: "Restaurantes", Slug: "restaurantes"},
		{Code: "02", Name: "Servicios", Slug: "servicios"},
	}
}

type HomePage struct {
	Categories []Category
	Featured   []Commerce
	// Degraded is set when Categories is HomeFallback.
	Degraded bool
}

type CategoryPage struct {
	Category  Category
	Commerces []Commerce
}

type CommercePage struct {
	Commerce Commerce
}

// Loader builds the view of each page.
type Loader struct {
	source Source
}

func New(source Source) *Loader {
	return &Loader{source: source}
}

// Home never enters the error state: a failed category fetch falls back to
// HomeFallback and a failed featured fetch leaves Featured empty.
func (l *Loader) Home(ctx context.Context) *view.View[HomePage] {
	v := view.New[HomePage]()
	page := HomePage{}

	categories, err := l.source.Categories(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to fetch categorias, using fallback")
		categories = HomeFallback()
		page.Degraded = true
	}
	page.Categories = categories

	featured, err := l.source.Featured(ctx, FeaturedLimit)
	if err != nil {
		log.WithError(err).Warn("Failed to fetch featured comercios")
		featured = nil
	}
	page.Featured = featured

	_ = v.Succeed(page) // fresh view, cannot fail
	return v
}

func (l *Loader) Category(ctx context.Context, slug string) *view.View[CategoryPage] {
	v := view.New[CategoryPage]()

	category, commerces, err := l.source.Category(ctx, slug)
	if err != nil {
		log.WithFields(log.Fields{"slug": slug, "error": err}).Error("Failed to load categoria")
		status, msg := failure(err, MsgCategoryNotFound, MsgCategoryError)
		_ = v.Fail(status, msg)
		return v
	}

	_ = v.Succeed(CategoryPage{Category: *category, Commerces: commerces})
	return v
}

func (l *Loader) Commerce(ctx context.Context, slug string) *view.View[CommercePage] {
	v := view.New[CommercePage]()

	commerce, err := l.source.Commerce(ctx, slug)
	if err != nil {
		log.WithFields(log.Fields{"slug": slug, "error": err}).Error("Failed to load comercio")
		status, msg := failure(err, MsgCommerceNotFound, MsgCommerceError)
		_ = v.Fail(status, msg)
		return v
	}

	_ = v.Succeed(CommercePage{Commerce: *commerce})
	return v
}

func failure(err error, notFound, unavailable string) (int, string) {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound, notFound
	}
	return http.StatusServiceUnavailable, unavailable
}
