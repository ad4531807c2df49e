package render

import (
	"bytes"
	"context"
	"html/template"
	"net/http"
	"strings"
	"testing"

	"tuarica/internal/web/loader"
	"tuarica/internal/web/view"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func templates(t *testing.T) *template.Template {
	t.Helper()
	tmpl, err := Templates()
	require.NoError(t, err)
	return tmpl
}

func render[T any](t *testing.T, page string, v *view.View[T]) (int, *goquery.Document) {
	t.Helper()
	var buf bytes.Buffer
	status, err := Execute(templates(t), &buf, page, v)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return status, doc
}

func content[T any](t *testing.T, data T) *view.View[T] {
	t.Helper()
	v := view.New[T]()
	require.NoError(t, v.Succeed(data))
	return v
}

func TestLoadingState(t *testing.T) {
	status, doc := render(t, CategoryPage, view.New[loader.CategoryPage]())

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Cargando...", strings.TrimSpace(doc.Find(".loading p").Text()))
	assert.Zero(t, doc.Find(".error-state").Length())
	assert.Zero(t, doc.Find(".commerce-grid").Length())
}

func TestErrorState(t *testing.T) {
	v := view.New[loader.CommercePage]()
	require.NoError(t, v.Fail(http.StatusServiceUnavailable, loader.MsgCommerceError))

	status, doc := render(t, CommercePage, v)

	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, loader.MsgCommerceError, doc.Find(".error-state .message").Text())
	link := doc.Find(".error-state a.home-link")
	assert.Equal(t, "Volver al inicio", link.Text())
	href, _ := link.Attr("href")
	assert.Equal(t, "/", href)
	assert.Zero(t, doc.Find(".commerce-detail").Length())
}

func TestNotFoundTitle(t *testing.T) {
	v := view.New[loader.CategoryPage]()
	require.NoError(t, v.Fail(http.StatusNotFound, loader.MsgCategoryNotFound))

	status, doc := render(t, CategoryPage, v)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No encontrado", doc.Find(".error-state h2").Text())
	assert.Equal(t, loader.MsgCategoryNotFound, doc.Find(".error-state .message").Text())
}

func TestHomeContent(t *testing.T) {
	src := loader.NewFixtureSource()
	featured, _ := src.Featured(context.Background(), 3)
	v := content(t, loader.HomePage{Categories: loader.HomeFallback(), Featured: featured})

	_, doc := render(t, HomePage, v)

	cards := doc.Find(".category-card")
	require.Equal(t, 2, cards.Length())
	assert.Equal(t, "Restaurantes", cards.First().Find("h3").Text())
	assert.Equal(t, "🍽️", cards.First().Find(".icon").Text())
	assert.Equal(t, "🔧", cards.Eq(1).Find(".icon").Text())
	href, _ := cards.Eq(1).Attr("href")
	assert.Equal(t, "/categoria/servicios", href)
	assert.Equal(t, 1, doc.Find(".featured .commerce-card").Length())
	assert.Zero(t, doc.Find(".empty-state").Length())
	assert.Zero(t, doc.Find(".notice").Length())
}

func TestHomeDegradedNotice(t *testing.T) {
	v := content(t, loader.HomePage{Categories: loader.HomeFallback(), Degraded: true})

	_, doc := render(t, HomePage, v)

	notice := doc.Find(".notice")
	require.Equal(t, 1, notice.Length())
	assert.Contains(t, notice.Text(), "No pudimos conectar con el servidor")
	assert.Equal(t, 2, doc.Find(".category-card").Length())
}

func TestHomeEmptyState(t *testing.T) {
	_, doc := render(t, HomePage, content(t, loader.HomePage{Categories: []loader.Category{}}))

	assert.Zero(t, doc.Find(".category-grid").Length())
	assert.Equal(t, "No se encontraron categorías", doc.Find(".empty-state h3").Text())
	assert.Zero(t, doc.Find(".featured").Length())
}

func TestCategoryContent(t *testing.T) {
	category, commerces, err := loader.NewFixtureSource().Category(context.Background(), "restaurantes")
	require.NoError(t, err)

	_, doc := render(t, CategoryPage, content(t, loader.CategoryPage{Category: *category, Commerces: commerces}))

	assert.Equal(t, "Restaurantes", doc.Find(".breadcrumb .current").Text())
	assert.Equal(t, "Explora los mejores restaurantes en Arica", doc.Find(".category-title p").Text())
	card := doc.Find(".commerce-card")
	require.Equal(t, 1, card.Length())
	assert.Equal(t, "Comida Rápida", card.Find(".subcategory").Text())
	href, _ := card.Find("a.details").Attr("href")
	assert.Equal(t, "/comercio/restaurante-el-sabor", href)
	assert.Zero(t, doc.Find(".empty-state").Length())
}

func TestCategoryEmptyState(t *testing.T) {
	page := loader.CategoryPage{Category: loader.Category{Code: "02", Name: "Hoteles", Slug: "hoteles"}}

	_, doc := render(t, CategoryPage, content(t, page))

	assert.Zero(t, doc.Find(".commerce-grid").Length(), "no empty list container")
	assert.Equal(t, "No se encontraron comercios", doc.Find(".empty-state h3").Text())
	assert.Equal(t, "🏨", strings.TrimSpace(doc.Find(".category-title .icon").Text()))
}

func TestCommerceContent(t *testing.T) {
	commerce, err := loader.NewFixtureSource().Commerce(context.Background(), "anything")
	require.NoError(t, err)

	_, doc := render(t, CommercePage, content(t, loader.CommercePage{Commerce: *commerce}))

	assert.Equal(t, "Restaurante El Sabor", doc.Find(".commerce-detail h1").Text())
	assert.Equal(t, "Menú", doc.Find(".products h2").Text())
	products := doc.Find(".product-card")
	require.Equal(t, 2, products.Length())
	assert.Equal(t, "$350.00 DOP", strings.TrimSpace(products.First().Find(".price").Text()))
	href, _ := doc.Find(".breadcrumb a").Eq(1).Attr("href")
	assert.Equal(t, "/categoria/restaurantes", href)
	tel, _ := doc.Find(".phone a").Attr("href")
	assert.Equal(t, "tel:809-555-0123", tel)
}

func TestCommerceEmptyState(t *testing.T) {
	commerce := loader.Commerce{
		Name:        "Ferretería Central",
		Slug:        "ferreteria-central",
		Subcategory: loader.Subcategory{Name: "Ferreterías", Category: &loader.Category{Name: "Servicios", Slug: "servicios"}},
	}

	_, doc := render(t, CommercePage, content(t, loader.CommercePage{Commerce: commerce}))

	assert.Equal(t, "Productos y Servicios", doc.Find(".products h2").Text())
	assert.Zero(t, doc.Find(".product-grid").Length())
	assert.Equal(t, "No se encontraron productos", doc.Find(".empty-state h3").Text())
}

func TestFuncs(t *testing.T) {
	assert.Equal(t, "🏪", CategoryIcon("Tiendas"))
	assert.Equal(t, "Productos y Servicios", MenuTitle(""))
	assert.Equal(t, "$150.00", Price(decimal.NewNullDecimal(decimal.RequireFromString("150"))))
	assert.Equal(t, "$0.50", Price(decimal.NewNullDecimal(decimal.RequireFromString("0.5"))))
	assert.Empty(t, Price(decimal.NullDecimal{}))
}
