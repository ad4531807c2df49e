// Package render turns page views into HTML.
package render

import (
	"embed"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"tuarica/internal/web/loader"
	"tuarica/internal/web/view"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var files embed.FS

// Template names.
const (
	HomePage     = "home.html"
	CategoryPage = "category.html"
	CommercePage = "commerce.html"
	LoadingPage  = "loading.html"
	ErrorPage    = "error.html"
)

// ErrorData is the data of ErrorPage.
type ErrorData struct {
	Title   string
	Message string
}

// Templates parses every embedded page template.
func Templates() (*template.Template, error) {
	return template.New("tuarica").Funcs(Funcs()).ParseFS(files, "templates/*.html")
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"categoryIcon": CategoryIcon,
		"menuTitle":    MenuTitle,
		"price":        Price,
		"lower":        strings.ToLower,
		"categorySlug": categorySlug,
		"year":         func() int { return time.Now().Year() },
	}
}

// CategoryIcon returns the emoji shown for a category name.
func CategoryIcon(name string) string {
	switch name {
	case "Restaurantes":
		return "🍽️"
	case "Servicios":
		return "🔧"
	case "Hoteles":
		return "🏨"
	default:
		return "🏪"
	}
}

// MenuTitle is the heading of a commerce's product list.
func MenuTitle(categoryName string) string {
	if categoryName == "Restaurantes" {
		return "Menú"
	}
	return "Productos y Servicios"
}

// Price formats a price as "$350.00", or "" when absent.
func Price(p decimal.NullDecimal) string {
	if !p.Valid {
		return ""
	}
	return "$" + p.Decimal.StringFixed(2)
}

func categorySlug(c *loader.Category) string {
	if c.Slug != "" {
		return c.Slug
	}
	return strings.ToLower(c.Name)
}

// Resolve picks the template, HTTP status and template data for v.
// A view still Loading resolves to LoadingPage.
func Resolve[T any](page string, v *view.View[T]) (string, int, any) {
	switch v.State() {
	case view.Content:
		return page, http.StatusOK, v.Data()
	case view.Error:
		return ErrorPage, v.Status(), ErrorData{Title: errorTitle(v.Status()), Message: v.Message()}
	default:
		return LoadingPage, http.StatusOK, nil
	}
}

func errorTitle(status int) string {
	if status == http.StatusNotFound {
		return "No encontrado"
	}
	return "Error"
}

// Execute renders v with t into w and returns the HTTP status to send.
func Execute[T any](t *template.Template, w io.Writer, page string, v *view.View[T]) (int, error) {
	name, status, data := Resolve(page, v)
	return status, t.ExecuteTemplate(w, name, data)
}
