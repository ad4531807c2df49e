// Package web serves the server-rendered TuArica pages.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"tuarica/internal/middleware"
	"tuarica/internal/web/loader"
	"tuarica/internal/web/render"
	"tuarica/internal/web/view"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFiles embed.FS

// NewRouter wires the page routes and the embedded /static assets. Every
// request builds its own view, so concurrent navigations never share state.
func NewRouter(l *loader.Loader) (*gin.Engine, error) {
	tmpl, err := render.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestIDMiddleware(), middleware.LoggerMiddleware())
	r.SetHTMLTemplate(tmpl)

	assets, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, err
	}
	r.StaticFS("/static", http.FS(assets))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/", HomeHandler(l))
	r.GET("/categoria/:slug", CategoryHandler(l))
	r.GET("/comercio/:slug", CommerceHandler(l))
	return r, nil
}

func HomeHandler(l *loader.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		respond(c, render.HomePage, l.Home(c.Request.Context()))
	}
}

func CategoryHandler(l *loader.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		respond(c, render.CategoryPage, l.Category(c.Request.Context(), c.Param("slug")))
	}
}

func CommerceHandler(l *loader.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		respond(c, render.CommercePage, l.Commerce(c.Request.Context(), c.Param("slug")))
	}
}

func respond[T any](c *gin.Context, page string, v *view.View[T]) {
	name, status, data := render.Resolve(page, v)
	c.HTML(status, name, data)
}
