package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tuarica/internal/api"
	"tuarica/internal/catalog"
	"tuarica/internal/db/dbtest"
	"tuarica/internal/web/loader"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func get(t *testing.T, r http.Handler, path string) (int, *goquery.Document) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	return w.Code, doc
}

func fixtureRouter(t *testing.T) *gin.Engine {
	t.Helper()
	r, err := NewRouter(loader.New(loader.NewFixtureSource()))
	require.NoError(t, err)
	return r
}

func liveRouter(t *testing.T, apiURL string) *gin.Engine {
	t.Helper()
	src := loader.NewLiveSource(apiURL, 2*time.Second)
	t.Cleanup(func() { _ = src.Close() })
	r, err := NewRouter(loader.New(src))
	require.NoError(t, err)
	return r
}

func TestFixturePages(t *testing.T) {
	r := fixtureRouter(t)

	status, doc := get(t, r, "/")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, doc.Find(".category-card").Length())

	status, doc = get(t, r, "/categoria/hoteles")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Restaurantes", doc.Find(".breadcrumb .current").Text())

	status, doc = get(t, r, "/comercio/cualquiera")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Restaurante El Sabor", doc.Find(".commerce-detail h1").Text())
}

func TestStaticAssets(t *testing.T) {
	r := fixtureRouter(t)

	for path, contentType := range map[string]string{
		"/static/tuarica.css": "text/css",
		"/static/logo.svg":    "image/svg+xml",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Header().Get("Content-Type"), contentType, path)
		assert.NotZero(t, w.Body.Len(), path)
	}

	_, doc := get(t, r, "/")
	href, _ := doc.Find(`link[rel="stylesheet"]`).Attr("href")
	assert.Equal(t, "/static/tuarica.css", href)
}

func TestHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	fixtureRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestLivePagesAgainstAPI(t *testing.T) {
	svc := catalog.NewService(catalog.NewGormStore(dbtest.Seeded(t)))
	apiSrv := httptest.NewServer(api.NewRouter(api.RouterConfig{Service: svc}))
	t.Cleanup(apiSrv.Close)
	r := liveRouter(t, apiSrv.URL)

	status, doc := get(t, r, "/")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, doc.Find(".category-card").Length())
	assert.Equal(t, 1, doc.Find(".featured .commerce-card").Length())

	status, doc = get(t, r, "/categoria/servicios")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "No se encontraron comercios", doc.Find(".empty-state h3").Text())

	status, doc = get(t, r, "/categoria/hoteles")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, loader.MsgCategoryNotFound, doc.Find(".error-state .message").Text())

	status, doc = get(t, r, "/comercio/restaurante-el-sabor")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Menú", doc.Find(".products h2").Text())
	assert.Equal(t, "$350.00 DOP", strings.TrimSpace(doc.Find(".product-card .price").First().Text()))
}

func TestLivePagesWithAPIDown(t *testing.T) {
	down := httptest.NewServer(http.NotFoundHandler())
	url := down.URL
	down.Close()
	r := liveRouter(t, url)

	status, doc := get(t, r, "/")
	assert.Equal(t, http.StatusOK, status, "home degrades instead of failing")
	assert.Equal(t, 1, doc.Find(".notice").Length())
	cards := doc.Find(".category-card h3")
	require.Equal(t, 2, cards.Length())
	assert.Equal(t, "Servicios", cards.Eq(1).Text())

	status, doc = get(t, r, "/comercio/restaurante-el-sabor")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, loader.MsgCommerceError, doc.Find(".error-state .message").Text())
	href, _ := doc.Find(".error-state a").Attr("href")
	assert.Equal(t, "/", href)
}
