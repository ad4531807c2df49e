package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tuarica/internal/config"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"resty.dev/v3"
)

// LiveSource reads from the Read API over HTTP.
type LiveSource struct {
	baseURL string
	client  *resty.Client
}

var _ Source = (*LiveSource)(nil)

// NewLiveSource returns a source for the Read API at baseURL.
// An empty baseURL means config.DefaultAPIURL.
func NewLiveSource(baseURL string, timeout time.Duration) *LiveSource {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = config.DefaultAPIURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &LiveSource{baseURL: baseURL, client: client}
}

// BaseURL is the Read API base URL requests go to.
func (s *LiveSource) BaseURL() string { return s.baseURL }

func (s *LiveSource) Close() error {
	return s.client.Close()
}

// request starts a request bound to ctx.
func (s *LiveSource) request(ctx context.Context) *resty.Request {
	return s.client.R().SetContext(ctx)
}

// get sends req to path and decodes the body into dest.
// 404 maps to ErrNotFound, every other failure to ErrUnavailable.
func (s *LiveSource) get(req *resty.Request, path string, dest any) error {
	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w: %w", path, ErrUnavailable, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("GET %s: %w", path, ErrNotFound)
	}
	if resp.IsError() {
		return fmt.Errorf("GET %s: %w: HTTP %d", path, ErrUnavailable, resp.StatusCode())
	}
	if err := json.Unmarshal([]byte(resp.String()), dest); err != nil {
		return fmt.Errorf("GET %s: %w: decode: %w", path, ErrUnavailable, err)
	}
	return nil
}

func (s *LiveSource) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := s.get(s.request(ctx), "/categorias", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Category fetches the category and its commerces concurrently.
func (s *LiveSource) Category(ctx context.Context, slug string) (*Category, []Commerce, error) {
	var (
		category  Category
		commerces []Commerce
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.get(s.request(gctx).SetPathParam("slug", slug), "/categorias/{slug}", &category)
	})
	g.Go(func() error {
		return s.get(s.request(gctx).SetPathParam("slug", slug), "/categorias/{slug}/comercios", &commerces)
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	log.WithFields(log.Fields{"slug": slug, "comercios": len(commerces)}).Debug("Loaded category")
	return &category, commerces, nil
}

func (s *LiveSource) Commerce(ctx context.Context, slug string) (*Commerce, error) {
	var commerce Commerce
	if err := s.get(s.request(ctx).SetPathParam("slug", slug), "/comercios/{slug}", &commerce); err != nil {
		return nil, err
	}
	return &commerce, nil
}

// Featured returns the first page of commerces, at most limit long.
func (s *LiveSource) Featured(ctx context.Context, limit int) ([]Commerce, error) {
	var page struct {
		Commerces []Commerce `json:"comercios"`
	}
	req := s.request(ctx).
		SetQueryParam("page", "1").
		SetQueryParam("page_size", strconv.Itoa(limit))
	if err := s.get(req, "/comercios", &page); err != nil {
		return nil, err
	}
	if len(page.Commerces) > limit {
		page.Commerces = page.Commerces[:limit]
	}
	return page.Commerces, nil
}
