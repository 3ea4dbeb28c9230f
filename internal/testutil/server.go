// Package testutil spins up the viewer HTTP stack for integration tests.
package testutil

import (
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/mariomonzon-info/design-patterns/internal/catalog"
	"github.com/mariomonzon-info/design-patterns/internal/handlers"
	"github.com/mariomonzon-info/design-patterns/internal/httpserver"
	"github.com/mariomonzon-info/design-patterns/internal/i18n"
	"github.com/mariomonzon-info/design-patterns/internal/markup"
)

type options struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
	baseURL string
}

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*options)

// WithCatalog serves cat instead of the bundled catalog.
func WithCatalog(cat *catalog.Catalog) ServerOption {
	return func(o *options) { o.catalog = cat }
}

// WithLogger routes server logs to logger.
func WithLogger(logger *zap.Logger) ServerOption {
	return func(o *options) { o.logger = logger }
}

// WithBaseURL sets the absolute site URL used in canonical links.
func WithBaseURL(u string) ServerOption {
	return func(o *options) { o.baseURL = u }
}

// NewServer constructs an httptest server running the viewer HTTP stack with sensible defaults.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.catalog == nil {
		cat, err := catalog.Bundled()
		if err != nil {
			t.Fatalf("bundled catalog: %v", err)
		}
		o.catalog = cat
	}
	bundle, err := i18n.Bundled("es", []string{"es", "en"})
	if err != nil {
		t.Fatalf("i18n: %v", err)
	}
	md := markup.New()
	viewer, err := handlers.NewViewer(handlers.ViewerConfig{
		Catalog: o.catalog,
		Bundle:  bundle,
		Markup:  md,
		BaseURL: o.baseURL,
	})
	if err != nil {
		t.Fatalf("viewer: %v", err)
	}
	srv, err := httpserver.New(httpserver.Config{
		Logger: o.logger,
		Viewer: viewer,
		Locale: bundle,
		Markup: md,
	})
	if err != nil {
		t.Fatalf("server: %v", err)
	}
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
