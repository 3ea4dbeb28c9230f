// Package httpserver assembles the router and http.Server of the viewer.
package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/mariomonzon-info/design-patterns/internal/handlers"
	"github.com/mariomonzon-info/design-patterns/internal/markup"
	custommw "github.com/mariomonzon-info/design-patterns/internal/middleware"
	"github.com/mariomonzon-info/design-patterns/public"
)

// Config holds runtime options for the HTTP server.
type Config struct {
	Address           string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	HandlerTimeout    time.Duration

	Logger *zap.Logger
	Viewer *handlers.Viewer
	Locale custommw.LocaleBundle
	Markup *markup.Renderer
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) (*http.Server, error) {
	router, err := NewRouter(cfg)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:              cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: orDefault(cfg.ReadHeaderTimeout, 10*time.Second),
		ReadTimeout:       orDefault(cfg.ReadTimeout, 15*time.Second),
		WriteTimeout:      orDefault(cfg.WriteTimeout, 15*time.Second),
		IdleTimeout:       orDefault(cfg.IdleTimeout, 60*time.Second),
		ErrorLog:          zap.NewStdLog(loggerOrNop(cfg.Logger).Named("http")),
	}, nil
}

// NewRouter builds the routing tree without binding a listener.
func NewRouter(cfg Config) (http.Handler, error) {
	if cfg.Viewer == nil {
		return nil, errors.New("httpserver: viewer is required")
	}
	if cfg.Locale == nil {
		return nil, errors.New("httpserver: locale bundle is required")
	}
	if cfg.Markup == nil {
		cfg.Markup = markup.New()
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; only deploy behind a proxy that sets it.
	router.Use(chimw.RealIP)
	router.Use(custommw.HTMX)
	router.Use(custommw.Logger(loggerOrNop(cfg.Logger)))
	router.Use(chimw.Recoverer)
	router.Use(chimw.Compress(5))
	router.Use(chimw.Timeout(orDefault(cfg.HandlerTimeout, 30*time.Second)))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	staticContent, err := public.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("embed static: %w", err)
	}
	chromaCSS, err := handlers.ChromaCSS(cfg.Markup)
	if err != nil {
		return nil, fmt.Errorf("chroma css: %w", err)
	}
	router.Get("/assets/chroma.css", chromaCSS)
	router.Handle("/assets/*", custommw.AssetsWithCache(staticContent, "/assets"))

	router.Group(func(r chi.Router) {
		r.Use(custommw.Locale(cfg.Locale))
		r.Use(custommw.VaryLocale)

		r.Get("/", cfg.Viewer.Page)
		r.Route("/fragments", func(r chi.Router) {
			RegisterFragment(r, "/view", cfg.Viewer.Sync)
			RegisterFragment(r, "/entries/{id}", cfg.Viewer.Activate)
			RegisterFragment(r, "/entries/{id}/languages/{lang}", cfg.Viewer.Language)
		})
	})

	return router, nil
}

// RegisterFragment registers a GET handler intended for htmx fragment rendering.
func RegisterFragment(r chi.Router, pattern string, handler http.HandlerFunc) {
	r.With(custommw.RequireHTMX).Get(pattern, handler)
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

func loggerOrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
