package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/mariomonzon-info/design-patterns/internal/catalog"
	"github.com/mariomonzon-info/design-patterns/internal/config"
	"github.com/mariomonzon-info/design-patterns/internal/handlers"
	"github.com/mariomonzon-info/design-patterns/internal/httpserver"
	"github.com/mariomonzon-info/design-patterns/internal/i18n"
	"github.com/mariomonzon-info/design-patterns/internal/markup"
	"github.com/mariomonzon-info/design-patterns/internal/observability"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "YAML config file (default "+config.DefaultPath+" when present)")
	flag.Parse()

	if err := run(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "web: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	srv, err := buildServer(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("web listening",
		zap.String("addr", cfg.HTTP.Addr),
		zap.Bool("dev_mode", cfg.DevMode),
	)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("web stopped")
	return nil
}

func buildServer(cfg *config.Config, logger *zap.Logger) (*http.Server, error) {
	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded", zap.Int("entries", cat.Len()), zap.String("path", cfg.Catalog.Path))

	bundle, err := i18n.Bundled(cfg.I18n.Fallback, cfg.I18n.Supported)
	if err != nil {
		return nil, fmt.Errorf("i18n: %w", err)
	}

	tmpl := handlers.BundledTemplates()
	if cfg.DevMode {
		tmpl = handlers.DirTemplates(cfg.TemplatesDir)
		if _, err := tmpl(); err != nil {
			return nil, fmt.Errorf("parse templates in %s: %w", cfg.TemplatesDir, err)
		}
	}

	md := markup.New()
	viewer, err := handlers.NewViewer(handlers.ViewerConfig{
		Catalog:   cat,
		Bundle:    bundle,
		Markup:    md,
		Templates: tmpl,
		BaseURL:   cfg.Site.BaseURL,
	})
	if err != nil {
		return nil, err
	}

	return httpserver.New(httpserver.Config{
		Address:           cfg.HTTP.Addr,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		HandlerTimeout:    cfg.HTTP.HandlerTimeout,
		Logger:            logger,
		Viewer:            viewer,
		Locale:            bundle,
		Markup:            md,
	})
}

func loadCatalog(cfg config.CatalogConfig) (*catalog.Catalog, error) {
	var opts []catalog.Option
	if cfg.StrictCategories {
		opts = append(opts, catalog.WithStrictCategories())
	}
	if cfg.Path == "" {
		return catalog.Bundled(opts...)
	}
	return catalog.LoadFile(cfg.Path, opts...)
}
