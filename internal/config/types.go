package config

import "time"

// Config is the runtime configuration of the viewer, corresponding to patterns-web.yaml.
type Config struct {
	HTTP         HTTPConfig    `koanf:"http"`
	Site         SiteConfig    `koanf:"site"`
	Catalog      CatalogConfig `koanf:"catalog"`
	I18n         I18nConfig    `koanf:"i18n"`
	Log          LogConfig     `koanf:"log"`
	DevMode      bool          `koanf:"dev_mode"`
	TemplatesDir string        `koanf:"templates_dir"`
}

// HTTPConfig holds listener settings.
type HTTPConfig struct {
	Addr              string        `koanf:"addr"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"`
	HandlerTimeout    time.Duration `koanf:"handler_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
}

// SiteConfig describes the public site.
type SiteConfig struct {
	BaseURL string `koanf:"base_url"`
}

// CatalogConfig selects the entry data.
type CatalogConfig struct {
	Path             string `koanf:"path"` // empty: embedded data
	StrictCategories bool   `koanf:"strict_categories"`
}

// I18nConfig lists the UI locales.
type I18nConfig struct {
	Fallback  string   `koanf:"fallback"`
	Supported []string `koanf:"supported"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `koanf:"level"`
}
