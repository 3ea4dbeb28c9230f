package config

import (
	"fmt"
	"time"
)

// DefaultPath is read when no -config flag is given; it may be absent.
const DefaultPath = "patterns-web.yaml"

// EnvPrefix marks environment overrides, e.g. PATTERNS_WEB_HTTP__ADDR.
const EnvPrefix = "PATTERNS_WEB_"

func defaults() map[string]any {
	return map[string]any{
		"http.addr":                 ":8080",
		"http.read_header_timeout":  10 * time.Second,
		"http.read_timeout":         15 * time.Second,
		"http.write_timeout":        15 * time.Second,
		"http.idle_timeout":         60 * time.Second,
		"http.handler_timeout":      30 * time.Second,
		"http.shutdown_timeout":     10 * time.Second,
		"site.base_url":             "",
		"catalog.path":              "",
		"catalog.strict_categories": false,
		"i18n.fallback":             "es",
		"i18n.supported":            []string{"es", "en"},
		"log.level":                 "info",
		"dev_mode":                  false,
		"templates_dir":             "templates",
	}
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	k, err := withDefaults()
	if err != nil {
		panic(fmt.Sprintf("config: defaults: %v", err))
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic(fmt.Sprintf("config: defaults: %v", err))
	}
	return cfg
}
