// Package config loads the viewer configuration: built-in defaults, then an
// optional YAML file, then PATTERNS_WEB_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mariomonzon-info/design-patterns/internal/observability"
)

// ValidationError lists every invalid setting found by Validate.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid config: " + strings.Join(e.Problems, "; ")
}

// Load reads configuration from path, then overlays environment variables.
// An empty path reads DefaultPath when it exists; an explicit path must exist.
// Cloud Run's PORT sets the listen address unless the file or a
// PATTERNS_WEB_HTTP__ADDR override does.
func Load(path string) (*Config, error) {
	k, err := withDefaults()
	if err != nil {
		return nil, err
	}

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		if err := k.Set("http.addr", ":"+port); err != nil {
			return nil, fmt.Errorf("applying PORT: %w", err)
		}
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if explicit || !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// PATTERNS_WEB_HTTP__ADDR -> http.addr
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	return unmarshal(k)
}

func withDefaults() (*koanf.Koanf, error) {
	k := koanf.New(".")
	for key, v := range defaults() {
		if err := k.Set(key, v); err != nil {
			return nil, fmt.Errorf("default %s: %w", key, err)
		}
	}
	return k, nil
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	for i, l := range cfg.I18n.Supported {
		cfg.I18n.Supported[i] = strings.ToLower(strings.TrimSpace(l))
	}
	cfg.I18n.Fallback = strings.ToLower(strings.TrimSpace(cfg.I18n.Fallback))
	return &cfg, nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		problems = append(problems, "http.addr is required")
	}
	for name, d := range map[string]int64{
		"http.read_header_timeout": int64(c.HTTP.ReadHeaderTimeout),
		"http.read_timeout":        int64(c.HTTP.ReadTimeout),
		"http.write_timeout":       int64(c.HTTP.WriteTimeout),
		"http.idle_timeout":        int64(c.HTTP.IdleTimeout),
		"http.handler_timeout":     int64(c.HTTP.HandlerTimeout),
		"http.shutdown_timeout":    int64(c.HTTP.ShutdownTimeout),
	} {
		if d <= 0 {
			problems = append(problems, name+" must be positive")
		}
	}
	if len(c.I18n.Supported) == 0 {
		problems = append(problems, "i18n.supported must list at least one locale")
	} else if !slices.Contains(c.I18n.Supported, c.I18n.Fallback) {
		problems = append(problems, fmt.Sprintf("i18n.fallback %q is not in i18n.supported", c.I18n.Fallback))
	}
	if _, err := observability.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("log.level %q is not a valid level", c.Log.Level))
	}
	if c.DevMode && strings.TrimSpace(c.TemplatesDir) == "" {
		problems = append(problems, "templates_dir is required in dev mode")
	}
	if len(problems) == 0 {
		return nil
	}
	slices.Sort(problems)
	return &ValidationError{Problems: problems}
}
