package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var bundled embed.FS

// Bundle holds UI labels per language.
type Bundle struct {
	dict      map[string]map[string]string
	fallback  string
	supported []string
	matcher   language.Matcher
}

// Bundled loads the locales shipped with the binary.
func Bundled(fallback string, supported []string) (*Bundle, error) {
	sub, err := fs.Sub(bundled, "locales")
	if err != nil {
		return nil, err
	}
	return Load(sub, fallback, supported)
}

// Load reads <lang>.json files from fsys. The fallback locale must exist;
// other supported locales may be missing.
func Load(fsys fs.FS, fallback string, supported []string) (*Bundle, error) {
	if len(supported) == 0 {
		supported = []string{"es", "en"}
	}
	fallback = strings.ToLower(strings.TrimSpace(fallback))
	b := &Bundle{
		dict:     map[string]map[string]string{},
		fallback: fallback,
	}
	seen := map[string]bool{}
	for _, l := range supported {
		l = strings.ToLower(strings.TrimSpace(l))
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		b.supported = append(b.supported, l)
		raw, err := fs.ReadFile(fsys, path.Join(".", l+".json"))
		if err != nil {
			// allow missing file for non-default locales
			if l == fallback {
				return nil, fmt.Errorf("load locale %s: %w", l, err)
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("load locale %s: %w", l, err)
			}
			continue
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		b.dict[l] = m
	}
	if _, ok := b.dict[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s not loaded", fallback)
	}

	// The matcher's default is its first tag, so the fallback goes first.
	order := []string{fallback}
	for _, l := range b.supported {
		if l != fallback {
			order = append(order, l)
		}
	}
	tags := make([]language.Tag, 0, len(order))
	for _, l := range order {
		tag, err := language.Parse(l)
		if err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", l, err)
		}
		tags = append(tags, tag)
	}
	b.supported = order
	b.matcher = language.NewMatcher(tags)
	return b, nil
}

// Supported returns the configured locales sorted alphabetically.
func (b *Bundle) Supported() []string {
	out := append([]string(nil), b.supported...)
	sort.Strings(out)
	return out
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string { return b.fallback }

// IsSupported reports whether lang is one of the configured locales.
func (b *Bundle) IsSupported(lang string) bool {
	lang = strings.ToLower(strings.TrimSpace(lang))
	for _, l := range b.supported {
		if l == lang {
			return true
		}
	}
	return false
}

// T returns translation for key in lang, falling back to default and finally key.
func (b *Bundle) T(lang, key string) string {
	if lang != "" {
		if m, ok := b.dict[lang]; ok {
			if v, ok := m[key]; ok {
				return v
			}
		}
	}
	if m, ok := b.dict[b.fallback]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// Translator binds T to a language.
func (b *Bundle) Translator(lang string) func(key string) string {
	return func(key string) string { return b.T(lang, key) }
}

// Resolve chooses best language from Accept-Language header.
func (b *Bundle) Resolve(acceptLang string) string {
	prefs, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(prefs) == 0 {
		return b.fallback
	}
	_, idx, conf := b.matcher.Match(prefs...)
	if conf == language.No || idx < 0 || idx >= len(b.supported) {
		return b.fallback
	}
	return b.supported[idx]
}
