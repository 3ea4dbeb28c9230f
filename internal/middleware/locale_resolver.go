package middleware

import (
	"net/http"
	"strings"
)

// LocaleCookie remembers an explicit ?hl= choice.
const LocaleCookie = "hl"

// LocaleBundle is the part of the label bundle locale resolution needs.
type LocaleBundle interface {
	Fallback() string
	IsSupported(lang string) bool
	Resolve(acceptLang string) string
}

// ResolveLocale picks the UI language for r: a supported ?hl= value, then a
// supported hl cookie, then Accept-Language, then the fallback. fromQuery
// reports whether the choice came from the query string.
func ResolveLocale(r *http.Request, bundle LocaleBundle) (lang string, fromQuery bool) {
	if q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("hl"))); q != "" && bundle.IsSupported(q) {
		return q, true
	}
	if c, err := r.Cookie(LocaleCookie); err == nil {
		if v := strings.ToLower(strings.TrimSpace(c.Value)); v != "" && bundle.IsSupported(v) {
			return v, false
		}
	}
	if h := r.Header.Get("Accept-Language"); h != "" {
		return bundle.Resolve(h), false
	}
	return bundle.Fallback(), false
}
