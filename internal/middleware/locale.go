package middleware

import "net/http"

// VaryLocale sets Vary header for Accept-Language on dynamic responses
func VaryLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// append to existing Vary if any
		w.Header().Add("Vary", "Accept-Language")
		next.ServeHTTP(w, r)
	})
}

// Locale resolves the UI language, stores it on the context, and persists an
// explicit ?hl= choice in the hl cookie.
func Locale(bundle LocaleBundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang, fromQuery := ResolveLocale(r, bundle)
			if fromQuery {
				http.SetCookie(w, &http.Cookie{
					Name:     LocaleCookie,
					Value:    lang,
					Path:     "/",
					MaxAge:   365 * 24 * 60 * 60,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), lang)))
		})
	}
}

// Lang returns the language resolved by Locale, or fallback when the
// middleware did not run.
func Lang(r *http.Request, fallback string) string {
	if l, ok := LocaleFromContext(r.Context()); ok {
		return l
	}
	return fallback
}
