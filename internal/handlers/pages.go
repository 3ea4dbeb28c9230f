// Package handlers renders the viewer page and answers the htmx fragment
// requests that drive its controller.
package handlers

import (
	"github.com/mariomonzon-info/design-patterns/internal/seo"
)

// PageData is the view model of the shared layout.
type PageData struct {
	Lang    string
	SEO     seo.Meta
	T       func(key string) string
	Locales []string
}
