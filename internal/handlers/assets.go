package handlers

import (
	"bytes"
	"net/http"

	"github.com/mariomonzon-info/design-patterns/internal/markup"
	"github.com/mariomonzon-info/design-patterns/internal/middleware"
)

// ChromaCSS serves the stylesheet matching the highlighted code markup.
// The stylesheet is generated once.
func ChromaCSS(md *markup.Renderer) (http.HandlerFunc, error) {
	var buf bytes.Buffer
	if err := md.WriteCSS(&buf); err != nil {
		return nil, err
	}
	css := buf.Bytes()
	etag := middleware.ETag(css)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=604800, stale-while-revalidate=86400")
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		_, _ = w.Write(css)
	}, nil
}
