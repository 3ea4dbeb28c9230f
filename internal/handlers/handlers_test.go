package handlers

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/mariomonzon-info/design-patterns/internal/catalog"
	"github.com/mariomonzon-info/design-patterns/internal/i18n"
	"github.com/mariomonzon-info/design-patterns/templates"
)

func newViewer(t *testing.T, src TemplateSource) *Viewer {
	t.Helper()

	cat, err := catalog.Bundled()
	require.NoError(t, err)
	bundle, err := i18n.Bundled("es", []string{"es", "en"})
	require.NoError(t, err)
	v, err := NewViewer(ViewerConfig{Catalog: cat, Bundle: bundle, Templates: src})
	require.NoError(t, err)
	return v
}

func TestBuildHomeData(t *testing.T) {
	t.Parallel()

	cat, err := catalog.Bundled()
	require.NoError(t, err)
	t1 := func(key string) string { return "[" + key + "]" }

	data := BuildHomeData("en", t1, []string{"en", "es"}, "https://example.com/", cat.All())
	require.Equal(t, "en", data.Lang)
	require.Equal(t, "[site.title]", data.SEO.Title)
	require.Equal(t, "https://example.com/", data.SEO.Canonical)
	require.Len(t, data.SEO.JSONLD, 2)
	require.Contains(t, string(data.SEO.JSONLD[1]), `"url":"https://example.com/#factory-method"`)

	data = BuildHomeData("es", t1, nil, "", cat.All())
	require.Empty(t, data.SEO.Canonical)
	require.Contains(t, string(data.SEO.JSONLD[1]), `"url":"/#singleton"`)
}

func TestNewViewerRequiresDependencies(t *testing.T) {
	t.Parallel()

	_, err := NewViewer(ViewerConfig{})
	require.Error(t, err)

	cat, err := catalog.Bundled()
	require.NoError(t, err)
	_, err = NewViewer(ViewerConfig{Catalog: cat})
	require.Error(t, err)
}

func TestPageWithoutFragmentShowsPlaceholder(t *testing.T) {
	t.Parallel()

	v := newViewer(t, nil)
	rr := httptest.NewRecorder()
	v.Page(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))

	doc, err := goquery.NewDocumentFromReader(rr.Body)
	require.NoError(t, err)
	require.Equal(t, "Bienvenido", doc.Find("#pattern-details .placeholder h2").Text())
	require.Equal(t, 3, doc.Find("#patterns-nav .nav-section").Length())
}

func TestDirTemplatesReparsePerRequest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, fs.WalkDir(templates.FS(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		b, err := fs.ReadFile(templates.FS(), path)
		if err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(dir, path), b, 0o644)
	}))

	v := newViewer(t, DirTemplates(dir))
	render := func() string {
		rr := httptest.NewRecorder()
		v.Page(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		return rr.Body.String()
	}
	require.Contains(t, render(), "Bienvenido")

	edited := `{{ define "placeholder" }}<div class="placeholder"><h2>Editado</h2></div>{{ end }}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "placeholder.tmpl"), []byte(edited), 0o644))
	body := render()
	require.Contains(t, body, "Editado")
	require.False(t, strings.Contains(body, "Bienvenido"))
}

func TestPageTemplateErrorIsServerError(t *testing.T) {
	t.Parallel()

	v := newViewer(t, DirTemplates(t.TempDir()))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	v.Page(rr, req)
	require.Equal(t, http.StatusInternalServerError, rr.Code)
}
