package handlers

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"os"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mariomonzon-info/design-patterns/internal/catalog"
	"github.com/mariomonzon-info/design-patterns/internal/dom"
	"github.com/mariomonzon-info/design-patterns/internal/i18n"
	"github.com/mariomonzon-info/design-patterns/internal/location"
	"github.com/mariomonzon-info/design-patterns/internal/markup"
	"github.com/mariomonzon-info/design-patterns/internal/middleware"
	"github.com/mariomonzon-info/design-patterns/internal/observability"
	"github.com/mariomonzon-info/design-patterns/internal/view"
	"github.com/mariomonzon-info/design-patterns/templates"
)

// AppRegionID is the element whose children fragment responses replace.
const AppRegionID = "app"

// TemplateSource yields the parsed templates for one request.
type TemplateSource func() (*template.Template, error)

// BundledTemplates serves the embedded templates, parsed once.
func BundledTemplates() TemplateSource { return templates.Bundled }

// DirTemplates reparses the templates under dir on every call, for local
// editing in dev mode.
func DirTemplates(dir string) TemplateSource {
	return func() (*template.Template, error) {
		return templates.Parse(os.DirFS(dir))
	}
}

// ViewerConfig wires the viewer handlers.
type ViewerConfig struct {
	Catalog   *catalog.Catalog
	Bundle    *i18n.Bundle
	Markup    *markup.Renderer
	Templates TemplateSource
	BaseURL   string
}

// Viewer hosts a view controller per request: it renders the shell, starts
// the controller on the parsed document, applies the request's event, and
// writes the result.
type Viewer struct {
	catalog   *catalog.Catalog
	bundle    *i18n.Bundle
	markup    *markup.Renderer
	templates TemplateSource
	baseURL   string
}

// NewViewer validates cfg and fills defaults.
func NewViewer(cfg ViewerConfig) (*Viewer, error) {
	if cfg.Catalog == nil {
		return nil, errors.New("handlers: catalog is required")
	}
	if cfg.Bundle == nil {
		return nil, errors.New("handlers: i18n bundle is required")
	}
	if cfg.Markup == nil {
		cfg.Markup = markup.New()
	}
	if cfg.Templates == nil {
		cfg.Templates = BundledTemplates()
	}
	return &Viewer{
		catalog:   cfg.Catalog,
		bundle:    cfg.Bundle,
		markup:    cfg.Markup,
		templates: cfg.Templates,
		baseURL:   cfg.BaseURL,
	}, nil
}

// session is one request's document with its running controller.
type session struct {
	doc  *dom.Document
	loc  *location.Location
	ctrl *view.Controller
}

func (v *Viewer) open(r *http.Request, fragment string) (*session, error) {
	lang := middleware.Lang(r, v.bundle.Fallback())
	t := v.bundle.Translator(lang)
	tmpl, err := v.templates()
	if err != nil {
		return nil, err
	}

	data := BuildHomeData(lang, t, v.bundle.Supported(), v.baseURL, v.catalog.All())
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return nil, err
	}
	doc, err := dom.Parse(&buf)
	if err != nil {
		return nil, err
	}

	renderer, err := view.NewRenderer(tmpl, v.markup, t)
	if err != nil {
		return nil, err
	}
	loc := location.New(fragment)
	ctrl, err := view.New(v.catalog, doc, loc,
		view.WithLogger(observability.FromContext(r.Context())),
		view.WithRenderer(renderer),
	)
	if err != nil {
		return nil, err
	}
	if err := ctrl.Start(); err != nil {
		return nil, err
	}
	return &session{doc: doc, loc: loc, ctrl: ctrl}, nil
}

// currentFragment is the fragment of the page htmx is running on.
func currentFragment(r *http.Request) string {
	return location.FragmentOf(middleware.HTMXFromContext(r.Context()).CurrentURL)
}

// Page renders the full viewer. Plain navigations carry no fragment, so the
// placeholder is shown until the browser asks for /fragments/view; htmx
// history restores carry it in HX-Current-URL.
func (v *Viewer) Page(w http.ResponseWriter, r *http.Request) {
	fragment := ""
	if info := middleware.HTMXFromContext(r.Context()); info.HistoryRestore {
		fragment = location.FragmentOf(info.CurrentURL)
	}
	s, err := v.open(r, fragment)
	if err != nil {
		v.fail(w, r, err)
		return
	}
	defer s.ctrl.Close()

	var buf bytes.Buffer
	if err := s.doc.Render(&buf); err != nil {
		v.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// Sync re-renders the view for the fragment of the browser's current URL.
func (v *Viewer) Sync(w http.ResponseWriter, r *http.Request) {
	s, err := v.open(r, currentFragment(r))
	if err != nil {
		v.fail(w, r, err)
		return
	}
	defer s.ctrl.Close()
	v.writeApp(w, r, s)
}

// Activate handles a navigation link click and pushes the new fragment to
// the browser history.
func (v *Viewer) Activate(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	s, err := v.open(r, currentFragment(r))
	if err != nil {
		v.fail(w, r, err)
		return
	}
	defer s.ctrl.Close()

	s.ctrl.OnLinkActivated(id)
	w.Header().Set("HX-Push-Url", s.loc.Href())
	v.writeApp(w, r, s)
}

// Language shows entry id with the code tab for lang active. Tabs do not
// touch the fragment.
func (v *Viewer) Language(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	lang := pathParam(r, "lang")
	s, err := v.open(r, id)
	if err != nil {
		v.fail(w, r, err)
		return
	}
	defer s.ctrl.Close()

	s.ctrl.SelectLanguage(id, lang)
	v.writeApp(w, r, s)
}

func (v *Viewer) writeApp(w http.ResponseWriter, r *http.Request, s *session) {
	region, err := s.doc.Region(AppRegionID)
	if err != nil {
		v.fail(w, r, err)
		return
	}
	inner, err := region.InnerHTML()
	if err != nil {
		v.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(inner))
}

func (v *Viewer) fail(w http.ResponseWriter, r *http.Request, err error) {
	observability.FromContext(r.Context()).Error("render viewer failed", zap.Error(err))
	middleware.WriteError(w, r, http.StatusInternalServerError, "internal server error")
}

func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
