package view

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/mariomonzon-info/design-patterns/internal/catalog"
	"github.com/mariomonzon-info/design-patterns/internal/format"
	"github.com/mariomonzon-info/design-patterns/internal/markup"
	"github.com/mariomonzon-info/design-patterns/internal/nav"
	"github.com/mariomonzon-info/design-patterns/templates"
)

// Renderer projects catalog data into the markup of the nav and details regions.
type Renderer struct {
	tmpl   *template.Template
	markup *markup.Renderer
	t      func(key string) string
}

// NewRenderer builds a Renderer. A nil tmpl uses the bundled templates, a
// nil md a default markup renderer, and a nil t echoes keys.
func NewRenderer(tmpl *template.Template, md *markup.Renderer, t func(string) string) (*Renderer, error) {
	if tmpl == nil {
		var err error
		if tmpl, err = templates.Bundled(); err != nil {
			return nil, fmt.Errorf("view: templates: %w", err)
		}
	}
	if md == nil {
		md = markup.New()
	}
	if t == nil {
		t = func(key string) string { return key }
	}
	return &Renderer{tmpl: tmpl, markup: md, t: t}, nil
}

type navView struct {
	T        func(string) string
	Sections []nav.Section
}

type sectionView struct {
	Heading string
	Body    template.HTML
}

type tabView struct {
	Lang   string
	Label  string
	Active bool
	Code   template.HTML
}

type detailsView struct {
	T             func(string) string
	ID            string
	Name          string
	CategoryLabel string
	Sections      []sectionView
	Tabs          []tabView
}

// Navigation renders the category buckets.
func (r *Renderer) Navigation(sections []nav.Section) (string, error) {
	return r.execute("nav", navView{T: r.t, Sections: sections})
}

// Details renders an entry with the tab for active selected. An active
// language the entry lacks leaves every tab inactive.
func (r *Renderer) Details(e catalog.Entry, active string) (string, error) {
	v := detailsView{
		T:             r.t,
		ID:            e.ID,
		Name:          e.Name,
		CategoryLabel: r.categoryLabel(e.Category),
	}
	for _, s := range e.Sections() {
		body, err := r.markup.Prose(s.Text)
		if err != nil {
			return "", err
		}
		v.Sections = append(v.Sections, sectionView{Heading: r.t("entry." + string(s.Field)), Body: body})
	}
	for _, ex := range e.Examples {
		code, err := r.markup.Code(ex.Lang, ex.Source)
		if err != nil {
			return "", err
		}
		v.Tabs = append(v.Tabs, tabView{
			Lang:   ex.Lang,
			Label:  format.LanguageName(ex.Lang),
			Active: ex.Lang == active,
			Code:   code,
		})
	}
	return r.execute("details", v)
}

func (r *Renderer) categoryLabel(c catalog.Category) string {
	if !c.Known() {
		return string(c)
	}
	return r.t("category." + c.Slug())
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("view: render %s: %w", name, err)
	}
	return buf.String(), nil
}
