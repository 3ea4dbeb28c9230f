// Package view keeps a rendered document in step with the URL fragment:
// it builds the navigation, renders the selected entry, and switches code
// tabs.
package view

import (
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/mariomonzon-info/design-patterns/internal/catalog"
	"github.com/mariomonzon-info/design-patterns/internal/dom"
	"github.com/mariomonzon-info/design-patterns/internal/nav"
)

// Element ids the controller renders into.
const (
	NavRegionID     = "patterns-nav"
	DetailsRegionID = "pattern-details"
)

const activeClass = "active"

// Catalog is the lookup surface the controller needs.
type Catalog interface {
	All() []catalog.Entry
	FindByID(id string) (catalog.Entry, bool)
}

// Location is the fragment the controller reads, writes, and listens to.
type Location interface {
	Fragment() string
	SetFragment(fragment string)
	Subscribe(fn func()) (unsubscribe func())
}

// tab pairs the rendered button and code block of one language.
type tab struct {
	button *goquery.Selection
	block  *goquery.Selection
}

// Controller owns the view state and the nav/details regions of a document.
// It runs on a single goroutine; fragment writes made from OnLinkActivated
// may re-enter SyncFromLocation through the location's listeners.
type Controller struct {
	catalog  Catalog
	loc      Location
	renderer *Renderer
	logger   *zap.Logger

	navRegion     *dom.Region
	detailsRegion *dom.Region
	placeholder   string

	state ViewState
	links map[string]*goquery.Selection
	tabs  map[string]tab

	unsubscribe func()
}

// Option customises a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for navigation events.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRenderer overrides the renderer (templates, markup, translations).
func WithRenderer(r *Renderer) Option {
	return func(c *Controller) {
		if r != nil {
			c.renderer = r
		}
	}
}

// New binds a controller to doc. doc must contain the nav and details
// regions; whatever the details region holds now becomes the placeholder.
func New(cat Catalog, doc *dom.Document, loc Location, opts ...Option) (*Controller, error) {
	c := &Controller{
		catalog: cat,
		loc:     loc,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.renderer == nil {
		r, err := NewRenderer(nil, nil, nil)
		if err != nil {
			return nil, err
		}
		c.renderer = r
	}
	var err error
	if c.navRegion, err = doc.Region(NavRegionID); err != nil {
		return nil, err
	}
	if c.detailsRegion, err = doc.Region(DetailsRegionID); err != nil {
		return nil, err
	}
	if c.placeholder, err = c.detailsRegion.InnerHTML(); err != nil {
		return nil, err
	}
	return c, nil
}

// Start builds the navigation, renders the view for the current fragment,
// and follows later fragment changes.
func (c *Controller) Start() error {
	if _, err := c.BuildNavigation(); err != nil {
		return err
	}
	c.SyncFromLocation()
	if c.unsubscribe == nil {
		c.unsubscribe = c.loc.Subscribe(c.SyncFromLocation)
	}
	return nil
}

// Close stops following fragment changes.
func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// BuildNavigation renders one link per entry into its category bucket.
func (c *Controller) BuildNavigation() ([]nav.Section, error) {
	entries := c.catalog.All()
	if omitted := nav.Omitted(entries); len(omitted) > 0 {
		c.logger.Warn("entries with unknown category left out of navigation", zap.Strings("ids", omitted))
	}
	sections := nav.Build(entries)
	markup, err := c.renderer.Navigation(sections)
	if err != nil {
		return nil, err
	}
	if err := c.navRegion.Replace(markup); err != nil {
		return nil, err
	}
	c.links = map[string]*goquery.Selection{}
	c.navRegion.Find("a[data-pattern-id]").Each(func(_ int, s *goquery.Selection) {
		c.links[s.AttrOr("data-pattern-id", "")] = s
	})
	c.highlight(c.state.EntryID)
	return sections, nil
}

// SelectEntry renders the entry with the given id, or the placeholder when
// no entry matches.
func (c *Controller) SelectEntry(id string) {
	if id == "" {
		c.reset()
		return
	}
	e, ok := c.catalog.FindByID(id)
	if !ok {
		c.logger.Debug("entry not found", zap.String("id", id))
		c.reset()
		return
	}
	lang := e.DefaultLanguage()
	markup, err := c.renderer.Details(e, lang)
	if err == nil {
		err = c.detailsRegion.Replace(markup)
	}
	if err != nil {
		c.logger.Error("render entry failed", zap.String("id", id), zap.Error(err))
		c.reset()
		return
	}
	c.tabs = c.collectTabs(e)
	c.state = ViewState{EntryID: e.ID, Language: lang}
	c.highlight(e.ID)
}

// SelectLanguage activates the code tab for lang on the displayed entry.
// Requests for another entry or for a language the entry lacks are ignored.
func (c *Controller) SelectLanguage(entryID, lang string) {
	if !c.state.Selected() || c.state.EntryID != entryID {
		return
	}
	if _, ok := c.tabs[lang]; !ok {
		return
	}
	for l, t := range c.tabs {
		on := l == lang
		dom.SetClass(t.button, activeClass, on)
		t.button.SetAttr("aria-selected", strconv.FormatBool(on))
		dom.SetClass(t.block, activeClass, on)
		if on {
			t.block.RemoveAttr("hidden")
		} else {
			t.block.SetAttr("hidden", "")
		}
	}
	c.state.Language = lang
}

// SyncFromLocation renders whatever the current fragment names.
func (c *Controller) SyncFromLocation() {
	c.SelectEntry(c.loc.Fragment())
}

// OnLinkActivated handles a click on the navigation link for id.
func (c *Controller) OnLinkActivated(id string) {
	c.logger.Debug("link activated", zap.String("id", id))
	c.SelectEntry(id)
	c.loc.SetFragment(id)
}

// State returns the current view state.
func (c *Controller) State() ViewState { return c.state }

func (c *Controller) reset() {
	if err := c.detailsRegion.Replace(c.placeholder); err != nil {
		c.logger.Error("restore placeholder failed", zap.Error(err))
	}
	c.tabs = nil
	c.state = ViewState{}
	c.highlight("")
}

func (c *Controller) highlight(id string) {
	for linkID, link := range c.links {
		on := id != "" && linkID == id
		dom.SetClass(link, activeClass, on)
		current := ""
		if on {
			current = "page"
		}
		dom.SetAttr(link, "aria-current", current)
	}
}

func (c *Controller) collectTabs(e catalog.Entry) map[string]tab {
	tabs := make(map[string]tab, len(e.Examples))
	buttons := map[string]*goquery.Selection{}
	c.detailsRegion.Find("button[data-lang]").Each(func(_ int, s *goquery.Selection) {
		buttons[s.AttrOr("data-lang", "")] = s
	})
	c.detailsRegion.Find("[data-code-lang]").Each(func(_ int, s *goquery.Selection) {
		lang := s.AttrOr("data-code-lang", "")
		if b, ok := buttons[lang]; ok {
			tabs[lang] = tab{button: b, block: s}
		}
	})
	return tabs
}
