package handlers

import (
	"strings"

	"github.com/mariomonzon-info/design-patterns/internal/catalog"
	"github.com/mariomonzon-info/design-patterns/internal/seo"
)

// BuildHomeData constructs the view model of the viewer shell. baseURL may
// be empty, in which case no canonical link is emitted.
func BuildHomeData(lang string, t func(string) string, locales []string, baseURL string, entries []catalog.Entry) PageData {
	base := strings.TrimRight(baseURL, "/")
	canonical := ""
	if base != "" {
		canonical = base + "/"
	}
	title := t("site.title")
	meta := seo.NewMeta(title, t("site.description"), canonical)

	items := make([]seo.ListItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, seo.ListItem{Name: e.Name, URL: base + "/#" + e.ID})
	}
	meta.JSONLD = append(meta.JSONLD,
		seo.JSON(seo.WebSite(title, canonical, lang)),
		seo.JSON(seo.ItemList(title, items)),
	)

	return PageData{
		Lang:    lang,
		SEO:     meta,
		T:       t,
		Locales: locales,
	}
}
