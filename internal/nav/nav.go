package nav

import (
	"net/url"

	"github.com/mariomonzon-info/design-patterns/internal/catalog"
)

// Link is a navigation entry pointing at a catalog entry via the URL fragment.
type Link struct {
	ID    string // entry id, also the fragment value
	Href  string // e.g. "/#singleton", the same URL the viewer pushes on activation
	Label string // entry display name
}

// Section is one category bucket of the navigation.
type Section struct {
	Category catalog.Category
	LabelKey string // i18n key, e.g. "nav.creational"
	ListID   string // element id of the bucket list, e.g. "creational-list"
	Links    []Link
}

// Build groups entries into the fixed category buckets. Buckets follow
// catalog.Categories; links within a bucket keep catalog order. Entries with
// an unknown category are not placed in any bucket.
func Build(entries []catalog.Entry) []Section {
	sections := make([]Section, 0, len(catalog.Categories))
	index := make(map[catalog.Category]int, len(catalog.Categories))
	for i, c := range catalog.Categories {
		index[c] = i
		sections = append(sections, Section{
			Category: c,
			LabelKey: "nav." + c.Slug(),
			ListID:   c.Slug() + "-list",
		})
	}
	for _, e := range entries {
		i, ok := index[e.Category]
		if !ok {
			continue
		}
		sections[i].Links = append(sections[i].Links, Link{
			ID:    e.ID,
			Href:  "/#" + url.PathEscape(e.ID),
			Label: e.DisplayName(),
		})
	}
	return sections
}

// Omitted returns the ids of entries Build leaves out of every bucket.
func Omitted(entries []catalog.Entry) []string {
	var out []string
	for _, e := range entries {
		if !e.Category.Known() {
			out = append(out, e.ID)
		}
	}
	return out
}
