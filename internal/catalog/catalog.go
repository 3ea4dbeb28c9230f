// Package catalog holds the immutable, ordered set of design-pattern entries.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidData is returned when catalog data cannot be decoded.
var ErrInvalidData = errors.New("catalog: invalid data")

// CategoryError reports entries rejected by strict category validation.
type CategoryError struct {
	// IDs of entries whose category is not one of Categories, in catalog order.
	IDs []string
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("catalog: unknown category on entries: %s", strings.Join(e.IDs, ", "))
}

// Catalog is an ordered, read-only collection of entries.
type Catalog struct {
	entries []Entry
	byID    map[string]int
}

type options struct {
	strictCategories bool
}

// Option customises catalog construction.
type Option func(*options)

// WithStrictCategories rejects entries whose category is unknown instead of
// letting navigation omit them.
func WithStrictCategories() Option {
	return func(o *options) { o.strictCategories = true }
}

// New builds a catalog from entries in the given order. Only strict category
// validation can fail; ids are taken as given and the first of a duplicate
// id wins on lookup.
func New(entries []Entry, opts ...Option) (*Catalog, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	var unknown []string
	for _, e := range entries {
		if !e.Category.Known() {
			unknown = append(unknown, e.ID)
		}
		if _, dup := c.byID[e.ID]; !dup {
			c.byID[e.ID] = len(c.entries)
		}
		c.entries = append(c.entries, cloneEntry(e))
	}
	if o.strictCategories && len(unknown) > 0 {
		return nil, &CategoryError{IDs: unknown}
	}
	return c, nil
}

// All returns every entry in catalog order. The slice is a copy.
func (c *Catalog) All() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = cloneEntry(e)
	}
	return out
}

// FindByID looks up an entry. A missing id is reported with ok=false.
func (c *Catalog) FindByID(id string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return Entry{}, false
	}
	return cloneEntry(c.entries[i]), true
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
