// Package dom is the server-side render target: an HTML document whose
// regions can be replaced wholesale and whose elements can be looked up
// once and toggled afterwards.
package dom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ErrRegionNotFound is returned when no element carries the requested id.
var ErrRegionNotFound = errors.New("dom: region not found")

// Document wraps a parsed HTML tree.
type Document struct {
	root *html.Node
	doc  *goquery.Document
}

// Parse reads a full HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse: %w", err)
	}
	return &Document{root: root, doc: goquery.NewDocumentFromNode(root)}, nil
}

// ParseString is Parse for an in-memory document.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Region returns the element with the given id.
func (d *Document) Region(id string) (*Region, error) {
	sel := d.doc.Find("#" + id)
	if sel.Length() == 0 {
		return nil, fmt.Errorf("%w: #%s", ErrRegionNotFound, id)
	}
	return &Region{id: id, sel: sel.First()}, nil
}

// Find runs a CSS selector over the whole document.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// Render serializes the whole document.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String serializes the whole document, returning "" on error.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// Region is a replaceable content area of a document.
type Region struct {
	id  string
	sel *goquery.Selection
}

// ID returns the element id of the region.
func (r *Region) ID() string { return r.id }

// Replace swaps the region's children for the parsed markup.
func (r *Region) Replace(markup string) error {
	ctx := r.sel.Get(0)
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return fmt.Errorf("dom: replace #%s: %w", r.id, err)
	}
	for c := ctx.FirstChild; c != nil; {
		next := c.NextSibling
		ctx.RemoveChild(c)
		c = next
	}
	for _, n := range nodes {
		ctx.AppendChild(n)
	}
	return nil
}

// InnerHTML serializes the region's children.
func (r *Region) InnerHTML() (string, error) {
	var buf bytes.Buffer
	for c := r.sel.Get(0).FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", fmt.Errorf("dom: render #%s: %w", r.id, err)
		}
	}
	return buf.String(), nil
}

// Find runs a CSS selector inside the region.
func (r *Region) Find(selector string) *goquery.Selection {
	return r.sel.Find(selector)
}

// SetClass adds or removes class on every element of sel.
func SetClass(sel *goquery.Selection, class string, on bool) {
	if on {
		sel.AddClass(class)
		return
	}
	sel.RemoveClass(class)
}

// SetAttr sets attr to value on every element of sel, or removes it when value is "".
func SetAttr(sel *goquery.Selection, attr, value string) {
	if value == "" {
		sel.RemoveAttr(attr)
		return
	}
	sel.SetAttr(attr, value)
}
