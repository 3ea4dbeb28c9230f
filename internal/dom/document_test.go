package dom

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const page = `<!doctype html><html><body>
<nav id="side"><a class="link" data-id="a">A</a><a class="link" data-id="b">B</a></nav>
<section id="content"><p>placeholder</p></section>
</body></html>`

func TestRegionReplaceAndInnerHTML(t *testing.T) {
	t.Parallel()

	doc, err := ParseString(page)
	require.NoError(t, err)

	region, err := doc.Region("content")
	require.NoError(t, err)
	require.Equal(t, "content", region.ID())

	before, err := region.InnerHTML()
	require.NoError(t, err)
	require.Equal(t, "<p>placeholder</p>", before)

	require.NoError(t, region.Replace(`<article><h2>Singleton</h2><p>x &lt; y</p></article>`))
	after, err := region.InnerHTML()
	require.NoError(t, err)
	require.Equal(t, `<article><h2>Singleton</h2><p>x &lt; y</p></article>`, after)
	require.Equal(t, 1, doc.Find("#content article h2").Length())
	require.Equal(t, 0, doc.Find("#content > p").Length())

	require.NoError(t, region.Replace(before))
	restored, err := region.InnerHTML()
	require.NoError(t, err)
	require.Equal(t, before, restored)
}

func TestRegionReplaceEmpty(t *testing.T) {
	t.Parallel()

	doc, err := ParseString(page)
	require.NoError(t, err)
	region, err := doc.Region("content")
	require.NoError(t, err)

	require.NoError(t, region.Replace(""))
	inner, err := region.InnerHTML()
	require.NoError(t, err)
	require.Empty(t, inner)
}

func TestRegionNotFound(t *testing.T) {
	t.Parallel()

	doc, err := ParseString(page)
	require.NoError(t, err)

	_, err = doc.Region("missing")
	require.True(t, errors.Is(err, ErrRegionNotFound))
}

func TestSetClassAndAttr(t *testing.T) {
	t.Parallel()

	doc, err := ParseString(page)
	require.NoError(t, err)

	links := doc.Find("#side a")
	SetClass(links.First(), "active", true)
	SetAttr(links.First(), "aria-current", "page")
	require.True(t, links.First().HasClass("active"))
	require.Equal(t, "page", links.First().AttrOr("aria-current", ""))
	require.False(t, links.Last().HasClass("active"))

	SetClass(links, "active", false)
	SetAttr(links, "aria-current", "")
	require.Equal(t, 0, doc.Find("#side a.active").Length())
	_, has := links.First().Attr("aria-current")
	require.False(t, has)
	require.Equal(t, "link", links.First().AttrOr("class", ""))
}

func TestRenderRoundTrip(t *testing.T) {
	t.Parallel()

	doc, err := ParseString(page)
	require.NoError(t, err)

	out := doc.String()
	require.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	require.Contains(t, out, `<section id="content"><p>placeholder</p></section>`)
}
