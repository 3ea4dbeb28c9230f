// Package markup turns catalog text into sanitized HTML: descriptive fields
// are treated as inline markdown and code examples are syntax highlighted.
package markup

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

const defaultStyle = "github"

// Renderer converts entry text to HTML safe for the details region.
type Renderer struct {
	prose  goldmark.Markdown
	code   goldmark.Markdown
	policy *bluemonday.Policy
	style  string
}

// Option customises a Renderer.
type Option func(*Renderer)

// WithStyle selects the chroma style used by WriteCSS.
func WithStyle(name string) Option {
	return func(r *Renderer) {
		if strings.TrimSpace(name) != "" {
			r.style = name
		}
	}
}

// New builds a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{style: defaultStyle}
	for _, opt := range opts {
		opt(r)
	}
	r.prose = goldmark.New(goldmark.WithExtensions(extension.Strikethrough, extension.Linkify))
	r.code = goldmark.New(
		goldmark.WithExtensions(
			highlighting.NewHighlighting(
				highlighting.WithStyle(r.style),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
	)
	r.policy = newPolicy()
	return r
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("span", "code", "pre", "div")
	p.AllowAttrs("tabindex").OnElements("pre")
	return p
}

// Prose renders a descriptive field. Markdown inline syntax (code spans,
// emphasis, links) is honoured; raw HTML is dropped.
func (r *Renderer) Prose(text string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.prose.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("markup: prose: %w", err)
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}

// Code renders a highlighted <pre> block for src in language lang.
// Unknown languages are rendered as plain escaped text.
func (r *Renderer) Code(lang, src string) (template.HTML, error) {
	fence := strings.Repeat("`", max(3, longestRun(src, '`')+1))
	var in strings.Builder
	in.WriteString(fence)
	in.WriteString(strings.TrimSpace(lang))
	in.WriteByte('\n')
	in.WriteString(src)
	if !strings.HasSuffix(src, "\n") {
		in.WriteByte('\n')
	}
	in.WriteString(fence)
	in.WriteByte('\n')

	var buf bytes.Buffer
	if err := r.code.Convert([]byte(in.String()), &buf); err != nil {
		return "", fmt.Errorf("markup: code %s: %w", lang, err)
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}

// WriteCSS writes the stylesheet for the highlight classes emitted by Code.
func (r *Renderer) WriteCSS(w io.Writer) error {
	f := chromahtml.New(chromahtml.WithClasses(true))
	if err := f.WriteCSS(w, styles.Get(r.style)); err != nil {
		return fmt.Errorf("markup: css: %w", err)
	}
	return nil
}

func longestRun(s string, c byte) int {
	best, cur := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			cur++
			if cur > best {
				best = cur
			}
			continue
		}
		cur = 0
	}
	return best
}
