package catalog

import (
	"strings"

	"github.com/mariomonzon-info/design-patterns/internal/format"
)

// Category groups entries into navigation sections.
type Category string

const (
	Creational Category = "Creational"
	Structural Category = "Structural"
	Behavioral Category = "Behavioral"
)

// Categories is the closed set of known categories in navigation order.
var Categories = []Category{Creational, Structural, Behavioral}

// Known reports whether c belongs to the closed category set.
func (c Category) Known() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// Slug returns the lowercase form used for element ids and i18n keys.
func (c Category) Slug() string {
	return strings.ToLower(string(c))
}

// Field identifies one of the optional descriptive texts of an entry.
type Field string

const (
	FieldPurpose   Field = "purpose"
	FieldAnalogy   Field = "analogy"
	FieldWhenToUse Field = "when_to_use"
)

// Fields lists the descriptive fields in display order.
var Fields = []Field{FieldPurpose, FieldAnalogy, FieldWhenToUse}

// Section is a descriptive field that has content.
type Section struct {
	Field Field
	Text  string
}

// CodeExample is a single language's source for an entry.
type CodeExample struct {
	Lang   string
	Source string
}

// Entry is one documented design pattern.
type Entry struct {
	ID        string
	Name      string
	Category  Category
	Purpose   string
	Analogy   string
	WhenToUse string
	// Examples keeps the order the data source declared; it is the tab order.
	Examples []CodeExample
}

// DisplayName is the short navigation label: Name up to the first "(".
func (e Entry) DisplayName() string {
	return format.ShortName(e.Name)
}

// Sections returns the descriptive fields that are present, in display order.
func (e Entry) Sections() []Section {
	out := make([]Section, 0, len(Fields))
	for _, f := range Fields {
		if text := strings.TrimSpace(e.text(f)); text != "" {
			out = append(out, Section{Field: f, Text: text})
		}
	}
	return out
}

func (e Entry) text(f Field) string {
	switch f {
	case FieldPurpose:
		return e.Purpose
	case FieldAnalogy:
		return e.Analogy
	case FieldWhenToUse:
		return e.WhenToUse
	default:
		return ""
	}
}

// Languages returns the example language keys in tab order.
func (e Entry) Languages() []string {
	out := make([]string, 0, len(e.Examples))
	for _, ex := range e.Examples {
		out = append(out, ex.Lang)
	}
	return out
}

// Example returns the source for lang.
func (e Entry) Example(lang string) (CodeExample, bool) {
	for _, ex := range e.Examples {
		if ex.Lang == lang {
			return ex, true
		}
	}
	return CodeExample{}, false
}

// DefaultLanguage is the first example key, or "" when there are none.
func (e Entry) DefaultLanguage() string {
	if len(e.Examples) == 0 {
		return ""
	}
	return e.Examples[0].Lang
}

func cloneEntry(src Entry) Entry {
	cp := src
	if src.Examples != nil {
		cp.Examples = append([]CodeExample(nil), src.Examples...)
	}
	return cp
}
