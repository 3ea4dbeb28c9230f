package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/patterns.yaml
var bundled []byte

type fileDoc struct {
	Entries []fileEntry `yaml:"entries"`
}

type fileEntry struct {
	ID        string      `yaml:"id"`
	Name      string      `yaml:"name"`
	Category  string      `yaml:"category"`
	Purpose   string      `yaml:"purpose"`
	Analogy   string      `yaml:"analogy"`
	WhenToUse string      `yaml:"when_to_use"`
	Examples  exampleList `yaml:"examples"`
}

// exampleList decodes a YAML mapping while keeping its key order.
type exampleList []CodeExample

func (l *exampleList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: examples must be a mapping", value.Line)
	}
	out := make(exampleList, 0, len(value.Content)/2)
	seen := make(map[string]int, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		lang := strings.TrimSpace(key.Value)
		if first, dup := seen[lang]; dup {
			return fmt.Errorf("line %d: example %q already defined on line %d", key.Line, lang, first)
		}
		seen[lang] = key.Line
		var src string
		if err := val.Decode(&src); err != nil {
			return fmt.Errorf("line %d: example %q: %w", val.Line, key.Value, err)
		}
		out = append(out, CodeExample{Lang: lang, Source: trimBlankLines(src)})
	}
	*l = out
	return nil
}

// Load decodes a YAML catalog document.
func Load(r io.Reader, opts ...Option) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read: %w", err)
	}
	var doc fileDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	entries := make([]Entry, 0, len(doc.Entries))
	for _, fe := range doc.Entries {
		entries = append(entries, Entry{
			ID:        strings.TrimSpace(fe.ID),
			Name:      strings.TrimSpace(fe.Name),
			Category:  Category(strings.TrimSpace(fe.Category)),
			Purpose:   strings.TrimSpace(fe.Purpose),
			Analogy:   strings.TrimSpace(fe.Analogy),
			WhenToUse: strings.TrimSpace(fe.WhenToUse),
			Examples:  []CodeExample(fe.Examples),
		})
	}
	return New(entries, opts...)
}

// LoadFile reads a catalog from a YAML file on disk.
func LoadFile(path string, opts ...Option) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()
	c, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("catalog: load %s: %w", path, err)
	}
	return c, nil
}

// Bundled returns the catalog shipped with the binary.
func Bundled(opts ...Option) (*Catalog, error) {
	return Load(bytes.NewReader(bundled), opts...)
}

// trimBlankLines drops leading and trailing blank lines but keeps the
// indentation of the first code line.
func trimBlankLines(src string) string {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
