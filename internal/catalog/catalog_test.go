package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleEntries() []Entry {
	return []Entry{
		{ID: "singleton", Name: "Singleton (Instancia Única)", Category: Creational, Purpose: "Una instancia.",
			Examples: []CodeExample{{Lang: "dart", Source: "class A {}"}, {Lang: "python", Source: "class A: pass"}}},
		{ID: "adapter", Name: "Adapter", Category: Structural},
		{ID: "mvc", Name: "Model View Controller", Category: "Architectural"},
	}
}

func TestNewKeepsOrderAndFinds(t *testing.T) {
	t.Parallel()

	c, err := New(sampleEntries())
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	ids := make([]string, 0, c.Len())
	for _, e := range c.All() {
		ids = append(ids, e.ID)
	}
	require.Equal(t, []string{"singleton", "adapter", "mvc"}, ids)

	e, ok := c.FindByID("singleton")
	require.True(t, ok)
	require.Equal(t, "Singleton", e.DisplayName())
	require.Equal(t, []string{"dart", "python"}, e.Languages())

	// entries with unknown categories stay addressable by id
	_, ok = c.FindByID("mvc")
	require.True(t, ok)

	_, ok = c.FindByID("nonexistent")
	require.False(t, ok)
	_, ok = c.FindByID("")
	require.False(t, ok)
}

func TestAllReturnsCopies(t *testing.T) {
	t.Parallel()

	c, err := New(sampleEntries())
	require.NoError(t, err)

	all := c.All()
	all[0].Name = "mutated"
	all[0].Examples[0].Source = "mutated"

	e, _ := c.FindByID("singleton")
	require.Equal(t, "Singleton (Instancia Única)", e.Name)
	require.Equal(t, "class A {}", e.Examples[0].Source)
}

func TestDuplicateIDFirstWins(t *testing.T) {
	t.Parallel()

	c, err := New([]Entry{
		{ID: "dup", Name: "First", Category: Creational},
		{ID: "dup", Name: "Second", Category: Behavioral},
	})
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	e, ok := c.FindByID("dup")
	require.True(t, ok)
	require.Equal(t, "First", e.Name)
}

func TestStrictCategoriesRejectsUnknown(t *testing.T) {
	t.Parallel()

	_, err := New(sampleEntries(), WithStrictCategories())
	require.Error(t, err)

	var catErr *CategoryError
	require.True(t, errors.As(err, &catErr))
	require.Equal(t, []string{"mvc"}, catErr.IDs)
	require.Contains(t, err.Error(), "mvc")
}

func TestSectionsSkipAbsentFields(t *testing.T) {
	t.Parallel()

	e := Entry{Purpose: "  Propósito  ", WhenToUse: "Siempre"}
	sections := e.Sections()
	require.Len(t, sections, 2)
	require.Equal(t, FieldPurpose, sections[0].Field)
	require.Equal(t, "Propósito", sections[0].Text)
	require.Equal(t, FieldWhenToUse, sections[1].Field)

	require.Empty(t, Entry{Analogy: "   "}.Sections())
}

func TestExampleLookup(t *testing.T) {
	t.Parallel()

	e := sampleEntries()[0]
	ex, ok := e.Example("python")
	require.True(t, ok)
	require.Equal(t, "class A: pass", ex.Source)

	_, ok = e.Example("rust")
	require.False(t, ok)

	require.Equal(t, "dart", e.DefaultLanguage())
	require.Equal(t, "", Entry{}.DefaultLanguage())
}

func TestCategoryKnown(t *testing.T) {
	t.Parallel()

	require.True(t, Creational.Known())
	require.True(t, Behavioral.Known())
	require.False(t, Category("creational").Known())
	require.False(t, Category("").Known())
	require.Equal(t, "structural", Structural.Slug())
}

func TestNilCatalogIsEmpty(t *testing.T) {
	t.Parallel()

	var c *Catalog
	require.Equal(t, 0, c.Len())
	require.Nil(t, c.All())
	_, ok := c.FindByID("singleton")
	require.False(t, ok)
}

func TestCategoryErrorMessage(t *testing.T) {
	t.Parallel()

	err := &CategoryError{IDs: []string{"a", "b"}}
	require.True(t, strings.HasSuffix(err.Error(), "a, b"))
}
