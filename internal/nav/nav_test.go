package nav

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mariomonzon-info/design-patterns/internal/catalog"
)

func entries() []catalog.Entry {
	return []catalog.Entry{
		{ID: "singleton", Name: "Singleton (Instancia Única)", Category: catalog.Creational},
		{ID: "observer", Name: "Observer", Category: catalog.Behavioral},
		{ID: "mvc", Name: "MVC", Category: "Architectural"},
		{ID: "builder", Name: "Builder (Constructor)", Category: catalog.Creational},
		{ID: "adapter", Name: "Adapter", Category: catalog.Structural},
	}
}

func ids(links []Link) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.ID)
	}
	return out
}

func TestBuildGroupsByCategoryInCatalogOrder(t *testing.T) {
	t.Parallel()

	sections := Build(entries())
	require.Len(t, sections, 3)
	require.Equal(t, catalog.Creational, sections[0].Category)
	require.Equal(t, catalog.Structural, sections[1].Category)
	require.Equal(t, catalog.Behavioral, sections[2].Category)

	require.Equal(t, []string{"singleton", "builder"}, ids(sections[0].Links))
	require.Equal(t, []string{"adapter"}, ids(sections[1].Links))
	require.Equal(t, []string{"observer"}, ids(sections[2].Links))

	first := sections[0].Links[0]
	require.Equal(t, "/#singleton", first.Href)
	require.Equal(t, "Singleton", first.Label)
	require.Equal(t, "nav.creational", sections[0].LabelKey)
	require.Equal(t, "creational-list", sections[0].ListID)
}

func TestBuildSkipsUnknownCategory(t *testing.T) {
	t.Parallel()

	for _, s := range Build(entries()) {
		require.NotContains(t, ids(s.Links), "mvc", "section %s", s.Category)
	}
	require.Equal(t, []string{"mvc"}, Omitted(entries()))
	require.Empty(t, Omitted(entries()[:2]))
}

func TestBuildEmptyCatalogKeepsBuckets(t *testing.T) {
	t.Parallel()

	sections := Build(nil)
	require.Len(t, sections, 3)
	for _, s := range sections {
		require.Empty(t, s.Links)
	}
}
