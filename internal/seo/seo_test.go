package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMeta(t *testing.T) {
	t.Parallel()

	m := NewMeta("Patrones", "Guía", "https://example.com/")
	require.Equal(t, "Patrones", m.OG.Title)
	require.Equal(t, "Guía", m.OG.Description)
	require.Equal(t, "website", m.OG.Type)
	require.Equal(t, "https://example.com/", m.OG.URL)
}

func TestItemList(t *testing.T) {
	t.Parallel()

	raw := JSON(ItemList("Patrones", []ListItem{
		{Name: "Singleton", URL: "/#singleton"},
		{Name: "Builder"},
	}))

	var got struct {
		Type     string `json:"@type"`
		Count    int    `json:"numberOfItems"`
		Elements []struct {
			Position int    `json:"position"`
			Name     string `json:"name"`
			URL      string `json:"url"`
		} `json:"itemListElement"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	require.Equal(t, "ItemList", got.Type)
	require.Equal(t, 2, got.Count)
	require.Equal(t, 1, got.Elements[0].Position)
	require.Equal(t, "/#singleton", got.Elements[0].URL)
	require.Equal(t, 2, got.Elements[1].Position)
	require.Empty(t, got.Elements[1].URL)
}

func TestJSONUnsupportedValue(t *testing.T) {
	t.Parallel()

	require.Empty(t, JSON(map[string]any{"f": func() {}}))
}

func TestWebSite(t *testing.T) {
	t.Parallel()

	m := WebSite("Patrones", "", "es")
	require.Equal(t, "es", m["inLanguage"])
	_, hasURL := m["url"]
	require.False(t, hasURL)
}
