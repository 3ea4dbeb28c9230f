package seo

import (
	"encoding/json"
	"html/template"
)

// JSON marshals v to a compact JSON script body. It returns an empty value on error.
func JSON(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return template.JS(b)
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url, lang string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if lang != "" {
		m["inLanguage"] = lang
	}
	return m
}

// ListItem maps a name to an absolute or fragment URL.
type ListItem struct {
	Name string
	URL  string
}

// ItemList builds a schema.org ItemList in the given order.
func ItemList(name string, items []ListItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		li := map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
		}
		if it.URL != "" {
			li["url"] = it.URL
		}
		el = append(el, li)
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"name":            name,
		"numberOfItems":   len(items),
		"itemListElement": el,
	}
}
