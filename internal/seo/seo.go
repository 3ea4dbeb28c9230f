// Package seo builds the page metadata rendered into the document head.
package seo

import "html/template"

type OpenGraph struct {
	Title       string
	Description string
	Type        string
	URL         string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
	JSONLD      []template.JS
}

// NewMeta fills the OpenGraph fields from the page title and description.
func NewMeta(title, description, canonical string) Meta {
	return Meta{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Type:        "website",
			URL:         canonical,
		},
	}
}
