package seo

import "strings"

// SiteName is appended to page titles.
const SiteName = "Almil Systems India"

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
}

// Page builds metadata for a page. title is the page-specific part; path is
// joined onto baseURL for canonical and og:url.
func Page(baseURL, path, title, description, image string) Meta {
	full := SiteName
	if title != "" {
		full = title + " | " + SiteName
	}
	canonical := strings.TrimRight(baseURL, "/") + path
	if image != "" && strings.HasPrefix(image, "/") {
		image = strings.TrimRight(baseURL, "/") + image
	}
	return Meta{
		Title:       full,
		Description: description,
		Canonical:   canonical,
		OG: OpenGraph{
			Title:       full,
			Description: description,
			Image:       image,
			Type:        "website",
			URL:         canonical,
		},
	}
}
