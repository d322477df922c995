package handlers

import (
	"html/template"

	"almil.org/almil-web/internal/header"
	"almil.org/almil-web/internal/nav"
	"almil.org/almil-web/internal/seo"
)

// PageData is the view model every page renders through the shared layout.
type PageData struct {
	Title     string
	Lang      string
	SEO       seo.Meta
	JSONLD    []template.JS
	Analytics Analytics
	Company   Company

	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb
	Header      HeaderView
	QuotePath   string

	CSRFToken string
	Flash     string

	// Optional per-page view model payloads
	Content  any
	Products any
	Product  any
	Contact  any
}

// HeaderView is the server-rendered initial state of the site header.
type HeaderView struct {
	Class string
	Solid bool
}

// Layout carries the request-independent inputs of NewPage.
type Layout struct {
	Lang      string
	BaseURL   string
	Analytics Analytics
}

// NewPage fills the layout fields for path. title is the page title
// without the site suffix.
func (l Layout) NewPage(path, title, description string) PageData {
	h := header.New(path)
	pd := PageData{
		Title:     title,
		Lang:      l.Lang,
		SEO:       seo.Page(l.BaseURL, path, title, description, ""),
		Analytics: l.Analytics,
		Company:   Almil,
		Path:      path,
		Nav:       nav.Build(path),
		Header:    HeaderView{Class: h.Classes(), Solid: h.Solid()},
		QuotePath: nav.QuotePath,
	}
	pd.AddJSONLD(seo.Organization(Almil.Name, l.BaseURL, l.BaseURL+Almil.Logo, Almil.Phone, Almil.Email))
	return pd
}

// WithBreadcrumbs sets breadcrumbs and emits the matching BreadcrumbList.
// labels resolves nav label keys for the structured data.
func (p *PageData) WithBreadcrumbs(baseURL, last string, labels func(string) string) {
	p.Breadcrumbs = nav.Breadcrumbs(p.Path, last)
	items := make([]seo.BreadcrumbItem, 0, len(p.Breadcrumbs))
	for _, c := range p.Breadcrumbs {
		name := c.Label
		if c.LabelKey != "" && labels != nil {
			name = labels(c.LabelKey)
		}
		items = append(items, seo.BreadcrumbItem{Name: name, Item: baseURL + c.Href})
	}
	p.AddJSONLD(seo.BreadcrumbList(items))
}

// AddJSONLD appends a structured data block.
func (p *PageData) AddJSONLD(v any) {
	if s := seo.Script(v); s != "" {
		p.JSONLD = append(p.JSONLD, s)
	}
}
