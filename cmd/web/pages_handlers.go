package main

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"almil.org/almil-web/internal/cms"
	handlersPkg "almil.org/almil-web/internal/handlers"
	mw "almil.org/almil-web/internal/middleware"
)

// newPage builds the layout view model for the current request.
func (s *site) newPage(r *http.Request, title, description string) handlersPkg.PageData {
	pd := s.layout.NewPage(r.URL.Path, title, description)
	pd.CSRFToken = mw.CSRFToken(r)
	pd.Flash = mw.GetSession(r).PopFlash()
	return pd
}

func (s *site) t(key string, args ...any) string {
	return s.i18n.T(s.layout.Lang, key, args...)
}

func (s *site) label(key string) string { return s.t(key) }

// loadContent fetches a CMS page, answering 404/500 itself on failure.
func (s *site) loadContent(w http.ResponseWriter, r *http.Request, slug string) (cms.Page, bool) {
	page, err := s.content.GetPage(r.Context(), slug)
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			s.NotFoundHandler(w, r)
			return cms.Page{}, false
		}
		mw.Log(r.Context()).Error("load content", zap.String("slug", slug), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return cms.Page{}, false
	}
	return page, true
}

// contentView builds the page model for a CMS-backed page.
func (s *site) contentView(r *http.Request, page cms.Page) handlersPkg.PageData {
	title := firstNonEmpty(page.SEO.Title, page.Title)
	pd := s.newPage(r, title, firstNonEmpty(page.SEO.Description, page.Summary))
	if page.SEO.OGImage != "" {
		pd.SEO.OG.Image = s.cfg.Site.BaseURL + page.SEO.OGImage
	}
	if r.URL.Path != "/" {
		pd.WithBreadcrumbs(s.cfg.Site.BaseURL, "", s.label)
	}
	pd.Content = page
	return pd
}

// HomeHandler renders the landing page.
func (s *site) HomeHandler(w http.ResponseWriter, r *http.Request) {
	page, ok := s.loadContent(w, r, "home")
	if !ok {
		return
	}
	pd := s.contentView(r, page)
	pd.Products = s.catalog.All()
	s.renderPage(w, r, "home", http.StatusOK, pd)
}

// AboutHandler renders the company story, values and team.
func (s *site) AboutHandler(w http.ResponseWriter, r *http.Request) {
	page, ok := s.loadContent(w, r, "about")
	if !ok {
		return
	}
	s.renderPage(w, r, "about", http.StatusOK, s.contentView(r, page))
}

// WhyHandler renders the process steps page.
func (s *site) WhyHandler(w http.ResponseWriter, r *http.Request) {
	page, ok := s.loadContent(w, r, "why-almil")
	if !ok {
		return
	}
	s.renderPage(w, r, "why", http.StatusOK, s.contentView(r, page))
}

// ProductsHandler renders the product listing.
func (s *site) ProductsHandler(w http.ResponseWriter, r *http.Request) {
	page, ok := s.loadContent(w, r, "products")
	if !ok {
		return
	}
	pd := s.contentView(r, page)
	pd.Products = s.catalog.All()
	s.renderPage(w, r, "products", http.StatusOK, pd)
}

// NotFoundHandler renders the generic 404 page.
func (s *site) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	pd := s.layout.NewPage(r.URL.Path, "Page Not Found", "")
	s.renderPage(w, r, "not_found", http.StatusNotFound, pd)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
