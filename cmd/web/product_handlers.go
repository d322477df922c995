package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"almil.org/almil-web/internal/catalog"
	mw "almil.org/almil-web/internal/middleware"
	"almil.org/almil-web/internal/seo"
)

// lookup resolves the {id} route parameter. An empty parameter means the
// route has not resolved an identifier yet.
func (s *site) lookup(r *http.Request) catalog.Result {
	id := chi.URLParam(r, "id")
	res := s.catalog.Lookup(id, id != "")
	s.metrics.CountLookup(res.Status.String())
	return res
}

// ProductHandler renders the product detail page.
func (s *site) ProductHandler(w http.ResponseWriter, r *http.Request) {
	res := s.lookup(r)
	view := buildProductView(s.layout.Lang, res, r.URL.Query())

	switch res.Status {
	case catalog.NotFound:
		pd := s.newPage(r, s.t("product.not_found"), "")
		pd.Product = view
		s.renderPage(w, r, "product", http.StatusNotFound, pd)
		return
	case catalog.Pending:
		pd := s.newPage(r, s.t("product.loading"), "")
		pd.Product = view
		s.renderPage(w, r, "product", http.StatusOK, pd)
		return
	}

	p := res.Product
	pd := s.newPage(r, p.Name, p.Tagline)
	pd.SEO.Canonical = s.cfg.Site.BaseURL + productPath(p.ID)
	pd.SEO.OG.URL = pd.SEO.Canonical
	pd.SEO.OG.Type = "product"
	pd.SEO.OG.Image = s.cfg.Site.BaseURL + p.CoverImage()
	pd.WithBreadcrumbs(s.cfg.Site.BaseURL, p.Name, s.label)
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, s.cfg.Site.BaseURL+img)
	}
	pd.AddJSONLD(seo.Product(p.Name, p.Description, pd.SEO.Canonical, seo.SiteName, images))
	pd.Product = view
	s.renderPage(w, r, "product", http.StatusOK, pd)
}

// ProductGalleryFrag renders the gallery after a transition (htmx swap) and
// pushes the equivalent page URL into history.
func (s *site) ProductGalleryFrag(w http.ResponseWriter, r *http.Request) {
	res := s.lookup(r)
	if !res.OK() {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	view := buildProductView(s.layout.Lang, res, r.URL.Query())
	if mw.IsHTMX(r.Context()) {
		mw.PushURL(w, withQuery(productPath(res.Product.ID), view.canonicalQuery()))
	}
	s.renderFragment(w, r, "frag_gallery", http.StatusOK, view.Gallery)
}
