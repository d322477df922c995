// Package catalog holds the fixed set of window and door systems shown on the site.
package catalog

import "strings"

// Product is a single catalog record. Values returned by a Store are copies.
type Product struct {
	ID                  string
	Name                string
	Tagline             string
	Summary             string // short line used on listing cards
	Description         string
	TechnicalAdvantages []string
	Specifications      []string
	Images              []string
	Cover               string // listing/home card image
}

// CoverImage returns the card image, defaulting to the first gallery image.
func (p Product) CoverImage() string {
	if p.Cover != "" {
		return p.Cover
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// Store is an immutable id -> Product mapping. It is safe for concurrent use.
type Store struct {
	order []string
	items map[string]Product
}

// New builds a store from records in display order. Records with an empty or
// duplicate ID, or without images, are skipped.
func New(records []Product) *Store {
	s := &Store{
		order: make([]string, 0, len(records)),
		items: make(map[string]Product, len(records)),
	}
	for _, rec := range records {
		id := strings.TrimSpace(rec.ID)
		if id == "" || len(rec.Images) == 0 {
			continue
		}
		if _, dup := s.items[id]; dup {
			continue
		}
		rec.ID = id
		s.order = append(s.order, id)
		s.items[id] = cloneProduct(rec)
	}
	return s
}

var defaultStore = New(products)

// Default returns the store populated with the site's catalog.
func Default() *Store { return defaultStore }

// Len reports the number of products.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// IDs returns product identifiers in display order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// All returns every product in display order.
func (s *Store) All() []Product {
	if s == nil {
		return nil
	}
	out := make([]Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, cloneProduct(s.items[id]))
	}
	return out
}

// Get returns the product for id.
func (s *Store) Get(id string) (Product, bool) {
	if s == nil {
		return Product{}, false
	}
	p, ok := s.items[id]
	if !ok {
		return Product{}, false
	}
	return cloneProduct(p), true
}

func cloneProduct(src Product) Product {
	cp := src
	cp.TechnicalAdvantages = cloneStrings(src.TechnicalAdvantages)
	cp.Specifications = cloneStrings(src.Specifications)
	cp.Images = cloneStrings(src.Images)
	return cp
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
