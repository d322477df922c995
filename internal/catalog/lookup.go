package catalog

import "strings"

// Status is the outcome of a product lookup.
type Status int

const (
	// Pending means the route has not resolved an identifier yet.
	Pending Status = iota
	// NotFound means the identifier has no catalog entry.
	NotFound
	// Found means Product holds the matching record.
	Found
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case NotFound:
		return "not_found"
	case Found:
		return "found"
	default:
		return "unknown"
	}
}

// Result carries the lookup status and, when Found, the product.
type Result struct {
	Status  Status
	ID      string
	Product Product
}

// OK reports whether a product was found.
func (r Result) OK() bool { return r.Status == Found }

// Lookup resolves an identifier taken from the navigation context. resolved
// is false while the router has not produced the identifier yet; that is a
// Pending outcome, never NotFound.
func (s *Store) Lookup(id string, resolved bool) Result {
	if !resolved {
		return Result{Status: Pending}
	}
	id = strings.TrimSpace(id)
	p, ok := s.Get(id)
	if !ok {
		return Result{Status: NotFound, ID: id}
	}
	return Result{Status: Found, ID: id, Product: p}
}
