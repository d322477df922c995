package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func activeHrefs(items []RenderedItem) []string {
	var out []string
	for _, it := range items {
		if it.Active {
			out = append(out, it.Href)
		}
	}
	return out
}

func TestBuildMarksActiveSection(t *testing.T) {
	require.Equal(t, []string{"/"}, activeHrefs(Build("")))
	require.Equal(t, []string{"/about"}, activeHrefs(Build("/about")))
	require.Equal(t, []string{"/products"}, activeHrefs(Build("/products/lift-slide")))
	require.Empty(t, activeHrefs(Build("/productsx")))
	require.Len(t, Build("/"), 5)
}

func TestBreadcrumbsForProductDetail(t *testing.T) {
	crumbs := Breadcrumbs("/products/lift-slide", "Lift & Slide Systems")
	require.Len(t, crumbs, 3)
	require.Equal(t, "nav.home", crumbs[0].LabelKey)
	require.Equal(t, "nav.products", crumbs[1].LabelKey)
	require.False(t, crumbs[1].Active)
	require.Equal(t, "/products/lift-slide", crumbs[2].Href)
	require.Equal(t, "Lift & Slide Systems", crumbs[2].Label)
	require.True(t, crumbs[2].Active)
}

func TestBreadcrumbsPrettifySegments(t *testing.T) {
	crumbs := Breadcrumbs("/products/fold-slide", "")
	require.Equal(t, "Fold Slide", crumbs[2].Label)

	crumbs = Breadcrumbs("/", "")
	require.Len(t, crumbs, 1)
	require.True(t, crumbs[0].Active)
}
