package main

import (
	"net/url"
	"strconv"

	"almil.org/almil-web/internal/catalog"
	"almil.org/almil-web/internal/events"
	"almil.org/almil-web/internal/gallery"
	"almil.org/almil-web/internal/tabs"
)

// ProductView is the detail page payload.
type ProductView struct {
	Lang    string
	Status  string
	Product catalog.Product
	Gallery GalleryView
	Tabs    []TabView
	Active  string
}

// GalleryView is the rendered state of the image gallery.
type GalleryView struct {
	Lang       string
	ProductID  string
	Name       string
	Images     []ThumbView
	Current    string
	Index      int
	Position   int
	Count      int
	Fullscreen bool
	CanBrowse  bool
	Tab        string

	// Hrefs reload the full page; Frags are the htmx equivalents.
	PrevHref       string
	NextHref       string
	FullscreenHref string
	CloseHref      string
	PrevFrag       string
	NextFrag       string
	FullscreenFrag string
	CloseFrag      string
	FragPath       string
}

// ThumbView is one selectable thumbnail.
type ThumbView struct {
	Src      string
	Index    int
	Position int
	Selected bool
	Href     string
	Frag     string
}

// TabView is one tab button of the detail page.
type TabView struct {
	Key    string
	Label  string
	Active bool
	Href   string
}

// detailState restores the gallery and tab state machines from the query
// string. The gallery binds keys on a request-scoped bus; the caller must
// run the returned cleanup once rendering is done.
func detailState(p catalog.Product, q url.Values) (*gallery.Gallery, *tabs.State, func()) {
	index, err := strconv.Atoi(q.Get("image"))
	if err != nil {
		index = 0
	}
	keys := events.NewBus()
	g := gallery.Restore(p.Images, index, q.Get("view") == "fullscreen", keys)
	if k, ok := events.ParseKey(q.Get("key")); ok {
		keys.Dispatch(k)
	}
	ts := tabs.New()
	ts.SetActive(tabs.Parse(q.Get("tab")))
	return g, ts, g.Close
}

func productPath(id string) string { return "/products/" + url.PathEscape(id) }

// stateQuery encodes the state the server needs to redraw the page.
func stateQuery(index int, tab tabs.Tab, fullscreen bool) string {
	v := url.Values{}
	if index > 0 {
		v.Set("image", strconv.Itoa(index))
	}
	if tab != tabs.Overview {
		v.Set("tab", string(tab))
	}
	if fullscreen {
		v.Set("view", "fullscreen")
	}
	return v.Encode()
}

func withQuery(path, query string) string {
	if query == "" {
		return path
	}
	return path + "?" + query
}

func buildGalleryView(p catalog.Product, g *gallery.Gallery, tab tabs.Tab) GalleryView {
	base := productPath(p.ID)
	gv := GalleryView{
		ProductID:  p.ID,
		Name:       p.Name,
		Current:    g.Current(),
		Index:      g.Index(),
		Position:   g.Index() + 1,
		Count:      g.Len(),
		Fullscreen: g.IsFullscreen(),
		CanBrowse:  g.CanBrowse(),
		Tab:        string(tab),
		FragPath:   base + "/gallery",
	}
	prev := stateQuery(g.PreviousIndex(), tab, gv.Fullscreen)
	next := stateQuery(g.NextIndex(), tab, gv.Fullscreen)
	open := stateQuery(g.Index(), tab, true)
	closed := stateQuery(g.Index(), tab, false)
	gv.PrevHref, gv.PrevFrag = withQuery(base, prev), withQuery(gv.FragPath, prev)
	gv.NextHref, gv.NextFrag = withQuery(base, next), withQuery(gv.FragPath, next)
	gv.FullscreenHref, gv.FullscreenFrag = withQuery(base, open), withQuery(gv.FragPath, open)
	gv.CloseHref, gv.CloseFrag = withQuery(base, closed), withQuery(gv.FragPath, closed)
	for i, src := range g.Images() {
		q := stateQuery(i, tab, false)
		gv.Images = append(gv.Images, ThumbView{
			Src:      src,
			Index:    i,
			Position: i + 1,
			Selected: i == g.Index(),
			Href:     withQuery(base, q),
			Frag:     withQuery(gv.FragPath, q),
		})
	}
	return gv
}

func buildTabViews(p catalog.Product, g *gallery.Gallery, active tabs.Tab) []TabView {
	out := make([]TabView, 0, len(tabs.All))
	for _, t := range tabs.All {
		out = append(out, TabView{
			Key:    string(t),
			Label:  t.Label(),
			Active: t == active,
			Href:   withQuery(productPath(p.ID), stateQuery(g.Index(), t, false)),
		})
	}
	return out
}

// buildProductView renders a lookup result. Only Found carries a product.
func buildProductView(lang string, res catalog.Result, q url.Values) ProductView {
	pv := ProductView{Lang: lang, Status: res.Status.String()}
	if !res.OK() {
		return pv
	}
	g, ts, done := detailState(res.Product, q)
	defer done()
	pv.Product = res.Product
	pv.Active = string(ts.Active())
	pv.Gallery = buildGalleryView(res.Product, g, ts.Active())
	pv.Gallery.Lang = lang
	pv.Tabs = buildTabViews(res.Product, g, ts.Active())
	return pv
}

// canonicalQuery is the query the browser should show after a transition.
func (pv ProductView) canonicalQuery() string {
	return stateQuery(pv.Gallery.Index, tabs.Parse(pv.Active), pv.Gallery.Fullscreen)
}
