package render

import (
	"net/url"

	"github.com/ziadkadry99/folio/internal/catalog"
	"github.com/ziadkadry99/folio/internal/gallery"
)

// Links builds the hrefs written into pages. Static sites link to .html
// files relative to Base; the live server uses absolute routes.
type Links struct {
	Base   string
	Static bool
}

// Index is the gallery page.
func (l Links) Index() string {
	if l.Static {
		return l.Base + "index.html"
	}
	return "/"
}

// Gallery links to the gallery filtered by s. The default state links to
// the bare index.
func (l Links) Gallery(s gallery.FilterState) string {
	v := url.Values{}
	if tag := s.ActiveTag(); tag != gallery.AllTag {
		v.Set("tag", tag)
	}
	if s.Query != "" {
		v.Set("q", s.Query)
	}
	if len(v) == 0 {
		return l.Index()
	}
	return l.Index() + "?" + v.Encode()
}

// Detail is the page with p's detail view open.
func (l Links) Detail(p catalog.Project) string {
	if l.Static {
		return l.Base + "projects/" + url.PathEscape(p.Slug) + ".html"
	}
	return "/projects/" + url.PathEscape(p.Slug)
}

// Asset resolves a path under the static asset directory.
func (l Links) Asset(name string) string {
	if l.Static {
		return l.Base + "static/" + name
	}
	return "/static/" + name
}

// Catalog is where the raw projects.json is served.
func (l Links) Catalog() string {
	if l.Static {
		return l.Base + "assets/projects.json"
	}
	return "/assets/projects.json"
}
