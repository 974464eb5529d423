package render

import (
	"html/template"
	"strings"

	"github.com/ziadkadry99/folio/internal/catalog"
)

// Detail is the content of the shared detail view.
type Detail struct {
	Open     bool
	Slug     string
	Title    string
	Meta     string
	Badges   []string
	Problem  string
	Approach string
	Impact   string
	Controls []string
	Repo     string
	Demo     string
}

// NewDetail builds the detail content for p.
func NewDetail(p catalog.Project) Detail {
	title := p.Title
	if title == "" {
		title = catalog.DefaultTitle
	}
	var meta []string
	for _, part := range []string{p.Category, p.Stack} {
		if part != "" {
			meta = append(meta, part)
		}
	}
	return Detail{
		Open:     true,
		Slug:     p.Slug,
		Title:    title,
		Meta:     strings.Join(meta, " • "),
		Badges:   append([]string(nil), p.Tags...),
		Problem:  p.Problem,
		Approach: p.Approach,
		Impact:   p.Impact,
		Controls: append([]string(nil), p.Controls...),
		Repo:     p.Repo,
		Demo:     p.Demo,
	}
}

// Page is a gallery.View that renders into HTML fragments for one page.
// The fragments are assembled into a document by Renderer.
type Page struct {
	Links   Links
	MaxTags int
	Query   string

	tags   template.HTML
	grid   template.HTML
	detail Detail
	failed bool
}

// NewPage returns an empty page view. A maxTags of zero uses
// DefaultMaxCardTags and a negative one shows every tag.
func NewPage(links Links, maxTags int) *Page {
	if maxTags == 0 {
		maxTags = DefaultMaxCardTags
	}
	return &Page{Links: links, MaxTags: maxTags}
}

func (p *Page) RenderTags(tags []string, active string) {
	p.tags = template.HTML(TagFilters(tags, active, p.Query, p.Links))
}

func (p *Page) RenderList(projects []catalog.Project) {
	p.failed = false
	p.grid = template.HTML(Cards(projects, p.Links, p.MaxTags))
}

// ShowDetail replaces the detail view wholesale, so nothing from a
// previously shown project survives.
func (p *Page) ShowDetail(project catalog.Project) {
	p.detail = NewDetail(project)
}

func (p *Page) CloseDetail() {
	p.detail = Detail{}
}

func (p *Page) ShowError(err error) {
	p.failed = true
	p.grid = template.HTML(ErrorCard(err))
}

// TagsHTML is the rendered tag filter controls.
func (p *Page) TagsHTML() template.HTML { return p.tags }

// GridHTML is the rendered card grid, empty placeholder or error card.
func (p *Page) GridHTML() template.HTML { return p.grid }

// Detail is the current detail view content.
func (p *Page) Detail() Detail { return p.detail }

// Failed reports whether the grid shows the load-failure card.
func (p *Page) Failed() bool { return p.failed }
