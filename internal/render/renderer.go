package render

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/ziadkadry99/folio/internal/gallery"
	"github.com/ziadkadry99/folio/internal/theme"
)

// Options configures a Renderer.
type Options struct {
	Title           string
	Tagline         string
	Contact         string
	SnippetCode     string
	SnippetLanguage string
}

// Renderer assembles Page fragments into full HTML documents.
type Renderer struct {
	opts    Options
	tmpl    *template.Template
	snippet template.HTML
	now     func() time.Time
}

// NewRenderer parses the page template and pre-renders the snippet.
func NewRenderer(opts Options) (*Renderer, error) {
	if opts.Title == "" {
		opts.Title = "Portfolio"
	}
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	snippet, err := Snippet(opts.SnippetCode, opts.SnippetLanguage)
	if err != nil {
		return nil, err
	}
	return &Renderer{opts: opts, tmpl: tmpl, snippet: snippet, now: time.Now}, nil
}

// PageData is the per-request input to WritePage.
type PageData struct {
	Page       *Page
	State      gallery.FilterState
	Theme      theme.Mode
	LiveReload bool
}

// pageView is what the template sees.
type pageView struct {
	Title      string
	Tagline    string
	Contact    string
	Links      Links
	State      gallery.FilterState
	Theme      theme.Mode
	ThemeIcon  string
	TagsHTML   template.HTML
	GridHTML   template.HTML
	EmptyHTML  template.HTML
	Failed     bool
	Detail     Detail
	CloseHref  string
	ReturnTo   string
	Snippet    template.HTML
	Year       int
	LiveReload bool
}

// WritePage writes a complete gallery document.
func (r *Renderer) WritePage(w io.Writer, d PageData) error {
	p := d.Page
	if p == nil {
		p = NewPage(Links{}, DefaultMaxCardTags)
	}
	mode := d.Theme
	if mode == "" {
		mode = theme.Default
	}
	closeHref := p.Links.Gallery(d.State)
	returnTo := closeHref
	if p.detail.Open && !p.Links.Static {
		returnTo = "/projects/" + p.detail.Slug
	}

	return r.tmpl.Execute(w, pageView{
		Title:      r.opts.Title,
		Tagline:    r.opts.Tagline,
		Contact:    r.opts.Contact,
		Links:      p.Links,
		State:      d.State,
		Theme:      mode,
		ThemeIcon:  mode.Icon(),
		TagsHTML:   p.TagsHTML(),
		GridHTML:   p.GridHTML(),
		EmptyHTML:  template.HTML(EmptyCard()),
		Failed:     p.Failed(),
		Detail:     p.Detail(),
		CloseHref:  closeHref,
		ReturnTo:   returnTo,
		Snippet:    r.snippet,
		Year:       r.now().Year(),
		LiveReload: d.LiveReload,
	})
}

// WriteGrid writes only the grid fragment.
func (r *Renderer) WriteGrid(w io.Writer, p *Page) error {
	_, err := io.WriteString(w, string(p.GridHTML()))
	return err
}
