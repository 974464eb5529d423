package gallery

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/ziadkadry99/folio/internal/catalog"
)

// View is the presentation side of the gallery. Implementations write to
// whatever surface they own: an HTML page, a terminal, a test recorder.
type View interface {
	// RenderTags draws the tag filter controls. tags is empty when the
	// catalog failed to load.
	RenderTags(tags []string, active string)
	// RenderList replaces the whole card grid. An empty slice means the
	// view should show its "no matches" placeholder.
	RenderList(projects []catalog.Project)
	// ShowDetail replaces the detail view with p and opens it.
	ShowDetail(p catalog.Project)
	// CloseDetail closes the detail view.
	CloseDetail()
	// ShowError replaces the grid with a static diagnostic.
	ShowError(err error)
}

// Source produces a catalog. *catalog.Loader satisfies it.
type Source interface {
	Load(ctx context.Context) (*catalog.Catalog, error)
}

// Gallery owns the catalog and filter state for one client and keeps its
// View in sync with them. It is not safe for concurrent use; each client
// gets its own Gallery.
type Gallery struct {
	view    View
	catalog *catalog.Catalog
	state   FilterState
	locale  language.Tag
	logger  *zap.Logger
	loadErr error
}

// Option configures a Gallery.
type Option func(*Gallery)

// WithLocale sets the locale used to order the tag vocabulary.
func WithLocale(tag language.Tag) Option {
	return func(g *Gallery) { g.locale = tag }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(g *Gallery) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithState sets the initial filter state.
func WithState(s FilterState) Option {
	return func(g *Gallery) { g.state = s }
}

// New returns a Gallery over an empty catalog. Nothing is rendered until
// Load, SetCatalog or Render is called.
func New(view View, opts ...Option) *Gallery {
	g := &Gallery{
		view:    view,
		catalog: catalog.Empty(),
		state:   DefaultState(),
		locale:  language.English,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.state.Tag == "" {
		g.state.Tag = AllTag
	}
	return g
}

// Load reads the catalog from src and renders the gallery. On failure the
// view shows one diagnostic, the tag controls are cleared and the gallery
// keeps an empty catalog, so further input is safe. The error is returned
// for the caller to log; it has already been presented.
func (g *Gallery) Load(ctx context.Context, src Source) error {
	c, err := src.Load(ctx)
	if err != nil {
		g.fail(err)
		return err
	}
	g.SetCatalog(c)
	return nil
}

// Fail puts the gallery into the load-error state for err.
func (g *Gallery) Fail(err error) {
	g.fail(err)
}

func (g *Gallery) fail(err error) {
	if err == nil {
		err = fmt.Errorf("catalog unavailable")
	}
	g.logger.Warn("catalog failed to load", zap.Error(err))
	g.catalog = catalog.Empty()
	g.loadErr = err
	g.view.RenderTags(nil, g.state.ActiveTag())
	g.view.ShowError(err)
}

// SetCatalog replaces the catalog, clears any load error and re-renders.
func (g *Gallery) SetCatalog(c *catalog.Catalog) {
	if c == nil {
		c = catalog.Empty()
	}
	g.catalog = c
	g.loadErr = nil
	g.Render()
}

// Render draws the tag controls and the grid for the current state.
func (g *Gallery) Render() {
	if g.loadErr != nil {
		g.view.RenderTags(nil, g.state.ActiveTag())
		g.view.ShowError(g.loadErr)
		return
	}
	g.view.RenderTags(g.Tags(), g.state.ActiveTag())
	g.view.RenderList(g.Visible())
}

// SelectTag changes the active tag and re-renders.
func (g *Gallery) SelectTag(tag string) {
	if tag == "" {
		tag = AllTag
	}
	g.state.Tag = tag
	g.Render()
}

// SetQuery changes the search text and re-renders the grid.
func (g *Gallery) SetQuery(query string) {
	g.state.Query = query
	if g.loadErr != nil {
		g.view.ShowError(g.loadErr)
		return
	}
	g.view.RenderList(g.Visible())
}

// OpenDetail shows the project identified by key (slug or ID).
func (g *Gallery) OpenDetail(key string) error {
	p, ok := g.catalog.Lookup(key)
	if !ok {
		return fmt.Errorf("project %q not found", key)
	}
	g.view.ShowDetail(p)
	return nil
}

// CloseDetail closes the detail view. It is the single close path for the
// close button, a click outside the panel and the Escape key.
func (g *Gallery) CloseDetail() {
	g.view.CloseDetail()
}

// State returns the current filter state.
func (g *Gallery) State() FilterState { return g.state }

// Catalog returns the catalog currently shown.
func (g *Gallery) Catalog() *catalog.Catalog { return g.catalog }

// Err returns the load error, if the gallery is in the error state.
func (g *Gallery) Err() error { return g.loadErr }

// Visible returns the projects visible under the current state.
func (g *Gallery) Visible() []catalog.Project {
	return g.state.Visible(g.catalog)
}

// Tags returns the tag vocabulary of the current catalog.
func (g *Gallery) Tags() []string {
	if g.loadErr != nil {
		return nil
	}
	return TagVocabularyFor(g.catalog, g.locale)
}
