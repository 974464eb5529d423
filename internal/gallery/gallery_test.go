package gallery

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/ziadkadry99/folio/internal/catalog"
)

// recorder is a View that remembers the last thing drawn in each region.
type recorder struct {
	tags       []string
	activeTag  string
	list       []catalog.Project
	listCalls  int
	detail     *catalog.Project
	detailOpen bool
	err        error
}

func (r *recorder) RenderTags(tags []string, active string) {
	r.tags = tags
	r.activeTag = active
}

func (r *recorder) RenderList(projects []catalog.Project) {
	r.list = projects
	r.listCalls++
	r.err = nil
}

func (r *recorder) ShowDetail(p catalog.Project) {
	r.detail = &p
	r.detailOpen = true
}

func (r *recorder) CloseDetail() { r.detailOpen = false }

func (r *recorder) ShowError(err error) {
	r.err = err
	r.list = nil
}

type staticSource struct {
	c   *catalog.Catalog
	err error
}

func (s staticSource) Load(context.Context) (*catalog.Catalog, error) { return s.c, s.err }

func TestGalleryLoadRendersEverything(t *testing.T) {
	view := &recorder{}
	g := New(view)
	if err := g.Load(context.Background(), staticSource{c: sampleCatalog()}); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !reflect.DeepEqual(view.tags, []string{"All", "go", "net", "rust"}) {
		t.Errorf("tags = %v", view.tags)
	}
	if view.activeTag != AllTag {
		t.Errorf("active tag = %q", view.activeTag)
	}
	if got := titles(view.list); !reflect.DeepEqual(got, []string{"Router", "Parser"}) {
		t.Errorf("list = %v", got)
	}
}

func TestGalleryScenario(t *testing.T) {
	view := &recorder{}
	g := New(view)
	g.SetCatalog(sampleCatalog())

	g.SelectTag("go")
	if got := titles(view.list); !reflect.DeepEqual(got, []string{"Router"}) {
		t.Errorf("after tag go: %v", got)
	}
	if view.activeTag != "go" {
		t.Errorf("active tag = %q, want go", view.activeTag)
	}

	g.SelectTag(AllTag)
	g.SetQuery("parser")
	if got := titles(view.list); !reflect.DeepEqual(got, []string{"Parser"}) {
		t.Errorf("after query parser: %v", got)
	}

	g.SetQuery("zzz")
	if view.list == nil || len(view.list) != 0 {
		t.Errorf("after query zzz: want empty list, got %#v", view.list)
	}
	if g.State() != (FilterState{Tag: AllTag, Query: "zzz"}) {
		t.Errorf("state = %+v", g.State())
	}
}

func TestGalleryLoadFailure(t *testing.T) {
	view := &recorder{}
	g := New(view)
	loadErr := &catalog.LoadError{Source: "assets/projects.json", Err: errors.New("boom")}

	err := g.Load(context.Background(), staticSource{err: loadErr})
	if !errors.Is(err, loadErr) {
		t.Fatalf("Load returned %v", err)
	}
	if view.err == nil {
		t.Fatal("view should show the error")
	}
	if len(view.tags) != 0 {
		t.Errorf("tags should be empty after failure, got %v", view.tags)
	}
	if view.listCalls != 0 {
		t.Errorf("no cards should have been rendered, got %d renders", view.listCalls)
	}

	// Interaction after a failure must not panic and keeps the diagnostic.
	g.SelectTag("go")
	g.SetQuery("router")
	if view.err == nil {
		t.Error("error state should persist across input")
	}
	if len(g.Visible()) != 0 {
		t.Errorf("visible = %v, want none", titles(g.Visible()))
	}
	if g.Tags() != nil {
		t.Errorf("Tags() = %v, want nil in error state", g.Tags())
	}

	// A later successful catalog clears the error.
	g.SetCatalog(sampleCatalog())
	if g.Err() != nil || view.err != nil {
		t.Error("SetCatalog should clear the error state")
	}
	if got := titles(view.list); !reflect.DeepEqual(got, []string{"Router"}) {
		t.Errorf("list after recovery = %v (state %+v)", got, g.State())
	}
}

func TestGalleryEmptyCatalogIsNotAnError(t *testing.T) {
	view := &recorder{}
	g := New(view)
	if err := g.Load(context.Background(), staticSource{c: catalog.Empty()}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if view.err != nil {
		t.Errorf("empty catalog should not be an error: %v", view.err)
	}
	if view.listCalls != 1 || len(view.list) != 0 {
		t.Errorf("expected one empty render, got %d calls, %v", view.listCalls, view.list)
	}
	if !reflect.DeepEqual(view.tags, []string{"All"}) {
		t.Errorf("tags = %v, want [All]", view.tags)
	}
}

func TestGalleryDetail(t *testing.T) {
	view := &recorder{}
	g := New(view)
	g.SetCatalog(sampleCatalog())

	if err := g.OpenDetail("router"); err != nil {
		t.Fatalf("OpenDetail: %v", err)
	}
	if !view.detailOpen || view.detail.Title != "Router" {
		t.Fatalf("detail = %+v open=%v", view.detail, view.detailOpen)
	}

	parser, _ := g.Catalog().Lookup("parser")
	if err := g.OpenDetail(parser.ID); err != nil {
		t.Fatalf("OpenDetail by ID: %v", err)
	}
	if view.detail.Title != "Parser" {
		t.Errorf("detail title = %q, want Parser", view.detail.Title)
	}

	g.CloseDetail()
	if view.detailOpen {
		t.Error("detail should be closed")
	}

	if err := g.OpenDetail("nope"); err == nil {
		t.Error("expected error for unknown project")
	}
}

func TestGalleryWithState(t *testing.T) {
	view := &recorder{}
	g := New(view, WithState(FilterState{Query: "rout"}))
	if g.State().Tag != AllTag {
		t.Errorf("empty tag should default to All, got %q", g.State().Tag)
	}
	g.SetCatalog(sampleCatalog())
	if got := titles(view.list); !reflect.DeepEqual(got, []string{"Router"}) {
		t.Errorf("list = %v", got)
	}
}
