package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ziadkadry99/folio/internal/catalog"
	"github.com/ziadkadry99/folio/internal/gallery"
	"github.com/ziadkadry99/folio/internal/theme"
)

func strPtr(s string) *string { return &s }

func TestEscapeHTML(t *testing.T) {
	got := EscapeHTML(`a & b < c > d " e ' f`)
	want := "a &amp; b &lt; c &gt; d &quot; e &#039; f"
	if got != want {
		t.Errorf("EscapeHTML = %q, want %q", got, want)
	}
}

func TestCardsEscapeCatalogText(t *testing.T) {
	c := catalog.New([]catalog.Record{{
		Title:       "<script>alert(1)</script>",
		Description: `"quoted" & 'single'`,
		Tags:        []string{"<b>"},
	}})
	out := Cards(c.Projects(), Links{}, DefaultMaxCardTags)

	if strings.Contains(out, "<script>") || strings.Contains(out, "<b>") {
		t.Fatalf("card contains unescaped markup:\n%s", out)
	}
	if !strings.Contains(out, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Errorf("escaped title missing:\n%s", out)
	}
	if !strings.Contains(out, "&quot;quoted&quot; &amp; &#039;single&#039;") {
		t.Errorf("escaped description missing:\n%s", out)
	}
}

func TestCardsEmpty(t *testing.T) {
	if got := Cards(nil, Links{}, DefaultMaxCardTags); got != EmptyCard() {
		t.Errorf("Cards(nil) = %q, want the empty placeholder", got)
	}
	if !strings.Contains(EmptyCard(), "No matches") {
		t.Error("empty placeholder should say No matches")
	}
}

func TestCardsPillLimit(t *testing.T) {
	c := catalog.New([]catalog.Record{{Title: "Many", Tags: []string{"a", "b", "c", "d", "e", "f"}}})
	out := Cards(c.Projects(), Links{}, DefaultMaxCardTags)
	if n := strings.Count(out, `<span class="pill">`); n != 4 {
		t.Errorf("pill count = %d, want 4", n)
	}
	if strings.Contains(out, `<span class="pill">e</span>`) {
		t.Error("fifth tag should not be shown")
	}
	// The data attribute still carries every tag for filtering.
	if !strings.Contains(out, "&quot;f&quot;") {
		t.Error("data-tags should list all tags")
	}
}

func TestPillsNoLimit(t *testing.T) {
	if n := strings.Count(Pills([]string{"a", "b", "c", "d", "e"}, 0), "pill"); n != 5 {
		t.Errorf("pill count = %d, want 5", n)
	}
}

func TestPageTagLimit(t *testing.T) {
	c := catalog.New([]catalog.Record{{Title: "Router", Tags: []string{"a", "b", "c", "d", "e", "f"}}})
	tests := []struct {
		name    string
		maxTags int
		want    int
	}{
		{"zero uses default", 0, DefaultMaxCardTags},
		{"explicit", 2, 2},
		{"negative shows all", -1, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage(Links{}, tt.maxTags)
			gallery.New(page).SetCatalog(c)
			// The category pill carries a title attribute and is not counted.
			if n := strings.Count(string(page.GridHTML()), `<span class="pill">`); n != tt.want {
				t.Errorf("tag pills = %d, want %d", n, tt.want)
			}
		})
	}
}

func TestCardsLinksOnlyWhenPresent(t *testing.T) {
	c := catalog.New([]catalog.Record{
		{Title: "Repo only", Repo: strPtr("https://example.com/repo")},
		{Title: "Neither"},
		{Title: "Bad scheme", Demo: strPtr("javascript:alert(1)")},
	})
	ps := c.Projects()

	out := Cards(ps[:1], Links{}, DefaultMaxCardTags)
	if !strings.Contains(out, "Repo →") || strings.Contains(out, "Docs/Demo →") {
		t.Errorf("repo-only card links wrong:\n%s", out)
	}
	out = Cards(ps[1:2], Links{}, DefaultMaxCardTags)
	if strings.Contains(out, "Repo →") || strings.Contains(out, "Docs/Demo →") {
		t.Errorf("card without links shows a link:\n%s", out)
	}
	out = Cards(ps[2:], Links{}, DefaultMaxCardTags)
	if strings.Contains(out, "javascript:") {
		t.Errorf("unsafe demo URL rendered:\n%s", out)
	}
}

func TestCardsDetailsLink(t *testing.T) {
	c := catalog.New([]catalog.Record{{Title: "Router"}})
	live := Cards(c.Projects(), Links{}, DefaultMaxCardTags)
	if !strings.Contains(live, `href="/projects/router" data-details="router"`) {
		t.Errorf("live details link missing:\n%s", live)
	}
	static := Cards(c.Projects(), Links{Static: true}, DefaultMaxCardTags)
	if !strings.Contains(static, `href="projects/router.html"`) {
		t.Errorf("static details link missing:\n%s", static)
	}
}

func TestTagFilters(t *testing.T) {
	out := TagFilters([]string{"All", "go", "rust"}, "go", "", Links{})
	if n := strings.Count(out, "is-on"); n != 1 {
		t.Fatalf("active controls = %d, want 1", n)
	}
	if !strings.Contains(out, `class="filter is-on" href="/?tag=go" data-tag="go"`) {
		t.Errorf("active go control missing:\n%s", out)
	}
	if !strings.Contains(out, `class="filter" href="/" data-tag="All"`) {
		t.Errorf("All control should link to the bare index:\n%s", out)
	}
}

func TestTagFiltersKeepQuery(t *testing.T) {
	out := TagFilters([]string{"go"}, "All", "net", Links{})
	if !strings.Contains(out, `href="/?q=net&amp;tag=go"`) {
		t.Errorf("query not carried into tag link:\n%s", out)
	}
}

func TestLinks(t *testing.T) {
	p := catalog.Project{Slug: "my-project"}
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"live index", Links{}.Index(), "/"},
		{"static index", Links{Static: true, Base: "../"}.Index(), "../index.html"},
		{"default gallery", Links{}.Gallery(gallery.DefaultState()), "/"},
		{"filtered gallery", Links{}.Gallery(gallery.FilterState{Tag: "go", Query: "a b"}), "/?q=a+b&tag=go"},
		{"live detail", Links{}.Detail(p), "/projects/my-project"},
		{"static detail", Links{Static: true, Base: "../"}.Detail(p), "../projects/my-project.html"},
		{"live asset", Links{}.Asset("style.css"), "/static/style.css"},
		{"static asset", Links{Static: true}.Asset("style.css"), "static/style.css"},
		{"catalog", Links{}.Catalog(), "/assets/projects.json"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestErrorCard(t *testing.T) {
	out := ErrorCard(&catalog.LoadError{Source: "data/p.json", Err: errors.New("boom")})
	if !strings.Contains(out, "Projects failed to load") || !strings.Contains(out, "<code>data/p.json</code>") {
		t.Errorf("ErrorCard with source:\n%s", out)
	}
	out = ErrorCard(errors.New("boom"))
	if !strings.Contains(out, DefaultCatalogPath) {
		t.Errorf("ErrorCard without source should name %s:\n%s", DefaultCatalogPath, out)
	}
}

func TestNewDetailMeta(t *testing.T) {
	tests := []struct {
		p    catalog.Project
		want string
	}{
		{catalog.Project{Category: "Tools", Stack: "Go"}, "Tools • Go"},
		{catalog.Project{Category: "Tools"}, "Tools"},
		{catalog.Project{Stack: "Go"}, "Go"},
		{catalog.Project{}, ""},
	}
	for _, tt := range tests {
		if got := NewDetail(tt.p).Meta; got != tt.want {
			t.Errorf("Meta(%q, %q) = %q, want %q", tt.p.Category, tt.p.Stack, got, tt.want)
		}
	}
	if NewDetail(catalog.Project{}).Title != catalog.DefaultTitle {
		t.Error("empty title should fall back to the default")
	}
}

func TestPageDetailReplacedWholesale(t *testing.T) {
	c := catalog.New([]catalog.Record{
		{Title: "A", Tags: []string{"a1", "a2"}, Controls: []string{"ca1", "ca2", "ca3"}, Repo: strPtr("https://a.example")},
		{Title: "B", Tags: []string{"b1"}},
	})
	page := NewPage(Links{}, 0)
	g := gallery.New(page)
	g.SetCatalog(c)

	if err := g.OpenDetail("a"); err != nil {
		t.Fatal(err)
	}
	if err := g.OpenDetail("b"); err != nil {
		t.Fatal(err)
	}
	d := page.Detail()
	if d.Title != "B" || !d.Open {
		t.Fatalf("detail = %+v, want B open", d)
	}
	if len(d.Badges) != 1 || d.Badges[0] != "b1" {
		t.Errorf("badges = %v, want [b1]", d.Badges)
	}
	if len(d.Controls) != 0 {
		t.Errorf("controls = %v, want none", d.Controls)
	}
	if d.Repo != "" {
		t.Errorf("repo = %q, want empty", d.Repo)
	}

	g.CloseDetail()
	if page.Detail().Open {
		t.Error("detail still open after close")
	}
}

func TestPageShowError(t *testing.T) {
	page := NewPage(Links{}, 0)
	g := gallery.New(page)
	g.Fail(&catalog.LoadError{Source: "assets/projects.json", Err: errors.New("bad")})

	if !page.Failed() {
		t.Fatal("page should be in the failed state")
	}
	if !strings.Contains(string(page.GridHTML()), "Projects failed to load") {
		t.Errorf("grid = %s", page.GridHTML())
	}
	if page.TagsHTML() != "" {
		t.Errorf("tags should be empty, got %s", page.TagsHTML())
	}

	g.SetQuery("anything")
	if !strings.Contains(string(page.GridHTML()), "Projects failed to load") {
		t.Error("error card replaced by input")
	}
}

func TestWritePage(t *testing.T) {
	r, err := NewRenderer(Options{Title: "Folio"})
	if err != nil {
		t.Fatal(err)
	}
	c := catalog.New([]catalog.Record{{Title: "Router", Tags: []string{"go"}, Problem: "packets <dropped>"}})
	page := NewPage(Links{}, 0)
	state := gallery.FilterState{Tag: "go"}
	g := gallery.New(page, gallery.WithState(state))
	g.SetCatalog(c)
	if err := g.OpenDetail("router"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := r.WritePage(&buf, PageData{Page: page, State: state, Theme: theme.Light}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		`<html lang="en" class="light">`,
		`<dialog class="modal" id="modal" open>`,
		`<h3 id="modalTitle">Router</h3>`,
		`packets &lt;dropped&gt;`,
		`id="modalClose" href="/?tag=go"`,
		`name="return" value="/projects/router"`,
		`id="modalRepo"`,
		`hidden style="display:none"`,
		`data-mode="live"`,
		`<title>Router · Folio</title>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(out, "<dropped>") {
		t.Error("detail text not escaped")
	}
}

func TestWritePageClosedDetail(t *testing.T) {
	r, err := NewRenderer(Options{})
	if err != nil {
		t.Fatal(err)
	}
	page := NewPage(Links{Static: true}, 0)
	gallery.New(page).SetCatalog(catalog.Empty())

	var buf bytes.Buffer
	if err := r.WritePage(&buf, PageData{Page: page}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, `id="modal" open`) {
		t.Error("modal should be closed")
	}
	if strings.Contains(out, `class="light"`) {
		t.Error("default theme should be dark")
	}
	if !strings.Contains(out, "<title>Portfolio</title>") {
		t.Error("default title missing")
	}
	if !strings.Contains(out, `data-mode="static"`) || !strings.Contains(out, `href="static/style.css"`) {
		t.Error("static links missing")
	}
	if !strings.Contains(out, "No matches") {
		t.Error("empty catalog should render the placeholder")
	}
}

func TestWritePageLoadFailure(t *testing.T) {
	r, err := NewRenderer(Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, links := range []Links{{}, {Static: true}} {
		page := NewPage(links, 0)
		g := gallery.New(page)
		g.Fail(&catalog.LoadError{Source: "assets/projects.json", Err: errors.New("bad")})
		g.SetQuery("router")

		var buf bytes.Buffer
		if err := r.WritePage(&buf, PageData{Page: page, State: g.State()}); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		if n := strings.Count(out, `class="card`); n != 1 {
			t.Errorf("static=%v: %d cards, want only the error card", links.Static, n)
		}
		if strings.Contains(out, `id="emptyTemplate"`) || strings.Contains(out, "No matches") {
			t.Errorf("static=%v: the empty placeholder must not ship with the error card", links.Static)
		}
		if !strings.Contains(out, `id="projectsGrid" data-state="error"`) {
			t.Errorf("static=%v: grid not marked as failed", links.Static)
		}
		if !strings.Contains(out, `id="searchInput"`) {
			t.Errorf("static=%v: search box should still render", links.Static)
		}
	}
}

func TestWritePageOkGridNotMarked(t *testing.T) {
	r, err := NewRenderer(Options{})
	if err != nil {
		t.Fatal(err)
	}
	page := NewPage(Links{}, 0)
	gallery.New(page).SetCatalog(catalog.New([]catalog.Record{{Title: "Router"}}))

	var buf bytes.Buffer
	if err := r.WritePage(&buf, PageData{Page: page}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, `data-state="error"`) {
		t.Error("healthy grid marked as failed")
	}
	if !strings.Contains(out, `id="emptyTemplate"`) {
		t.Error("empty placeholder template missing")
	}
}

func TestSnippet(t *testing.T) {
	html, err := Snippet("fmt.Println(\"<b>\")\n", "go")
	if err != nil {
		t.Fatal(err)
	}
	out := string(html)
	if !strings.Contains(out, "<pre") {
		t.Errorf("snippet not rendered as a code block: %s", out)
	}
	if strings.Contains(out, "<b>") {
		t.Errorf("snippet not escaped: %s", out)
	}

	empty, err := Snippet("  \n", "")
	if err != nil {
		t.Fatal(err)
	}
	if empty != "" {
		t.Errorf("blank snippet = %q, want empty", empty)
	}
}

func TestSnippetFenceInCode(t *testing.T) {
	html, err := Snippet("```\ninner\n```", "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), "inner") {
		t.Errorf("snippet lost content: %s", html)
	}
}

func TestAssetsEmbedded(t *testing.T) {
	for _, name := range AssetNames {
		data, err := Assets.ReadFile("assets/" + name)
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestAssetsBehaviour(t *testing.T) {
	tests := []struct {
		asset string
		want  []string
	}{
		{"style.css", []string{"scroll-behavior: smooth"}},
		{"script.js", []string{
			`behavior: "smooth"`,
			`grid.dataset.state === "error"`,
			"if (loadFailed()) return;",
		}},
	}
	for _, tt := range tests {
		data, err := Assets.ReadFile("assets/" + tt.asset)
		if err != nil {
			t.Fatalf("reading %s: %v", tt.asset, err)
		}
		for _, want := range tt.want {
			if !strings.Contains(string(data), want) {
				t.Errorf("%s missing %q", tt.asset, want)
			}
		}
	}
}
