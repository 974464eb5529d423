package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ziadkadry99/folio/internal/catalog"
	"github.com/ziadkadry99/folio/internal/gallery"
)

// DefaultMaxCardTags is how many tag pills a card shows.
const DefaultMaxCardTags = 4

// DefaultCatalogPath is named in the load-failure card when the error does
// not carry its own source.
const DefaultCatalogPath = "assets/projects.json"

// Cards renders the card grid for projects. An empty list renders the
// "no matches" placeholder instead.
func Cards(projects []catalog.Project, links Links, maxTags int) string {
	if len(projects) == 0 {
		return EmptyCard()
	}
	var b strings.Builder
	for _, p := range projects {
		writeCard(&b, p, links, maxTags)
	}
	return b.String()
}

func writeCard(b *strings.Builder, p catalog.Project, links Links, maxTags int) {
	tagsJSON, _ := json.Marshal(p.Tags)

	fmt.Fprintf(b, `<article class="card project" data-project="%s" data-tags="%s" data-search="%s">`+"\n",
		EscapeHTML(p.Slug), EscapeHTML(string(tagsJSON)), EscapeHTML(gallery.Haystack(p)))
	b.WriteString(`  <div class="project__top">` + "\n")
	b.WriteString("    <div>\n")
	fmt.Fprintf(b, `      <h3 class="project__title">%s</h3>`+"\n", EscapeHTML(p.Title))
	fmt.Fprintf(b, `      <div class="project__meta">%s</div>`+"\n", EscapeHTML(p.Stack))
	b.WriteString("    </div>\n")
	fmt.Fprintf(b, `    <span class="pill" title="Category">%s</span>`+"\n", EscapeHTML(p.Category))
	b.WriteString("  </div>\n")
	fmt.Fprintf(b, `  <p class="project__desc">%s</p>`+"\n", EscapeHTML(p.Description))
	fmt.Fprintf(b, `  <div class="pills">%s</div>`+"\n", Pills(p.Tags, maxTags))
	b.WriteString(`  <div class="project__actions">` + "\n")
	if p.Repo != "" {
		fmt.Fprintf(b, `    <a class="link" href="%s" target="_blank" rel="noopener">Repo →</a>`+"\n", EscapeHTML(p.Repo))
	}
	if p.Demo != "" {
		fmt.Fprintf(b, `    <a class="link" href="%s" target="_blank" rel="noopener">Docs/Demo →</a>`+"\n", EscapeHTML(p.Demo))
	}
	fmt.Fprintf(b, `    <a class="btn btn--ghost" href="%s" data-details="%s">Details</a>`+"\n",
		EscapeHTML(links.Detail(p)), EscapeHTML(p.Slug))
	b.WriteString("  </div>\n")
	b.WriteString("</article>\n")
}

// Pills renders up to max tag pills. A max of zero or less shows them all;
// NewPage turns a zero max into DefaultMaxCardTags before it gets here.
func Pills(tags []string, max int) string {
	if max > 0 && len(tags) > max {
		tags = tags[:max]
	}
	var b strings.Builder
	for _, t := range tags {
		fmt.Fprintf(&b, `<span class="pill">%s</span>`, EscapeHTML(t))
	}
	return b.String()
}

// EmptyCard is the placeholder shown when no project matches.
func EmptyCard() string {
	return `<div class="card empty"><h3>No matches</h3><p class="muted">Try a different search or filter.</p></div>` + "\n"
}

// ErrorCard is the diagnostic shown in place of the grid when the catalog
// failed to load.
func ErrorCard(err error) string {
	source := DefaultCatalogPath
	var loadErr *catalog.LoadError
	if errors.As(err, &loadErr) && loadErr.Source != "" {
		source = loadErr.Source
	}
	return fmt.Sprintf(`<div class="card error"><h3>Projects failed to load</h3><p class="muted">Make sure <code>%s</code> exists and is valid JSON.</p></div>`+"\n",
		EscapeHTML(source))
}

// TagFilters renders one filter control per tag, marking active. Each
// control links to the gallery filtered by that tag with query kept.
func TagFilters(tags []string, active, query string, links Links) string {
	var b strings.Builder
	for _, tag := range tags {
		class := "filter"
		pressed := "false"
		if tag == active {
			class += " is-on"
			pressed = "true"
		}
		href := links.Gallery(gallery.FilterState{Tag: tag, Query: query})
		fmt.Fprintf(&b, `<a class="%s" href="%s" data-tag="%s" role="button" aria-pressed="%s">%s</a>`+"\n",
			class, EscapeHTML(href), EscapeHTML(tag), pressed, EscapeHTML(tag))
	}
	return b.String()
}
