package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ziadkadry99/folio/internal/catalog"
	"github.com/ziadkadry99/folio/internal/gallery"
	"github.com/ziadkadry99/folio/internal/render"
)

// terminalView prints the gallery as plain text.
type terminalView struct {
	out     io.Writer
	maxTags int
}

var _ gallery.View = (*terminalView)(nil)

// tagLimit follows the card rules: zero is the default and negative is no limit.
func (v *terminalView) tagLimit() int {
	if v.maxTags == 0 {
		return render.DefaultMaxCardTags
	}
	return v.maxTags
}

func (v *terminalView) RenderTags(tags []string, active string) {
	if len(tags) == 0 {
		return
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		if t == active {
			t = "[" + t + "]"
		}
		parts[i] = t
	}
	fmt.Fprintf(v.out, "Tags: %s\n\n", strings.Join(parts, "  "))
}

func (v *terminalView) RenderList(projects []catalog.Project) {
	if len(projects) == 0 {
		fmt.Fprintln(v.out, "No matches. Try a different search or filter.")
		return
	}
	for _, p := range projects {
		fmt.Fprintf(v.out, "%s  (%s)\n", p.Title, p.Slug)
		meta := p.Category
		if p.Stack != "" {
			meta += " • " + p.Stack
		}
		fmt.Fprintf(v.out, "    %s\n", meta)
		if p.Description != "" {
			fmt.Fprintf(v.out, "    %s\n", p.Description)
		}
		if tags := p.Tags; len(tags) > 0 {
			if limit := v.tagLimit(); limit > 0 && len(tags) > limit {
				tags = tags[:limit]
			}
			fmt.Fprintf(v.out, "    #%s\n", strings.Join(tags, " #"))
		}
		fmt.Fprintln(v.out)
	}
}

func (v *terminalView) ShowDetail(p catalog.Project) {
	d := render.NewDetail(p)
	fmt.Fprintln(v.out, d.Title)
	if d.Meta != "" {
		fmt.Fprintln(v.out, d.Meta)
	}
	if len(d.Badges) > 0 {
		fmt.Fprintf(v.out, "#%s\n", strings.Join(d.Badges, " #"))
	}
	for _, s := range []struct{ title, body string }{
		{"Problem", d.Problem},
		{"Approach", d.Approach},
	} {
		fmt.Fprintf(v.out, "\n%s\n  %s\n", s.title, s.body)
	}
	fmt.Fprintln(v.out, "\nControls")
	for _, c := range d.Controls {
		fmt.Fprintf(v.out, "  - %s\n", c)
	}
	fmt.Fprintf(v.out, "\nImpact\n  %s\n", d.Impact)
	if d.Repo != "" {
		fmt.Fprintf(v.out, "\nRepo →      %s\n", d.Repo)
	}
	if d.Demo != "" {
		fmt.Fprintf(v.out, "Docs/Demo → %s\n", d.Demo)
	}
}

func (v *terminalView) CloseDetail() {}

func (v *terminalView) ShowError(err error) {
	source := render.DefaultCatalogPath
	var loadErr *catalog.LoadError
	if errors.As(err, &loadErr) && loadErr.Source != "" {
		source = loadErr.Source
	}
	fmt.Fprintf(v.out, "Projects failed to load.\nMake sure %s exists and is valid JSON.\n", source)
}
