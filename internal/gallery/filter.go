// Package gallery holds the pure filtering logic for the project gallery
// and the controller that drives a View from user input.
package gallery

import (
	"strings"

	"github.com/ziadkadry99/folio/internal/catalog"
)

// AllTag is the pseudo-tag that disables tag filtering. It is always the
// first entry of the tag vocabulary.
const AllTag = "All"

// FilterState is the user's current tag selection and search text.
type FilterState struct {
	Tag   string `json:"tag"`
	Query string `json:"query"`
}

// DefaultState returns the state a fresh gallery starts with.
func DefaultState() FilterState {
	return FilterState{Tag: AllTag}
}

// ActiveTag returns the selected tag, treating an empty tag as AllTag.
func (s FilterState) ActiveTag() string {
	if s.Tag == "" {
		return AllTag
	}
	return s.Tag
}

// VisibleProjects returns the projects matching both the tag and the query,
// in catalog order.
func VisibleProjects(c *catalog.Catalog, tag, query string) []catalog.Project {
	state := FilterState{Tag: tag, Query: query}
	needle := strings.ToLower(strings.TrimSpace(query))

	visible := []catalog.Project{}
	c.Each(func(p catalog.Project) {
		if matchesTag(p, state.ActiveTag()) && matchesText(p, needle) {
			visible = append(visible, p)
		}
	})
	return visible
}

// Visible is VisibleProjects for a FilterState.
func (s FilterState) Visible(c *catalog.Catalog) []catalog.Project {
	return VisibleProjects(c, s.Tag, s.Query)
}

// Matches reports whether a single project is visible under s.
func (s FilterState) Matches(p catalog.Project) bool {
	return matchesTag(p, s.ActiveTag()) && matchesText(p, strings.ToLower(strings.TrimSpace(s.Query)))
}

func matchesTag(p catalog.Project, tag string) bool {
	return tag == AllTag || p.HasTag(tag)
}

// matchesText expects needle to be trimmed and lowercased already.
func matchesText(p catalog.Project, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Haystack(p), needle)
}

// Haystack is the lowercased text a query is matched against: title,
// subtitle, stack, description, every tag and every control, space-joined.
func Haystack(p catalog.Project) string {
	parts := make([]string, 0, 4+len(p.Tags)+len(p.Controls))
	parts = append(parts, p.Title, p.Subtitle, p.Stack, p.Description)
	parts = append(parts, p.Tags...)
	parts = append(parts, p.Controls...)
	return strings.ToLower(strings.Join(parts, " "))
}
