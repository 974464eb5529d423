package catalog

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const (
	// DefaultTitle is shown when a record has no title.
	DefaultTitle = "Project"
	// DefaultCategory is shown when a record has no category.
	DefaultCategory = "Project"
)

// projectNamespace scopes the name-based UUIDs given to projects.
var projectNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://folio.dev/projects"))

// Record is one element of the projects.json array, exactly as written by
// the catalog author. Every field is optional.
type Record struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Category    string   `json:"category"`
	Stack       string   `json:"stack"`
	Description string   `json:"description"`
	Problem     string   `json:"problem"`
	Approach    string   `json:"approach"`
	Impact      string   `json:"impact"`
	Tags        []string `json:"tags"`
	Controls    []string `json:"controls"`
	Repo        *string  `json:"repo"`
	Demo        *string  `json:"demo"`
}

// Project is a normalized Record. All defaults have been applied, so render
// code never needs to check for missing fields.
type Project struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Category    string   `json:"category"`
	Stack       string   `json:"stack"`
	Description string   `json:"description"`
	Problem     string   `json:"problem"`
	Approach    string   `json:"approach"`
	Impact      string   `json:"impact"`
	Tags        []string `json:"tags"`
	Controls    []string `json:"controls"`
	Repo        string   `json:"repo,omitempty"`
	Demo        string   `json:"demo,omitempty"`
}

// HasTag reports whether tag is one of the project's tags. Matching is exact.
func (p Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Normalize applies the documented defaults to r. The slug is left empty;
// Catalog assigns slugs because uniqueness depends on the other records.
func Normalize(r Record) Project {
	p := Project{
		Title:       r.Title,
		Subtitle:    r.Subtitle,
		Category:    r.Category,
		Stack:       r.Stack,
		Description: r.Description,
		Problem:     r.Problem,
		Approach:    r.Approach,
		Impact:      r.Impact,
		Tags:        copyStrings(r.Tags),
		Controls:    copyStrings(r.Controls),
	}
	if p.Title == "" {
		p.Title = DefaultTitle
	}
	if p.Category == "" {
		p.Category = DefaultCategory
	}
	if r.Repo != nil {
		p.Repo = SafeURL(*r.Repo)
	}
	if r.Demo != nil {
		p.Demo = SafeURL(*r.Demo)
	}
	return p
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// SafeURL returns raw if it is a link the gallery may render, or "" if it
// should be treated as absent. Relative references and http, https and
// mailto URLs are allowed.
func SafeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto":
		return raw
	default:
		return ""
	}
}

// Slugify converts a title into a lowercase, hyphen-separated path segment.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "project"
	}
	return slug
}

func projectID(slug string) string {
	return uuid.NewSHA1(projectNamespace, []byte(slug)).String()
}
