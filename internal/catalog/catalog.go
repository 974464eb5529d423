package catalog

import "fmt"

// Catalog is the ordered, immutable set of projects loaded at startup.
// Insertion order is display order.
type Catalog struct {
	projects []Project
	bySlug   map[string]int
	byID     map[string]int
	raw      []byte
}

// New builds a Catalog from raw records, normalizing each one and assigning
// unique slugs in catalog order.
func New(records []Record) *Catalog {
	c := &Catalog{
		projects: make([]Project, 0, len(records)),
		bySlug:   make(map[string]int, len(records)),
		byID:     make(map[string]int, len(records)),
	}
	for _, r := range records {
		p := Normalize(r)
		p.Slug = c.uniqueSlug(Slugify(p.Title))
		p.ID = projectID(p.Slug)
		c.bySlug[p.Slug] = len(c.projects)
		c.byID[p.ID] = len(c.projects)
		c.projects = append(c.projects, p)
	}
	return c
}

// Empty returns a catalog with no projects.
func Empty() *Catalog { return New(nil) }

func (c *Catalog) uniqueSlug(base string) string {
	slug := base
	for n := 2; ; n++ {
		if _, taken := c.bySlug[slug]; !taken {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
}

// Len returns the number of projects.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.projects)
}

// Projects returns the projects in catalog order. The returned slice is a
// copy; callers may reorder or truncate it freely.
func (c *Catalog) Projects() []Project {
	if c == nil {
		return nil
	}
	out := make([]Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// Each calls fn for every project in catalog order.
func (c *Catalog) Each(fn func(Project)) {
	if c == nil {
		return
	}
	for _, p := range c.projects {
		fn(p)
	}
}

// Raw returns the JSON the catalog was parsed from, or nil when it was
// built in memory.
func (c *Catalog) Raw() []byte {
	if c == nil {
		return nil
	}
	return c.raw
}

// Lookup finds a project by slug or ID.
func (c *Catalog) Lookup(key string) (Project, bool) {
	if c == nil {
		return Project{}, false
	}
	if i, ok := c.bySlug[key]; ok {
		return c.projects[i], true
	}
	if i, ok := c.byID[key]; ok {
		return c.projects[i], true
	}
	return Project{}, false
}
