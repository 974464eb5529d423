package gallery

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ziadkadry99/folio/internal/catalog"
)

// TagVocabulary returns AllTag followed by every distinct tag in the catalog,
// sorted for English readers.
func TagVocabulary(c *catalog.Catalog) []string {
	return TagVocabularyFor(c, language.English)
}

// TagVocabularyFor is TagVocabulary with locale-aware ordering for lang.
// Tags the collator considers equal are ordered bytewise so the result is
// deterministic.
func TagVocabularyFor(c *catalog.Catalog, lang language.Tag) []string {
	seen := map[string]bool{AllTag: true}
	var tags []string
	c.Each(func(p catalog.Project) {
		for _, t := range p.Tags {
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			tags = append(tags, t)
		}
	})

	col := collate.New(lang)
	sort.Slice(tags, func(i, j int) bool {
		if cmp := col.CompareString(tags[i], tags[j]); cmp != 0 {
			return cmp < 0
		}
		return tags[i] < tags[j]
	})

	return append([]string{AllTag}, tags...)
}

// ParseLocale parses a BCP 47 tag, falling back to English.
func ParseLocale(s string) language.Tag {
	if s == "" {
		return language.English
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	return tag
}
