package render

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes s for use in HTML text and quoted attribute values.
// Every catalog string goes through it before it is written into a card.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
