package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// snippetMarkdown renders fenced code only. Raw HTML stays disabled so
// the snippet text can never inject markup.
var snippetMarkdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
)

// Snippet renders code as a highlighted block for the copy panel.
func Snippet(code, language string) (template.HTML, error) {
	code = strings.TrimRight(code, "\n")
	if strings.TrimSpace(code) == "" {
		return "", nil
	}
	fence := "```"
	for strings.Contains(code, fence) {
		fence += "`"
	}
	src := fence + language + "\n" + code + "\n" + fence + "\n"

	var buf bytes.Buffer
	if err := snippetMarkdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering snippet: %w", err)
	}
	return template.HTML(buf.String()), nil
}
