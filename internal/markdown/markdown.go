package markdown

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var renderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// ToHTML converts markdown text, including fenced code blocks, to HTML.
// Conversion failures degrade to the escaped source text rather than an
// error; provider output is display-only.
func ToHTML(source string) template.HTML {
	if source == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(buf.String())
}

// ExtractBullets normalizes bullet glyphs to "*" and returns the text of
// every top-level bullet line, in order. Non-bullet lines are dropped.
func ExtractBullets(source string) []string {
	if source == "" {
		return []string{}
	}
	normalized := strings.ReplaceAll(source, "•", "*")
	items := []string{}
	for _, line := range strings.Split(normalized, "\n") {
		if strings.HasPrefix(line, "* ") {
			items = append(items, strings.TrimPrefix(line, "* "))
		}
	}
	return items
}
