package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

type rendererKey struct {
	width int
	style string
}

// renderers caches glamour renderers; building one loads a full style sheet.
var renderers = map[rendererKey]*glamour.TermRenderer{}

func rendererFor(width int, style string) (*glamour.TermRenderer, error) {
	if width < 1 {
		width = 80
	}
	if style == "" {
		style = "dark"
	}
	key := rendererKey{width: width, style: style}
	if r, ok := renderers[key]; ok {
		return r, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	renderers[key] = r
	return r, nil
}

// RenderMarkdownWithStyle renders writing as rich terminal text using the
// given glamour style. The original text comes back if rendering fails.
func RenderMarkdownWithStyle(content string, width int, style string) string {
	if content == "" {
		return ""
	}

	r, err := rendererFor(width, style)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(rendered, "\n")
}
