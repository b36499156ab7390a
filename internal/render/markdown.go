// Package render formats answers for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders text as terminal markdown when enabled. The program makes
// one request per run, so the renderer is built on demand; any renderer
// failure falls back to the plain trimmed text.
func Markdown(text string, width int, enabled bool) string {
	clean := strings.TrimSpace(text)
	if clean == "" || !enabled {
		return clean
	}
	if width <= 0 {
		width = 100
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return clean
	}
	out, err := renderer.Render(clean)
	if err != nil {
		return clean
	}
	return out
}
