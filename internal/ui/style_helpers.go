package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle renders text segments that share one background color. lipgloss
// resets the background after each styled segment, so plain spaces between
// segments would show the terminal background instead.
// See: https://github.com/charmbracelet/lipgloss/discussions/78
type BgStyle struct {
	bg   lipgloss.Color
	fill lipgloss.Style
}

// NewBgStyle creates a background helper for the given color.
func NewBgStyle(bgColor string) BgStyle {
	bg := lipgloss.Color(bgColor)
	return BgStyle{bg: bg, fill: lipgloss.NewStyle().Background(bg)}
}

// Render applies style with the shared background, including to the
// spaces between words.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	wordStyle := style.Background(b.bg)
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = wordStyle.Render(w)
		}
	}
	return strings.Join(words, b.Spaces(1))
}

// Spaces returns n background-colored spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return b.fill.Render(strings.Repeat(" ", n))
}

// Sep returns a background-colored separator.
func (b BgStyle) Sep(sep string) string {
	return b.fill.Render(sep)
}

// Join joins rendered parts with a background-colored separator.
func (b BgStyle) Join(parts []string, sep string) string {
	return strings.Join(parts, b.Sep(sep))
}

// Hint renders a "key:desc" pair as used in the command bars.
func (b BgStyle) Hint(key, desc string, styles Styles) string {
	return b.Render(key, styles.AccentText) + b.Sep(":") + b.Render(desc, styles.MutedText)
}

// Labeled renders a faint label followed by a value, e.g. "API http://...".
func (b BgStyle) Labeled(label, value string, styles Styles) string {
	return b.Render(label, styles.FaintText) + b.Spaces(1) + b.Render(value, styles.MutedText)
}
