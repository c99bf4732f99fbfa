package ui

import (
	"fmt"
	"time"

	"github.com/five82/bookshelf/internal/state"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)
	compact := m.width < LayoutSplitWidth

	parts := []string{bg.Render("bookshelf", styles.Logo)}

	switch {
	case m.snapshot.ListError != "":
		parts = append(parts, bg.Render("● "+m.snapshot.ListError, styles.DangerText))
	case !m.snapshot.Loaded:
		parts = append(parts, bg.Render("Loading books...", styles.WarningText.Bold(true)))
	default:
		parts = append(parts, bg.Render(pluralize(len(m.snapshot.Books), "book", "books"), styles.Text))
	}

	if m.snapshot.Phase == state.PhaseSubmitting {
		parts = append(parts, bg.Render("Adding…", styles.InfoText))
	}

	if !compact && m.apiURL != "" {
		parts = append(parts, bg.Labeled("API", truncateMiddle(m.apiURL, 40), styles))
	}

	if ts := m.formatTimestamp(); ts != "" {
		parts = append(parts, bg.Labeled("Updated", ts, styles))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// formatTimestamp formats the last refresh time with relative indicator.
func (m Model) formatTimestamp() string {
	last := m.snapshot.LastUpdated
	if last.IsZero() {
		return ""
	}

	timeSince := time.Since(last)
	timeStr := last.Format("15:04:05")

	if timeSince < time.Minute {
		timeStr += " (now)"
	} else if timeSince < time.Hour {
		timeStr += fmt.Sprintf(" (%dm ago)", int(timeSince.Minutes()))
	} else if timeSince < 24*time.Hour {
		timeStr += fmt.Sprintf(" (%dh ago)", int(timeSince.Hours()))
	}

	return timeStr
}

// renderCommandBar renders the command hints bar for the focused element.
func (m Model) renderCommandBar() string {
	// Command bar uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.focus {
	case focusTitle, focusAuthor, focusDescription:
		commands = []cmd{
			{"Tab", "Next"},
			{"ctrl+s", "Add"},
			{"esc", "Books"},
			{"ctrl+c", "Quit"},
		}
	case focusAddButton:
		commands = []cmd{
			{"enter", "Add"},
			{"Tab", "Books"},
			{"r", "Refresh"},
			{"L", "Activity"},
			{"?", "More"},
		}
	default: // focusList
		commands = []cmd{
			{"j/k", "Navigate"},
			{"d", "Delete"},
			{"r", "Refresh"},
			{"Tab", "Form"},
			{"L", "Activity"},
			{"q", "Quit"},
			{"?", "More"},
		}
	}

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments, bg.Hint(c.key, c.desc, styles))
	}

	// Add theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+bg.Sep(":")+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(bg.Join(segments, "  "))
}
