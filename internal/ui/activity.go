package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/bookshelf/internal/logtail"
)

// handleActivityKey processes keyboard input while the activity overlay is open.
func (m Model) handleActivityKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape),
		key.Matches(msg, m.keys.Activity),
		key.Matches(msg, m.keys.QuitList):
		m.showActivity = false
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, loadActivityCmd(m.logFile)

	case key.Matches(msg, m.keys.Top):
		m.activity.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.activity.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.activity, cmd = m.activity.Update(msg)
	return m, cmd
}

// resizeActivity fits the viewport inside the overlay box.
func (m *Model) resizeActivity() {
	m.activity.Width = max(m.width-4, 1)
	m.activity.Height = max(m.height-4, 1)
	m.updateActivityViewport()
}

// updateActivityViewport renders the loaded log lines into the viewport,
// coloring each by its level, and scrolls to the newest entry.
func (m *Model) updateActivityViewport() {
	styles := m.theme.Styles()

	var content string
	switch {
	case m.activityErr != nil:
		content = styles.DangerText.Render("Unable to read log: " + m.activityErr.Error())
	case len(m.activityLog) == 0:
		content = styles.MutedText.Render("No activity yet.")
	default:
		lines := make([]string, len(m.activityLog))
		for i, line := range m.activityLog {
			lines[i] = styles.LevelStyle(logtail.Level(line)).Render(truncate(line, m.activity.Width))
		}
		content = strings.Join(lines, "\n")
	}

	m.activity.SetContent(content)
	m.activity.GotoBottom()
}

// renderActivity renders the activity log overlay.
func (m Model) renderActivity() string {
	title := "Activity"
	if m.logFile != "" {
		title += " · " + truncateMiddle(m.logFile, max(m.width/2, 10))
	}

	box := m.renderTitledBox(title, m.activity.View(), m.width, m.height-1, true)

	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	hints := []string{
		bg.Hint("j/k", "Scroll", styles),
		bg.Hint("r", "Reload", styles),
		bg.Hint("esc", "Close", styles),
	}
	bar := styles.Header.Width(m.width).Render(bg.Join(hints, "  "))

	return box + "\n" + bar
}
