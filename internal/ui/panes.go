package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderContent lays out the form and book list panes: side by side on
// wide terminals, stacked otherwise.
func (m Model) renderContent() string {
	contentHeight := max(m.height-2, 4) // header + command bar

	formFocused := m.focus != focusList
	listFocused := m.focus == focusList
	formBg := paneBackground(m.theme, formFocused)
	listBg := paneBackground(m.theme, listFocused)

	formWidth := m.formWidth()
	formContent := m.renderForm(formBg)

	if m.width < LayoutSplitWidth {
		formHeight := min(lipgloss.Height(formContent)+2, contentHeight)
		listHeight := max(contentHeight-formHeight, 3)

		formPane := m.renderTitledBox("Add Book", formContent, m.width, formHeight, formFocused)
		listContent := m.renderBookList(m.width-2, listHeight-2, listBg)
		listPane := m.renderTitledBox(m.listTitle(), listContent, m.width, listHeight, listFocused)
		return lipgloss.JoinVertical(lipgloss.Left, formPane, listPane)
	}

	listWidth := m.width - formWidth
	formPane := m.renderTitledBox("Add Book", formContent, formWidth, contentHeight, formFocused)
	listContent := m.renderBookList(listWidth-2, contentHeight-2, listBg)
	listPane := m.renderTitledBox(m.listTitle(), listContent, listWidth, contentHeight, listFocused)

	// Join side-by-side
	return lipgloss.JoinHorizontal(lipgloss.Top, formPane, listPane)
}

func paneBackground(theme Theme, focused bool) string {
	if focused {
		return theme.FocusBg
	}
	return theme.SurfaceAlt
}

// renderTitledBox renders content inside a box with the title embedded in
// the top border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	bgColor := lipgloss.Color(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	// Build the top border with embedded title
	innerWidth := max(width-2, 0) // left and right border chars
	title = truncate(title, max(innerWidth-2, 0))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0) // spaces around title
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	clipStyle := lipgloss.NewStyle().MaxWidth(innerWidth)
	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(bgColor)

	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0) // top and bottom borders

	// Pad or truncate content lines
	paddedLines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = clipStyle.Render(contentLines[i])
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	if len(paddedLines) == 0 {
		return topBorder + "\n" + bottomBorder
	}
	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}
