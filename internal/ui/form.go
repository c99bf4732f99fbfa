package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bookshelf/internal/state"
)

// initForm creates the three inputs with Title focused.
func (m *Model) initForm() {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = TitleCharLimit

	author := textinput.New()
	author.Placeholder = "Author"
	author.CharLimit = AuthorCharLimit

	description := textarea.New()
	description.Placeholder = "Description"
	description.CharLimit = DescriptionCharLimit
	description.ShowLineNumbers = false
	description.SetHeight(DescriptionHeight)

	m.title = title
	m.author = author
	m.description = description
	m.setFocus(focusTitle)
}

// formWidth returns the outer width of the form pane.
func (m Model) formWidth() int {
	if m.width < LayoutSplitWidth {
		return m.width
	}
	w := m.width * 40 / 100
	if m.width >= LayoutExtraWideWidth {
		w = m.width * 30 / 100
	}
	return max(w, FormMinWidth)
}

// resizeForm fits the inputs to the form pane.
func (m *Model) resizeForm() {
	// borders + left padding + right margin
	inner := max(m.formWidth()-4, 10)
	// textinput renders its prompt and cursor outside Width
	m.title.Width = max(inner-3, 1)
	m.author.Width = max(inner-3, 1)
	m.description.SetWidth(inner)
}

// renderForm renders the add-book form. A non-empty form error is shown
// beneath each of the three inputs.
func (m Model) renderForm(bgColor string) string {
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)
	form := m.snapshot.Form

	fields := []struct {
		label   string
		view    string
		focused bool
	}{
		{"Title", m.title.View(), m.focus == focusTitle},
		{"Author", m.author.View(), m.focus == focusAuthor},
		{"Description", m.description.View(), m.focus == focusDescription},
	}

	var lines []string
	for _, f := range fields {
		labelStyle := styles.MutedText
		if f.focused {
			labelStyle = styles.AccentText.Bold(true)
		}
		lines = append(lines, bg.Render(f.label, labelStyle))
		lines = append(lines, f.view)
		lines = append(lines, renderFieldError(form.Error, styles, bg))
	}

	lines = append(lines, m.renderAddButton(styles))

	return lipgloss.NewStyle().PaddingLeft(1).Render(strings.Join(lines, "\n"))
}

// renderFieldError renders the error line under an input. The line is kept
// even when empty so the form does not shift when an error appears.
func renderFieldError(message string, styles Styles, bg BgStyle) string {
	if message == "" {
		return ""
	}
	return bg.Render(message, styles.DangerText)
}

func (m Model) renderAddButton(styles Styles) string {
	label := "Add Book"
	if m.snapshot.Phase == state.PhaseSubmitting {
		label = "Adding…"
	}
	if m.focus == focusAddButton {
		return styles.ButtonFocused.Render(label)
	}
	return styles.Button.Render(label)
}
