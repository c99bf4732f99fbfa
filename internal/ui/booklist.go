package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bookshelf/internal/books"
)

// emptyListMessage is shown when the collection holds no books.
const emptyListMessage = "No books found. Add a new book to get started!"

// renderBookList renders the list pane content: the list error, then either
// the empty state or one card per book, scrolled so the selection is visible.
func (m Model) renderBookList(width, height int, bgColor string) string {
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	var head []string
	if m.snapshot.ListError != "" {
		head = append(head, bg.Render(m.snapshot.ListError, styles.DangerText), "")
	}

	if len(m.snapshot.Books) == 0 {
		msg := emptyListMessage
		if !m.snapshot.Loaded && m.snapshot.ListError == "" {
			msg = "Loading books..."
		}
		return strings.Join(append(head, bg.Render(msg, styles.MutedText)), "\n")
	}

	cards := bookCards(m.snapshot.Books, m.selected, m.focus == focusList, m.deleting, width, m.theme)
	body := windowCards(cards, m.selected, height-len(head))
	return strings.Join(append(head, body), "\n")
}

// bookCards renders one card per book. Every card shows the title, the
// author, the description and a Delete control.
func bookCards(collection []books.Book, selected int, listFocused bool, deleting string, width int, theme Theme) []string {
	styles := theme.Styles()
	// Card borders take two columns outside the style width.
	cardWidth := max(width-2, 10)
	textWidth := max(cardWidth-2, 8)

	cards := make([]string, 0, len(collection))
	for i, book := range collection {
		isSelected := listFocused && i == selected

		deleteLabel := "Delete"
		deleteStyle := styles.MutedText
		switch {
		case book.ID != "" && book.ID == deleting:
			deleteLabel = "Deleting…"
			deleteStyle = styles.WarningText
		case isSelected:
			deleteLabel = "[d] Delete"
			deleteStyle = styles.DangerText
		}

		body := lipgloss.NewStyle().Width(textWidth).Render(book.Description)
		content := strings.Join([]string{
			styles.Text.Bold(true).Render(truncate(book.Title, textWidth)),
			styles.MutedText.Render(truncate("by "+book.Author, textWidth)),
			styles.Text.Render(body),
			deleteStyle.Render(deleteLabel),
		}, "\n")

		cardStyle := styles.Card
		if isSelected {
			cardStyle = styles.CardSelected
		}
		cards = append(cards, cardStyle.Width(cardWidth).Render(content))
	}
	return cards
}

// windowCards joins as many cards as fit in height, starting from the top
// unless that would push the selected card out of view.
func windowCards(cards []string, selected, height int) string {
	if len(cards) == 0 {
		return ""
	}
	if selected < 0 || selected >= len(cards) {
		selected = 0
	}

	start := 0
	for start < selected && stackedHeight(cards[start:selected+1]) > height {
		start++
	}

	var out []string
	used := 0
	for _, card := range cards[start:] {
		h := lipgloss.Height(card)
		if used+h > height && len(out) > 0 {
			break
		}
		out = append(out, card)
		used += h
	}
	return strings.Join(out, "\n")
}

func stackedHeight(cards []string) int {
	total := 0
	for _, card := range cards {
		total += lipgloss.Height(card)
	}
	return total
}

// listTitle returns the list pane title with the book count.
func (m Model) listTitle() string {
	if !m.snapshot.Loaded {
		return "Books"
	}
	return "Books (" + strconv.Itoa(len(m.snapshot.Books)) + ")"
}
