package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"  padded  ", 10, "padded"},
		{"The Left Hand of Darkness", 10, "The Lef..."},
		{"abcdef", 3, "abc"},
		{"anything", 0, "anything"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	got := truncateMiddle("http://books.example.com/api/books", 15)
	if len([]rune(got)) != 15 {
		t.Fatalf("truncateMiddle length = %d, want 15 (%q)", len([]rune(got)), got)
	}
	if got[:7] != "http://" {
		t.Fatalf("truncateMiddle = %q, want prefix kept", got)
	}
	if want := "books"; got[len(got)-len(want):] != want {
		t.Fatalf("truncateMiddle = %q, want suffix %q kept", got, want)
	}
	if got := truncateMiddle("short", 15); got != "short" {
		t.Fatalf("truncateMiddle(short) = %q", got)
	}
}

func TestPluralize(t *testing.T) {
	if got := pluralize(1, "book", "books"); got != "1 book" {
		t.Fatalf("pluralize(1) = %q", got)
	}
	if got := pluralize(0, "book", "books"); got != "0 books" {
		t.Fatalf("pluralize(0) = %q", got)
	}
	if got := pluralize(12, "book", "books"); got != "12 books" {
		t.Fatalf("pluralize(12) = %q", got)
	}
}

func TestBgStyle_PreservesText(t *testing.T) {
	bg := NewBgStyle("#000000")
	styles := GetTheme("Nightfox").Styles()

	if got := bg.Render("by  Frank Herbert", styles.Text); !strings.Contains(got, "Frank") || lipgloss.Width(got) != len("by  Frank Herbert") {
		t.Fatalf("Render = %q, want text and spacing kept", got)
	}
	if got := bg.Render("", styles.Text); got != "" {
		t.Fatalf("Render(empty) = %q", got)
	}
	if got := lipgloss.Width(bg.Hint("d", "Delete", styles)); got != len("d:Delete") {
		t.Fatalf("Hint width = %d, want %d", got, len("d:Delete"))
	}
	if got := bg.Spaces(0); got != "" {
		t.Fatalf("Spaces(0) = %q", got)
	}
}
