package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/bookshelf/internal/books"
	"github.com/five82/bookshelf/internal/logtail"
)

// Messages

// booksLoadedMsg carries the collection returned by fetch gen.
type booksLoadedMsg struct {
	gen   uint64
	books []books.Book
}

type fetchFailedMsg struct {
	gen uint64
	err error
}

type bookCreatedMsg struct {
	draft books.Draft
	err   error
}

type bookDeletedMsg struct {
	id  string
	err error
}

type refreshTickMsg time.Time

type activityMsg struct {
	lines []string
	err   error
}

// Commands

// fetchBooks registers a new fetch generation with the store and returns
// the command that performs it.
func (m Model) fetchBooks() tea.Cmd {
	gen := m.store.BeginFetch()
	return fetchBooksCmd(m.ctx, m.gateway, gen)
}

func fetchBooksCmd(ctx context.Context, gw books.Gateway, gen uint64) tea.Cmd {
	return func() tea.Msg {
		list, err := gw.FetchAll(ctx)
		if err != nil {
			return fetchFailedMsg{gen: gen, err: err}
		}
		return booksLoadedMsg{gen: gen, books: list}
	}
}

func createBookCmd(ctx context.Context, gw books.Gateway, draft books.Draft) tea.Cmd {
	return func() tea.Msg {
		return bookCreatedMsg{draft: draft, err: gw.Create(ctx, draft)}
	}
}

func deleteBookCmd(ctx context.Context, gw books.Gateway, id string) tea.Cmd {
	return func() tea.Msg {
		return bookDeletedMsg{id: id, err: gw.Delete(ctx, id)}
	}
}

func refreshTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

func loadActivityCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, ActivityLineLimit)
		return activityMsg{lines: lines, err: err}
	}
}
