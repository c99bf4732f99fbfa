package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/bookshelf/internal/books"
	"github.com/five82/bookshelf/internal/prefs"
	"github.com/five82/bookshelf/internal/state"
)

// focusArea is the element that receives key presses.
type focusArea int

const (
	focusTitle focusArea = iota
	focusAuthor
	focusDescription
	focusAddButton
	focusList
	focusCount
)

func (f focusArea) next() focusArea { return (f + 1) % focusCount }
func (f focusArea) prev() focusArea { return (f - 1 + focusCount) % focusCount }

// isInput reports whether the focused element consumes typed text.
func (f focusArea) isInput() bool {
	return f == focusTitle || f == focusAuthor || f == focusDescription
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Gateway   books.Gateway
	Store     *state.Store
	Logger    *slog.Logger
	APIURL    string
	LogFile   string
	Refresh   time.Duration // zero disables auto-refresh
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	cancel    context.CancelFunc
	gateway   books.Gateway
	store     *state.Store
	logger    *slog.Logger
	keys      keyMap
	apiURL    string
	logFile   string
	prefsPath string
	refresh   time.Duration

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool
	focus  focusArea

	// Data state
	snapshot state.Snapshot

	// Form inputs
	title       textinput.Model
	author      textinput.Model
	description textarea.Model

	// Book list state
	selected int
	deleting string // id of the delete in flight

	// Overlays
	showHelp     bool
	showActivity bool
	activity     viewport.Model
	activityErr  error
	activityLog  []string
}

// New creates a new Bubble Tea model. The model owns a context derived from
// opts.Context; it is cancelled when the user quits so that requests still
// in flight are aborted.
func New(opts Options) Model {
	parent := opts.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:       ctx,
		cancel:    cancel,
		gateway:   opts.Gateway,
		store:     store,
		logger:    logger,
		keys:      DefaultKeyMap(),
		apiURL:    opts.APIURL,
		logFile:   opts.LogFile,
		prefsPath: prefsPath,
		refresh:   opts.Refresh,
		theme:     GetTheme(themeName),
		activity:  viewport.New(0, 0),
	}
	m.initForm()
	m.syncSnapshot()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		m.fetchBooks(),
	}
	if m.refresh > 0 {
		cmds = append(cmds, refreshTickCmd(m.refresh))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncSnapshot()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeForm()
		m.resizeActivity()
		return m, nil

	case booksLoadedMsg:
		if m.store.ApplyFetch(msg.gen, msg.books) {
			m.logger.Debug("books loaded", "count", len(msg.books), "generation", msg.gen)
		} else {
			m.logger.Debug("stale fetch dropped", "generation", msg.gen)
		}
		return m, nil

	case fetchFailedMsg:
		if m.store.FailFetch(msg.gen, state.MsgFetchFailed) {
			m.logger.Warn("load books failed", "error", msg.err)
		}
		return m, nil

	case bookCreatedMsg:
		return m.handleCreated(msg)

	case bookDeletedMsg:
		return m.handleDeleted(msg)

	case refreshTickMsg:
		return m, tea.Batch(m.fetchBooks(), refreshTickCmd(m.refresh))

	case activityMsg:
		m.activityLog = msg.lines
		m.activityErr = msg.err
		m.updateActivityViewport()
		return m, nil
	}

	// Cursor blink and other component messages go to the focused input.
	return m.updateFocusedInput(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.showActivity {
		return m.renderActivity()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.showActivity {
		return m.handleActivityKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus(m.focus.next())
	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus(m.focus.prev())
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Escape):
		if m.focus != focusList {
			return m, m.setFocus(focusList)
		}
		return m, nil
	}

	// Text inputs swallow everything else
	if m.focus.isInput() {
		return m.updateFocusedInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				m.logger.Warn("save prefs failed", "error", err)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Activity):
		m.showActivity = true
		m.resizeActivity()
		return m, loadActivityCmd(m.logFile)

	case key.Matches(msg, m.keys.Refresh):
		return m, m.fetchBooks()
	}

	switch m.focus {
	case focusAddButton:
		if key.Matches(msg, m.keys.Confirm) {
			return m.submit()
		}
	case focusList:
		return m.handleListKey(msg)
	}

	return m, nil
}

// handleListKey processes keyboard input for the book list.
func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	count := len(m.snapshot.Books)

	switch {
	case key.Matches(msg, m.keys.QuitList):
		return m.quit()
	case key.Matches(msg, m.keys.Delete):
		return m.deleteSelected()
	case key.Matches(msg, m.keys.Down):
		if m.selected < count-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		if count > 0 {
			m.selected = count - 1
		}
	}
	return m, nil
}

// quit cancels the model context and stops the program.
func (m Model) quit() (Model, tea.Cmd) {
	m.cancel()
	return m, tea.Quit
}

// submit runs the add-book workflow for the current form.
func (m Model) submit() (Model, tea.Cmd) {
	draft, ok := m.store.BeginSubmit()
	if !ok {
		snap := m.store.Snapshot()
		m.logger.Debug("add book not sent", "phase", snap.Phase, "outcome", snap.Outcome)
		return m, nil
	}
	m.logger.Debug("adding book", "title", draft.Title)
	return m, createBookCmd(m.ctx, m.gateway, draft)
}

func (m Model) handleCreated(msg bookCreatedMsg) (Model, tea.Cmd) {
	if !m.store.CompleteSubmit(msg.err) {
		m.logger.Warn("add book failed", "title", msg.draft.Title, "error", msg.err)
		return m, nil
	}

	m.logger.Info("book added", "title", msg.draft.Title, "author", msg.draft.Author)
	m.title.Reset()
	m.author.Reset()
	m.description.Reset()
	return m, m.fetchBooks()
}

// deleteSelected deletes the selected book. Only one delete runs at a time.
func (m Model) deleteSelected() (Model, tea.Cmd) {
	if m.deleting != "" || m.selected < 0 || m.selected >= len(m.snapshot.Books) {
		return m, nil
	}
	book := m.snapshot.Books[m.selected]
	m.deleting = book.ID
	m.logger.Debug("deleting book", "id", book.ID, "title", book.Title)
	return m, deleteBookCmd(m.ctx, m.gateway, book.ID)
}

func (m Model) handleDeleted(msg bookDeletedMsg) (Model, tea.Cmd) {
	m.deleting = ""
	if msg.err != nil {
		m.store.SetListError(state.MsgDeleteFailed)
		m.logger.Warn("delete book failed", "id", msg.id, "error", msg.err)
		return m, nil
	}
	m.logger.Info("book deleted", "id", msg.id)
	return m, m.fetchBooks()
}

// updateFocusedInput forwards msg to the focused input and mirrors the
// resulting value into the store.
func (m Model) updateFocusedInput(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
		m.store.SetField(state.FieldTitle, m.title.Value())
	case focusAuthor:
		m.author, cmd = m.author.Update(msg)
		m.store.SetField(state.FieldAuthor, m.author.Value())
	case focusDescription:
		m.description, cmd = m.description.Update(msg)
		m.store.SetField(state.FieldDescription, m.description.Value())
	}
	return m, cmd
}

// setFocus moves focus and updates the focus state of the inputs.
func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.title.Blur()
	m.author.Blur()
	m.description.Blur()

	switch f {
	case focusTitle:
		return m.title.Focus()
	case focusAuthor:
		return m.author.Focus()
	case focusDescription:
		return m.description.Focus()
	}
	return nil
}

// syncSnapshot refreshes the cached snapshot and keeps the selection in range.
func (m *Model) syncSnapshot() {
	m.snapshot = m.store.Snapshot()
	if m.selected >= len(m.snapshot.Books) {
		m.selected = len(m.snapshot.Books) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line 1: logo + status
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: command bar
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	// Main content
	b.WriteString(m.renderContent())

	return b.String()
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	m := New(opts)
	defer m.cancel()

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}

	p := tea.NewProgram(m, programOpts...)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
