// Package ui provides the Bubble Tea terminal interface for bookshelf.
//
// # Architecture Overview
//
// Model follows the Elm architecture: Update handles a message and returns
// the next model plus an optional command, View renders the screen from the
// model. All network calls run as tea.Cmd functions against a books.Gateway
// and report back as messages; the state.Store is only mutated inside
// Update. After every message the model refreshes its cached snapshot of
// the store, so View is a pure function of that snapshot and the focus.
//
// # Package Structure
//
//   - app.go: Model, Options, Update/View, key routing and Run
//   - commands.go: messages and the commands that call the gateway
//   - form.go: the Title, Author and Description inputs and the Add Book button
//   - booklist.go: book cards, the empty state and list scrolling
//   - header.go: status bar and command hints
//   - panes.go: split/stacked layout and titled boxes
//   - activity.go: overlay showing the tail of the client log
//   - help.go: keyboard shortcut overlay
//   - theme.go, style_helpers.go: palettes and background-safe rendering
//
// # Workflows
//
// Adding a book: ctrl+s (or enter on Add Book) calls Store.BeginSubmit. An
// incomplete form sets "fields is required!" and sends nothing. Otherwise a
// create command runs; on success the inputs are cleared and exactly one
// fetch is issued, on failure the inputs are kept and an error is shown.
// The form error is rendered beneath each of the three inputs.
//
// Deleting a book: d, x or delete on the selected card sends Delete for its
// id, then a full fetch. Fetch and delete failures are shown as a list error
// while the previous collection stays on screen.
//
// Every fetch takes a generation from the store, and results older than one
// already applied are dropped.
//
// # Lifetime
//
// New derives a context from Options.Context. Quitting cancels it, which
// aborts any request still in flight.
//
// # Usage Example
//
//	err := ui.Run(ui.Options{
//		Context:   ctx,
//		Gateway:   client,
//		Store:     &state.Store{},
//		Logger:    logger,
//		APIURL:    cfg.APIURL,
//		LogFile:   cfg.LogFile,
//		ThemeName: userPrefs.Theme,
//	})
package ui
