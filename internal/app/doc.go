// Package app provides the orchestration layer for bookshelf.
//
// # Overview
//
// This package is the composition root: it loads configuration, opens the
// log file, builds the books API client and the state store, and hands them
// to the UI.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Read config.toml, then BOOKSHELF_API_URL
//	       ├─────> applyOverrides()   Command-line flags win
//	       ├─────> NewLogger()        slog text handler on the log file
//	       ├─────> prefs.Load()       Theme preference
//	       ├─────> books.NewClient()  HTTP gateway for /books
//	       ├─────> state.Store{}      Explicit state container
//	       └─────> ui.Run()           Start TUI (blocks)
//
// There is no background poller. The UI issues every request itself as a
// Bubble Tea command, and an optional refresh interval re-fetches the
// collection on a tick.
//
// # Error Handling
//
// Startup problems (invalid config, unusable log path, malformed API URL)
// are returned from Run wrapped with context. Request failures after
// startup are handled inside the UI and shown to the user.
//
// # Usage Example
//
//	err := app.Run(ctx, app.Options{
//		APIURL:  "http://localhost:8000/books",
//		Debug:   true,
//		Version: version,
//	})
package app
