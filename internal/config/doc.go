// Package config loads the book manager's configuration file.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/bookshelf/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. Empty or missing fields use defaults
//  5. BOOKSHELF_API_URL, when set, overrides api_url
//
// Command-line flags are applied on top of the result by the app package.
//
// # Default Values
//
//   - api_url: http://localhost:8000/books
//   - request_timeout: 10s
//   - refresh_interval: 0 (auto-refresh disabled)
//   - log_file: ~/.local/state/bookshelf/bookshelf.log
//
// # TOML Format
//
//	api_url = "http://localhost:8000/books"
//	request_timeout = "5s"
//	refresh_interval = "1m"
//	log_file = "~/.local/state/bookshelf/bookshelf.log"
//
// Durations use time.ParseDuration syntax and must not be negative.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML syntax errors and invalid durations. A missing file is
// not an error.
package config
