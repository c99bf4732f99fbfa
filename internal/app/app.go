package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/five82/bookshelf/internal/books"
	"github.com/five82/bookshelf/internal/config"
	"github.com/five82/bookshelf/internal/prefs"
	"github.com/five82/bookshelf/internal/state"
	"github.com/five82/bookshelf/internal/ui"
)

// Options configure the bookshelf application. Non-zero fields override the
// config file and environment.
type Options struct {
	ConfigPath   string
	PrefsPath    string        // empty uses default ~/.config/bookshelf/prefs.toml
	APIURL       string        // overrides api_url and BOOKSHELF_API_URL
	RefreshEvery time.Duration // overrides refresh_interval
	Debug        bool
	Version      string
}

// Run boots the bookshelf TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyOverrides(&cfg, opts)

	logger, closeLog, err := NewLogger(cfg.LogFile, opts.Debug)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := books.NewClient(cfg.APIURL,
		books.WithTimeout(cfg.RequestTimeout),
		books.WithLogger(logger.With("component", "api")),
		books.WithUserAgent(userAgent(opts.Version)),
	)
	if err != nil {
		return fmt.Errorf("init books client: %w", err)
	}

	logger.Info("bookshelf starting",
		"api_url", client.BaseURL(),
		"timeout", cfg.RequestTimeout,
		"refresh", cfg.RefreshInterval,
	)

	err = ui.Run(ui.Options{
		Context:   ctx,
		Gateway:   client,
		Store:     &state.Store{},
		Logger:    logger.With("component", "ui"),
		APIURL:    client.BaseURL(),
		LogFile:   cfg.LogFile,
		Refresh:   cfg.RefreshInterval,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
	if err != nil {
		logger.Error("ui exited", "error", err)
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("bookshelf stopped")
	return nil
}

// applyOverrides layers command-line values over the loaded config.
func applyOverrides(cfg *config.Config, opts Options) {
	if v := strings.TrimSpace(opts.APIURL); v != "" {
		cfg.APIURL = v
	}
	if opts.RefreshEvery > 0 {
		cfg.RefreshInterval = opts.RefreshEvery
	}
}

func userAgent(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	return "bookshelf/" + version
}
