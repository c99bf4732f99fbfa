package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/five82/bookshelf/internal/app"
)

const version = "0.1.0"

func main() {
	root := newRootCmd()

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "bookshelf",
		Short: "Terminal client for a books REST API",
		Long: `Bookshelf lists, adds and deletes books stored behind a REST API.

The API endpoint comes from --api-url, then BOOKSHELF_API_URL, then
api_url in ~/.config/bookshelf/config.toml.`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Version = version
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/bookshelf/config.toml)")
	flags.StringVar(&opts.APIURL, "api-url", "", "books collection endpoint, e.g. http://localhost:8000/books")
	flags.DurationVar(&opts.RefreshEvery, "refresh", 0, "auto-refresh interval, e.g. 30s (default off)")
	flags.BoolVar(&opts.Debug, "debug", false, "log requests at debug level")

	return cmd
}
