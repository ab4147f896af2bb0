package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mwhitby/rolodex/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	var opts app.Options

	rootCmd := &cobra.Command{
		Use:   "rolodex",
		Short: "Browse a remote people directory from the terminal",
		Long: `Rolodex fetches a directory of people once at startup and lets you
search, filter by company, sort, and scroll through it page by page.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return app.Run(ctx, opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.ConfigPath, "config", "", "override config path (optional)")
	rootCmd.Flags().StringVar(&opts.PrefsPath, "prefs", "", "override preferences path (optional)")
	rootCmd.Flags().StringVar(&opts.Link, "link", "", `seed the query from a link, e.g. "?search=ali&company=Acme"`)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "rolodex: %v\n", err)
		return 1
	}
	return 0
}
