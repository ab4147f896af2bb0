// Package app wires configuration, preferences, the directory client,
// and the deep-link seed into the UI.
package app

import (
	"context"
	"fmt"

	"github.com/mwhitby/rolodex/internal/config"
	"github.com/mwhitby/rolodex/internal/deeplink"
	"github.com/mwhitby/rolodex/internal/directory"
	"github.com/mwhitby/rolodex/internal/prefs"
	"github.com/mwhitby/rolodex/internal/ui"
)

// Options configure the Rolodex application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/rolodex/prefs.toml
	Link       string // optional deep link, e.g. "?search=ali&company=Acme"
}

// Run boots the Rolodex TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store := prefs.Open(opts.PrefsPath)

	client, err := directory.NewClient(cfg.Endpoint)
	if err != nil {
		return fmt.Errorf("init directory client: %w", err)
	}

	seed, err := deeplink.Parse(opts.Link)
	if err != nil {
		return fmt.Errorf("parse link: %w", err)
	}

	return ui.Run(ui.Options{
		Context: ctx,
		Fetcher: client,
		Prefs:   store,
		Config:  cfg,
		Seed:    seed,
	})
}
