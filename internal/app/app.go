package app

import (
	"context"
	"fmt"
	"time"

	"github.com/periscope-dev/periscope/internal/appicon"
	"github.com/periscope-dev/periscope/internal/config"
	"github.com/periscope-dev/periscope/internal/logging"
	"github.com/periscope-dev/periscope/internal/prefs"
	"github.com/periscope-dev/periscope/internal/state"
	"github.com/periscope-dev/periscope/internal/ui"
)

// Options configure the periscope application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/periscope/prefs.toml
	PollEvery  int    // seconds; zero uses default
}

// Run boots the periscope TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load shepherd config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	closeLog := logging.Init(logging.DefaultPath())
	defer closeLog()

	store := state.NewStore(userPrefs.MaxLines)
	resolver := appicon.New()

	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	p := newPoller(store, cfg.AgentLogPath(), userPrefs.MaxLines)

	// Populate the store before the UI starts, then poll in the background.
	p.refresh()
	p.start(ctx, interval)

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Config:    &cfg,
		Resolver:  resolver,
		PollTick:  interval,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
