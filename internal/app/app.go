package app

import (
	"context"
	"fmt"
	"time"

	"github.com/aferro/curator/internal/api"
	"github.com/aferro/curator/internal/config"
	"github.com/aferro/curator/internal/logging"
	"github.com/aferro/curator/internal/prefs"
	"github.com/aferro/curator/internal/session"
	"github.com/aferro/curator/internal/state"
	"github.com/aferro/curator/internal/ui"
)

// Options configure the curator application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/curator/prefs.toml
	PollEvery  int    // seconds; zero uses default
}

// Run boots the curator TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	logger, closeLog, err := logging.Setup(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closeLog()

	client, err := api.NewClient(cfg.APIBase, time.Duration(cfg.TimeoutSeconds)*time.Second)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := &state.Store{}

	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// Background dashboard refresh; an initial pass populates the store
	// before the UI starts.
	refresh(ctx, store, client, logger)
	StartPoller(ctx, store, client, logger, interval)

	uiOpts := ui.Options{
		Context:  ctx,
		Client:   client,
		Store:    store,
		PollTick: interval,
		Credentials: session.Credentials{
			User:     cfg.AdminUser,
			Password: cfg.AdminPassword,
		},
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		LogFile:   cfg.LogFile,
		Logger:    logger,
	}
	return ui.Run(uiOpts)
}
