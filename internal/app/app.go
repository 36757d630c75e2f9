package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/cardgrid/internal/cards"
	"github.com/five82/cardgrid/internal/config"
	"github.com/five82/cardgrid/internal/logging"
	"github.com/five82/cardgrid/internal/prefs"
	"github.com/five82/cardgrid/internal/state"
	"github.com/five82/cardgrid/internal/ui"
)

// Options configure the cardgrid application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/cardgrid/prefs.toml
	URL        string // overrides cards_url when set
	LogFile    string // overrides log_file when set
	Verbose    bool
}

// Run boots the cardgrid TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, opts.Verbose)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	logger.Info("starting",
		zap.String("url", cfg.CardsURL),
		zap.Duration("timeout", cfg.RequestTimeout),
		zap.String("theme", userPrefs.Theme))

	client := newClient(cfg, logger)
	controller := state.NewController(client, cfg.CardsURL, state.WithLogger(logger.Named("state")))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Quitting the UI tears everything else down.
		defer cancel()
		return ui.Run(gctx, ui.Options{
			Controller: controller,
			Prefs:      userPrefs,
			PrefsPath:  prefsPath,
			Source:     cfg.CardsURL,
			Logger:     logger.Named("ui"),
		})
	})
	g.Go(func() error {
		<-gctx.Done()
		controller.Close()
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("stopped")
	return nil
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if u := strings.TrimSpace(opts.URL); u != "" {
		cfg.CardsURL = u
	}
	if f := strings.TrimSpace(opts.LogFile); f != "" {
		path, err := config.ExpandPath(f)
		if err != nil {
			return config.Config{}, fmt.Errorf("log file: %w", err)
		}
		cfg.LogFile = path
	}
	return cfg, nil
}

func newClient(cfg config.Config, logger *zap.Logger) *cards.Client {
	return cards.NewClient(
		cards.WithTimeout(cfg.RequestTimeout),
		cards.WithLogger(logger.Named("client")),
	)
}
