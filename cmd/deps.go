package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/devroad/devroad/internal/config"
	"github.com/devroad/devroad/internal/logger"
	"github.com/devroad/devroad/internal/remote"
	"github.com/devroad/devroad/internal/scorecache"
	"github.com/devroad/devroad/internal/screen"
	"github.com/devroad/devroad/internal/session"
	"github.com/devroad/devroad/internal/store"
)

// catalogSource lists courses, lessons and flashcards and loads exercises.
// Both the local store and the remote client provide it.
type catalogSource interface {
	screen.Catalog
	session.Loader
}

// deps holds what a command needs, opened from the loaded configuration.
type deps struct {
	cfg    *config.Config
	log    *logger.Logger
	dbPath string
	st     *store.Store
	scores session.ScoreStore

	closers []func()
}

type setupOptions struct {
	// logToFile sends logs next to the database unless a file is
	// configured, so the TUI owns the terminal.
	logToFile bool
}

// setup loads the configuration, opens the store and builds the score
// store. Callers must Close the result.
func setup(cmd *cobra.Command, opts setupOptions) (*deps, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	logOpts := cfg.Log
	if opts.logToFile && logOpts.File == "" {
		logOpts.File = filepath.Join(filepath.Dir(dbPath), "devroad.log")
	}
	log, err := logger.New(logOpts)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	d := &deps{cfg: cfg, log: log, dbPath: dbPath}
	d.closers = append(d.closers, log.Sync)

	st, err := store.Open(dbPath)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	d.st = st
	d.closers = append(d.closers, func() { _ = st.Close() })

	if err := d.openScores(cmd.Context()); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

// resolveDBPath returns the database path using --db flag or DEVROAD_DB
// (both land in cfg.DB), then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

func (d *deps) openScores(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	switch d.cfg.ScoreBackend {
	case config.BackendRedis:
		sc, err := scorecache.New(ctx, scorecache.Options{
			Addr: d.cfg.Redis.Addr,
			Key:  d.cfg.Redis.Key,
		}, d.log)
		if err != nil {
			return fmt.Errorf("open score cache: %w", err)
		}
		d.scores = sc
		d.closers = append(d.closers, func() { _ = sc.Close() })
	case config.BackendMemory:
		d.scores = session.NewMemoryScoreStore(0)
	default:
		d.scores = d.st.ScoreRepo(d.cfg.User)
	}
	return nil
}

// catalog returns the remote backend when one is configured, else the
// local catalog.
func (d *deps) catalog() (catalogSource, error) {
	if !d.cfg.UsesRemote() {
		return d.st.CatalogRepo(), nil
	}
	c, err := remote.New(remote.Options{
		BaseURL: d.cfg.Remote.URL,
		APIKey:  d.cfg.Remote.APIKey,
		Timeout: d.cfg.Remote.Timeout,
		Logger:  d.log,
	})
	if err != nil {
		return nil, fmt.Errorf("remote catalog: %w", err)
	}
	return c, nil
}

// Close releases everything in reverse order of opening.
func (d *deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
	d.closers = nil
}
