package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/rolodex/internal/config"
	"github.com/five82/rolodex/internal/directory"
	"github.com/five82/rolodex/internal/effects"
	"github.com/five82/rolodex/internal/history"
	"github.com/five82/rolodex/internal/logging"
	"github.com/five82/rolodex/internal/state"
	"github.com/five82/rolodex/internal/storage"
	"github.com/five82/rolodex/internal/ui"
)

// Options configure the rolodex application. Zero values keep the
// configured setting.
type Options struct {
	ConfigPath string
	StartPath  string
	StorePath  string
	Backend    string
	Endpoint   string
	Debounce   time.Duration
	Verbose    bool
}

// Run boots the rolodex TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg, err = applyOverrides(cfg, opts)
	if err != nil {
		return err
	}

	logger, flush, err := logging.New(logging.Options{Path: cfg.LogFile, Verbose: opts.Verbose})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer flush()

	kv, err := storage.Open(cfg.StoreBackend, cfg.StorePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logger.Warn("close store failed", zap.Error(err))
		}
	}()

	client, err := directory.NewClient(cfg.Endpoint, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init directory client: %w", err)
	}

	initial := InitialState(kv, opts.StartPath)
	logger.Info("starting",
		zap.String("endpoint", client.Endpoint()),
		zap.String("backend", cfg.StoreBackend),
		zap.String("store", cfg.StorePath),
		zap.String("route", initial.Route),
		zap.Int("favorites", len(initial.FavoriteContacts)))

	coord := effects.New(effects.Options{
		History:  history.New(initial.Route),
		Store:    kv,
		Searcher: client,
		Logger:   logger.Named("effects"),
		Quiet:    cfg.Debounce,
	})
	defer coord.Close()

	model := ui.New(ui.Options{
		Store:       state.NewStore(initial),
		Coordinator: coord,
		KV:          kv,
		Logger:      logger.Named("ui"),
		ThemeName:   storage.LoadTheme(kv, cfg.Theme),
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	program := ui.NewProgram(gctx, model)
	coord.SetDispatch(program.Send)

	g.Go(func() error {
		return watchStore(gctx, kv, logger.Named("watch"), program.Send, watchRetryInterval)
	})
	g.Go(func() error {
		defer cancel()
		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("run ui: %w", err)
		}
		return nil
	})

	err = g.Wait()
	logger.Info("stopped", zap.Error(err))
	return err
}

// applyOverrides layers command-line options over the loaded config.
func applyOverrides(cfg config.Config, opts Options) (config.Config, error) {
	if endpoint := strings.TrimSpace(opts.Endpoint); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if opts.Debounce > 0 {
		cfg.Debounce = opts.Debounce
	}
	if backend := strings.ToLower(strings.TrimSpace(opts.Backend)); backend != "" {
		switch backend {
		case storage.BackendFile, storage.BackendSQLite:
		default:
			return config.Config{}, fmt.Errorf("unknown storage backend %q", opts.Backend)
		}
		if backend != cfg.StoreBackend && cfg.StorePath == config.DefaultStorePath(cfg.StoreBackend) {
			cfg.StorePath = config.DefaultStorePath(backend)
		}
		cfg.StoreBackend = backend
	}
	if path := strings.TrimSpace(opts.StorePath); path != "" {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("store path: %w", err)
		}
		cfg.StorePath = expanded
	}
	return cfg, nil
}

// InitialState seeds the application state from storage and the start path.
func InitialState(kv storage.Store, startPath string) state.ApplicationState {
	return state.ApplicationState{
		SearchText:       storage.LoadSearchText(kv),
		Route:            normalizeRoute(startPath),
		Contacts:         []directory.Contact{},
		FavoriteContacts: storage.LoadFavorites(kv),
	}
}

func normalizeRoute(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return state.RouteHome
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
