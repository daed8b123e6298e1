package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/tmsim"
	"github.com/aretw0/tmsim/internal/adapters"
	"github.com/aretw0/tmsim/internal/config"
	"github.com/aretw0/tmsim/internal/logging"
	"github.com/aretw0/tmsim/pkg/adapters/memory"
	"github.com/aretw0/tmsim/pkg/adapters/redis"
	"github.com/aretw0/tmsim/pkg/observability"
	"github.com/aretw0/tmsim/pkg/ports"
)

// Options are the global command line settings.
// Non-empty values override the configuration file.
type Options struct {
	ConfigPath string
	Debug      bool
	LogFile    string
	Backend    string
	Dir        string
}

// App is the wired application shared by every command.
type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Engine  *tmsim.Engine
	Store   ports.ResultStore
	Metrics *observability.Metrics

	closers []io.Closer
}

// Close releases the log file and store connections.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Setup loads the configuration and builds the engine with standard CLI conventions.
func Setup(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Backend != "" {
		cfg.Store.Backend = opts.Backend
	}
	if opts.Dir != "" {
		cfg.Store.Dir = opts.Dir
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}
	if opts.Debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &App{Config: cfg, Metrics: observability.NewMetrics()}

	// 1. Logger
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if cfg.Log.File != "" {
		logger, closer, err := logging.NewWithFile(level, cfg.Log.File)
		if err != nil {
			return nil, err
		}
		app.Logger = logger
		app.closers = append(app.closers, closer)
	} else {
		app.Logger = logging.New(level)
	}

	// 2. Store
	app.Store, err = createStore(cfg.Store)
	if err != nil {
		return nil, err
	}
	if c, ok := app.Store.(io.Closer); ok {
		app.closers = append(app.closers, c)
	}

	// 3. Engine
	engineOpts := []tmsim.Option{
		tmsim.WithLogger(app.Logger),
		tmsim.WithLifecycleHooks(app.Metrics.Hooks(false)),
	}
	if opts.Debug {
		engineOpts = append(engineOpts, tmsim.WithLifecycleHooks(createDebugHooks(app.Logger)))
	}
	if app.Store != nil {
		engineOpts = append(engineOpts, tmsim.WithStore(app.Store))
	}
	app.Engine = tmsim.New(engineOpts...)

	app.Logger.Debug("application configured", "store", cfg.Store.Backend, "dir", cfg.Store.Dir)
	return app, nil
}

func createStore(cfg config.StoreConfig) (ports.ResultStore, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return adapters.NewFileStore(cfg.Dir), nil
	case config.BackendRedis:
		return redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithPrefix(cfg.Redis.Prefix),
			redis.WithTTL(cfg.Redis.TTL),
		), nil
	case config.BackendMemory:
		return memory.NewStore(), nil
	case config.BackendNone:
		return nil, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
}
