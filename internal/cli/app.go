package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/collage"
	"github.com/aretw0/collage/internal/config"
	"github.com/aretw0/collage/internal/host"
	"github.com/aretw0/collage/pkg/adapters/memory"
	"github.com/aretw0/collage/pkg/domain"
	"github.com/aretw0/collage/pkg/events"
	"github.com/aretw0/collage/pkg/observability"

	httpAdapter "github.com/aretw0/collage/pkg/adapters/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Options are the settings shared by every command.
type Options struct {
	ConfigPath string
	LogLevel   string
	Debug      bool
}

// App is an assembled host: scene runtime, coordinator, observability and loop.
type App struct {
	Config    *config.Config
	Tree      *memory.Tree
	Coord     *collage.Coordinator
	Container *host.Container
	Loop      *host.Loop
	Metrics   *observability.Metrics
	Registry  *prometheus.Registry
	Streams   *httpAdapter.StreamManager
	Logger    *slog.Logger

	cancelStream events.CancelFunc
}

// NewApp loads the layout and assembles a host. With standalone set, no
// container is built and the coordinator stays in standalone mode; the tree
// is then empty until a scene is loaded into it.
func NewApp(opts Options, standalone bool) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	level := opts.LogLevel
	if level == "" {
		level = cfg.LogLevel
	}
	logger, err := createLogger(opts.Debug, level)
	if err != nil {
		return nil, err
	}
	lib, err := cfg.Library()
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:   cfg,
		Tree:     memory.NewTree(lib),
		Registry: prometheus.NewRegistry(),
		Streams:  httpAdapter.NewStreamManager(logger.With("component", "stream")),
		Logger:   logger,
	}
	app.Registry.MustRegister(collectors.NewGoCollector())
	app.Metrics = observability.NewMetrics(app.Registry)

	hooks := observability.Combine(
		app.Metrics.Hooks(),
		app.Streams.Hooks(),
		observability.LoggingHooks(logger.With("component", "hooks")),
	)
	app.Coord = collage.New(app.Tree,
		collage.WithLogger(logger.With("component", "coordinator")),
		collage.WithLifecycleHooks(hooks),
	)
	app.cancelStream = app.Coord.SubscribeFrameClicked(app.Streams.FrameClicked)

	if !standalone {
		app.Container, err = host.NewContainer(cfg, app.Coord, app.Tree,
			host.WithContainerLogger(logger.With("component", "container")))
		if err != nil {
			return nil, fmt.Errorf("failed to build container: %w", err)
		}
	}

	app.Loop = host.NewLoop(app.Coord, cfg.Tick,
		host.WithLoopLogger(logger.With("component", "loop")),
		host.WithSweepHandler(app.onSweep),
	)
	return app, nil
}

func (a *App) onSweep(ids []domain.FrameID) {
	if a.Container != nil {
		a.Container.Forget(ids...)
	}
}

// Close releases subscriptions held by the app.
func (a *App) Close() {
	if a.cancelStream != nil {
		a.cancelStream()
	}
	if a.Container != nil {
		a.Container.Close()
	}
}
