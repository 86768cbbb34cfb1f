package runtime

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/aretw0/collage/internal/logging"
	"github.com/aretw0/collage/pkg/domain"
	"github.com/aretw0/collage/pkg/events"
	"github.com/aretw0/collage/pkg/ports"
	"github.com/aretw0/collage/pkg/registry"
)

// Coordinator mediates navigation, input mode and slot interactions between the
// host scene tree and the frames embedded in it.
//
// One Coordinator is constructed at host startup and passed to every consumer.
// Frame registration and the per-tick sweep are its only writers; all other
// operations resolve the caller's context on demand.
type Coordinator struct {
	tree      ports.SceneTree
	frames    *registry.Registry
	container atomic.Bool

	interactions events.Channel[domain.InteractionEvent]
	hooks        domain.CoordinatorHooks
	logger       *slog.Logger
}

// Option configures the Coordinator.
type Option func(*Coordinator)

// WithLogger sets a structured logger for the coordinator and its registry.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.CoordinatorHooks) Option {
	return func(c *Coordinator) {
		c.hooks = hooks
	}
}

// WithContainer starts the coordinator in container mode.
func WithContainer() Option {
	return func(c *Coordinator) {
		c.container.Store(true)
	}
}

// NewCoordinator creates a coordinator routing Global operations to tree.
// It starts in standalone mode unless WithContainer is given.
func NewCoordinator(tree ports.SceneTree, opts ...Option) *Coordinator {
	c := &Coordinator{
		tree:   tree,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.frames = registry.NewRegistry(
		registry.WithLogger(c.logger.With("component", "registry")),
		registry.WithHooks(c.hooks),
	)
	return c
}

// AttachContainer switches to container mode. The container calls it once it
// becomes the active top-level scene.
func (c *Coordinator) AttachContainer() {
	if !c.container.Swap(true) {
		c.logger.Info("Container attached")
	}
}

// DetachContainer switches back to standalone mode.
func (c *Coordinator) DetachContainer() {
	if c.container.Swap(false) {
		c.logger.Info("Container detached")
	}
}

// InContainer reports whether a container is the active top-level scene.
func (c *Coordinator) InContainer() bool {
	return c.container.Load()
}

// Tree returns the host scene tree.
func (c *Coordinator) Tree() ports.SceneTree {
	return c.tree
}

// Register adds a frame. Invalid or duplicate frames are logged and ignored.
func (c *Coordinator) Register(frame ports.Frame) {
	c.frames.Register(frame)
}

// Tick runs the per-tick maintenance: dead frames are swept from the registry.
// It returns the IDs of swept frames.
func (c *Coordinator) Tick() []domain.FrameID {
	return c.frames.Sweep()
}

// Miniframes returns a read-only view of the registered frames.
func (c *Coordinator) Miniframes() registry.View {
	return c.frames.Miniframes()
}

// SetMiniframes always panics: the registry only changes through Register and Tick.
func (c *Coordinator) SetMiniframes(frames ...ports.Frame) {
	c.frames.SetMiniframes(frames...)
}

// Frame returns the live frame registered under id.
func (c *Coordinator) Frame(id domain.FrameID) (ports.Frame, bool) {
	return c.frames.Get(id)
}

// SubscribeFrameClicked registers fn for clicks on disabled frames.
func (c *Coordinator) SubscribeFrameClicked(fn func(domain.FrameClickedEvent)) events.CancelFunc {
	return c.frames.SubscribeClicked(fn)
}

func (c *Coordinator) emitRoute(op string, ctx domain.Context, node domain.Node, err error) {
	if c.hooks.OnRoute == nil {
		return
	}
	name := ""
	if node != nil {
		name = node.Name()
	}
	c.hooks.OnRoute(&domain.RouteEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventRoute},
		Op:        op,
		Context:   ctx,
		Node:      name,
		Failed:    err != nil,
	})
}
