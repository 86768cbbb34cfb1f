package collage

import (
	"log/slog"

	"github.com/aretw0/collage/internal/runtime"
	"github.com/aretw0/collage/pkg/domain"
	"github.com/aretw0/collage/pkg/events"
	"github.com/aretw0/collage/pkg/ports"
	"github.com/aretw0/collage/pkg/registry"
)

// Coordinator is the high-level entry point for the Collage library.
// It wraps the internal runtime and provides the API consumed by minigame and UI code.
type Coordinator struct {
	runtime   *runtime.Coordinator
	hooks     domain.CoordinatorHooks
	logger    *slog.Logger
	container bool
}

// Option defines a functional option for configuring the Coordinator.
type Option func(*Coordinator)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.CoordinatorHooks) Option {
	return func(c *Coordinator) {
		c.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the coordinator.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

// WithContainer starts the coordinator in container mode instead of standalone.
func WithContainer() Option {
	return func(c *Coordinator) {
		c.container = true
	}
}

// New creates the process-wide coordinator. Global operations go to tree.
// Construct it once at host startup and pass it to every consumer.
func New(tree ports.SceneTree, opts ...Option) *Coordinator {
	c := &Coordinator{}
	for _, opt := range opts {
		opt(c)
	}

	runtimeOpts := []runtime.Option{
		runtime.WithLifecycleHooks(c.hooks),
		runtime.WithLogger(c.logger),
	}
	if c.container {
		runtimeOpts = append(runtimeOpts, runtime.WithContainer())
	}
	c.runtime = runtime.NewCoordinator(tree, runtimeOpts...)
	return c
}

// AttachContainer enters container mode.
func (c *Coordinator) AttachContainer() { c.runtime.AttachContainer() }

// DetachContainer returns to standalone mode.
func (c *Coordinator) DetachContainer() { c.runtime.DetachContainer() }

// InContainer reports whether a container is active.
func (c *Coordinator) InContainer() bool { return c.runtime.InContainer() }

// Register adds a frame to the registry. Invalid or duplicate frames are logged and ignored.
func (c *Coordinator) Register(frame ports.Frame) { c.runtime.Register(frame) }

// Tick sweeps destroyed frames from the registry. Call it once per host tick.
func (c *Coordinator) Tick() []domain.FrameID { return c.runtime.Tick() }

// Miniframes returns a read-only view of registered frames.
func (c *Coordinator) Miniframes() registry.View { return c.runtime.Miniframes() }

// SetMiniframes panics with domain.ErrIllegalMutation; the registry is read-only.
func (c *Coordinator) SetMiniframes(frames ...ports.Frame) { c.runtime.SetMiniframes(frames...) }

// Frame returns the live frame registered under id.
func (c *Coordinator) Frame(id domain.FrameID) (ports.Frame, bool) { return c.runtime.Frame(id) }

// Tree returns the host scene tree.
func (c *Coordinator) Tree() ports.SceneTree { return c.runtime.Tree() }

// ResolveContext returns the context node belongs to, falling back to Global.
func (c *Coordinator) ResolveContext(node domain.Node) domain.Context {
	return c.runtime.ResolveContext(node)
}

// LookupContext returns the context node belongs to; ok is false for nodes
// inside an active container but outside every frame.
func (c *Coordinator) LookupContext(node domain.Node) (domain.Context, bool) {
	return c.runtime.LookupContext(node)
}

// ReloadScene reloads the scene of node's context.
func (c *Coordinator) ReloadScene(node domain.Node) error {
	return c.runtime.ReloadScene(node)
}

// ChangeSceneToPacked changes the scene of node's context to an instance of scene.
func (c *Coordinator) ChangeSceneToPacked(node domain.Node, scene domain.PackedScene) error {
	return c.runtime.ChangeSceneToPacked(node, scene)
}

// ChangeSceneToFile changes the scene of node's context to the scene stored at path.
func (c *Coordinator) ChangeSceneToFile(node domain.Node, path string) error {
	return c.runtime.ChangeSceneToFile(node, path)
}

// CurrentScene returns the scene root of node's context.
func (c *Coordinator) CurrentScene(node domain.Node) domain.Node {
	return c.runtime.CurrentScene(node)
}

// SetInputMode sets pointer capture within node's context.
func (c *Coordinator) SetInputMode(node domain.Node, mode domain.InputMode) {
	c.runtime.SetInputMode(node, mode)
}

// ReportInteraction broadcasts a slot interaction tagged with origin's context.
func (c *Coordinator) ReportInteraction(raw domain.InputEvent, slot, origin domain.Node) {
	c.runtime.ReportInteraction(raw, slot, origin)
}

// SubscribeInteractions registers fn for all interactions.
func (c *Coordinator) SubscribeInteractions(fn func(domain.InteractionEvent)) events.CancelFunc {
	return c.runtime.SubscribeInteractions(fn)
}

// SubscribeInteractionsFor registers fn for interactions from node's own context.
func (c *Coordinator) SubscribeInteractionsFor(node domain.Node, fn func(domain.InteractionEvent)) events.CancelFunc {
	return c.runtime.SubscribeInteractionsFor(node, fn)
}

// SubscribeFrameClicked registers fn for clicks on disabled frames.
func (c *Coordinator) SubscribeFrameClicked(fn func(domain.FrameClickedEvent)) events.CancelFunc {
	return c.runtime.SubscribeFrameClicked(fn)
}
