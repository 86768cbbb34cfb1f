// Package host assembles a running Collage: the container scene with its
// frames, focus handling, and the tick loop that drives the coordinator.
package host

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/collage"
	"github.com/aretw0/collage/internal/config"
	"github.com/aretw0/collage/internal/logging"
	"github.com/aretw0/collage/pkg/adapters/memory"
	"github.com/aretw0/collage/pkg/domain"
	"github.com/aretw0/collage/pkg/events"
)

// Container is the top-level scene hosting one miniframe per minigame.
//
// Clicking a disabled frame focuses it: that frame is enabled and captures the
// pointer while every other frame is disabled. Release gives input back to
// the container.
type Container struct {
	coord   *collage.Coordinator
	tree    *memory.Tree
	root    *memory.Node
	chrome  *memory.Node
	frames  []*memory.Miniframe
	focused domain.FrameID

	cancelClick events.CancelFunc
	logger      *slog.Logger
}

// ContainerOption configures a Container.
type ContainerOption func(*Container)

// WithContainerLogger sets the container's logger.
func WithContainerLogger(logger *slog.Logger) ContainerOption {
	return func(c *Container) {
		c.logger = logger
	}
}

// NewContainer builds the container scene described by cfg, mounts it as the
// tree's current scene, switches coord to container mode and registers one
// frame per layout entry, in layout order.
func NewContainer(cfg *config.Config, coord *collage.Coordinator, tree *memory.Tree, opts ...ContainerOption) (*Container, error) {
	c := &Container{
		coord:  coord,
		tree:   tree,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.root = memory.NewNode(cfg.Container.Name)
	c.chrome = memory.NewNode("Chrome")
	c.root.AddChild(c.chrome)

	lib := tree.Library()
	for _, fc := range cfg.Container.Frames {
		scene, err := lib.Load(fc.Scene)
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", fc.ID, err)
		}
		mf := memory.NewMiniframe(domain.FrameID(fc.ID), scene, lib)
		c.root.AddChild(mf.Node())
		c.frames = append(c.frames, mf)
	}

	tree.SetCurrentScene(c.root)
	coord.AttachContainer()
	for _, mf := range c.frames {
		coord.Register(mf)
	}
	c.cancelClick = coord.SubscribeFrameClicked(func(e domain.FrameClickedEvent) {
		c.Focus(e.FrameID)
	})
	return c, nil
}

// Root returns the container scene root.
func (c *Container) Root() *memory.Node {
	return c.root
}

// Chrome returns the container's own UI node, which lies outside every frame.
func (c *Container) Chrome() *memory.Node {
	return c.chrome
}

// Miniframe returns the frame created for id, live or not.
func (c *Container) Miniframe(id domain.FrameID) (*memory.Miniframe, bool) {
	for _, mf := range c.frames {
		if mf.ID() == id {
			return mf, true
		}
	}
	return nil, false
}

// Focused returns the focused frame, or "" when the container has input.
func (c *Container) Focused() domain.FrameID {
	return c.focused
}

// Focus enables the frame registered under id and disables all others.
// The focused frame captures the pointer.
func (c *Container) Focus(id domain.FrameID) {
	target, ok := c.coord.Frame(id)
	if !ok {
		c.logger.Warn("Cannot focus frame: not registered", "frame_id", id)
		return
	}
	for _, f := range c.coord.Miniframes().All() {
		if f.Valid() && f.ID() != id {
			f.SetEnabled(false)
			f.SetInputMode(domain.InputVisible)
		}
	}
	target.SetEnabled(true)
	target.SetInputMode(domain.InputCaptured)
	c.focused = id
	c.logger.Info("Frame focused", "frame_id", id)
}

// Release disables every frame and restores the visible pointer globally.
func (c *Container) Release() {
	for _, f := range c.coord.Miniframes().All() {
		if f.Valid() {
			f.SetEnabled(false)
			f.SetInputMode(domain.InputVisible)
		}
	}
	c.tree.SetInputMode(domain.InputVisible)
	if c.focused != "" {
		c.logger.Info("Frame released", "frame_id", c.focused)
	}
	c.focused = ""
}

// Forget drops focus if id was focused. Called when a frame is swept.
func (c *Container) Forget(ids ...domain.FrameID) {
	for _, id := range ids {
		if id == c.focused {
			c.focused = ""
		}
	}
	c.Sync()
}

// Active reports whether the container scene is still the tree's live
// top-level scene.
func (c *Container) Active() bool {
	return c.root.Valid() && c.tree.CurrentScene() == domain.Node(c.root)
}

// Sync leaves container mode once the container scene has been replaced.
// It reports whether the container is still active.
func (c *Container) Sync() bool {
	if c.Active() {
		return true
	}
	if c.coord.InContainer() {
		c.coord.DetachContainer()
		c.focused = ""
		c.logger.Info("Container scene replaced, leaving container mode")
	}
	return false
}

// Close stops reacting to frame clicks and leaves container mode.
func (c *Container) Close() {
	if c.cancelClick != nil {
		c.cancelClick()
		c.cancelClick = nil
	}
	c.coord.DetachContainer()
}

// Status describes every live registered frame in registration order.
func (c *Container) Status() []domain.FrameStatus {
	view := c.coord.Miniframes()
	out := make([]domain.FrameStatus, 0, view.Len())
	for _, f := range view.All() {
		if !f.Valid() {
			continue
		}
		st := domain.FrameStatus{
			ID:      f.ID(),
			Enabled: f.Enabled(),
			Focused: f.ID() == c.focused,
		}
		if mf, ok := c.Miniframe(f.ID()); ok {
			st.Scene = mf.ScenePath()
			st.InputMode = mf.InputMode().String()
		}
		out = append(out, st)
	}
	return out
}
