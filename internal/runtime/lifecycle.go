package runtime

import (
	"fmt"

	"github.com/aretw0/collage/pkg/domain"
	"github.com/aretw0/collage/pkg/ports"
)

// host picks the implementation that serves node's context.
// A nil host means the caller node is unusable and the operation must not run.
func (c *Coordinator) host(op string, node domain.Node) (ports.SceneHost, domain.Context) {
	if c.InContainer() && !domain.IsLive(node) {
		c.logger.Warn("Ignoring scene operation from invalid node", "op", op)
		return nil, domain.Global
	}
	frame, ctx, _ := c.resolve(node)
	if frame != nil {
		return frame, ctx
	}
	if c.tree == nil {
		c.logger.Error("No scene tree configured for global operations", "op", op)
		return nil, domain.Global
	}
	return c.tree, domain.Global
}

func invalidCaller(op string) error {
	return fmt.Errorf("%w: %s requires a live caller node", domain.ErrInvalidState, op)
}

// ReloadScene reloads the scene of node's context.
func (c *Coordinator) ReloadScene(node domain.Node) error {
	h, ctx := c.host(domain.OpReload, node)
	if h == nil {
		return invalidCaller(domain.OpReload)
	}
	err := h.ReloadScene()
	c.emitRoute(domain.OpReload, ctx, node, err)
	c.logRoute(domain.OpReload, ctx, err)
	return err
}

// ChangeSceneToPacked changes the scene of node's context to an instance of scene.
// The error is returned exactly as produced by the handling implementation.
func (c *Coordinator) ChangeSceneToPacked(node domain.Node, scene domain.PackedScene) error {
	h, ctx := c.host(domain.OpChangePacked, node)
	if h == nil {
		return invalidCaller(domain.OpChangePacked)
	}
	err := h.ChangeSceneToPacked(scene)
	c.emitRoute(domain.OpChangePacked, ctx, node, err)
	c.logRoute(domain.OpChangePacked, ctx, err)
	return err
}

// ChangeSceneToFile changes the scene of node's context to the scene at path.
// The error is returned exactly as produced by the handling implementation.
func (c *Coordinator) ChangeSceneToFile(node domain.Node, path string) error {
	h, ctx := c.host(domain.OpChangeFile, node)
	if h == nil {
		return invalidCaller(domain.OpChangeFile)
	}
	err := h.ChangeSceneToFile(path)
	c.emitRoute(domain.OpChangeFile, ctx, node, err)
	c.logRoute(domain.OpChangeFile, ctx, err, "path", path)
	return err
}

// CurrentScene returns the scene root of node's context.
func (c *Coordinator) CurrentScene(node domain.Node) domain.Node {
	h, ctx := c.host(domain.OpCurrentScene, node)
	if h == nil {
		return nil
	}
	root := h.CurrentScene()
	c.emitRoute(domain.OpCurrentScene, ctx, node, nil)
	return root
}

// SetInputMode sets pointer capture for node's context only. Within Global it
// affects the whole host process.
func (c *Coordinator) SetInputMode(node domain.Node, mode domain.InputMode) {
	h, ctx := c.host(domain.OpSetInputMode, node)
	if h == nil {
		return
	}
	h.SetInputMode(mode)
	c.emitRoute(domain.OpSetInputMode, ctx, node, nil)
	c.logger.Debug("Input mode set", "context", ctx, "mode", mode)
}

func (c *Coordinator) logRoute(op string, ctx domain.Context, err error, attrs ...any) {
	attrs = append([]any{"op", op, "context", ctx}, attrs...)
	if err != nil {
		c.logger.Warn("Scene operation failed", append(attrs, "err", err)...)
		return
	}
	c.logger.Debug("Scene operation routed", attrs...)
}
