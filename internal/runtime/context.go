package runtime

import (
	"github.com/aretw0/collage/pkg/domain"
	"github.com/aretw0/collage/pkg/ports"
)

// resolve finds the frame containing node.
//
// In standalone mode it returns (nil, Global, true) without looking at node.
// In container mode it scans valid frames in registration order and returns the
// first whose scene contains node; if none does it returns (nil, Global, false).
func (c *Coordinator) resolve(node domain.Node) (ports.Frame, domain.Context, bool) {
	if !c.InContainer() {
		return nil, domain.Global, true
	}
	if !domain.IsLive(node) {
		return nil, domain.Global, false
	}
	for _, f := range c.frames.All() {
		// The snapshot may already be stale.
		if !f.Valid() {
			continue
		}
		if f.Contains(node) {
			return f, domain.FrameContext(f.ID()), true
		}
	}
	return nil, domain.Global, false
}

// ResolveContext returns the context node belongs to.
//
// Outside a container every node resolves to Global. Inside a container a node
// that belongs to no frame (container chrome, or an invalid node) also resolves
// to Global; use LookupContext to tell those apart.
func (c *Coordinator) ResolveContext(node domain.Node) domain.Context {
	_, ctx, _ := c.resolve(node)
	return ctx
}

// LookupContext is ResolveContext without the Global fallback: ok is false when
// a container is active but node is not inside any frame.
func (c *Coordinator) LookupContext(node domain.Node) (domain.Context, bool) {
	_, ctx, ok := c.resolve(node)
	return ctx, ok
}
