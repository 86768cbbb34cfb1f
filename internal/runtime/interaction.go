package runtime

import (
	"time"

	"github.com/aretw0/collage/pkg/domain"
	"github.com/aretw0/collage/pkg/events"
)

// ReportInteraction publishes a slot interaction tagged with origin's context.
//
// Every subscriber receives the event synchronously, in subscription order,
// before ReportInteraction returns. A nil or destroyed origin or slot is
// logged and dropped.
func (c *Coordinator) ReportInteraction(raw domain.InputEvent, slot domain.Node, origin domain.Node) {
	if origin == nil || slot == nil {
		c.logger.Error("ReportInteraction called without origin or slot",
			"has_origin", origin != nil, "has_slot", slot != nil)
		return
	}
	if !origin.Valid() || !slot.Valid() {
		c.logger.Warn("Dropping interaction from destroyed node",
			"origin", origin.Name(), "slot", slot.Name())
		return
	}

	ev := domain.InteractionEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventInteraction},
		Raw:       raw,
		Slot:      slot,
		Origin:    origin,
		Context:   c.ResolveContext(origin),
	}

	n := c.interactions.Publish(ev)
	c.logger.Debug("Interaction published", "slot", slot.Name(), "context", ev.Context, "subscribers", n)
	if c.hooks.OnInteraction != nil {
		c.hooks.OnInteraction(&ev)
	}
}

// SubscribeInteractions registers fn for every interaction, whatever its context.
func (c *Coordinator) SubscribeInteractions(fn func(domain.InteractionEvent)) events.CancelFunc {
	return c.interactions.Subscribe(fn)
}

// SubscribeInteractionsFor registers fn for interactions from the same context
// as node. The context of node is resolved again for every event, so the filter
// follows node if the frames around it change. Events stop once node is destroyed.
func (c *Coordinator) SubscribeInteractionsFor(node domain.Node, fn func(domain.InteractionEvent)) events.CancelFunc {
	return c.interactions.Subscribe(func(ev domain.InteractionEvent) {
		if !domain.IsLive(node) {
			return
		}
		if c.ResolveContext(node) != ev.Context {
			return
		}
		fn(ev)
	})
}
