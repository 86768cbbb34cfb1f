// Package events provides an ordered, synchronous publish/subscribe channel.
//
// Publish delivers a value to every subscriber in subscription order before it
// returns. The subscriber list is snapshotted at the start of each Publish, so
// handlers may subscribe or unsubscribe freely while a dispatch is in flight:
// new subscribers see the next value, cancelled ones are skipped immediately.
package events

import (
	"sync"
	"sync/atomic"
)

// Handler receives published values.
type Handler[T any] func(T)

// CancelFunc removes a subscription. It is safe to call more than once.
type CancelFunc func()

type subscriber[T any] struct {
	fn        Handler[T]
	cancelled atomic.Bool
}

// Channel is a typed broadcast channel.
// The zero value is ready to use.
type Channel[T any] struct {
	mu   sync.Mutex
	subs []*subscriber[T]
}

// Subscribe appends fn to the delivery list and returns its cancel function.
// A nil handler is ignored and yields a no-op cancel.
func (c *Channel[T]) Subscribe(fn Handler[T]) CancelFunc {
	if fn == nil {
		return func() {}
	}
	sub := &subscriber[T]{fn: fn}

	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()

	return func() {
		if sub.cancelled.Swap(true) {
			return
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s == sub {
				// Copy instead of re-slicing in place so in-flight snapshots stay intact.
				next := make([]*subscriber[T], 0, len(c.subs)-1)
				next = append(next, c.subs[:i]...)
				c.subs = append(next, c.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers v to every current subscriber, in order, and returns how many
// handlers were invoked.
func (c *Channel[T]) Publish(v T) int {
	c.mu.Lock()
	snapshot := c.subs
	c.mu.Unlock()

	delivered := 0
	for _, sub := range snapshot {
		if sub.cancelled.Load() {
			continue
		}
		sub.fn(v)
		delivered++
	}
	return delivered
}

// Len returns the number of active subscribers.
func (c *Channel[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}
