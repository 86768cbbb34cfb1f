package registry

import (
	"fmt"
	"iter"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/collage/internal/logging"
	"github.com/aretw0/collage/pkg/domain"
	"github.com/aretw0/collage/pkg/events"
	"github.com/aretw0/collage/pkg/ports"
)

// entry is one registered frame plus the click subscription the registry holds on it.
type entry struct {
	frame       ports.Frame
	id          domain.FrameID
	cancelClick func()
}

// Registry owns the live, ordered set of embedded frames.
//
// Frames are only ever added by Register and removed by Sweep. Destruction is
// never announced to the registry: liveness is polled on every sweep and
// re-checked whenever an entry is read.
type Registry struct {
	mu      sync.RWMutex
	entries []*entry

	clicked events.Channel[domain.FrameClickedEvent]
	hooks   domain.CoordinatorHooks
	logger  *slog.Logger
}

// Option configures the Registry.
type Option func(*Registry)

// WithLogger configures a logger for the Registry.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithHooks registers observability hooks for registration and sweep.
func WithHooks(hooks domain.CoordinatorHooks) Option {
	return func(r *Registry) {
		r.hooks = hooks
	}
}

// NewRegistry creates a new empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func alive(f ports.Frame) bool {
	return f != nil && f.Valid()
}

// sameFrame reports whether a and b are the same handle. Frames whose dynamic
// type is not comparable are never the same handle.
func sameFrame(a, b ports.Frame) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

// Register adds a frame to the registry.
//
// Invalid frames and frames that are already registered are rejected with a
// warning; Register never fails the caller. A newly registered frame is forced
// into the disabled state and its click notification is forwarded to the
// registry's clicked channel.
func (r *Registry) Register(frame ports.Frame) {
	if !alive(frame) {
		r.logger.Warn("Cannot register frame: instance is invalid")
		return
	}
	id := frame.ID()

	r.mu.Lock()
	for _, e := range r.entries {
		if sameFrame(e.frame, frame) {
			r.mu.Unlock()
			r.logger.Warn("Frame already registered", "frame_id", id)
			return
		}
		if e.id == id && alive(e.frame) {
			r.mu.Unlock()
			r.logger.Warn("Frame id already in use", "frame_id", id)
			return
		}
	}
	e := &entry{frame: frame, id: id}
	r.entries = append(r.entries, e)
	r.mu.Unlock()

	frame.SetEnabled(false)
	e.cancelClick = frame.OnClicked(func() {
		if !alive(frame) {
			return
		}
		r.clicked.Publish(domain.FrameClickedEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventFrameClicked},
			FrameID:   id,
		})
	})

	r.logger.Debug("Frame registered", "frame_id", id)
	if r.hooks.OnFrameRegistered != nil {
		r.hooks.OnFrameRegistered(&domain.FrameEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventFrameRegistered},
			FrameID:   id,
		})
	}
}

// Sweep removes every entry whose underlying frame is no longer valid and
// returns the IDs it removed. Surviving entries keep their relative order.
func (r *Registry) Sweep() []domain.FrameID {
	r.mu.Lock()
	var dead []*entry
	kept := make([]*entry, 0, len(r.entries))
	for _, e := range r.entries {
		if alive(e.frame) {
			kept = append(kept, e)
		} else {
			dead = append(dead, e)
		}
	}
	if len(dead) > 0 {
		r.entries = kept
	}
	r.mu.Unlock()

	if len(dead) == 0 {
		return nil
	}

	removed := make([]domain.FrameID, 0, len(dead))
	for _, e := range dead {
		if e.cancelClick != nil {
			e.cancelClick()
		}
		removed = append(removed, e.id)
		r.logger.Debug("Frame swept", "frame_id", e.id)
		if r.hooks.OnFrameSwept != nil {
			r.hooks.OnFrameSwept(&domain.FrameEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventFrameSwept},
				FrameID:   e.id,
			})
		}
	}
	return removed
}

// All returns a snapshot of the currently valid frames in registration order.
// A frame may still die after the snapshot is taken; callers re-check Valid.
func (r *Registry) All() []ports.Frame {
	r.mu.RLock()
	defer r.mu.RUnlock()

	frames := make([]ports.Frame, 0, len(r.entries))
	for _, e := range r.entries {
		if alive(e.frame) {
			frames = append(frames, e.frame)
		}
	}
	return frames
}

// Get returns the live frame registered under id.
func (r *Registry) Get(id domain.FrameID) (ports.Frame, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.id == id && alive(e.frame) {
			return e.frame, true
		}
	}
	return nil, false
}

// Len returns the number of entries, including ones not yet swept.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Miniframes returns a read-only view of the registered frames.
func (r *Registry) Miniframes() View {
	return View{frames: r.All()}
}

// SetMiniframes exists so that attempts to overwrite the registry fail loudly.
// It always panics with domain.ErrIllegalMutation.
func (r *Registry) SetMiniframes(frames ...ports.Frame) {
	r.logger.Error("Refusing direct write to miniframes", "attempted", len(frames))
	panic(fmt.Errorf("%w (use Register and Sweep)", domain.ErrIllegalMutation))
}

// SubscribeClicked registers fn for clicks on any registered frame.
func (r *Registry) SubscribeClicked(fn func(domain.FrameClickedEvent)) events.CancelFunc {
	return r.clicked.Subscribe(fn)
}

// View is an immutable snapshot of registered frames.
type View struct {
	frames []ports.Frame
}

// Len returns the number of frames in the view.
func (v View) Len() int {
	return len(v.frames)
}

// At returns the i-th frame in registration order.
func (v View) At(i int) ports.Frame {
	return v.frames[i]
}

// All iterates the frames in registration order.
func (v View) All() iter.Seq2[int, ports.Frame] {
	return func(yield func(int, ports.Frame) bool) {
		for i, f := range v.frames {
			if !yield(i, f) {
				return
			}
		}
	}
}

// IDs returns the frame IDs in registration order.
func (v View) IDs() []domain.FrameID {
	ids := make([]domain.FrameID, len(v.frames))
	for i, f := range v.frames {
		ids[i] = f.ID()
	}
	return ids
}
