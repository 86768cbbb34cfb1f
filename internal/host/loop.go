package host

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aretw0/collage"
	"github.com/aretw0/collage/internal/logging"
	"github.com/aretw0/collage/pkg/domain"
)

// ErrLoopStopped is returned by Do when the loop is not running.
var ErrLoopStopped = errors.New("host loop stopped")

// Loop is the cooperative host loop. It owns the scene runtime: every call
// into the coordinator, frames or nodes must run on the loop goroutine,
// either inside Run or through Do.
type Loop struct {
	coord    *collage.Coordinator
	interval time.Duration
	cmds     chan func()
	stopped  chan struct{}
	onSweep  func([]domain.FrameID)
	logger   *slog.Logger
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithLoopLogger sets the loop's logger.
func WithLoopLogger(logger *slog.Logger) LoopOption {
	return func(l *Loop) {
		l.logger = logger
	}
}

// WithSweepHandler is called on the loop goroutine with the IDs of frames
// removed by a tick.
func WithSweepHandler(fn func([]domain.FrameID)) LoopOption {
	return func(l *Loop) {
		l.onSweep = fn
	}
}

// NewLoop creates a loop ticking coord every interval.
func NewLoop(coord *collage.Coordinator, interval time.Duration, opts ...LoopOption) *Loop {
	l := &Loop{
		coord:    coord,
		interval: interval,
		cmds:     make(chan func()),
		stopped:  make(chan struct{}),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run ticks until ctx is cancelled. Commands submitted through Do run between
// ticks. Run must be called at most once.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.stopped)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.logger.Debug("Host loop started", "interval", l.interval)
	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("Host loop stopped")
			return ctx.Err()
		case <-ticker.C:
			l.Step()
		case cmd := <-l.cmds:
			cmd()
		}
	}
}

// Step runs one tick. Only call it from the loop goroutine or before Run.
func (l *Loop) Step() {
	swept := l.coord.Tick()
	if len(swept) == 0 {
		return
	}
	l.logger.Info("Swept destroyed frames", "frames", swept)
	if l.onSweep != nil {
		l.onSweep(swept)
	}
}

// Do runs fn on the loop goroutine and waits for it to finish. If ctx ends
// after fn was queued, Do returns early while fn still runs to completion, so
// callers must not read anything fn writes unless Do returned nil.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan struct{})
	cmd := func() {
		defer close(done)
		fn()
	}

	select {
	case l.cmds <- cmd:
	case <-l.stopped:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
