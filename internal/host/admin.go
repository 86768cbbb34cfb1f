package host

import (
	"context"

	"github.com/aretw0/collage/pkg/domain"
)

// Admin serves the admin API from the host loop. Every call is marshalled
// onto the loop goroutine with Loop.Do.
type Admin struct {
	loop      *Loop
	container *Container
}

// NewAdmin creates an admin surface over container, driven through loop.
func NewAdmin(loop *Loop, container *Container) *Admin {
	return &Admin{loop: loop, container: container}
}

// Frames describes every live registered frame in registration order.
func (a *Admin) Frames(ctx context.Context) ([]domain.FrameStatus, error) {
	var out []domain.FrameStatus
	if err := a.loop.Do(ctx, func() {
		out = a.container.Status()
	}); err != nil {
		// fn may still be running on the loop; out is not ours to read.
		return nil, err
	}
	return out, nil
}

// Click simulates a select press on frame id. It reports whether the click
// was consumed, which only happens while the frame is disabled.
func (a *Admin) Click(ctx context.Context, id domain.FrameID) (bool, error) {
	var (
		consumed bool
		clickErr error
	)
	err := a.loop.Do(ctx, func() {
		mf, ok := a.container.Miniframe(id)
		if !ok || !mf.Valid() {
			clickErr = domain.ErrFrameGone
			return
		}
		consumed = mf.Click()
	})
	if err != nil {
		return false, err
	}
	return consumed, clickErr
}

// Release gives input back to the container.
func (a *Admin) Release(ctx context.Context) error {
	return a.loop.Do(ctx, a.container.Release)
}
