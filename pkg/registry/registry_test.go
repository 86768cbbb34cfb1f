package registry_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/aretw0/collage/internal/logging"
	"github.com/aretw0/collage/pkg/domain"
	"github.com/aretw0/collage/pkg/ports"
	"github.com/aretw0/collage/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFrame is a minimal ports.Frame whose liveness is controlled by the test.
type fakeFrame struct {
	id      domain.FrameID
	dead    bool
	enabled bool
	clicks  []func()
}

func newFake(id string) *fakeFrame {
	return &fakeFrame{id: domain.FrameID(id), enabled: true}
}

func (f *fakeFrame) ID() domain.FrameID { return f.id }
func (f *fakeFrame) Valid() bool { return f != nil && !f.dead }
func (f *fakeFrame) Enabled() bool { return f.enabled }
func (f *fakeFrame) SetEnabled(v bool) { f.enabled = v }
func (f *fakeFrame) Contains(domain.Node) bool { return false }
func (f *fakeFrame) ReloadScene() error { return nil }
func (f *fakeFrame) ChangeSceneToFile(string) error { return nil }
func (f *fakeFrame) CurrentScene() domain.Node { return nil }
func (f *fakeFrame) SetInputMode(domain.InputMode) {}
func (f *fakeFrame) ChangeSceneToPacked(domain.PackedScene) error {
	return nil
}

func (f *fakeFrame) OnClicked(fn func()) func() {
	idx := len(f.clicks)
	f.clicks = append(f.clicks, fn)
	return func() { f.clicks[idx] = nil }
}

func (f *fakeFrame) click() {
	for _, fn := range f.clicks {
		if fn != nil {
			fn()
		}
	}
}

var _ ports.Frame = (*fakeFrame)(nil)

func TestRegistry_RegisterForcesDisabled(t *testing.T) {
	r := registry.NewRegistry()
	f := newFake("a")
	require.True(t, f.Enabled())

	r.Register(f)

	assert.False(t, f.Enabled(), "new frames never start active")
	assert.Equal(t, []domain.FrameID{"a"}, r.Miniframes().IDs())
}

func TestRegistry_DuplicateRegistrationIsRejected(t *testing.T) {
	var buf bytes.Buffer
	r := registry.NewRegistry(registry.WithLogger(logging.NewWithWriter(&buf, slog.LevelDebug)))
	f := newFake("a")

	r.Register(f)
	assert.NotContains(t, buf.String(), "level=WARN")

	r.Register(f)

	assert.Equal(t, 1, r.Len())
	assert.Len(t, f.clicks, 1, "the second call must not subscribe again")
	assert.Contains(t, buf.String(), `level=WARN msg="Frame already registered"`)
	assert.Equal(t, 1, strings.Count(buf.String(), "level=WARN"))
}

func TestRegistry_DuplicateIDIsRejected(t *testing.T) {
	r := registry.NewRegistry()
	r.Register(newFake("a"))
	r.Register(newFake("a"))
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_InvalidFrameIsRejected(t *testing.T) {
	var buf bytes.Buffer
	r := registry.NewRegistry(registry.WithLogger(logging.NewWithWriter(&buf, slog.LevelDebug)))

	r.Register(nil)
	var typedNil *fakeFrame
	r.Register(typedNil)
	dead := newFake("dead")
	dead.dead = true
	r.Register(dead)

	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 3, strings.Count(buf.String(), `level=WARN msg="Cannot register frame: instance is invalid"`))
}

// valueFrame is a non-comparable ports.Frame implemented on a value type.
type valueFrame struct {
	id   domain.FrameID
	tags []string
}

func (f valueFrame) ID() domain.FrameID { return f.id }
func (f valueFrame) Valid() bool { return true }
func (f valueFrame) Enabled() bool { return false }
func (f valueFrame) SetEnabled(bool) {}
func (f valueFrame) Contains(domain.Node) bool { return false }
func (f valueFrame) ReloadScene() error { return nil }
func (f valueFrame) ChangeSceneToFile(string) error { return nil }
func (f valueFrame) ChangeSceneToPacked(domain.PackedScene) error { return nil }
func (f valueFrame) CurrentScene() domain.Node { return nil }
func (f valueFrame) SetInputMode(domain.InputMode) {}
func (f valueFrame) OnClicked(func()) func() { return func() {} }

func TestRegistry_NonComparableFrames(t *testing.T) {
	var buf bytes.Buffer
	r := registry.NewRegistry(registry.WithLogger(logging.NewWithWriter(&buf, slog.LevelDebug)))

	assert.NotPanics(t, func() {
		r.Register(valueFrame{id: "a", tags: []string{"x"}})
		r.Register(valueFrame{id: "a", tags: []string{"x"}})
		r.Register(valueFrame{id: "b"})
	})

	assert.Equal(t, []domain.FrameID{"a", "b"}, r.Miniframes().IDs())
	assert.Contains(t, buf.String(), `level=WARN msg="Frame id already in use"`)
}

func TestRegistry_SweepPreservesOrder(t *testing.T) {
	r := registry.NewRegistry()
	f1, f2, f3 := newFake("f1"), newFake("f2"), newFake("f3")
	r.Register(f1)
	r.Register(f2)
	r.Register(f3)

	f2.dead = true

	// All() already hides the dead frame before the sweep runs.
	assert.Equal(t, []ports.Frame{f1, f3}, r.All())
	assert.Equal(t, 3, r.Len())

	removed := r.Sweep()
	assert.Equal(t, []domain.FrameID{"f2"}, removed)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []domain.FrameID{"f1", "f3"}, r.Miniframes().IDs())
}

func TestRegistry_SweepEmpty(t *testing.T) {
	r := registry.NewRegistry()
	assert.Nil(t, r.Sweep())
	assert.Equal(t, 0, r.Miniframes().Len())
}

func TestRegistry_ReRegisterAfterSweep(t *testing.T) {
	r := registry.NewRegistry()
	old := newFake("slot")
	r.Register(old)
	old.dead = true

	// The id is free again once its owner is dead, even before the sweep.
	replacement := newFake("slot")
	r.Register(replacement)
	r.Sweep()

	got, ok := r.Get("slot")
	require.True(t, ok)
	assert.Same(t, replacement, got)
}

func TestRegistry_ClickForwarding(t *testing.T) {
	r := registry.NewRegistry()
	f := newFake("a")
	r.Register(f)

	var got []domain.FrameID
	r.SubscribeClicked(func(e domain.FrameClickedEvent) {
		assert.Equal(t, domain.EventFrameClicked, e.Type)
		got = append(got, e.FrameID)
	})

	f.click()
	assert.Equal(t, []domain.FrameID{"a"}, got)

	// Sweeping a dead frame drops its click subscription.
	f.dead = true
	r.Sweep()
	f.click()
	assert.Equal(t, []domain.FrameID{"a"}, got)
}

func TestRegistry_Hooks(t *testing.T) {
	var registered, swept []domain.FrameID
	r := registry.NewRegistry(registry.WithHooks(domain.CoordinatorHooks{
		OnFrameRegistered: func(e *domain.FrameEvent) { registered = append(registered, e.FrameID) },
		OnFrameSwept:      func(e *domain.FrameEvent) { swept = append(swept, e.FrameID) },
	}))

	f := newFake("a")
	r.Register(f)
	f.dead = true
	r.Sweep()

	assert.Equal(t, []domain.FrameID{"a"}, registered)
	assert.Equal(t, []domain.FrameID{"a"}, swept)
}

func TestRegistry_SetMiniframesPanics(t *testing.T) {
	r := registry.NewRegistry()
	r.Register(newFake("a"))

	assert.PanicsWithError(t, domain.ErrIllegalMutation.Error()+" (use Register and Sweep)", func() {
		r.SetMiniframes(newFake("b"))
	})
	assert.Equal(t, []domain.FrameID{"a"}, r.Miniframes().IDs())
}

func TestView_Iteration(t *testing.T) {
	r := registry.NewRegistry()
	r.Register(newFake("a"))
	r.Register(newFake("b"))

	view := r.Miniframes()
	var ids []domain.FrameID
	for i, f := range view.All() {
		assert.Same(t, view.At(i), f)
		ids = append(ids, f.ID())
	}
	assert.Equal(t, []domain.FrameID{"a", "b"}, ids)
}
