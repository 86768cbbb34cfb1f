package runtime_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/aretw0/collage/internal/logging"
	"github.com/aretw0/collage/internal/runtime"
	"github.com/aretw0/collage/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var leftClick = domain.InputEvent{Kind: "mouse_button", Button: 1, Pressed: true}

func TestInteraction_ContextTaggingEndToEnd(t *testing.T) {
	c := newCollage(t)
	f1Slot := slot(t, c.f1)

	// Listeners positioned inside each frame, filtering by their own context.
	var f1Got, f2Got, allGot []domain.InteractionEvent
	c.coord.SubscribeInteractionsFor(f1Slot, func(ev domain.InteractionEvent) { f1Got = append(f1Got, ev) })
	c.coord.SubscribeInteractionsFor(slot(t, c.f2), func(ev domain.InteractionEvent) { f2Got = append(f2Got, ev) })
	c.coord.SubscribeInteractions(func(ev domain.InteractionEvent) { allGot = append(allGot, ev) })

	c.coord.ReportInteraction(leftClick, f1Slot, f1Slot)

	require.Len(t, allGot, 1)
	assert.Equal(t, ctxF1, allGot[0].Context)
	assert.Same(t, f1Slot, allGot[0].Slot)
	assert.Same(t, f1Slot, allGot[0].Origin)
	assert.Equal(t, leftClick, allGot[0].Raw)
	assert.Equal(t, domain.EventInteraction, allGot[0].Type)

	assert.Len(t, f1Got, 1, "listener in F1 must act")
	assert.Empty(t, f2Got, "listener in F2 must not act")
}

func TestInteraction_ManualFilter(t *testing.T) {
	c := newCollage(t)
	listener := slot(t, c.f2)
	acted := 0

	c.coord.SubscribeInteractions(func(ev domain.InteractionEvent) {
		if ev.Context != c.coord.ResolveContext(listener) {
			return
		}
		acted++
	})

	c.coord.ReportInteraction(leftClick, slot(t, c.f1), slot(t, c.f1))
	assert.Equal(t, 0, acted)

	c.coord.ReportInteraction(leftClick, slot(t, c.f2), slot(t, c.f2))
	assert.Equal(t, 1, acted)
}

func TestInteraction_SubscriptionOrder(t *testing.T) {
	c := newCollage(t)
	var order []string
	c.coord.SubscribeInteractions(func(domain.InteractionEvent) { order = append(order, "first") })
	c.coord.SubscribeInteractions(func(domain.InteractionEvent) { order = append(order, "second") })
	cancel := c.coord.SubscribeInteractions(func(domain.InteractionEvent) { order = append(order, "third") })
	cancel()

	c.coord.ReportInteraction(leftClick, c.chrome, c.chrome)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestInteraction_InvalidInputIsNoop(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, slog.LevelDebug)
	var hooked int
	c := newCollage(t,
		runtime.WithLogger(logger),
		runtime.WithLifecycleHooks(domain.CoordinatorHooks{
			OnInteraction: func(*domain.InteractionEvent) { hooked++ },
		}),
	)
	origin := slot(t, c.f1)
	deadSlot := slot(t, c.f2)
	c.f2.Destroy()

	published := 0
	c.coord.SubscribeInteractions(func(domain.InteractionEvent) { published++ })

	c.coord.ReportInteraction(leftClick, deadSlot, origin)
	c.coord.ReportInteraction(leftClick, nil, origin)
	c.coord.ReportInteraction(leftClick, origin, nil)

	assert.Equal(t, 0, published)
	assert.Equal(t, 0, hooked)
	assert.Equal(t, []domain.FrameID{"f1"}, c.coord.Miniframes().IDs())
	assert.Contains(t, buf.String(), "level=WARN msg=\"Dropping interaction from destroyed node\"")
	assert.Contains(t, buf.String(), "level=ERROR msg=\"ReportInteraction called without origin or slot\"")
}

func TestInteraction_ListenerFollowsReload(t *testing.T) {
	c := newCollage(t)
	listener := slot(t, c.f1)
	acted := 0
	c.coord.SubscribeInteractionsFor(listener, func(domain.InteractionEvent) { acted++ })

	require.NoError(t, c.coord.ReloadScene(listener))

	// The listener's node died with the old instance; it must not react anymore.
	c.coord.ReportInteraction(leftClick, slot(t, c.f1), slot(t, c.f1))
	assert.Equal(t, 0, acted)
}

func TestInteraction_Standalone(t *testing.T) {
	c := newCollage(t)
	c.coord.DetachContainer()

	var got []domain.Context
	c.coord.SubscribeInteractionsFor(slot(t, c.f2), func(ev domain.InteractionEvent) { got = append(got, ev.Context) })

	// Standalone, everything shares the Global context.
	c.coord.ReportInteraction(leftClick, slot(t, c.f1), slot(t, c.f1))
	assert.Equal(t, []domain.Context{domain.Global}, got)
}
