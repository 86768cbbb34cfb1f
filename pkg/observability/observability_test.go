package observability_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/aretw0/collage"
	"github.com/aretw0/collage/internal/logging"
	"github.com/aretw0/collage/pkg/adapters/memory"
	"github.com/aretw0/collage/pkg/domain"
	"github.com/aretw0/collage/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScene(t *testing.T, hooks domain.CoordinatorHooks) (*collage.Coordinator, *memory.Miniframe) {
	t.Helper()
	lib := memory.NewLibrary()
	lib.Add(memory.NewPackedScene("res://game.scn", memory.NodeSpec{
		Name:     "Game",
		Children: []memory.NodeSpec{{Name: "Slot", Props: memory.NodeProps{Slot: true}}},
	}))
	scene, err := lib.Load("res://game.scn")
	require.NoError(t, err)

	tree := memory.NewTree(lib)
	container := memory.NewNode("Container")
	mf := memory.NewMiniframe("game", scene, lib)
	container.AddChild(mf.Node())
	tree.SetCurrentScene(container)

	coord := collage.New(tree, collage.WithContainer(), collage.WithLifecycleHooks(hooks))
	coord.Register(mf)
	return coord, mf
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m := observability.NewMetrics(reg)
	coord, mf := newScene(t, m.Hooks())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.FramesRegistered))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FramesLive))

	slot := mf.CurrentScene().(*memory.Node).Find("Slot")
	require.NoError(t, coord.ReloadScene(slot))
	require.Error(t, coord.ChangeSceneToFile(mf.CurrentScene(), "res://missing.scn"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Routes.WithLabelValues(domain.OpReload, "frame:game", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Routes.WithLabelValues(domain.OpChangeFile, "frame:game", "true")))

	slot = mf.CurrentScene().(*memory.Node).Find("Slot")
	coord.ReportInteraction(domain.InputEvent{Kind: "mouse_button", Pressed: true}, slot, slot)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Interactions.WithLabelValues("frame:game")))

	mf.Destroy()
	coord.Tick()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FramesSwept))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.FramesLive))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Positive(t, count)
}

func TestNewMetrics_NilRegisterer(t *testing.T) {
	m := observability.NewMetrics(nil)
	m.Hooks().OnFrameRegistered(&domain.FrameEvent{FrameID: "x"})
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FramesRegistered))
}

func TestCombine(t *testing.T) {
	var order []string
	a := domain.CoordinatorHooks{OnRoute: func(*domain.RouteEvent) { order = append(order, "a") }}
	b := domain.CoordinatorHooks{
		OnRoute:      func(*domain.RouteEvent) { order = append(order, "b") },
		OnFrameSwept: func(*domain.FrameEvent) { order = append(order, "swept") },
	}

	h := observability.Combine(a, domain.CoordinatorHooks{}, b)
	h.OnRoute(&domain.RouteEvent{})
	h.OnFrameSwept(&domain.FrameEvent{})

	assert.Equal(t, []string{"a", "b", "swept"}, order)
	assert.Nil(t, h.OnFrameRegistered)
	assert.Nil(t, h.OnInteraction)
}

func TestLoggingHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, slog.LevelDebug)
	_, mf := newScene(t, observability.LoggingHooks(logger))

	mf.Destroy()
	assert.Contains(t, buf.String(), "frame_registered")
	assert.Contains(t, buf.String(), "frame_id=game")
}
