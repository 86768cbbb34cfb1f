package runtime_test

import (
	"testing"

	"github.com/aretw0/collage/internal/runtime"
	"github.com/aretw0/collage/pkg/adapters/memory"
	"github.com/aretw0/collage/pkg/domain"
	"github.com/stretchr/testify/require"
)

const (
	fishingPath = "res://fishing/main.scn"
	farmPath    = "res://farm/main.scn"
)

func fishingScene() *memory.PackedScene {
	return memory.NewPackedScene(fishingPath, memory.NodeSpec{
		Name: "Fishing",
		Children: []memory.NodeSpec{
			{Name: "Hud", Children: []memory.NodeSpec{
				{Name: "Slot1", Props: memory.NodeProps{Slot: true, Item: "worm"}},
			}},
		},
	})
}

func farmScene() *memory.PackedScene {
	return memory.NewPackedScene(farmPath, memory.NodeSpec{
		Name: "Farm",
		Children: []memory.NodeSpec{
			{Name: "Hud", Children: []memory.NodeSpec{
				{Name: "Slot1", Props: memory.NodeProps{Slot: true, Item: "seed"}},
			}},
		},
	})
}

// collage is a container scene with a chrome node and two frames, F1 (fishing) and F2 (farm).
type collage struct {
	lib    *memory.Library
	tree   *memory.Tree
	chrome *memory.Node
	f1     *memory.Miniframe
	f2     *memory.Miniframe
	coord  *runtime.Coordinator
}

func newCollage(t *testing.T, opts ...runtime.Option) *collage {
	t.Helper()
	lib := memory.NewLibrary(fishingScene(), farmScene())
	tree := memory.NewTree(lib)

	container := memory.NewNode("Collage")
	chrome := memory.NewNode("Chrome")
	container.AddChild(chrome)

	f1 := memory.NewMiniframe("f1", fishingScene(), lib)
	f2 := memory.NewMiniframe("f2", farmScene(), lib)
	container.AddChild(f1.Node())
	container.AddChild(f2.Node())
	tree.SetCurrentScene(container)

	coord := runtime.NewCoordinator(tree, append([]runtime.Option{runtime.WithContainer()}, opts...)...)
	coord.Register(f1)
	coord.Register(f2)
	require.Equal(t, 2, coord.Miniframes().Len())

	return &collage{lib: lib, tree: tree, chrome: chrome, f1: f1, f2: f2, coord: coord}
}

// slot returns the slot node of the scene currently loaded in f.
func slot(t *testing.T, f *memory.Miniframe) *memory.Node {
	t.Helper()
	root, ok := f.CurrentScene().(*memory.Node)
	require.True(t, ok)
	n := root.Find("Hud/Slot1")
	require.NotNil(t, n)
	return n
}

var (
	ctxF1 = domain.FrameContext("f1")
	ctxF2 = domain.FrameContext("f2")
)
