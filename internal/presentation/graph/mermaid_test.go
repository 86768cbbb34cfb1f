package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/collage/internal/presentation/graph"
	"github.com/aretw0/collage/pkg/adapters/memory"
	"github.com/stretchr/testify/assert"
)

func scene() (*memory.Node, *memory.Miniframe) {
	lib := memory.NewLibrary(memory.NewPackedScene("res://game.scn", memory.NodeSpec{
		Name: "Game",
		Children: []memory.NodeSpec{
			{Name: "Bag", Props: memory.NodeProps{Slot: true, Item: "apple", Count: 2}},
			{Name: "Board"},
		},
	}))
	ps, _ := lib.Load("res://game.scn")

	container := memory.NewNode("Collage")
	mf := memory.NewMiniframe("left", ps, lib)
	container.AddChild(mf.Node())
	return container, mf
}

func TestGenerateMermaid(t *testing.T) {
	container, mf := scene()

	tests := []struct {
		name     string
		overlay  *graph.GraphOverlay
		contains []string
		excludes []string
	}{
		{
			name: "Shapes",
			contains: []string{
				"graph TD",
				`Collage["Collage"]`,
				`Collage_left_viewport_Game(("Game"))`,
				`Collage_left_viewport_Game_Bag[/"Bag <br/> apple x2"/]`,
				`Collage_left_viewport_Game_Board["Board"]`,
			},
			excludes: []string{"classDef"},
		},
		{
			name: "Edges",
			contains: []string{
				"Collage --> Collage_left",
				"Collage_left_viewport -.-> Collage_left_viewport_Game",
				"Collage_left_viewport_Game --> Collage_left_viewport_Game_Board",
			},
		},
		{
			name: "Overlay",
			overlay: &graph.GraphOverlay{
				Frames:  []string{mf.Node().Path()},
				Enabled: []string{mf.Node().Path(), mf.Node().Path()},
				Focused: mf.Node().Path(),
			},
			contains: []string{
				`Collage_left[["left"]]`,
				"class Collage_left enabled;",
				"class Collage_left current;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(container, tt.overlay)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, got, s)
			}
			if tt.overlay != nil {
				assert.Equal(t, 1, strings.Count(got, "class Collage_left enabled;"), "enabled frames are deduplicated")
			}
		})
	}
}

func TestGenerateMermaid_Destroyed(t *testing.T) {
	container, _ := scene()
	container.Destroy()
	assert.Equal(t, "graph TD\n", graph.GenerateMermaid(container, nil))
}
