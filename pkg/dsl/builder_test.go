package dsl

import (
	"testing"

	"github.com/aretw0/collage/pkg/adapters/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Library(t *testing.T) {
	b := New()

	b.Scene("res://fishing/main.scn", "Fishing").
		Add("Pond").
		Add("Hud/Bait").Slot().Item("worm", 3).
		Add("Hud/Catch").Slot().Label("empty net")

	b.Scene("res://farm/main.scn", "Farm").
		Add("Hud/Seeds").Slot()

	lib, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"res://farm/main.scn", "res://fishing/main.scn"}, lib.Paths())

	ps, err := lib.Load("res://fishing/main.scn")
	require.NoError(t, err)
	root := ps.Instantiate()
	assert.Equal(t, "Fishing", root.Name())
	assert.Len(t, root.Children(), 2, "Hud is created once")

	bait := root.Find("Hud/Bait")
	require.NotNil(t, bait)
	assert.Equal(t, memory.NodeProps{Slot: true, Item: "worm", Count: 3}, bait.Props())
	assert.Equal(t, "empty net", root.Find("Hud/Catch").Props().Label)
}

func TestBuilder_Reuse(t *testing.T) {
	b := New()
	s := b.Scene("res://a.scn", "A")
	assert.Same(t, s, b.Scene("res://a.scn", "ignored"))
	assert.Same(t, s.Add("X/Y"), s.Add("/X/Y/"))
	assert.Same(t, s.Root(), s.Add(""))
}

func TestBuilder_Errors(t *testing.T) {
	b := New()
	b.Scene("res://a.scn", "")
	_, err := b.Build()
	assert.Error(t, err)

	b = New()
	b.Scene("res://b.scn", "B").Add("../escape")
	_, err = b.Build()
	assert.Error(t, err)
}
