package collage_test

import (
	"fmt"

	"github.com/aretw0/collage"
	"github.com/aretw0/collage/pkg/adapters/memory"
	"github.com/aretw0/collage/pkg/domain"
)

// ExampleNew_container shows two frames sharing one container, each receiving
// only the interactions that originate inside it.
func ExampleNew_container() {
	fishing := memory.NewPackedScene("res://fishing.scn", memory.NodeSpec{
		Name:     "Fishing",
		Children: []memory.NodeSpec{{Name: "Slot", Props: memory.NodeProps{Slot: true, Item: "worm"}}},
	})
	farm := memory.NewPackedScene("res://farm.scn", memory.NodeSpec{
		Name:     "Farm",
		Children: []memory.NodeSpec{{Name: "Slot", Props: memory.NodeProps{Slot: true, Item: "seed"}}},
	})
	lib := memory.NewLibrary(fishing, farm)
	tree := memory.NewTree(lib)
	container := memory.NewNode("Collage")
	tree.SetCurrentScene(container)

	coord := collage.New(tree, collage.WithContainer())

	left := memory.NewMiniframe("left", fishing, lib)
	right := memory.NewMiniframe("right", farm, lib)
	container.AddChild(left.Node())
	container.AddChild(right.Node())
	coord.Register(left)
	coord.Register(right)

	leftSlot := left.Viewport().Find("Fishing/Slot")
	rightSlot := right.Viewport().Find("Farm/Slot")

	coord.SubscribeInteractionsFor(rightSlot, func(ev domain.InteractionEvent) {
		fmt.Println("right inventory saw a click from", ev.Context)
	})
	coord.SubscribeInteractionsFor(leftSlot, func(ev domain.InteractionEvent) {
		fmt.Println("left inventory saw a click from", ev.Context)
	})

	click := domain.InputEvent{Kind: "mouse_button", Button: 1, Pressed: true}
	coord.ReportInteraction(click, leftSlot, leftSlot)

	// Output:
	// left inventory saw a click from frame:left
}
