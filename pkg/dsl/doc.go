/*
Package dsl provides a fluent Go API for describing Collage scene libraries.

It is the programmatic counterpart of the layout file's scenes section and is
handy for tests and for minigames that generate their scenes.

Example usage:

	b := dsl.New()

	b.Scene("res://fishing/main.scn", "Fishing").
		Add("Pond").
		Add("Hud/Bait").Slot().Item("worm", 3).
		Add("Hud/Catch").Slot().Label("empty net")

	lib, err := b.Build()
	// ... instantiate scenes from lib with memory.NewTree or memory.NewMiniframe
*/
package dsl
