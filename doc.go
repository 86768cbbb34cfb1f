/*
Package collage is the coordination layer of a multi-minigame host.

A container application ("Collage") embeds several independently playable
minigames, each in its own isolated frame ("Miniframe"). The Coordinator sits
between minigame code and the scene runtime and answers one question for every
call: which context does the calling node belong to? Lifecycle operations
(reload, change scene, current scene, input mode) and slot interactions are
then routed to that frame, or to the host's own scene tree.

# Standalone and container modes

The same minigame code runs unchanged in both modes. Without a container every
node resolves to the Global context and every routed call behaves exactly like
calling the host scene tree directly. Once a container attaches, calls from a
node inside a frame are scoped to that frame only.

# Usage

	lib := memory.NewLibrary(scenes...)
	tree := memory.NewTree(lib)

	coord := collage.New(tree, collage.WithLogger(logger))
	coord.AttachContainer()

	frame := memory.NewMiniframe("left", fishing, lib)
	container.AddChild(frame.Node())
	coord.Register(frame)

	// Inside a minigame: reload only the frame this node lives in.
	if err := coord.ReloadScene(node); err != nil {
		log.Printf("reload failed: %v", err)
	}

	// Once per tick: drop frames destroyed since the last tick.
	coord.Tick()
*/
package collage
