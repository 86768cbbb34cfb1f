package memory

import (
	"github.com/aretw0/collage/pkg/domain"
	"github.com/aretw0/collage/pkg/ports"
)

// Tree is the host application's top-level scene tree.
type Tree struct {
	stage
	root      *Node
	inputMode domain.InputMode
}

var _ ports.SceneTree = (*Tree)(nil)

// NewTree creates an empty scene tree resolving paths through lib.
func NewTree(lib *Library) *Tree {
	root := NewNode("root")
	return &Tree{
		root:  root,
		stage: stage{mount: root, library: lib},
	}
}

// Root returns the tree's root node. The current scene is mounted under it.
func (t *Tree) Root() *Node {
	return t.root
}

// Library returns the scene library used for path lookups.
func (t *Tree) Library() *Library {
	return t.library
}

// SetCurrentScene mounts an already built node as the current scene,
// destroying the previous one. Reload is only possible if node is a scene root
// whose path is known to the library.
func (t *Tree) SetCurrentScene(node *Node) {
	t.current.Destroy()
	t.current = node
	t.source = nil
	if ps, err := t.library.Load(node.scenePath); err == nil {
		t.source = ps
	}
	t.root.AddChild(node)
}

// ReloadScene re-instantiates the current scene.
func (t *Tree) ReloadScene() error {
	return t.reload()
}

// ChangeSceneToPacked replaces the current scene with an instance of scene.
func (t *Tree) ChangeSceneToPacked(scene domain.PackedScene) error {
	return t.changeToPacked(scene)
}

// ChangeSceneToFile replaces the current scene with the one stored at path.
func (t *Tree) ChangeSceneToFile(path string) error {
	return t.changeToFile(path)
}

// CurrentScene returns the current scene root, or nil.
func (t *Tree) CurrentScene() domain.Node {
	return t.currentScene()
}

// SetInputMode sets the process-wide pointer mode.
func (t *Tree) SetInputMode(mode domain.InputMode) {
	t.inputMode = mode
}

// InputMode returns the process-wide pointer mode.
func (t *Tree) InputMode() domain.InputMode {
	return t.inputMode
}
