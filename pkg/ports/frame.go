package ports

import "github.com/aretw0/collage/pkg/domain"

// SceneHost is the set of lifecycle operations the coordinator routes.
// Both the global scene tree and every frame implement it, scoped to the scene
// they own.
type SceneHost interface {
	// ReloadScene discards the current scene instance and instantiates a fresh one
	// from the same source.
	ReloadScene() error

	// ChangeSceneToPacked replaces the current scene with an instance of scene.
	ChangeSceneToPacked(scene domain.PackedScene) error

	// ChangeSceneToFile replaces the current scene with the scene stored at path.
	ChangeSceneToFile(path string) error

	// CurrentScene returns the root of the current scene instance, or nil.
	CurrentScene() domain.Node

	// SetInputMode changes pointer capture within this host's scope only.
	SetInputMode(mode domain.InputMode)
}

// SceneTree is the host application's top-level scene tree.
type SceneTree interface {
	SceneHost
}

// Frame is an embedded, isolated minigame context.
//
// Frames are created and destroyed by the host; the coordinator only holds a
// reference and polls Valid before every use. Handles are compared with ==,
// so implementations should be pointer types; a non-comparable handle is
// never recognised as already registered.
type Frame interface {
	SceneHost

	// ID identifies the frame for its whole lifetime.
	ID() domain.FrameID

	// Valid reports whether the underlying instance is still alive.
	// Implementations must accept a nil receiver.
	Valid() bool

	// Enabled reports whether the embedded scene receives processing and input.
	Enabled() bool

	// SetEnabled toggles processing and input for the embedded scene.
	SetEnabled(enabled bool)

	// Contains reports whether node belongs to the scene owned by this frame.
	Contains(node domain.Node) bool

	// OnClicked registers fn to run when the frame is clicked while disabled.
	// The returned function cancels the registration.
	OnClicked(fn func()) (cancel func())
}
