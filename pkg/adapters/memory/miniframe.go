package memory

import (
	"github.com/aretw0/collage/pkg/domain"
	"github.com/aretw0/collage/pkg/events"
	"github.com/aretw0/collage/pkg/ports"
)

// SelectButton is the pointer button that selects a disabled frame.
const SelectButton = 1

// Miniframe embeds one minigame scene in its own viewport.
//
// The frame node owns a "viewport" child; the current scene instance is mounted
// under it, and node membership is tested against that viewport.
type Miniframe struct {
	stage
	id        domain.FrameID
	host      *Node
	viewport  *Node
	enabled   bool
	inputMode domain.InputMode
	clicked   events.Channel[struct{}]
}

var _ ports.Frame = (*Miniframe)(nil)

// NewMiniframe creates a frame named id and, if scene is non-nil, instantiates it.
// The frame starts enabled; attach Node() to the container scene to place it.
func NewMiniframe(id domain.FrameID, scene *PackedScene, lib *Library) *Miniframe {
	host := NewNode(string(id))
	viewport := NewNode("viewport")
	host.AddChild(viewport)

	m := &Miniframe{
		id:       id,
		host:     host,
		viewport: viewport,
		enabled:  true,
		stage:    stage{mount: viewport, library: lib},
	}
	if scene != nil {
		_ = m.load(scene)
	}
	return m
}

// ID identifies the frame.
func (m *Miniframe) ID() domain.FrameID {
	return m.id
}

// Node returns the frame node to attach to the container scene.
func (m *Miniframe) Node() *Node {
	return m.host
}

// Viewport returns the node the embedded scene is mounted under.
func (m *Miniframe) Viewport() *Node {
	return m.viewport
}

// Valid reports whether the frame node is still alive.
func (m *Miniframe) Valid() bool {
	return m != nil && m.host.Valid()
}

// Destroy destroys the frame and its embedded scene.
func (m *Miniframe) Destroy() {
	m.host.Destroy()
}

// Enabled reports whether the embedded scene processes input.
func (m *Miniframe) Enabled() bool {
	return m.enabled
}

// SetEnabled toggles processing of the embedded scene.
func (m *Miniframe) SetEnabled(enabled bool) {
	m.enabled = enabled
}

// Contains reports whether node lives inside this frame's viewport.
func (m *Miniframe) Contains(node domain.Node) bool {
	n, ok := node.(*Node)
	if !ok || !n.Valid() || !m.Valid() {
		return false
	}
	return m.viewport.IsAncestorOf(n)
}

// OnClicked registers fn for clicks received while the frame is disabled.
func (m *Miniframe) OnClicked(fn func()) func() {
	return m.clicked.Subscribe(func(struct{}) { fn() })
}

// HandleInput feeds a raw input event to the frame. A select-button press on a
// disabled frame fires the clicked notification and is consumed; everything
// else is left to the embedded scene. It reports whether the event was consumed.
func (m *Miniframe) HandleInput(ev domain.InputEvent) bool {
	if !m.Valid() || m.enabled {
		return false
	}
	if ev.Kind != "mouse_button" || !ev.Pressed || ev.Button != SelectButton {
		return false
	}
	m.clicked.Publish(struct{}{})
	return true
}

// Click simulates a select-button press on the frame.
func (m *Miniframe) Click() bool {
	return m.HandleInput(domain.InputEvent{Kind: "mouse_button", Button: SelectButton, Pressed: true})
}

// ReloadScene re-instantiates the embedded scene from its source.
func (m *Miniframe) ReloadScene() error {
	if !m.Valid() {
		return domain.ErrFrameGone
	}
	return m.reload()
}

// ChangeSceneToPacked replaces the embedded scene.
func (m *Miniframe) ChangeSceneToPacked(scene domain.PackedScene) error {
	if !m.Valid() {
		return domain.ErrFrameGone
	}
	return m.changeToPacked(scene)
}

// ChangeSceneToFile replaces the embedded scene with the one stored at path.
func (m *Miniframe) ChangeSceneToFile(path string) error {
	if !m.Valid() {
		return domain.ErrFrameGone
	}
	return m.changeToFile(path)
}

// CurrentScene returns the embedded scene root, or nil.
func (m *Miniframe) CurrentScene() domain.Node {
	if !m.Valid() {
		return nil
	}
	return m.currentScene()
}

// SetInputMode sets pointer capture for this frame only.
func (m *Miniframe) SetInputMode(mode domain.InputMode) {
	m.inputMode = mode
}

// InputMode returns this frame's pointer mode.
func (m *Miniframe) InputMode() domain.InputMode {
	return m.inputMode
}

// ScenePath returns the path of the embedded scene's source.
func (m *Miniframe) ScenePath() string {
	if m.source == nil {
		return ""
	}
	return m.source.path
}
