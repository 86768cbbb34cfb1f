package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventFrameRegistered EventType = "frame_registered"
	EventFrameSwept      EventType = "frame_swept"
	EventFrameClicked    EventType = "frame_clicked"
	EventRoute           EventType = "route"
	EventInteraction     EventType = "interaction"
)

// Routed operation names carried by RouteEvent.Op.
const (
	OpReload       = "reload"
	OpChangePacked = "change_scene_packed"
	OpChangeFile   = "change_scene_file"
	OpCurrentScene = "current_scene"
	OpSetInputMode = "set_input_mode"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// FrameEvent reports a change in the registry membership.
type FrameEvent struct {
	EventBase
	FrameID FrameID `json:"frame_id"`
}

// FrameClickedEvent is published when a disabled frame is clicked by the user.
// The container uses it to pick which frame gets focus.
type FrameClickedEvent struct {
	EventBase
	FrameID FrameID `json:"frame_id"`
}

// RouteEvent reports where a lifecycle operation was dispatched.
type RouteEvent struct {
	EventBase
	Op      string  `json:"op"`
	Context Context `json:"-"`
	Node    string  `json:"node"`
	Failed  bool    `json:"failed,omitempty"`
}

// InteractionEvent is a slot click annotated with the context of the node that
// reported it. It is broadcast once and discarded.
type InteractionEvent struct {
	EventBase
	Raw     InputEvent
	Slot    Node
	Origin  Node
	Context Context
}

// CoordinatorHooks defines callbacks for coordinator observability.
// Hooks run synchronously on the caller's goroutine and must not block.
type CoordinatorHooks struct {
	OnFrameRegistered func(*FrameEvent)
	OnFrameSwept      func(*FrameEvent)
	OnRoute           func(*RouteEvent)
	OnInteraction     func(*InteractionEvent)
}
