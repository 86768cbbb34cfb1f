package domain

// FrameStatus is a point-in-time description of a registered frame.
type FrameStatus struct {
	ID        FrameID `json:"id"`
	Enabled   bool    `json:"enabled"`
	Focused   bool    `json:"focused"`
	Scene     string  `json:"scene,omitempty"`
	InputMode string  `json:"input_mode"`
}
