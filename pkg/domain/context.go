package domain

// FrameID identifies a frame for its whole lifetime.
type FrameID string

// Context is the logical routing destination of an operation: either the
// host's own scene tree (Global) or the scene owned by a single frame.
//
// Contexts are comparable values and are computed per call; they are never stored
// by the coordinator.
type Context struct {
	frame FrameID
}

// Global is the context of the host application's top-level scene tree.
var Global = Context{}

// FrameContext returns the context bound to the frame with the given ID.
// An empty id yields Global.
func FrameContext(id FrameID) Context {
	return Context{frame: id}
}

// IsGlobal reports whether c targets the host scene tree.
func (c Context) IsGlobal() bool {
	return c.frame == ""
}

// Frame returns the frame the context is bound to, or "" for Global.
func (c Context) Frame() FrameID {
	return c.frame
}

func (c Context) String() string {
	if c.IsGlobal() {
		return "global"
	}
	return "frame:" + string(c.frame)
}
