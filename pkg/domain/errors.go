package domain

import "errors"

// ErrSceneNotFound is returned when a scene change targets a resource that does not exist.
var ErrSceneNotFound = errors.New("scene not found")

// ErrInvalidState is returned when a scene operation cannot run in the current state
// (e.g. reloading when no scene is loaded).
var ErrInvalidState = errors.New("invalid state")

// ErrInvalidScene is returned when a packed scene was produced by a foreign runtime
// and cannot be instantiated.
var ErrInvalidScene = errors.New("invalid scene")

// ErrFrameGone is returned by a frame whose embedded instance was destroyed.
var ErrFrameGone = errors.New("frame destroyed")

// ErrIllegalMutation is the panic value raised when external code tries to
// overwrite the frame registry directly.
var ErrIllegalMutation = errors.New("illegal mutation: miniframes is read-only")
