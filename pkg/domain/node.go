package domain

// Node is an element of a scene tree.
//
// Nodes may be destroyed at any time by code outside the coordinator.
// Valid reports whether the node is still alive; a destroyed node must never be
// dereferenced for anything other than Valid and Name.
type Node interface {
	Name() string
	Valid() bool
}

// PackedScene is a loaded scene descriptor that can be instantiated into a
// fresh node tree. It is the "asset reference" form of a scene change target.
type PackedScene interface {
	// Path is the resource path the scene was loaded from.
	Path() string
}

// IsLive reports whether n is a non-nil, valid node.
// Implementations of Valid must accept a nil receiver.
func IsLive(n Node) bool {
	return n != nil && n.Valid()
}
