// Package memory implements an in-memory scene runtime: node trees with
// explicit liveness, a scene library, the host scene tree and miniframes.
//
// It is the reference implementation of the ports consumed by the coordinator
// and is used by the command-line host and by tests. It is not safe for
// concurrent use; all calls must come from the host loop goroutine.
package memory

import (
	"strings"

	"github.com/aretw0/collage/pkg/domain"
)

// NodeProps are the typed properties a scene descriptor can attach to a node.
type NodeProps struct {
	// Slot marks the node as an item slot that reports interactions.
	Slot bool `mapstructure:"slot" yaml:"slot"`
	// Item is the item currently shown in the slot.
	Item string `mapstructure:"item" yaml:"item"`
	// Count is the stack size of Item.
	Count int `mapstructure:"count" yaml:"count"`
	// Label is free text displayed next to the node.
	Label string `mapstructure:"label" yaml:"label"`
}

// Node is a scene tree element. Destroying a node destroys its whole subtree.
type Node struct {
	name      string
	props     NodeProps
	parent    *Node
	children  []*Node
	destroyed bool

	// scenePath is set on scene roots to the path of the packed scene they came from.
	scenePath string
}

// NewNode creates a detached node.
func NewNode(name string) *Node {
	return &Node{name: name}
}

var _ domain.Node = (*Node)(nil)

// Name returns the node name.
func (n *Node) Name() string {
	if n == nil {
		return ""
	}
	return n.name
}

// Valid reports whether the node has not been destroyed.
func (n *Node) Valid() bool {
	return n != nil && !n.destroyed
}

// Props returns the node properties.
func (n *Node) Props() NodeProps {
	return n.props
}

// SetProps replaces the node properties.
func (n *Node) SetProps(p NodeProps) {
	n.props = p
}

// ScenePath returns the packed scene path for scene roots, "" otherwise.
func (n *Node) ScenePath() string {
	return n.scenePath
}

// Parent returns the parent node, or nil for detached and top-level nodes.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// AddChild attaches child under n, detaching it from its previous parent.
func (n *Node) AddChild(child *Node) {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Child returns the direct child named name.
func (n *Node) Child(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Find resolves a slash-separated relative path ("hud/slot_1").
func (n *Node) Find(path string) *Node {
	cur := n
	for _, part := range strings.Split(strings.Trim(path, "/"), "/") {
		if part == "" || part == "." {
			continue
		}
		if part == ".." {
			cur = cur.parent
		} else {
			cur = cur.Child(part)
		}
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Path returns the absolute path of the node from its topmost ancestor.
func (n *Node) Path() string {
	var parts []string
	for cur := n; cur != nil; cur = cur.parent {
		parts = append(parts, cur.name)
	}
	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(parts[i])
	}
	return b.String()
}

// IsAncestorOf reports whether n is a strict ancestor of other.
func (n *Node) IsAncestorOf(other *Node) bool {
	if n == nil || other == nil {
		return false
	}
	for cur := other.parent; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// Walk visits n and its descendants depth-first, stopping when fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Destroy detaches n from its parent and marks it and all descendants invalid.
func (n *Node) Destroy() {
	if !n.Valid() {
		return
	}
	if n.parent != nil {
		n.parent.removeChild(n)
	}
	n.destroyTree()
}

func (n *Node) destroyTree() {
	n.destroyed = true
	for _, c := range n.children {
		c.destroyTree()
	}
}
