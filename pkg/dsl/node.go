package dsl

import "github.com/aretw0/collage/pkg/adapters/memory"

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	spec     memory.NodeSpec
	children []*NodeBuilder
	scene    *SceneBuilder
}

func (n *NodeBuilder) child(name string) *NodeBuilder {
	for _, c := range n.children {
		if c.spec.Name == name {
			return c
		}
	}
	c := &NodeBuilder{spec: memory.NodeSpec{Name: name}, scene: n.scene}
	n.children = append(n.children, c)
	return c
}

// Slot marks the node as an item slot.
func (n *NodeBuilder) Slot() *NodeBuilder {
	n.spec.Props.Slot = true
	return n
}

// Item sets the item shown by the node and its stack size.
func (n *NodeBuilder) Item(item string, count int) *NodeBuilder {
	n.spec.Props.Item = item
	n.spec.Props.Count = count
	return n
}

// Label sets the node's label.
func (n *NodeBuilder) Label(label string) *NodeBuilder {
	n.spec.Props.Label = label
	return n
}

// Add continues with another node of the same scene, relative to the scene root.
func (n *NodeBuilder) Add(path string) *NodeBuilder {
	return n.scene.Add(path)
}

// Build returns the node and its subtree as a spec.
func (n *NodeBuilder) Build() memory.NodeSpec {
	spec := n.spec
	spec.Children = make([]memory.NodeSpec, 0, len(n.children))
	for _, c := range n.children {
		spec.Children = append(spec.Children, c.Build())
	}
	return spec
}
