package dsl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/collage/pkg/adapters/memory"
)

// Builder manages the construction of a scene library.
type Builder struct {
	scenes []*SceneBuilder
	errs   []error
}

// New creates a new library builder.
func New() *Builder {
	return &Builder{}
}

// Scene starts a scene stored at path with a root node named root.
// If the path already exists, it returns the existing builder.
func (b *Builder) Scene(path, root string) *SceneBuilder {
	for _, s := range b.scenes {
		if s.path == path {
			return s
		}
	}
	s := &SceneBuilder{path: path, builder: b}
	s.root = &NodeBuilder{spec: memory.NodeSpec{Name: root}, scene: s}
	if root == "" {
		b.errs = append(b.errs, fmt.Errorf("scene %s: root name is required", path))
	}
	b.scenes = append(b.scenes, s)
	return s
}

// Build compiles the scenes into a library.
func (b *Builder) Build() (*memory.Library, error) {
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}
	lib := memory.NewLibrary()
	for _, s := range b.scenes {
		lib.Add(s.Packed())
	}
	return lib, nil
}

// SceneBuilder configures one scene.
type SceneBuilder struct {
	path    string
	root    *NodeBuilder
	builder *Builder
}

// Root returns the builder of the scene's root node.
func (s *SceneBuilder) Root() *NodeBuilder {
	return s.root
}

// Add creates the node at a slash separated path below the scene root,
// creating missing intermediate nodes. Existing nodes are returned as is.
func (s *SceneBuilder) Add(path string) *NodeBuilder {
	cur := s.root
	for _, part := range strings.Split(strings.Trim(path, "/"), "/") {
		if part == "" {
			continue
		}
		if strings.Contains(part, ".") {
			s.builder.errs = append(s.builder.errs, fmt.Errorf("scene %s: invalid node name %q", s.path, part))
		}
		cur = cur.child(part)
	}
	return cur
}

// Packed returns the scene as a packed scene.
func (s *SceneBuilder) Packed() *memory.PackedScene {
	return memory.NewPackedScene(s.path, s.root.Build())
}
