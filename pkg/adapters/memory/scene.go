package memory

import (
	"fmt"
	"sort"

	"github.com/aretw0/collage/pkg/domain"
)

// NodeSpec describes a node tree to instantiate.
type NodeSpec struct {
	Name     string
	Props    NodeProps
	Children []NodeSpec
}

// PackedScene is a scene descriptor that can be instantiated any number of times.
type PackedScene struct {
	path string
	root NodeSpec
}

var _ domain.PackedScene = (*PackedScene)(nil)

// NewPackedScene packs root under the given resource path.
func NewPackedScene(path string, root NodeSpec) *PackedScene {
	return &PackedScene{path: path, root: root}
}

// Path returns the resource path of the scene.
func (p *PackedScene) Path() string {
	return p.path
}

// Instantiate builds a fresh, detached node tree from the descriptor.
func (p *PackedScene) Instantiate() *Node {
	root := build(p.root)
	root.scenePath = p.path
	return root
}

func build(spec NodeSpec) *Node {
	n := NewNode(spec.Name)
	n.props = spec.Props
	for _, c := range spec.Children {
		n.AddChild(build(c))
	}
	return n
}

// Library resolves scene paths to packed scenes.
type Library struct {
	scenes map[string]*PackedScene
}

// NewLibrary creates a library holding the given scenes.
func NewLibrary(scenes ...*PackedScene) *Library {
	l := &Library{scenes: make(map[string]*PackedScene)}
	for _, s := range scenes {
		l.Add(s)
	}
	return l
}

// Add registers a scene, replacing any scene with the same path.
func (l *Library) Add(scene *PackedScene) {
	l.scenes[scene.path] = scene
}

// Load returns the scene stored at path.
func (l *Library) Load(path string) (*PackedScene, error) {
	if l != nil {
		if s, ok := l.scenes[path]; ok {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrSceneNotFound, path)
}

// Replace swaps the library contents for those of other. Instances already
// in a tree keep their nodes; only later loads see the new descriptors.
func (l *Library) Replace(other *Library) {
	scenes := make(map[string]*PackedScene, len(other.scenes))
	for p, s := range other.scenes {
		scenes[p] = s
	}
	l.scenes = scenes
}

// Paths returns the known scene paths, sorted.
func (l *Library) Paths() []string {
	paths := make([]string, 0, len(l.scenes))
	for p := range l.scenes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// unpack converts a domain.PackedScene into one this runtime can instantiate.
func unpack(scene domain.PackedScene) (*PackedScene, error) {
	ps, ok := scene.(*PackedScene)
	if !ok || ps == nil {
		return nil, fmt.Errorf("%w: %T", domain.ErrInvalidScene, scene)
	}
	return ps, nil
}
