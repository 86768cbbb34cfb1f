package memory

import (
	"fmt"

	"github.com/aretw0/collage/pkg/domain"
)

// stage holds one replaceable scene instance mounted under a fixed node.
// It backs both the host Tree and every Miniframe.
type stage struct {
	mount   *Node
	current *Node
	source  *PackedScene
	library *Library
}

func (s *stage) load(ps *PackedScene) error {
	if !s.mount.Valid() {
		return fmt.Errorf("%w: mount point destroyed", domain.ErrInvalidState)
	}
	// The previous instance is destroyed before the new one exists, so nothing
	// can observe both at once.
	s.current.Destroy()
	s.current = ps.Instantiate()
	s.source = ps
	s.mount.AddChild(s.current)
	return nil
}

func (s *stage) reload() error {
	if s.source == nil {
		return fmt.Errorf("%w: no scene loaded", domain.ErrInvalidState)
	}
	return s.load(s.source)
}

func (s *stage) changeToPacked(scene domain.PackedScene) error {
	ps, err := unpack(scene)
	if err != nil {
		return err
	}
	return s.load(ps)
}

func (s *stage) changeToFile(path string) error {
	ps, err := s.library.Load(path)
	if err != nil {
		return err
	}
	return s.load(ps)
}

func (s *stage) currentScene() domain.Node {
	if !s.current.Valid() {
		return nil
	}
	return s.current
}
