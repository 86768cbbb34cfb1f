package ports

import (
	"testing"

	"github.com/aretw0/collage/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// FrameFixture is what RunFrameContract needs to drive a Frame implementation.
type FrameFixture struct {
	// Frame is a fresh, valid frame with a scene already loaded.
	Frame Frame
	// Inside returns a live node that belongs to the frame's current scene.
	Inside func() domain.Node
	// Outside is a live node that does not belong to the frame.
	Outside domain.Node
	// Other is a packed scene the frame can change to.
	Other domain.PackedScene
	// OtherPath is the path of a scene the frame can change to.
	OtherPath string
	// Click simulates a user click on the frame.
	Click func()
	// Destroy destroys the frame's underlying instance.
	Destroy func()
}

// RunFrameContract runs a suite of tests to verify that a Frame implementation
// adheres to the defined interface contract.
func RunFrameContract(t *testing.T, newFixture func(t *testing.T) FrameFixture) {
	t.Run("Containment", func(t *testing.T) {
		fx := newFixture(t)
		assert.True(t, fx.Frame.Contains(fx.Inside()))
		assert.False(t, fx.Frame.Contains(fx.Outside))
		assert.False(t, fx.Frame.Contains(nil))
	})

	t.Run("Reload Replaces Instance", func(t *testing.T) {
		fx := newFixture(t)
		before := fx.Frame.CurrentScene()
		require.NotNil(t, before)
		oldChild := fx.Inside()

		require.NoError(t, fx.Frame.ReloadScene())

		after := fx.Frame.CurrentScene()
		require.NotNil(t, after)
		assert.Equal(t, before.Name(), after.Name(), "reload must instantiate the same source")
		assert.False(t, before.Valid(), "previous instance must be destroyed")
		assert.False(t, oldChild.Valid(), "previous instance subtree must be destroyed")
		assert.False(t, fx.Frame.Contains(oldChild))
		assert.True(t, fx.Frame.Contains(fx.Inside()))
	})

	t.Run("Change Scene", func(t *testing.T) {
		fx := newFixture(t)
		before := fx.Frame.CurrentScene()

		require.NoError(t, fx.Frame.ChangeSceneToPacked(fx.Other))
		assert.False(t, before.Valid())
		assert.Equal(t, fx.Other.Path(), scenePath(t, fx.Frame))

		require.NoError(t, fx.Frame.ChangeSceneToFile(fx.OtherPath))
		assert.Error(t, fx.Frame.ChangeSceneToFile("res://does/not/exist.scn"))
	})

	t.Run("Click Only While Disabled", func(t *testing.T) {
		fx := newFixture(t)
		clicks := 0
		cancel := fx.Frame.OnClicked(func() { clicks++ })

		fx.Frame.SetEnabled(false)
		fx.Click()
		assert.Equal(t, 1, clicks)

		fx.Frame.SetEnabled(true)
		assert.True(t, fx.Frame.Enabled())
		fx.Click()
		assert.Equal(t, 1, clicks, "enabled frames forward clicks to their content")

		fx.Frame.SetEnabled(false)
		cancel()
		fx.Click()
		assert.Equal(t, 1, clicks)
	})

	t.Run("Destroy Invalidates", func(t *testing.T) {
		fx := newFixture(t)
		require.True(t, fx.Frame.Valid())
		fx.Destroy()
		assert.False(t, fx.Frame.Valid())
		assert.ErrorIs(t, fx.Frame.ReloadScene(), domain.ErrFrameGone)
	})
}

func scenePath(t *testing.T, f Frame) string {
	t.Helper()
	root := f.CurrentScene()
	require.NotNil(t, root)
	if p, ok := root.(interface{ ScenePath() string }); ok {
		return p.ScenePath()
	}
	t.Skip("frame scene roots do not expose their source path")
	return ""
}
