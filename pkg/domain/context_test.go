package domain_test

import (
	"testing"

	"github.com/aretw0/collage/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestContext_Equality(t *testing.T) {
	assert.True(t, domain.Global.IsGlobal())
	assert.Equal(t, domain.Global, domain.FrameContext(""))
	assert.Equal(t, domain.FrameContext("left"), domain.FrameContext("left"))
	assert.NotEqual(t, domain.FrameContext("left"), domain.FrameContext("right"))
	assert.NotEqual(t, domain.Global, domain.FrameContext("left"))

	assert.Equal(t, "global", domain.Global.String())
	assert.Equal(t, "frame:left", domain.FrameContext("left").String())
	assert.Equal(t, domain.FrameID("left"), domain.FrameContext("left").Frame())
}

func TestInputMode_Parse(t *testing.T) {
	for _, mode := range []domain.InputMode{
		domain.InputVisible,
		domain.InputHidden,
		domain.InputCaptured,
		domain.InputConfined,
		domain.InputConfinedHidden,
	} {
		parsed, err := domain.ParseInputMode(mode.String())
		assert.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}

	_, err := domain.ParseInputMode("sideways")
	assert.Error(t, err)
	assert.Equal(t, "InputMode(42)", domain.InputMode(42).String())
}

func TestIsLive(t *testing.T) {
	assert.False(t, domain.IsLive(nil))
}
