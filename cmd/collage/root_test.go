package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	for _, name := range []string{"run", "play", "serve", "inspect", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestPlayRequiresScene(t *testing.T) {
	rootCmd.SetArgs([]string{"play"})
	defer rootCmd.SetArgs(nil)
	assert.Error(t, rootCmd.Execute())
}

func TestInspectRaw(t *testing.T) {
	rootCmd.SetArgs([]string{"inspect", "--raw"})
	defer rootCmd.SetArgs(nil)
	assert.NoError(t, rootCmd.Execute())
}
