//go:build unix

package cli

import (
	"bytes"
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalContext_CapturesSignal(t *testing.T) {
	sc := NewSignalContext(context.Background())
	defer sc.Cancel()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM))

	select {
	case <-sc.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context was not cancelled by SIGTERM")
	}
	assert.Eventually(t, func() bool { return sc.Signal() == syscall.SIGTERM }, time.Second, 10*time.Millisecond)

	var out bytes.Buffer
	ReportSignal(&out, sc)
	assert.Equal(t, ">>> Received terminated, shutting down.\n", out.String())
}
