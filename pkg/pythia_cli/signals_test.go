// pkg/pythia_cli/signals_test.go

package pythia_cli

import (
	"context"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSignalHandlerContext(t *testing.T) {
	h := NewSignalHandler(context.Background())
	defer h.Stop()

	require.NotNil(t, h.Context())
	assert.NoError(t, h.Context().Err())
}

func TestSignalHandlerStopIsIdempotent(t *testing.T) {
	h := NewSignalHandler(context.Background())
	h.Stop()
	h.Stop()

	assert.Error(t, h.Context().Err(), "Stop should release the cancellable context")
}

func TestSignalHandlerCancelsOnInterrupt(t *testing.T) {
	h := NewSignalHandler(context.Background())
	defer h.Stop()

	var cleaned atomic.Bool
	h.RegisterCleanup(func() error {
		cleaned.Store(true)
		return nil
	})

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	assert.Eventually(t, func() bool {
		return h.Context().Err() != nil
	}, 2*time.Second, 10*time.Millisecond, "first signal should cancel the run context")

	assert.Eventually(t, func() bool {
		return cleaned.Load()
	}, 2*time.Second, 10*time.Millisecond, "cleanup should run after the first signal")
}

func TestSignalHandlerCleanupOrder(t *testing.T) {
	h := NewSignalHandler(context.Background())
	defer h.Stop()

	var order []int
	h.RegisterCleanup(func() error { order = append(order, 1); return nil })
	h.RegisterCleanup(func() error { order = append(order, 2); return nil })

	require.NoError(t, h.runCleanup())
	assert.Equal(t, []int{2, 1}, order, "cleanups run in reverse registration order")
}
