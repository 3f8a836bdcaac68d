// pkg/pythia_cli/signals.go
//
// Signal handling for interruptible generation runs. A first Ctrl-C
// cancels the run context so the pipeline can unwind and report a user
// cancellation; a second one forces the process out.

package pythia_cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// CleanupFunc is a function that performs cleanup operations
type CleanupFunc func() error

// SignalHandler manages graceful shutdown on signals
type SignalHandler struct {
	ctx          context.Context
	cancel       context.CancelFunc
	cleanupFuncs []CleanupFunc
	sigChan      chan os.Signal
	doneChan     chan struct{}
	stopOnce     sync.Once
	mu           sync.Mutex
}

// NewSignalHandler creates a handler listening for SIGINT and SIGTERM.
// Operations should run against Context() to observe cancellation.
func NewSignalHandler(ctx context.Context) *SignalHandler {
	ctx, cancel := context.WithCancel(ctx)

	h := &SignalHandler{
		ctx:      ctx,
		cancel:   cancel,
		sigChan:  make(chan os.Signal, 1),
		doneChan: make(chan struct{}),
	}

	signal.Notify(h.sigChan, os.Interrupt, syscall.SIGTERM)
	go h.handleSignals()

	return h
}

// RegisterCleanup adds a cleanup function to be called on interrupt.
// Cleanup functions are called in REVERSE order (LIFO).
func (h *SignalHandler) RegisterCleanup(cleanup CleanupFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cleanupFuncs = append(h.cleanupFuncs, cleanup)
}

// Context returns the cancellable context.
func (h *SignalHandler) Context() context.Context {
	return h.ctx
}

func (h *SignalHandler) handleSignals() {
	logger := otelzap.Ctx(h.ctx)
	interrupted := false

	for {
		select {
		case sig := <-h.sigChan:
			if interrupted {
				logger.Error("Received second signal, forcing exit",
					zap.String("signal", sig.String()))
				fmt.Fprintln(os.Stderr, "\n⚠️  Received second interrupt, forcing exit!")
				os.Exit(130)
			}
			interrupted = true

			logger.Info("Received signal, cancelling run",
				zap.String("signal", sig.String()))
			fmt.Fprintf(os.Stderr, "\n⚠️  Received %v, stopping...\n", sig)

			h.cancel()
			if err := h.runCleanup(); err != nil {
				fmt.Fprintf(os.Stderr, "Cleanup completed with errors: %v\n", err)
			}

		case <-h.doneChan:
			return
		}
	}
}

// runCleanup executes all cleanup functions with a timeout.
func (h *SignalHandler) runCleanup() error {
	logger := otelzap.Ctx(h.ctx)

	cleanupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)

	go func() {
		h.mu.Lock()
		funcs := make([]CleanupFunc, len(h.cleanupFuncs))
		copy(funcs, h.cleanupFuncs)
		h.mu.Unlock()

		var lastErr error
		for i := len(funcs) - 1; i >= 0; i-- {
			if err := funcs[i](); err != nil {
				logger.Warn("Cleanup function failed",
					zap.Int("index", i),
					zap.Error(err))
				lastErr = err
			}
		}
		done <- lastErr
	}()

	select {
	case err := <-done:
		return err
	case <-cleanupCtx.Done():
		logger.Error("Cleanup timed out after 5 seconds")
		return fmt.Errorf("cleanup timed out")
	}
}

// Stop detaches the handler. Call it once the operation finishes so a
// late Ctrl-C falls back to default process handling.
func (h *SignalHandler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		close(h.doneChan)
		h.cancel()
	})
}
