// pkg/wordlist/run.go

package wordlist

import (
	"context"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/profile"
)

// Run is a generation executing off the calling goroutine. No partial
// results are observable; the Result appears only once the run
// completes.
type Run struct {
	res  *Result
	err  error
	done chan struct{}
}

// Start launches Generate on its own goroutine. Cancel the context to
// abandon the run early; Wait then returns the cancellation error.
func (p *Pipeline) Start(ctx context.Context, prof profile.Profile) *Run {
	r := &Run{done: make(chan struct{})}
	go func() {
		defer close(r.done)
		r.res, r.err = p.Generate(ctx, prof)
	}()
	return r
}

// Done is closed when the run completes.
func (r *Run) Done() <-chan struct{} { return r.done }

// IsComplete reports completion without blocking.
func (r *Run) IsComplete() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the run completes and returns its outcome.
func (r *Run) Wait() (*Result, error) {
	<-r.done
	return r.res, r.err
}
