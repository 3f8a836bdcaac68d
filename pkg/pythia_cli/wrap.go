// pkg/pythia_cli/wrap.go

package pythia_cli

import (
	"context"
	"time"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_err"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Wrap ensures panic recovery, telemetry, and logging around a command
// handler. Unexpected errors get a stack attached for the debug log;
// expected user errors pass through untouched.
func Wrap(fn func(rc *pythia_io.RuntimeContext, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		rc := pythia_io.NewContext(context.Background(), cmd.Name())
		defer rc.End(&err)

		defer func() {
			if r := recover(); r != nil {
				err = cerr.AssertionFailedf("panic: %v", r)
				rc.Log.Error("Panic recovered", zap.Any("panic", r))
			}
		}()

		pythia_io.LogInvocationContext(rc)

		err = fn(rc, cmd, args)
		if err != nil && !pythia_err.IsExpectedUserError(err) {
			err = cerr.WithStack(err)
		}
		return err
	}
}

// WrapExtended is like Wrap but attaches a timeout to the run context.
// Use it for commands that legitimately run long, such as generation
// with very large mutation budgets.
func WrapExtended(timeout time.Duration, fn func(rc *pythia_io.RuntimeContext, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		rc := pythia_io.NewExtendedContext(context.Background(), cmd.Name(), timeout)
		defer rc.End(&err)

		defer func() {
			if r := recover(); r != nil {
				err = cerr.AssertionFailedf("panic: %v", r)
				rc.Log.Error("Panic recovered", zap.Any("panic", r))
			}
		}()

		pythia_io.LogInvocationContext(rc)

		err = fn(rc, cmd, args)
		if err != nil && !pythia_err.IsExpectedUserError(err) {
			err = cerr.WithStack(err)
		}
		return err
	}
}
