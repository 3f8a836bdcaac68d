// pkg/pythia_err/types.go

// Package pythia_err classifies errors so the command layer can pick
// exit codes and tone: expected user mistakes get a gentle notice and
// a zero exit, validation failures exit 2, internal bugs exit 3.
package pythia_err

// UserError marks an error as expected and recoverable by the user.
type UserError struct {
	cause error
}

func (e *UserError) Error() string {
	return e.cause.Error()
}

func (e *UserError) Unwrap() error {
	return e.cause
}
