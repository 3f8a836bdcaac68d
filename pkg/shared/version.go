// pkg/shared/version.go

package shared

const (
	// AppName is the canonical binary and service name.
	AppName = "pythia"

	// Version is stamped into telemetry spans and `pythia version` output.
	Version = "0.3.0"
)
