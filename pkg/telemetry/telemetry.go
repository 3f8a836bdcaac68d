// pkg/telemetry/telemetry.go
package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/xdg"
	cerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const appName = "pythia"

// tracer starts as a noop so Start is safe before Init runs.
var tracer trace.Tracer = noop.NewTracerProvider().Tracer(appName)

// Init configures OpenTelemetry; call this early in main().
// Telemetry is opt-in: spans go to a local JSONL file under the XDG
// state directory, never to the network.
func Init(service string) error {
	if !IsEnabled() {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		tracer = tp.Tracer(service)
		return nil
	}

	telemetryFile := FilePath()
	if err := xdg.EnsureDir(telemetryFile); err != nil {
		return cerr.Wrap(err, "failed to create telemetry directory")
	}

	file, err := os.OpenFile(telemetryFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, xdg.FilePermOwnerReadWrite)
	if err != nil {
		return cerr.Wrap(err, "failed to open telemetry file")
	}

	// Use stdout exporter but write to file instead of stdout
	exp, err := stdouttrace.New(
		stdouttrace.WithWriter(file),
		stdouttrace.WithoutTimestamps(), // Spans already have timestamps
	)
	if err != nil {
		file.Close()
		return cerr.Wrap(err, "failed to create file exporter")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(
			sdkresource.NewWithAttributes(
				semconv.SchemaURL,
				attribute.String("service.name", service),
				attribute.String("host.name", hostname()),
			),
		),
	)

	otel.SetTracerProvider(tp)
	tracer = tp.Tracer(service)
	return nil
}

// Start a telemetry span with optional attributes.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// TrackCommand records a one-shot span summarizing a finished command.
func TrackCommand(ctx context.Context, name string, success bool, durationMs int64, tags map[string]string) {
	if !IsEnabled() {
		return
	}

	_, span := tracer.Start(ctx, name)
	defer span.End()

	attrs := []attribute.KeyValue{
		attribute.Bool("success", success),
		attribute.Int64("duration_ms", durationMs),
		attribute.String("user_id", AnonTelemetryID()),
	}

	for k, v := range tags {
		if k == "args" && len(v) > 256 {
			v = v[:256] + "..."
		}
		attrs = append(attrs, attribute.String(k, v))
	}

	span.SetAttributes(attrs...)
}

// FilePath returns where spans land when telemetry is on.
func FilePath() string {
	return xdg.XDGStatePath(appName, "telemetry.jsonl")
}

// MarkerPath is the opt-in toggle file checked by IsEnabled.
func MarkerPath() string {
	return xdg.XDGConfigPath(appName, "telemetry_on")
}

// IsEnabled reports whether the user has opted in.
func IsEnabled() bool {
	_, err := os.Stat(MarkerPath())
	return err == nil
}

// Enable opts in by dropping the marker file.
func Enable() error {
	path := MarkerPath()
	if err := xdg.EnsureDir(path); err != nil {
		return cerr.Wrap(err, "failed to create config directory")
	}
	if err := os.WriteFile(path, []byte("on\n"), xdg.FilePermOwnerReadWrite); err != nil {
		return cerr.Wrap(err, "failed to write telemetry toggle file")
	}
	return nil
}

// Disable opts out by removing the marker file.
func Disable() error {
	if err := os.Remove(MarkerPath()); err != nil && !os.IsNotExist(err) {
		return cerr.Wrap(err, "failed to remove telemetry toggle file")
	}
	return nil
}

func hostname() string {
	if h, err := os.Hostname(); err == nil {
		return h
	}
	return "unknown"
}

// TruncateOrHashArgs flattens argv for span attributes, capped at 256 bytes.
func TruncateOrHashArgs(args []string) string {
	full := strings.Join(args, " ")
	if len(full) > 256 {
		return full[:256] + "..."
	}
	return full
}

// AnonTelemetryID returns a stable random identifier for this install,
// creating one on first use. It carries no user information.
func AnonTelemetryID() string {
	path := xdg.XDGStatePath(appName, "telemetry_id")

	if data, err := os.ReadFile(path); err == nil {
		return strings.TrimSpace(string(data))
	}

	id := "anon-" + uuid.New().String()
	_ = os.MkdirAll(filepath.Dir(path), xdg.DirPermOwnerOnly)
	_ = os.WriteFile(path, []byte(id), xdg.FilePermOwnerReadWrite)

	return id
}
