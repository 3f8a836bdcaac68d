// pkg/pythia_io/context.go

package pythia_io

import (
	"context"
	"os"
	"os/user"
	"runtime"
	"strings"
	"time"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_err"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/telemetry"
	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RuntimeContext carries per-invocation state for one command run: a
// context for cancellation, a scoped logger, the active telemetry span,
// and free-form attributes recorded when the run ends.
type RuntimeContext struct {
	Ctx        context.Context
	Log        *zap.Logger
	Timestamp  time.Time
	Span       trace.Span
	Command    string
	Component  string
	Attributes map[string]string

	cancel context.CancelFunc
}

// NewContext sets up tracing and logging hooks for one command run.
func NewContext(ctx context.Context, cmdName string) *RuntimeContext {
	ctx, span := telemetry.Start(ctx, cmdName)
	traceID := span.SpanContext().TraceID().String()

	comp, action := resolveCallContext(2)
	log := logger.L().With(
		zap.String("component", comp),
		zap.String("action", action),
		zap.String("trace_id", traceID),
	).Named(comp)

	return &RuntimeContext{
		Ctx:        ctx,
		Span:       span,
		Log:        log,
		Timestamp:  time.Now(), // capture start time
		Component:  comp,
		Command:    cmdName,
		Attributes: make(map[string]string),
	}
}

// NewExtendedContext is NewContext with a deadline attached; End releases it.
func NewExtendedContext(ctx context.Context, cmdName string, timeout time.Duration) *RuntimeContext {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	rc := NewContext(ctx, cmdName)
	rc.cancel = cancel
	return rc
}

// HandlePanic recovers panics, logs them, and converts to an error.
func (rc *RuntimeContext) HandlePanic(errPtr *error) {
	if r := recover(); r != nil {
		*errPtr = cerr.AssertionFailedf("panic: %v", r)
		rc.Log.Error("panic recovered", zap.Any("panic", r))
	}
}

// End logs outcome, emits a telemetry span with key attributes, and flushes.
func (rc *RuntimeContext) End(errPtr *error) {
	defer rc.Span.End()
	if rc.cancel != nil {
		defer rc.cancel()
	}

	duration := time.Since(rc.Timestamp)
	success := *errPtr == nil

	if success {
		rc.Log.Info("Command completed", zap.Duration("duration", duration))
	} else {
		rc.Log.Error("Command failed", zap.Duration("duration", duration), zap.Error(*errPtr))
	}

	attrs := []attribute.KeyValue{
		attribute.Bool("success", success),
		attribute.Int64("duration_ms", duration.Milliseconds()),
		attribute.String("os", runtime.GOOS),
		attribute.String("args", telemetry.TruncateOrHashArgs(os.Args[1:])),
		attribute.String("version", shared.Version),
		attribute.String("category", classifyCommand(rc.Command)),
		attribute.String("error_type", classifyError(*errPtr)),
	}
	for k, v := range rc.Attributes {
		attrs = append(attrs, attribute.String(k, v))
	}

	_, span := telemetry.Start(rc.Ctx, rc.Command, attrs...)
	span.End()

	logger.Sync()
}

// LogInvocationContext records who is running the binary and from where.
func LogInvocationContext(rc *RuntimeContext) {
	if u, err := user.Current(); err != nil {
		rc.Log.Warn("⚠️ Failed to get current user", zap.Error(err))
	} else {
		rc.Log.Debug("🔎 User + UID/GID context",
			zap.String("username", u.Username),
			zap.String("uid_str", u.Uid),
			zap.String("gid_str", u.Gid),
			zap.String("home", u.HomeDir),
			zap.Int("real_uid", os.Getuid()),
			zap.Int("effective_uid", os.Geteuid()),
		)
	}

	if execPath, err := os.Executable(); err != nil {
		rc.Log.Warn("⚠️ Failed to resolve executable path", zap.Error(err))
	} else {
		rc.Log.Debug("🗂️ Executing binary", zap.String("path", execPath))
	}
}

func resolveCallContext(skip int) (component, action string) {
	pc, file, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", "unknown"
	}
	parts := strings.Split(file, "/")
	component = parts[len(parts)-2]
	if fn := runtime.FuncForPC(pc); fn != nil {
		name := fn.Name()
		fields := strings.Split(name, ".")
		action = fields[len(fields)-1]
	} else {
		action = "unknown"
	}
	return
}

func classifyCommand(name string) string {
	switch {
	case strings.HasPrefix(name, "generate"), strings.HasPrefix(name, "tui"):
		return "generation"
	case strings.HasPrefix(name, "inspect"):
		return "inspect"
	case strings.HasPrefix(name, "telemetry"), strings.HasPrefix(name, "version"):
		return "self"
	default:
		return "general"
	}
}

func classifyError(err error) string {
	if err == nil {
		return ""
	}
	if pythia_err.IsExpectedUserError(err) {
		return "user"
	}
	return "system"
}
