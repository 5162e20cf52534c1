package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Logger is the process-wide logger. It is a no-op until InitLogger runs so
// packages can log from tests without setup.
var Logger = zap.NewNop()

// InitLogger installs a production JSON logger tagged with the service name.
func InitLogger(serviceName string) error {
	l, err := zap.NewProduction()
	if err != nil {
		return err
	}
	Logger = l.With(zap.String("service", serviceName))
	return nil
}

func SyncLogger() {
	_ = Logger.Sync()
}

// LoggerWithTrace returns a child logger carrying the trace_id and span_id of
// the active span in ctx.
//
// ctx itself is attached as a field as well: the otelzap core uses any
// context.Context field as the emit context, which fills the native TraceID
// and SpanID of the exported log record. The string fields keep stdout logs
// greppable.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return Logger
	}

	return Logger.With(
		zap.Any("context", ctx),
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
