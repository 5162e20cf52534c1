package observability

import (
	"context"
	"encoding/json"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Failure describes one failed calculator request.
type Failure struct {
	Op      string
	Message string
	// Field names the offending input for validation failures.
	Field  string
	Status int
	Err    error
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// RecordError records f on the span, counts it, logs it with trace context
// and writes the JSON error response. Client errors log at warn level.
func RecordError(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, w http.ResponseWriter, f Failure) {
	span.RecordError(f.Err)
	span.SetStatus(codes.Error, f.Message)

	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", f.Op),
		attribute.Int("status", f.Status),
	))

	fields := []zap.Field{
		zap.String("operation", f.Op),
		zap.Int("status", f.Status),
		zap.Error(f.Err),
		zap.String("request_id", RequestIDFromContext(ctx)),
	}
	if f.Field != "" {
		fields = append(fields, zap.String("field", f.Field))
	}
	if f.Status >= http.StatusInternalServerError {
		logger.Error(f.Message, fields...)
	} else {
		logger.Warn(f.Message, fields...)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.Status)
	_ = json.NewEncoder(w).Encode(ErrorBody{Error: f.Message, Field: f.Field})
}
