package calculator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"go-calculators/internal/batch"
	"go-calculators/internal/cache"
	"go-calculators/internal/calc"
	"go-calculators/internal/handlers"
	"go-calculators/internal/observability"
	"go-calculators/internal/share"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculators")

// maxUpload bounds batch workbook uploads.
const maxUpload = 10 << 20

// Handler serves the calculator catalog over HTTP.
type Handler struct {
	registry *calc.Registry
	cache    cache.Cache
}

// NewHandler returns a handler over registry. A nil cache disables result
// caching.
func NewHandler(registry *calc.Registry, c cache.Cache) *Handler {
	return &Handler{registry: registry, cache: c}
}

// List handles GET /calculators.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	defs := h.registry.All()
	resp := ListResponse{
		Count:       len(defs),
		Calculators: make([]CalculatorInfo, 0, len(defs)),
	}
	for _, d := range defs {
		resp.Calculators = append(resp.Calculators, CalculatorInfo{
			Slug:        d.Slug,
			Title:       d.Title,
			Description: d.Description,
		})
	}
	handlers.WriteJSON(w, http.StatusOK, resp)
}

// Describe handles GET /calculators/{slug} and returns the form fields.
func (h *Handler) Describe(w http.ResponseWriter, r *http.Request) {
	d, ok := h.registry.Get(chi.URLParam(r, "slug"))
	if !ok {
		handlers.WriteError(w, http.StatusNotFound, "unknown calculator")
		return
	}
	handlers.WriteJSON(w, http.StatusOK, d)
}

// request is the per-call state shared by the instrumented handlers.
type request struct {
	def    *calc.Definition
	span   trace.Span
	logger *zap.Logger
	op     string
}

// begin resolves the slug and opens the calculator span. On an unknown slug
// the 404 has already been written and ok is false.
func (h *Handler) begin(w http.ResponseWriter, r *http.Request, action string) (*http.Request, *request, bool) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")
	op := "calculator." + slug
	if action != "" {
		op += "." + action
	}

	ctx, span := tracer.Start(ctx, op,
		trace.WithAttributes(
			attribute.String("calculator.slug", slug),
			attribute.String("request.id", observability.RequestIDFromContext(ctx)),
		),
	)
	req := &request{span: span, logger: observability.LoggerWithTrace(ctx), op: op}
	r = r.WithContext(ctx)

	d, ok := h.registry.Get(slug)
	if !ok {
		h.fail(w, r, req, observability.Failure{
			Message: "unknown calculator",
			Status:  http.StatusNotFound,
			Err:     fmt.Errorf("no calculator with slug %q", slug),
		})
		span.End()
		return r, nil, false
	}
	req.def = d
	return r, req, true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, req *request, f observability.Failure) {
	f.Op = req.op
	observability.RecordError(r.Context(), req.span, req.logger, errorCounter, w, f)
}

// invalid reports a validation failure with its user-facing message.
func (h *Handler) invalid(w http.ResponseWriter, r *http.Request, req *request, err error) {
	if ve, ok := calc.AsValidation(err); ok {
		h.fail(w, r, req, observability.Failure{
			Message: ve.Message,
			Field:   ve.Field,
			Status:  http.StatusUnprocessableEntity,
			Err:     err,
		})
		return
	}
	h.fail(w, r, req, observability.Failure{
		Message: "computation failed",
		Status:  http.StatusInternalServerError,
		Err:     err,
	})
}

func decodeInputs(r *http.Request) (map[string]string, error) {
	var body ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Inputs == nil {
		body.Inputs = map[string]string{}
	}
	return body.Inputs, nil
}

// compute runs the definition, consulting the cache first.
func (h *Handler) compute(r *http.Request, req *request, inputs map[string]string) (calc.Result, bool, error) {
	ctx := r.Context()
	slug := req.def.Slug
	key := cache.Key(slug, inputs)

	if h.cache != nil {
		cached, hit, err := h.cache.Get(ctx, key)
		if err != nil {
			req.logger.Warn("result cache lookup failed", zap.String("key", key), zap.Error(err))
		}
		cacheCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("calculator", slug),
			attribute.Bool("hit", hit),
		))
		if hit {
			var res calc.Result
			if err := json.Unmarshal([]byte(cached), &res); err == nil {
				req.span.AddEvent("cache.hit")
				return res, true, nil
			}
			req.logger.Warn("discarding unreadable cache entry", zap.String("key", key))
		}
	}

	start := time.Now()
	res, err := req.def.RunMap(inputs)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms
	if err != nil {
		return calc.Result{}, false, err
	}

	attrs := metric.WithAttributes(attribute.String("calculator", slug))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, res.Primary.Number, attrs)

	req.span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.String("result", res.Primary.Display),
		attribute.Float64("duration_ms", elapsed),
	))

	if h.cache != nil {
		if raw, err := json.Marshal(res); err == nil {
			if err := h.cache.Set(ctx, key, string(raw)); err != nil {
				req.logger.Warn("result cache store failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return res, false, nil
}

// Compute handles POST /calculators/{slug}.
func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	r, req, ok := h.begin(w, r, "")
	if !ok {
		return
	}
	defer req.span.End()

	inputs, err := decodeInputs(r)
	if err != nil {
		h.fail(w, r, req, observability.Failure{Message: "invalid request body", Status: http.StatusBadRequest, Err: err})
		return
	}

	res, cached, err := h.compute(r, req, inputs)
	if err != nil {
		h.invalid(w, r, req, err)
		return
	}

	req.span.SetAttributes(
		attribute.Bool("calculator.cached", cached),
		attribute.Bool("calculator.valid", res.Valid),
	)
	req.span.SetStatus(codes.Ok, "")

	req.logger.Info("calculation completed",
		zap.String("calculator", req.def.Slug),
		zap.String("result", res.Primary.Display),
		zap.Bool("cached", cached),
		zap.String("request_id", observability.RequestIDFromContext(r.Context())),
	)

	handlers.WriteJSON(w, http.StatusOK, ComputeResponse{
		Slug:    req.def.Slug,
		Result:  res,
		Summary: calc.SummarizeMap(req.def, inputs, res),
		Cached:  cached,
	})
}

// Share handles POST /calculators/{slug}/share?format=text|json|pdf|xlsx and
// returns the summary as a download.
func (h *Handler) Share(w http.ResponseWriter, r *http.Request) {
	r, req, ok := h.begin(w, r, "share")
	if !ok {
		return
	}
	defer req.span.End()

	format, err := share.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		h.fail(w, r, req, observability.Failure{Message: err.Error(), Status: http.StatusBadRequest, Err: err})
		return
	}
	exporter, err := share.For(format)
	if err != nil {
		h.fail(w, r, req, observability.Failure{Message: err.Error(), Status: http.StatusBadRequest, Err: err})
		return
	}

	inputs, err := decodeInputs(r)
	if err != nil {
		h.fail(w, r, req, observability.Failure{Message: "invalid request body", Status: http.StatusBadRequest, Err: err})
		return
	}

	res, _, err := h.compute(r, req, inputs)
	if err != nil {
		h.invalid(w, r, req, err)
		return
	}
	summary := calc.SummarizeMap(req.def, inputs, res)

	var buf bytes.Buffer
	if err := exporter.Export(&buf, summary); err != nil {
		h.fail(w, r, req, observability.Failure{Message: "could not render summary", Status: http.StatusInternalServerError, Err: err})
		return
	}

	req.span.SetAttributes(attribute.String("share.format", string(format)))
	req.span.SetStatus(codes.Ok, "")
	req.logger.Info("summary shared",
		zap.String("calculator", req.def.Slug),
		zap.String("format", string(format)),
		zap.Int("bytes", buf.Len()),
	)

	w.Header().Set("Content-Type", exporter.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", share.Filename(summary, exporter)))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// Batch handles POST /calculators/{slug}/batch: a multipart xlsx upload in
// the "file" field, one calculation per row.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	r, req, ok := h.begin(w, r, "batch")
	if !ok {
		return
	}
	defer req.span.End()

	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	file, _, err := r.FormFile("file")
	if err != nil {
		h.fail(w, r, req, observability.Failure{Message: "expected an xlsx upload in field \"file\"", Status: http.StatusBadRequest, Err: err})
		return
	}
	defer file.Close()

	start := time.Now()
	report, err := batch.Run(file, req.def)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, batch.ErrEmptySheet) {
			status = http.StatusUnprocessableEntity
		}
		h.fail(w, r, req, observability.Failure{Message: err.Error(), Status: status, Err: err})
		return
	}
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	attrs := metric.WithAttributes(attribute.String("calculator", req.def.Slug))
	batchRowsCount.Add(r.Context(), int64(report.Count), attrs)
	opsHistogram.Record(r.Context(), elapsed, attrs)

	req.span.SetAttributes(
		attribute.Int("batch.rows", report.Count),
		attribute.Int("batch.failed", report.Failed),
	)
	req.span.SetStatus(codes.Ok, "")
	req.logger.Info("batch completed",
		zap.String("calculator", req.def.Slug),
		zap.Int("rows", report.Count),
		zap.Int("failed", report.Failed),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, report)
}

// BatchTemplate handles GET /calculators/{slug}/batch/template.
func (h *Handler) BatchTemplate(w http.ResponseWriter, r *http.Request) {
	d, ok := h.registry.Get(chi.URLParam(r, "slug"))
	if !ok {
		handlers.WriteError(w, http.StatusNotFound, "unknown calculator")
		return
	}

	var buf bytes.Buffer
	if err := batch.Template(&buf, d); err != nil {
		observability.LoggerWithTrace(r.Context()).Error("batch template failed", zap.Error(err))
		handlers.WriteError(w, http.StatusInternalServerError, "could not build template")
		return
	}

	w.Header().Set("Content-Type", share.XLSX{}.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", d.Slug+"-batch.xlsx"))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
