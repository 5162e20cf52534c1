package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialized once via InitMetrics().
var (
	opsCounter     metric.Int64Counter
	opsHistogram   metric.Float64Histogram
	errorCounter   metric.Int64Counter
	resultGauge    metric.Float64Gauge
	cacheCounter   metric.Int64Counter
	batchRowsCount metric.Int64Counter
)

// InitMetrics registers the calculator instruments on the global meter
// provider. Call it once at startup, after observability.InitMetrics.
func InitMetrics() error {
	meter := otel.Meter("calculators")

	var err error

	opsCounter, err = meter.Int64Counter("calculators.computations.total",
		metric.WithDescription("Completed calculator computations"),
		metric.WithUnit("{computation}"),
	)
	if err != nil {
		return fmt.Errorf("creating computations counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("calculators.computation.duration",
		metric.WithDescription("Duration of calculator computations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50),
	)
	if err != nil {
		return fmt.Errorf("creating computation histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("calculators.errors.total",
		metric.WithDescription("Failed calculator requests, validation failures included"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	resultGauge, err = meter.Float64Gauge("calculators.last_result",
		metric.WithDescription("Primary value of the last computation per calculator"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	cacheCounter, err = meter.Int64Counter("calculators.cache.lookups.total",
		metric.WithDescription("Result cache lookups by outcome"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return fmt.Errorf("creating cache counter: %w", err)
	}

	batchRowsCount, err = meter.Int64Counter("calculators.batch.rows.total",
		metric.WithDescription("Spreadsheet rows computed by batch imports"),
		metric.WithUnit("{row}"),
	)
	if err != nil {
		return fmt.Errorf("creating batch rows counter: %w", err)
	}

	return nil
}
