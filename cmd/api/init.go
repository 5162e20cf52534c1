package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"go-calculators/internal/cache"
	"go-calculators/internal/calculator"
	"go-calculators/internal/config"
	"go-calculators/internal/observability"
)

// initTelemetry starts log, trace and metric export when enabled and returns
// one shutdown func for all of them.
func initTelemetry(ctx context.Context, cfg config.Config) (func(context.Context), error) {
	var shutdowns []func(context.Context) error
	shutdown := func(ctx context.Context) {
		for i := len(shutdowns) - 1; i >= 0; i-- {
			if err := shutdowns[i](ctx); err != nil {
				observability.Logger.Warn("telemetry shutdown failed", zap.Error(err))
			}
		}
	}

	if cfg.Telemetry {
		logShutdown, err := observability.InitLogging(ctx, cfg.ServiceName)
		if err != nil {
			return shutdown, err
		}
		shutdowns = append(shutdowns, logShutdown)

		traceShutdown, err := observability.InitTracing(ctx, cfg.ServiceName)
		if err != nil {
			return shutdown, err
		}
		shutdowns = append(shutdowns, traceShutdown)

		metricShutdown, err := observability.InitMetrics(ctx, cfg.ServiceName)
		if err != nil {
			return shutdown, err
		}
		shutdowns = append(shutdowns, metricShutdown)
	}

	// Domain instruments bind to whichever meter provider is installed, the
	// global no-op one included.
	if err := calculator.InitMetrics(); err != nil {
		return shutdown, err
	}

	return shutdown, nil
}

// initCache picks Redis when configured and falls back to memory when it is
// unreachable.
func initCache(ctx context.Context, cfg config.Config) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.NewMemory(cfg.CacheTTL)
	}

	r := cache.NewRedis(cfg.RedisAddr, cfg.CacheTTL)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := r.Ping(pingCtx); err != nil {
		observability.Logger.Warn("redis unavailable, caching in memory",
			zap.String("addr", cfg.RedisAddr),
			zap.Error(err),
		)
		_ = r.Close()
		return cache.NewMemory(cfg.CacheTTL)
	}
	return r
}
