package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"go-calculators/internal/calculator"
	"go-calculators/internal/catalog"
	"go-calculators/internal/config"
	"go-calculators/internal/observability"
	"go-calculators/internal/server"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Logger
	if err := observability.InitLogger(cfg.ServiceName); err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	// Tracing, metrics, OTLP logs
	shutdownTelemetry, err := initTelemetry(ctx, cfg)
	defer shutdownTelemetry(ctx)
	if err != nil {
		observability.Logger.Fatal("telemetry init failed", zap.Error(err))
	}

	// Router
	router := server.NewRouter(server.Deps{
		Calculators: calculator.NewHandler(catalog.Default(), initCache(ctx, cfg)),
		Limiter:     observability.NewRateLimiter(cfg.RateLimit, cfg.RateBurst),
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		observability.Logger.Info("server started",
			zap.String("addr", cfg.Addr),
			zap.Bool("telemetry", cfg.Telemetry),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			observability.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	waitForShutdown(srv)
}

func waitForShutdown(srv *http.Server) {
	stop := make(chan os.Signal, 1)

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		observability.Logger.Warn("shutdown incomplete", zap.Error(err))
	}
}
