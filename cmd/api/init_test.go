package main

import (
	"context"
	"testing"
	"time"

	"go-calculators/internal/cache"
	"go-calculators/internal/config"
)

func TestInitCacheDefaultsToMemory(t *testing.T) {
	c := initCache(context.Background(), config.Config{CacheTTL: time.Minute})
	if _, ok := c.(*cache.Memory); !ok {
		t.Fatalf("expected memory cache, got %T", c)
	}
}

func TestInitCacheFallsBackWhenRedisIsDown(t *testing.T) {
	c := initCache(context.Background(), config.Config{RedisAddr: "127.0.0.1:1", CacheTTL: time.Minute})
	if _, ok := c.(*cache.Memory); !ok {
		t.Fatalf("expected memory fallback, got %T", c)
	}
}

func TestInitTelemetryDisabled(t *testing.T) {
	shutdown, err := initTelemetry(context.Background(), config.Config{Telemetry: false})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	shutdown(context.Background())
}
