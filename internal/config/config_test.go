package config

import (
	"testing"

	"github.com/GregMSThompson/dashboard-layout/internal/grid"
)

func TestNew_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORAGEBACKEND", "DATADIR", "REDISADDR", "REDISDB", "GRIDCELLSIZE", "GRIDGAP", "GRIDPADDING", "DRAGTHRESHOLD"} {
		t.Setenv(k, "")
	}
	cfg := New()

	if cfg.Port != "8080" || cfg.StorageBackend != BackendFile || cfg.DataDir != "./data" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Metrics() != grid.DefaultMetrics() || cfg.DragThreshold != grid.DefaultDragThreshold {
		t.Fatalf("unexpected grid defaults %+v", cfg)
	}
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("STORAGEBACKEND", BackendRedis)
	t.Setenv("REDISDB", "3")
	t.Setenv("GRIDCELLSIZE", "64")
	t.Setenv("DRAGTHRESHOLD", "not-a-number")
	cfg := New()

	if cfg.StorageBackend != BackendRedis || cfg.RedisDB != 3 || cfg.CellSize != 64 {
		t.Fatalf("overrides not applied %+v", cfg)
	}
	if cfg.DragThreshold != grid.DefaultDragThreshold {
		t.Fatalf("expected fallback for an invalid number, got %v", cfg.DragThreshold)
	}
}
