package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.TopN != 10 {
		t.Errorf("expected default top of 10, got %d", cfg.TopN)
	}
	if cfg.MinSize != "0B" {
		t.Errorf("expected default min-size 0B, got %q", cfg.MinSize)
	}
	if cfg.Output != "table" {
		t.Errorf("expected default output table, got %q", cfg.Output)
	}
	if cfg.Color != "auto" {
		t.Errorf("expected default color auto, got %q", cfg.Color)
	}
	if cfg.Workers != 0 {
		t.Errorf("expected default workers 0, got %d", cfg.Workers)
	}
	if cfg.ProgressInterval != 500*time.Millisecond {
		t.Errorf("expected default progress interval 500ms, got %v", cfg.ProgressInterval)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TOPSIZE_TOP", "25")
	t.Setenv("TOPSIZE_MIN_SIZE", "1MB")
	t.Setenv("TOPSIZE_OUTPUT", "json")
	t.Setenv("TOPSIZE_PROGRESS_INTERVAL", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.TopN != 25 {
		t.Errorf("expected top 25, got %d", cfg.TopN)
	}
	if cfg.MinSize != "1MB" {
		t.Errorf("expected min-size 1MB, got %q", cfg.MinSize)
	}
	if cfg.Output != "json" {
		t.Errorf("expected output json, got %q", cfg.Output)
	}
	if cfg.ProgressInterval != 250*time.Millisecond {
		t.Errorf("expected progress interval 250ms, got %v", cfg.ProgressInterval)
	}
}
