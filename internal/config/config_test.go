package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Season != "2026" || cfg.RecentWeeks != 2 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.DBPath == "" {
		t.Error("default db path must be set")
	}
}

func TestLoadOverridesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("league_id: \"987\"\nrecent_weeks: 3\nballdontlie_api_key: key123\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LeagueID != "987" || cfg.RecentWeeks != 3 || cfg.BallDontLieKey != "key123" {
		t.Errorf("overrides lost: %+v", cfg)
	}
	// Unset fields keep their defaults.
	if cfg.Season != "2026" {
		t.Errorf("season default lost: %+v", cfg)
	}
}

func TestLoadThresholdOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("thresholds:\n  buy_low_diff: -2.0\n  free_agent_pool_cap: 100\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Thresholds.BuyLowDiff == nil || *cfg.Thresholds.BuyLowDiff != -2.0 {
		t.Errorf("buy_low_diff override lost: %+v", cfg.Thresholds)
	}
	if cfg.Thresholds.FreeAgentPoolCap == nil || *cfg.Thresholds.FreeAgentPoolCap != 100 {
		t.Errorf("free_agent_pool_cap override lost: %+v", cfg.Thresholds)
	}
	if cfg.Thresholds.SellHighDiff != nil {
		t.Error("unset threshold must stay nil")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("league_id: [unclosed"), 0o644)
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadZeroRecentWeeks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("recent_weeks: 0\n"), 0o644)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RecentWeeks != 2 {
		t.Errorf("zero recent_weeks should fall back to default, got %d", cfg.RecentWeeks)
	}
}
