// Package config loads the optional ~/.rotomet/config.yaml. Every field has
// a default; flags override whatever the file sets.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration.
type Config struct {
	// DBPath is where the SQLite cache lives.
	DBPath string `yaml:"db_path"`
	// LeagueID is the default Sleeper league.
	LeagueID string `yaml:"league_id"`
	// Season is the NBA season year, e.g. "2026".
	Season string `yaml:"season"`
	// RecentWeeks is how many trailing scoring weeks make up the recent
	// stat window.
	RecentWeeks int `yaml:"recent_weeks"`
	// BallDontLieKey authenticates schedule requests.
	BallDontLieKey string `yaml:"balldontlie_api_key"`
	// Thresholds optionally overrides the engine's policy cutoffs.
	Thresholds Thresholds `yaml:"thresholds"`
}

// Thresholds holds the overridable policy cutoffs. Nil fields keep the
// engine defaults.
type Thresholds struct {
	BuyLowDiff       *float64 `yaml:"buy_low_diff"`
	SellHighDiff     *float64 `yaml:"sell_high_diff"`
	BreakoutEdge     *float64 `yaml:"breakout_edge"`
	DeclineEdge      *float64 `yaml:"decline_edge"`
	FreeAgentPoolCap *int     `yaml:"free_agent_pool_cap"`
	MaxDayPicks      *int     `yaml:"max_day_picks"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		DBPath:      filepath.Join(homeDir(), ".rotomet", "league.db"),
		Season:      "2026",
		RecentWeeks: 2,
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	return filepath.Join(homeDir(), ".rotomet", "config.yaml")
}

// Load reads the YAML config at path, applying defaults for unset fields.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.RecentWeeks <= 0 {
		cfg.RecentWeeks = Default().RecentWeeks
	}
	return cfg, nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
