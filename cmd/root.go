package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rotomet/rotomet/internal/config"
)

var (
	cfgPath  string
	dbPath   string
	leagueID string
	season   string
	verbose  bool

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "rotomet",
	Short: "Fantasy basketball roster analytics for Sleeper leagues",
	Long: `Pulls a Sleeper league into a local SQLite cache and computes
weighted z-score valuations, trend signals, streaming plans, and trade
targets against the league's own scoring settings.`,
	PersistentPreRunE: initRoot,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "path to config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to SQLite cache (default from config)")
	rootCmd.PersistentFlags().StringVar(&leagueID, "league", "", "Sleeper league id (default from config)")
	rootCmd.PersistentFlags().StringVar(&season, "season", "", "NBA season year (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// initRoot wires logging and resolves flag defaults from the config file.
func initRoot(cmd *cobra.Command, args []string) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	cfg, err = config.Load(cfgPath)
	if err != nil {
		return err
	}
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	if leagueID == "" {
		leagueID = cfg.LeagueID
	}
	if season == "" {
		season = cfg.Season
	}
	return nil
}
