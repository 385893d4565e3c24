package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizline/internal/config"
	"github.com/abhisek/quizline/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizline",
	Short: "A small multi-page quiz",
	Long:  "quizline asks its questions one at a time, saves every answer, and shows them all back at the end.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZLINE_DB env var)")
	rootCmd.PersistentFlags().Int64("user", 0, "User ID answers are recorded for (overrides QUIZLINE_USER_ID env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if u, _ := cmd.Flags().GetInt64("user"); u != 0 {
		if u < 0 {
			return config.Config{}, fmt.Errorf("--user must be positive, got %d", u)
		}
		cfg.UserID = u
	}
	return cfg, nil
}

// resolveDBPath returns the database path from --db or QUIZLINE_DB, then
// the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore loads config and opens the store it points at. The caller
// closes the store.
func openStore(cmd *cobra.Command) (*store.Store, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Config{}, err
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("open store: %w", err)
	}
	return st, cfg, nil
}
