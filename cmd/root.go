package cmd

import (
	"fmt"

	"github.com/abhisek/dsatrack/internal/config"
	"github.com/abhisek/dsatrack/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dsatrack",
	Short: "Track progress through a DSA question catalog",
	Long: "dsatrack: terminal tracker for data-structures and algorithms practice.\n" +
		"Browse the question catalog, mark questions solved, and keep a daily streak.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DSATRACK_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", `Catalog source: "builtin", a file path or an http(s) URL`)
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(unsolveCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file, .env and environment, then applies the
// --catalog flag on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if src, _ := cmd.Flags().GetString("catalog"); src != "" {
		cfg.CatalogSource = src
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path (file or DSATRACK_DB), then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
