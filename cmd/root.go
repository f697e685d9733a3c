package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "prepdeck",
	Short: "AI study companion",
	Long:  "Prepdeck — generate practice tests with AI, grade them, and track goals and achievements.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Best effort: a missing .env is the normal case.
		_ = godotenv.Load()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPDECK_DB env var)")

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PREPDECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the store for a command invocation.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
