package cmd

import (
	"github.com/abhisek/pytutor/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pytutor",
	Short: "Interactive Python tutor",
	Long:  "Pytutor — terminal tutor that walks you through a Python curriculum, one quiz-gated lesson at a time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PYTUTOR_DB env var)")
	rootCmd.PersistentFlags().String("curriculum", "", "Path to a curriculum JSON file (default: built-in course)")
	rootCmd.Flags().String("user", "local", "User ID to track progress under")
	rootCmd.Flags().String("name", "", "Display name for stats and the certificate (default: $USER)")

	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PYTUTOR_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
