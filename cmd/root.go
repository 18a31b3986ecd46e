package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Maradon197/5MinuteChallenge-sub000/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "fivemin",
	Short: "Five-minute micro-lessons in your terminal",
	Long:  "5-Minute Challenge — bite-sized interactive lessons against a five-minute countdown, generated on any subject you like.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FIVEMIN_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then FIVEMIN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
