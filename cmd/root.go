// Package cmd wires the CLI. The root command starts a practice
// session; subcommands expose the engine, the review queue, and stats.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/subjunto/subjunto/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "subjunto",
	Short: "Spaced-repetition trainer for the Spanish subjunctive",
	Long: "Subjunto drills Spanish subjunctive conjugation with rule-grounded\n" +
		"feedback and a spaced-repetition review schedule.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

// Execute runs the CLI.
func Execute() error {
	// A local .env is a convenience for API keys; absence is fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SUBJUNTO_DB)")
	rootCmd.PersistentFlags().String("user", "default", "User profile name")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.Flags().StringSlice("verbs", nil, "Restrict practice to these infinitives")
	rootCmd.Flags().StringSlice("tenses", nil, "Restrict practice to these tenses")
	rootCmd.Flags().Int("max-difficulty", 0, "Cap exercise difficulty (1-5, 0 = uncapped)")
	rootCmd.Flags().Bool("lenient-accents", false, "Accept answers with missing accents")
	rootCmd.Flags().Int("count", 10, "Number of exercises per session")

	rootCmd.AddCommand(conjugateCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the process logger. Debug output goes to stderr so it
// never interleaves with prompts on stdout.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// resolveDBPath returns the database path using the --db flag first,
// then SUBJUNTO_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, nil
	}
	return store.DefaultDBPath()
}

// openStore resolves the path and opens the SQLite store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func userID(cmd *cobra.Command) string {
	u, _ := cmd.Flags().GetString("user")
	if u == "" {
		u = "default"
	}
	return u
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
