package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizdrill/quizdrill/internal/app"
	"github.com/quizdrill/quizdrill/internal/library"
	"github.com/quizdrill/quizdrill/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizdrill",
	Short: "Take quizzes in your terminal",
	Long:  "QuizDrill — author quizzes as JSON/YAML files and drill them with automatic grading.",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := resolveLibrary(cmd)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		qs, cs := newShufflers()
		return app.Run(app.Options{
			Library:         lib,
			EventRepo:       st.EventRepo(),
			QuestionShuffle: qs,
			ChoiceShuffle:   cs,
		})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZDRILL_DB env var)")
	rootCmd.PersistentFlags().String("dir", "", "Path to the quiz directory (overrides QUIZDRILL_DIR env var)")

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(mvCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveLibrary returns the quiz library using --dir (highest priority),
// then QUIZDRILL_DIR, then the default XDG path.
func resolveLibrary(cmd *cobra.Command) (*library.Library, error) {
	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		return library.New(dir), nil
	}
	dir, err := library.DefaultDir()
	if err != nil {
		return nil, fmt.Errorf("resolve quiz directory: %w", err)
	}
	return library.New(dir), nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZDRILL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

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
