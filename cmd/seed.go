package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizline/internal/seed"
	"github.com/abhisek/quizline/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load questions into the database",
	Long: "Load questions from a YAML file (or the built-in sample set) into the database.\n" +
		"Questions that already exist are left as they are.",
	RunE: func(cmd *cobra.Command, args []string) error {
		questions, err := loadSeedQuestions(cmd)
		if err != nil {
			return err
		}

		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.QuestionRepo().Seed(cmd.Context(), questions)
		if err != nil {
			return fmt.Errorf("seed questions: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %d of %d questions.\n", n, len(questions))
		return nil
	},
}

func init() {
	seedCmd.Flags().StringP("file", "f", "", "YAML question file (default: built-in sample questions)")
}

func loadSeedQuestions(cmd *cobra.Command) ([]store.Question, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		return seed.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open question file: %w", err)
	}
	defer f.Close()
	return seed.Parse(f)
}
