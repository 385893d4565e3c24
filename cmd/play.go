package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizline/internal/app"
	"github.com/abhisek/quizline/internal/quiz"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Take the quiz in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

// runPlay opens the store, builds the quiz flow, and launches the TUI.
func runPlay(cmd *cobra.Command) error {
	st, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	questions := st.QuestionRepo()
	total, err := questions.Count(cmd.Context())
	if err != nil {
		return fmt.Errorf("count questions: %w", err)
	}
	if total == 0 {
		fmt.Fprintln(os.Stderr, "No questions yet. Run `quizline seed` to load the sample set.")
	}

	flow := quiz.NewFlow(questions, st.AnswerRepo(), cfg.UserID)
	return app.Run(app.Options{Flow: flow, Total: total})
}
