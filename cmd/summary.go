package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizline/internal/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the current user's answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		total, err := st.QuestionRepo().Count(ctx)
		if err != nil {
			return fmt.Errorf("count questions: %w", err)
		}
		pairs, err := st.AnswerRepo().AnswersForUser(ctx, cfg.UserID)
		if err != nil {
			return fmt.Errorf("load answers: %w", err)
		}
		return report.WriteSummary(cmd.OutOrStdout(), cfg.UserID, total, pairs)
	},
}
