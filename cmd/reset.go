package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the current user's answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("reset deletes answers permanently; re-run with --yes to confirm")
		}

		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.AnswerRepo().DeleteForUser(cmd.Context(), cfg.UserID)
		if err != nil {
			return fmt.Errorf("reset answers: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d answers for user %d.\n", n, cfg.UserID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deleting answers")
}
