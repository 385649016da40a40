package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newReviewCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Rate logged sessions",
	}

	cmd.AddCommand(newReviewAddCmd(app))
	return cmd
}

func newReviewAddCmd(app *App) *cobra.Command {
	var (
		userID  int64
		score   int
		comment string
	)

	cmd := &cobra.Command{
		Use:   "add <session-id>",
		Short: "Attach a 1-5 review to a session, replacing any existing one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id %q", args[0])
			}

			if !cmd.Flags().Changed("score") && app.interactive() {
				score, comment, err = reviewForm()
				if err != nil {
					return err
				}
			}

			var commentPtr *string
			if comment != "" {
				commentPtr = &comment
			}

			review, err := app.Reviews.Attach(context.Background(), userID, sessionID, score, commentPtr)
			if err != nil {
				return fmt.Errorf("attaching review: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reviewed session %d: %d/5\n", sessionID, review.Score)
			return nil
		},
	}

	addUserFlag(cmd.Flags(), app, &userID)
	cmd.Flags().IntVar(&score, "score", 0, "score from 1 (bad) to 5 (excellent)")
	cmd.Flags().StringVar(&comment, "comment", "", "optional comment, up to 500 characters")

	return cmd
}
