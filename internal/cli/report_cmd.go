package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Kan-O435/studytimer-back/internal/cli/formatter"
	"github.com/Kan-O435/studytimer-back/internal/report"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build activity reports",
	}

	cmd.AddCommand(newReportWeeklyCmd(app))
	return cmd
}

func newReportWeeklyCmd(app *App) *cobra.Command {
	var (
		userID    int64
		rawOffset string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Aggregate one calendar week of sessions with a generated recap",
		RunE: func(cmd *cobra.Command, args []string) error {
			offset := report.ParseWeekOffset(rawOffset)

			weekly, err := app.Reports.Build(context.Background(), userID, offset)
			if err != nil {
				return fmt.Errorf("building weekly report: %w", err)
			}

			if asJSON || !app.interactive() {
				out, err := json.MarshalIndent(weekly, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding report: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeeklyReport(weekly))
			return nil
		},
	}

	addUserFlag(cmd.Flags(), app, &userID)
	cmd.Flags().StringVar(&rawOffset, "week-offset", "0",
		"weeks back from the current week (0 = this week); invalid values fall back to 0")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the raw JSON payload")

	return cmd
}
