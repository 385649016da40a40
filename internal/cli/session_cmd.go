package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Kan-O435/studytimer-back/internal/cli/formatter"
	"github.com/Kan-O435/studytimer-back/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Log and inspect study sessions",
	}

	cmd.AddCommand(
		newSessionLogCmd(app),
		newSessionListCmd(app),
		newSessionShowCmd(app),
		newSessionDeleteCmd(app),
	)
	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	var (
		userID  int64
		minutes int
		taskID  int64
		started string
		ended   string
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a finished study session",
		RunE: func(cmd *cobra.Command, args []string) error {
			// With no flags on a terminal, collect the fields in a form.
			if !cmd.Flags().Changed("minutes") && app.interactive() {
				var err error
				minutes, taskID, started, err = sessionLogForm()
				if err != nil {
					return err
				}
			}

			session := &domain.TimerSession{
				UserID:          userID,
				StartedAt:       time.Now(),
				DurationMinutes: minutes,
			}
			if started != "" {
				t, err := parseTimeArg(started)
				if err != nil {
					return fmt.Errorf("parsing --started: %w", err)
				}
				session.StartedAt = t
			}
			if ended != "" {
				t, err := parseTimeArg(ended)
				if err != nil {
					return fmt.Errorf("parsing --ended: %w", err)
				}
				session.EndedAt = &t
			}
			if taskID > 0 {
				session.TaskID = &taskID
			}

			if err := app.Sessions.Log(context.Background(), session); err != nil {
				return fmt.Errorf("logging session: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged session %d (%d min)\n", session.ID, session.DurationMinutes)
			return nil
		},
	}

	addUserFlag(cmd.Flags(), app, &userID)
	cmd.Flags().IntVar(&minutes, "minutes", 0, "session length in minutes")
	cmd.Flags().Int64Var(&taskID, "task", 0, "task id the session was spent on")
	cmd.Flags().StringVar(&started, "started", "", "start time (RFC3339 or 'YYYY-MM-DD HH:MM'), default now")
	cmd.Flags().StringVar(&ended, "ended", "", "end time; minutes are derived when omitted from flags")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.List(context.Background(), userID)
			if err != nil {
				return fmt.Errorf("listing sessions: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionList(sessions))
			return nil
		},
	}

	addUserFlag(cmd.Flags(), app, &userID)
	return cmd
}

func newSessionShowCmd(app *App) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one session with its task and review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id %q", args[0])
			}
			session, err := app.Sessions.Get(context.Background(), userID, id)
			if err != nil {
				return fmt.Errorf("loading session: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSession(session))
			return nil
		},
	}

	addUserFlag(cmd.Flags(), app, &userID)
	return cmd
}

func newSessionDeleteCmd(app *App) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a session and its review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id %q", args[0])
			}
			if err := app.Sessions.Delete(context.Background(), userID, id); err != nil {
				return fmt.Errorf("deleting session: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %d\n", id)
			return nil
		},
	}

	addUserFlag(cmd.Flags(), app, &userID)
	return cmd
}

// parseTimeArg accepts RFC3339 or a local "YYYY-MM-DD HH:MM" timestamp.
func parseTimeArg(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02 15:04", raw, time.Local)
}
