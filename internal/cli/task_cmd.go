package cli

import (
	"context"
	"fmt"

	"github.com/Kan-O435/studytimer-back/internal/cli/formatter"
	"github.com/Kan-O435/studytimer-back/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage study tasks",
	}

	cmd.AddCommand(newTaskAddCmd(app), newTaskListCmd(app))
	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var (
		userID      int64
		description string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task to log sessions against",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task := &domain.Task{
				UserID:      userID,
				Title:       args[0],
				Description: description,
			}
			if err := app.Tasks.Create(context.Background(), task); err != nil {
				return fmt.Errorf("creating task: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created task %d: %s\n", task.ID, task.Title)
			return nil
		},
	}

	addUserFlag(cmd.Flags(), app, &userID)
	cmd.Flags().StringVar(&description, "description", "", "free-form task description")
	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(context.Background(), userID)
			if err != nil {
				return fmt.Errorf("listing tasks: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(tasks))
			return nil
		},
	}

	addUserFlag(cmd.Flags(), app, &userID)
	return cmd
}
