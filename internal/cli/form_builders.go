package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// validatePositiveInt rejects values that are not positive integers.
func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateOptionalInt accepts blank input or a positive integer.
func validateOptionalInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validatePositiveInt(s)
}

// sessionLogForm collects session fields interactively.
func sessionLogForm() (minutes int, taskID int64, started string, err error) {
	var minutesStr, taskStr string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Minutes studied").
				Placeholder("60").
				Value(&minutesStr).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Task ID (blank for none)").
				Value(&taskStr).
				Validate(validateOptionalInt),
			huh.NewInput().
				Title("Started at (blank for now)").
				Placeholder("2025-06-22 09:00").
				Value(&started),
		),
	).WithShowHelp(false)

	if err = form.Run(); err != nil {
		return 0, 0, "", fmt.Errorf("reading session form: %w", err)
	}

	minutes, _ = strconv.Atoi(strings.TrimSpace(minutesStr))
	if t := strings.TrimSpace(taskStr); t != "" {
		taskID, _ = strconv.ParseInt(t, 10, 64)
	}
	return minutes, taskID, strings.TrimSpace(started), nil
}

// reviewForm collects a score and optional comment interactively.
func reviewForm() (score int, comment string, err error) {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("How did the session go?").
				Options(
					huh.NewOption("5 - excellent", 5),
					huh.NewOption("4 - good", 4),
					huh.NewOption("3 - okay", 3),
					huh.NewOption("2 - poor", 2),
					huh.NewOption("1 - bad", 1),
				).
				Value(&score),
			huh.NewText().
				Title("Comment (optional)").
				CharLimit(500).
				Value(&comment),
		),
	).WithShowHelp(false)

	if err = form.Run(); err != nil {
		return 0, "", fmt.Errorf("reading review form: %w", err)
	}
	return score, strings.TrimSpace(comment), nil
}
