package main

import (
	"fmt"
	"os"

	"github.com/Kan-O435/studytimer-back/internal/cli"
	"github.com/Kan-O435/studytimer-back/internal/config"
	"github.com/Kan-O435/studytimer-back/internal/db"
	"github.com/Kan-O435/studytimer-back/internal/repository"
	"github.com/Kan-O435/studytimer-back/internal/service"
	"github.com/Kan-O435/studytimer-back/internal/summary"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	reviewRepo := repository.NewSQLiteReviewRepo(database)

	// Wire the summarization client with audit logging when enabled
	var observer summary.Observer = summary.NoopObserver{}
	if cfg.Summary.LogCalls {
		observer = summary.NewLogObserver(os.Stderr)
	}
	summarizer := summary.NewClient(cfg.Summary, observer)

	app := &cli.App{
		Reports:  service.NewWeeklyReportService(sessionRepo, summarizer, loc, nil),
		Sessions: service.NewSessionService(sessionRepo, taskRepo),
		Tasks:    service.NewTaskService(taskRepo),
		Reviews:  service.NewReviewService(sessionRepo, reviewRepo),
		UserID:   cfg.UserID,
	}

	// Detect interactive terminal for forms and pretty rendering.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
