package service

import (
	"context"

	"github.com/Kan-O435/studytimer-back/internal/domain"
	"github.com/Kan-O435/studytimer-back/internal/report"
)

// WeeklyReportService builds the rolling weekly report for a user.
type WeeklyReportService interface {
	// Build resolves the window for weekOffset, aggregates the user's
	// sessions into daily buckets and attaches a summary. Only a session
	// fetch failure returns an error; summarization failures degrade the
	// summary text and never fail the build.
	Build(ctx context.Context, userID int64, weekOffset int) (*report.WeeklyReport, error)
}

// SessionService manages timer session records.
type SessionService interface {
	Log(ctx context.Context, s *domain.TimerSession) error
	Get(ctx context.Context, userID, id int64) (*domain.TimerSession, error)
	List(ctx context.Context, userID int64) ([]*domain.TimerSession, error)
	Delete(ctx context.Context, userID, id int64) error
}

// TaskService manages study tasks.
type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	List(ctx context.Context, userID int64) ([]*domain.Task, error)
}

// ReviewService attaches per-session reviews.
type ReviewService interface {
	// Attach writes the review for one of the user's sessions, replacing
	// any review the session already had.
	Attach(ctx context.Context, userID, sessionID int64, score int, comment *string) (*domain.Review, error)
}
