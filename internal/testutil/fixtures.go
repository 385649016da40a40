package testutil

import (
	"time"

	"github.com/Kan-O435/studytimer-back/internal/domain"
)

// Session options
type SessionOption func(*domain.TimerSession)

func WithStartedAt(t time.Time) SessionOption {
	return func(s *domain.TimerSession) {
		s.StartedAt = t
	}
}

func WithEndedAt(t time.Time) SessionOption {
	return func(s *domain.TimerSession) {
		s.EndedAt = &t
	}
}

func WithTaskID(id int64) SessionOption {
	return func(s *domain.TimerSession) {
		s.TaskID = &id
	}
}

// NewTestSession builds an unsaved session started an hour ago.
func NewTestSession(userID int64, minutes int, opts ...SessionOption) *domain.TimerSession {
	s := &domain.TimerSession{
		UserID:          userID,
		StartedAt:       time.Now().UTC().Add(-time.Hour),
		DurationMinutes: minutes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTestTask builds an unsaved task.
func NewTestTask(userID int64, title string) *domain.Task {
	return &domain.Task{
		UserID: userID,
		Title:  title,
	}
}

// NewTestReview builds an unsaved review for a session.
func NewTestReview(sessionID int64, score int, comment string) *domain.Review {
	r := &domain.Review{
		SessionID: sessionID,
		Score:     score,
	}
	if comment != "" {
		r.Comment = &comment
	}
	return r
}
