package domain

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

const (
	// MinScore and MaxScore bound a review score.
	MinScore = 1
	MaxScore = 5

	// MaxCommentLen is the maximum review comment length in runes.
	MaxCommentLen = 500
)

var (
	ErrMissingStartedAt = errors.New("session requires a start time")
	ErrNegativeDuration = errors.New("duration must be zero or more minutes")
	ErrEndedBeforeStart = errors.New("ended_at must be after started_at")
	ErrScoreOutOfRange  = fmt.Errorf("score must be between %d and %d", MinScore, MaxScore)
	ErrCommentTooLong   = fmt.Errorf("comment must be at most %d characters", MaxCommentLen)
	ErrMissingTaskTitle = errors.New("task requires a title")
)

// Task is a user-defined study topic a session can be logged against.
type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrMissingTaskTitle
	}
	return nil
}

// Review is the optional self-assessment attached to one session.
// At most one review exists per session.
type Review struct {
	ID        int64
	SessionID int64
	Score     int
	Comment   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *Review) Validate() error {
	if r.Score < MinScore || r.Score > MaxScore {
		return ErrScoreOutOfRange
	}
	if r.Comment != nil && utf8.RuneCountInString(*r.Comment) > MaxCommentLen {
		return ErrCommentTooLong
	}
	return nil
}

// TimerSession is one logged study session. Task and Review are preloaded
// by the repository when present; both are optional.
type TimerSession struct {
	ID              int64
	UserID          int64
	TaskID          *int64
	StartedAt       time.Time
	EndedAt         *time.Time
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Task   *Task
	Review *Review
}

func (s *TimerSession) Validate() error {
	if s.StartedAt.IsZero() {
		return ErrMissingStartedAt
	}
	if s.DurationMinutes < 0 {
		return ErrNegativeDuration
	}
	if s.EndedAt != nil && s.EndedAt.Before(s.StartedAt) {
		return ErrEndedBeforeStart
	}
	return nil
}
