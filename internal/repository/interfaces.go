package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Kan-O435/studytimer-back/internal/domain"
)

// ErrNotFound is returned when a record does not exist or belongs to
// another user.
var ErrNotFound = errors.New("record not found")

// SessionReader is the read contract the weekly report pipeline consumes:
// all of a user's sessions whose start time falls in [from, to], ordered by
// start time ascending, with review and task preloaded when present.
type SessionReader interface {
	ListByUserInRange(ctx context.Context, userID int64, from, to time.Time) ([]*domain.TimerSession, error)
}

type SessionRepo interface {
	SessionReader
	Create(ctx context.Context, s *domain.TimerSession) error
	GetByID(ctx context.Context, userID, id int64) (*domain.TimerSession, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.TimerSession, error)
	Delete(ctx context.Context, userID, id int64) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, userID, id int64) (*domain.Task, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error)
}

type ReviewRepo interface {
	// Upsert creates the review for a session, replacing any existing one.
	Upsert(ctx context.Context, r *domain.Review) error
	GetBySession(ctx context.Context, sessionID int64) (*domain.Review, error)
}
