package service

import (
	"context"
	"fmt"

	"github.com/Kan-O435/studytimer-back/internal/domain"
	"github.com/Kan-O435/studytimer-back/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
	tasks    repository.TaskRepo
}

func NewSessionService(sessions repository.SessionRepo, tasks repository.TaskRepo) SessionService {
	return &sessionService{sessions: sessions, tasks: tasks}
}

func (s *sessionService) Log(ctx context.Context, session *domain.TimerSession) error {
	// Derive the duration from the start/end pair when the caller gave one.
	if session.DurationMinutes == 0 && session.EndedAt != nil {
		session.DurationMinutes = int(session.EndedAt.Sub(session.StartedAt).Minutes())
	}
	if err := session.Validate(); err != nil {
		return err
	}

	// A task reference must point at one of the user's own tasks.
	if session.TaskID != nil {
		if _, err := s.tasks.GetByID(ctx, session.UserID, *session.TaskID); err != nil {
			return fmt.Errorf("resolving task: %w", err)
		}
	}

	return s.sessions.Create(ctx, session)
}

func (s *sessionService) Get(ctx context.Context, userID, id int64) (*domain.TimerSession, error) {
	return s.sessions.GetByID(ctx, userID, id)
}

func (s *sessionService) List(ctx context.Context, userID int64) ([]*domain.TimerSession, error) {
	return s.sessions.ListByUser(ctx, userID)
}

func (s *sessionService) Delete(ctx context.Context, userID, id int64) error {
	return s.sessions.Delete(ctx, userID, id)
}

type taskService struct {
	tasks repository.TaskRepo
}

func NewTaskService(tasks repository.TaskRepo) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	return s.tasks.Create(ctx, t)
}

func (s *taskService) List(ctx context.Context, userID int64) ([]*domain.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

type reviewService struct {
	sessions repository.SessionRepo
	reviews  repository.ReviewRepo
}

func NewReviewService(sessions repository.SessionRepo, reviews repository.ReviewRepo) ReviewService {
	return &reviewService{sessions: sessions, reviews: reviews}
}

func (s *reviewService) Attach(ctx context.Context, userID, sessionID int64, score int, comment *string) (*domain.Review, error) {
	// Confirm the session exists and belongs to the user before writing.
	if _, err := s.sessions.GetByID(ctx, userID, sessionID); err != nil {
		return nil, fmt.Errorf("resolving session: %w", err)
	}

	review := &domain.Review{
		SessionID: sessionID,
		Score:     score,
		Comment:   comment,
	}
	if err := review.Validate(); err != nil {
		return nil, err
	}
	if err := s.reviews.Upsert(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
