package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Kan-O435/studytimer-back/internal/domain"
)

// SQLiteReviewRepo implements ReviewRepo using a SQLite database.
type SQLiteReviewRepo struct {
	db *sql.DB
}

// NewSQLiteReviewRepo creates a new SQLiteReviewRepo.
func NewSQLiteReviewRepo(db *sql.DB) *SQLiteReviewRepo {
	return &SQLiteReviewRepo{db: db}
}

// Upsert writes the review for a session. The reviews table holds at most
// one row per session, so a second review replaces the first.
func (repo *SQLiteReviewRepo) Upsert(ctx context.Context, r *domain.Review) error {
	query := `INSERT INTO reviews (timer_session_id, score, comment, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(timer_session_id) DO UPDATE SET
			score = excluded.score,
			comment = excluded.comment,
			updated_at = excluded.updated_at`
	now := nowUTC()
	_, err := repo.db.ExecContext(ctx, query,
		r.SessionID, r.Score, nullableStrToValue(r.Comment), now, now)
	if err != nil {
		return fmt.Errorf("upserting review: %w", err)
	}

	// The upsert path does not report the surviving row id, so read it back.
	row := repo.db.QueryRowContext(ctx,
		`SELECT id FROM reviews WHERE timer_session_id = ?`, r.SessionID)
	if err := row.Scan(&r.ID); err != nil {
		return fmt.Errorf("reading review id: %w", err)
	}
	return nil
}

func (repo *SQLiteReviewRepo) GetBySession(ctx context.Context, sessionID int64) (*domain.Review, error) {
	query := `SELECT id, timer_session_id, score, comment, created_at, updated_at
		FROM reviews WHERE timer_session_id = ?`
	row := repo.db.QueryRowContext(ctx, query, sessionID)

	var r domain.Review
	var comment sql.NullString
	var createdAt, updatedAt string
	err := row.Scan(&r.ID, &r.SessionID, &r.Score, &comment, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("review for session %d: %w", sessionID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning review: %w", err)
	}
	if comment.Valid {
		c := comment.String
		r.Comment = &c
	}
	if r.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if r.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &r, nil
}
