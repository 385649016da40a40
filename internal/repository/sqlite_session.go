package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Kan-O435/studytimer-back/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db *sql.DB
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db *sql.DB) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

// sessionColumns is the joined projection shared by all session queries.
// Task and review columns come from LEFT JOINs and may be NULL.
const sessionColumns = `
	s.id, s.user_id, s.task_id, s.started_at, s.ended_at, s.duration_minutes,
	s.created_at, s.updated_at,
	t.id, t.user_id, t.title, t.description, t.created_at, t.updated_at,
	r.id, r.timer_session_id, r.score, r.comment, r.created_at, r.updated_at`

const sessionJoins = `
	FROM timer_sessions s
	LEFT JOIN tasks t ON t.id = s.task_id
	LEFT JOIN reviews r ON r.timer_session_id = s.id`

func (repo *SQLiteSessionRepo) Create(ctx context.Context, s *domain.TimerSession) error {
	query := `INSERT INTO timer_sessions
		(user_id, task_id, started_at, ended_at, duration_minutes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	now := nowUTC()
	res, err := repo.db.ExecContext(ctx, query,
		s.UserID,
		nullableIntToValue(s.TaskID),
		s.StartedAt.UTC().Format(time.RFC3339),
		nullableTimeToString(s.EndedAt, time.RFC3339),
		s.DurationMinutes,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("inserting timer session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading timer session id: %w", err)
	}
	s.ID = id
	return nil
}

func (repo *SQLiteSessionRepo) GetByID(ctx context.Context, userID, id int64) (*domain.TimerSession, error) {
	query := `SELECT` + sessionColumns + sessionJoins + `
		WHERE s.id = ? AND s.user_id = ?`
	row := repo.db.QueryRowContext(ctx, query, id, userID)

	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("timer session %d: %w", id, ErrNotFound)
	}
	return s, err
}

func (repo *SQLiteSessionRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.TimerSession, error) {
	query := `SELECT` + sessionColumns + sessionJoins + `
		WHERE s.user_id = ?
		ORDER BY s.started_at DESC`
	rows, err := repo.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

// ListByUserInRange returns sessions started within [from, to] ordered by
// start time ascending, each with its review and task preloaded.
func (repo *SQLiteSessionRepo) ListByUserInRange(ctx context.Context, userID int64, from, to time.Time) ([]*domain.TimerSession, error) {
	query := `SELECT` + sessionColumns + sessionJoins + `
		WHERE s.user_id = ? AND s.started_at >= ? AND s.started_at <= ?
		ORDER BY s.started_at`
	rows, err := repo.db.QueryContext(ctx, query,
		userID,
		from.UTC().Format(time.RFC3339),
		to.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("listing sessions in range: %w", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (repo *SQLiteSessionRepo) Delete(ctx context.Context, userID, id int64) error {
	res, err := repo.db.ExecContext(ctx,
		`DELETE FROM timer_sessions WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting timer session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting timer session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("timer session %d: %w", id, ErrNotFound)
	}
	return nil
}

// sessionRow is the raw scan target for the joined session projection.
type sessionRow struct {
	id        int64
	userID    int64
	taskID    sql.NullInt64
	startedAt string
	endedAt   sql.NullString
	minutes   int
	createdAt string
	updatedAt string

	taskRowID    sql.NullInt64
	taskUserID   sql.NullInt64
	taskTitle    sql.NullString
	taskDesc     sql.NullString
	taskCreated  sql.NullString
	taskUpdated  sql.NullString
	revID        sql.NullInt64
	revSessionID sql.NullInt64
	revScore     sql.NullInt64
	revComment   sql.NullString
	revCreated   sql.NullString
	revUpdated   sql.NullString
}

func (r *sessionRow) dests() []interface{} {
	return []interface{}{
		&r.id, &r.userID, &r.taskID, &r.startedAt, &r.endedAt, &r.minutes,
		&r.createdAt, &r.updatedAt,
		&r.taskRowID, &r.taskUserID, &r.taskTitle, &r.taskDesc, &r.taskCreated, &r.taskUpdated,
		&r.revID, &r.revSessionID, &r.revScore, &r.revComment, &r.revCreated, &r.revUpdated,
	}
}

func (r *sessionRow) toDomain() (*domain.TimerSession, error) {
	startedAt, err := time.Parse(time.RFC3339, r.startedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339, r.createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339, r.updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	s := &domain.TimerSession{
		ID:              r.id,
		UserID:          r.userID,
		StartedAt:       startedAt,
		EndedAt:         parseNullableTime(r.endedAt, time.RFC3339),
		DurationMinutes: r.minutes,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
	if r.taskID.Valid {
		s.TaskID = &r.taskID.Int64
	}
	if r.taskRowID.Valid {
		s.Task = &domain.Task{
			ID:          r.taskRowID.Int64,
			UserID:      r.taskUserID.Int64,
			Title:       r.taskTitle.String,
			Description: r.taskDesc.String,
		}
		if t := parseNullableTime(r.taskCreated, time.RFC3339); t != nil {
			s.Task.CreatedAt = *t
		}
		if t := parseNullableTime(r.taskUpdated, time.RFC3339); t != nil {
			s.Task.UpdatedAt = *t
		}
	}
	if r.revID.Valid {
		rev := &domain.Review{
			ID:        r.revID.Int64,
			SessionID: r.revSessionID.Int64,
			Score:     int(r.revScore.Int64),
		}
		if r.revComment.Valid {
			c := r.revComment.String
			rev.Comment = &c
		}
		if t := parseNullableTime(r.revCreated, time.RFC3339); t != nil {
			rev.CreatedAt = *t
		}
		if t := parseNullableTime(r.revUpdated, time.RFC3339); t != nil {
			rev.UpdatedAt = *t
		}
		s.Review = rev
	}
	return s, nil
}

func scanSession(row *sql.Row) (*domain.TimerSession, error) {
	var r sessionRow
	if err := row.Scan(r.dests()...); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning timer session: %w", err)
	}
	return r.toDomain()
}

func scanSessions(rows *sql.Rows) ([]*domain.TimerSession, error) {
	var sessions []*domain.TimerSession
	for rows.Next() {
		var r sessionRow
		if err := rows.Scan(r.dests()...); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		s, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}
