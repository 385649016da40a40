package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Kan-O435/studytimer-back/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db *sql.DB
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db *sql.DB) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

func (repo *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (user_id, title, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	now := nowUTC()
	res, err := repo.db.ExecContext(ctx, query, t.UserID, t.Title, t.Description, now, now)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading task id: %w", err)
	}
	t.ID = id
	return nil
}

func (repo *SQLiteTaskRepo) GetByID(ctx context.Context, userID, id int64) (*domain.Task, error) {
	query := `SELECT id, user_id, title, description, created_at, updated_at
		FROM tasks WHERE id = ? AND user_id = ?`
	row := repo.db.QueryRowContext(ctx, query, id, userID)

	t, err := scanTask(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return t, err
}

func (repo *SQLiteTaskRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error) {
	query := `SELECT id, user_id, title, description, created_at, updated_at
		FROM tasks WHERE user_id = ? ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func scanTask(scan func(...interface{}) error) (*domain.Task, error) {
	var t domain.Task
	var createdAt, updatedAt string
	err := scan(&t.ID, &t.UserID, &t.Title, &t.Description, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &t, nil
}
