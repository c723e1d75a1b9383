package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type TaskRepo struct {
	db querier
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

type TaskInsert struct {
	Name        string
	Description string
	DueDate     string
	Priority    int
}

// TaskUpdate carries the editable fields; nil leaves a column unchanged.
type TaskUpdate struct {
	Name        *string
	Description *string
	DueDate     *string
	Priority    *int
}

const taskColumns = `id, name, description, due_date, priority, completed, completed_date, created_at`

func (r *TaskRepo) Insert(ctx context.Context, in TaskInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (name, description, due_date, priority, completed)
		VALUES (?, ?, ?, ?, 0)
	`, in.Name, in.Description, in.DueDate, in.Priority)
	if err != nil {
		return 0, fmt.Errorf("task insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task last insert id: %w", err)
	}
	return id, nil
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (*Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	return scanTaskRow(row)
}

func (r *TaskRepo) ListAll(ctx context.Context) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task list rows: %w", err)
	}
	return out, nil
}

func (r *TaskRepo) Update(ctx context.Context, id int64, in TaskUpdate) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET name = COALESCE(?, name),
			description = COALESCE(?, description),
			due_date = COALESCE(?, due_date),
			priority = COALESCE(?, priority)
		WHERE id = ?
	`, in.Name, in.Description, in.DueDate, in.Priority, id)
	if err != nil {
		return fmt.Errorf("task update: %w", err)
	}
	return nil
}

// SetCompleted flips the completed flag. completedDate is stored verbatim and
// should be nil when completed is false.
func (r *TaskRepo) SetCompleted(ctx context.Context, id int64, completed bool, completedDate *string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET completed = ?, completed_date = ? WHERE id = ?`, boolToInt(completed), completedDate, id)
	if err != nil {
		return fmt.Errorf("task set completed: %w", err)
	}
	return nil
}

func (r *TaskRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks`)
	if err != nil {
		return 0, fmt.Errorf("task delete all: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("task delete rows affected: %w", err)
	}
	return n, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTaskRow(row scanner) (*Task, error) {
	var (
		t             Task
		completed     int
		completedDate sql.NullString
		createdAt     sql.NullTime
	)
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &t.DueDate, &t.Priority, &completed, &completedDate, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("task scan: %w", err)
	}

	t.Completed = completed != 0
	if completedDate.Valid {
		v := completedDate.String
		t.CompletedDate = &v
	}
	if createdAt.Valid {
		t.CreatedAt = createdAt.Time
	}
	return &t, nil
}
