package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Repos groups the repositories bound to one transaction.
type Repos struct {
	Tasks *TaskRepo
	State *StateRepo
}

// WithTx runs fn inside a SQL transaction, committing when fn returns nil.
func WithTx(ctx context.Context, db *sql.DB, fn func(r Repos) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	repos := Repos{
		Tasks: &TaskRepo{db: tx},
		State: &StateRepo{db: tx},
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}
