package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			due_date TEXT NOT NULL DEFAULT '',
			priority INTEGER NOT NULL DEFAULT 1,
			completed INTEGER NOT NULL DEFAULT 0,
			completed_date TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		// Defaults match a fresh engine state so a new row needs only its key.
		`CREATE TABLE IF NOT EXISTS gamification (
			key TEXT PRIMARY KEY,
			points INTEGER NOT NULL DEFAULT 0,
			bronze_goal INTEGER NOT NULL DEFAULT 5,
			silver_goal INTEGER NOT NULL DEFAULT 10,
			gold_goal INTEGER NOT NULL DEFAULT 20,
			achievement_message TEXT NOT NULL DEFAULT '',
			daily_reward INTEGER NOT NULL DEFAULT 0,
			daily_reward_message TEXT NOT NULL DEFAULT '',
			weekly_challenge_message TEXT NOT NULL DEFAULT 'Complete a task every day for a week to earn 100 points!'
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_completed_date ON tasks(completed_date);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Columns added after the first release (ignore if already present).
	alterStmts := []string{
		`ALTER TABLE tasks ADD COLUMN completed_date TEXT;`,
	}
	for _, stmt := range alterStmts {
		_, err := db.ExecContext(ctx, stmt)
		if err != nil && !strings.Contains(err.Error(), "duplicate column") {
			return fmt.Errorf("migrate alter: %w", err)
		}
	}

	return nil
}
