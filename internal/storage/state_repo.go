package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const MainStateKey = "main"

type StateRepo struct {
	db querier
}

func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{db: db}
}

func (r *StateRepo) Get(ctx context.Context, key string) (*GamificationState, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, points, bronze_goal, silver_goal, gold_goal,
			achievement_message, daily_reward, daily_reward_message, weekly_challenge_message
		FROM gamification
		WHERE key = ?
	`, key)

	var s GamificationState
	if err := row.Scan(
		&s.Key, &s.Points, &s.BronzeGoal, &s.SilverGoal, &s.GoldGoal,
		&s.AchievementMessage, &s.DailyReward, &s.DailyRewardMessage, &s.WeeklyChallengeMessage,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("state get: %w", err)
	}
	return &s, nil
}

func (r *StateRepo) GetOrCreateMain(ctx context.Context) (*GamificationState, error) {
	s, err := r.Get(ctx, MainStateKey)
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO gamification (key) VALUES (?)`, MainStateKey); err != nil {
		return nil, fmt.Errorf("state insert: %w", err)
	}
	return r.Get(ctx, MainStateKey)
}

func (r *StateRepo) Update(ctx context.Context, s *GamificationState) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE gamification
		SET points = ?, bronze_goal = ?, silver_goal = ?, gold_goal = ?,
			achievement_message = ?, daily_reward = ?, daily_reward_message = ?,
			weekly_challenge_message = ?
		WHERE key = ?
	`, s.Points, s.BronzeGoal, s.SilverGoal, s.GoldGoal,
		s.AchievementMessage, s.DailyReward, s.DailyRewardMessage,
		s.WeeklyChallengeMessage, s.Key)
	if err != nil {
		return fmt.Errorf("state update: %w", err)
	}
	return nil
}
