package storage

import "time"

// Task is a persisted task row. CompletedDate keeps the exact string the
// rules engine compares against.
type Task struct {
	ID            int64
	Name          string
	Description   string
	DueDate       string
	Priority      int
	Completed     bool
	CompletedDate *string
	CreatedAt     time.Time
}

// GamificationState mirrors the engine state as a flat record.
type GamificationState struct {
	Key                    string
	Points                 int64
	BronzeGoal             int64
	SilverGoal             int64
	GoldGoal               int64
	AchievementMessage     string
	DailyReward            int64
	DailyRewardMessage     string
	WeeklyChallengeMessage string
}
