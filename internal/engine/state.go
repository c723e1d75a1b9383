package engine

import (
	"encoding/json"
	"fmt"
)

const (
	DefaultBronzeGoal = 5
	DefaultSilverGoal = 10
	DefaultGoldGoal   = 20

	// Goals are edited through a bounded widget; SetGoal keeps them in range.
	MinGoal = 1
	MaxGoal = 100
)

const defaultWeeklyChallengeMessage = "Complete a task every day for a week to earn 100 points!"

// State is the long-lived gamification record owned by the caller.
// Evaluation passes overwrite the fields they are responsible for.
type State struct {
	Points                 uint32 `json:"points" yaml:"points"`
	BronzeGoal             uint32 `json:"bronze_goal" yaml:"bronze_goal"`
	SilverGoal             uint32 `json:"silver_goal" yaml:"silver_goal"`
	GoldGoal               uint32 `json:"gold_goal" yaml:"gold_goal"`
	AchievementMessage     string `json:"achievement_message" yaml:"achievement_message"`
	DailyReward            uint32 `json:"daily_reward" yaml:"daily_reward"`
	DailyRewardMessage     string `json:"daily_reward_message" yaml:"daily_reward_message"`
	WeeklyChallengeMessage string `json:"weekly_challenge_message" yaml:"weekly_challenge_message"`
}

// NewState returns the state a fresh session starts from.
func NewState() State {
	return State{
		BronzeGoal:             DefaultBronzeGoal,
		SilverGoal:             DefaultSilverGoal,
		GoldGoal:               DefaultGoldGoal,
		WeeklyChallengeMessage: defaultWeeklyChallengeMessage,
	}
}

// DecodeState overlays a persisted JSON record on NewState, so missing fields
// keep their defaults and unknown fields are ignored.
func DecodeState(data []byte) (State, error) {
	st := NewState()
	if len(data) == 0 {
		return st, nil
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return NewState(), fmt.Errorf("decode state: %w", err)
	}
	return st, nil
}

// Goal returns the task-count goal configured for the tier.
func (s *State) Goal(t Tier) uint32 {
	switch t {
	case TierGold:
		return s.GoldGoal
	case TierSilver:
		return s.SilverGoal
	default:
		return s.BronzeGoal
	}
}

// SetGoal stores a clamped goal for the tier. Ordering between tiers is not
// checked: bronze may exceed silver.
func (s *State) SetGoal(t Tier, n int) uint32 {
	if n < MinGoal {
		n = MinGoal
	}
	if n > MaxGoal {
		n = MaxGoal
	}
	v := uint32(n)
	switch t {
	case TierGold:
		s.GoldGoal = v
	case TierSilver:
		s.SilverGoal = v
	default:
		s.BronzeGoal = v
	}
	return v
}
