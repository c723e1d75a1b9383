package engine

import "fmt"

// Tier is one of the cumulative challenge levels.
type Tier int

const (
	TierBronze Tier = iota + 1
	TierSilver
	TierGold
)

// Point thresholds are fixed; the task-count goals live on State.
const (
	BronzePoints uint32 = 50
	SilverPoints uint32 = 100
	GoldPoints   uint32 = 500
)

const (
	msgGold     = "Congrats! You have reached the Gold level!"
	msgSilver   = "Congrats! You have reached the Silver level!"
	msgBronze   = "Congrats! You have reached the Bronze level!"
	msgProgress = "Keep going! You're progressing toward the next level!"
)

// TiersDescending is the evaluation order for challenges: first match wins.
var TiersDescending = []Tier{TierGold, TierSilver, TierBronze}

func (t Tier) IsValid() bool {
	return t >= TierBronze && t <= TierGold
}

func (t Tier) String() string {
	switch t {
	case TierGold:
		return "Gold"
	case TierSilver:
		return "Silver"
	case TierBronze:
		return "Bronze"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// PointThreshold returns the cumulative points the tier requires.
func (t Tier) PointThreshold() uint32 {
	switch t {
	case TierGold:
		return GoldPoints
	case TierSilver:
		return SilverPoints
	default:
		return BronzePoints
	}
}

func (t Tier) message() string {
	switch t {
	case TierGold:
		return msgGold
	case TierSilver:
		return msgSilver
	default:
		return msgBronze
	}
}

// ParseTier accepts bronze, silver or gold in any case.
func ParseTier(input string) (Tier, error) {
	switch normalizeWord(input) {
	case "bronze":
		return TierBronze, nil
	case "silver":
		return TierSilver, nil
	case "gold":
		return TierGold, nil
	default:
		return 0, fmt.Errorf("invalid tier: %q", input)
	}
}

// TotalPoints sums the point value of completed tasks.
func TotalPoints(tasks []Task) uint32 {
	var sum uint32
	for _, t := range tasks {
		if t.Completed {
			sum += t.Points()
		}
	}
	return sum
}

// reachedTier returns the highest tier whose point threshold and task goal are
// both met. Each tier is tested on its own; a lower goal being unmet does not
// block a higher tier.
func reachedTier(st *State, points uint32, completed int) (Tier, bool) {
	for _, t := range TiersDescending {
		if points >= t.PointThreshold() && completed >= int(st.Goal(t)) {
			return t, true
		}
	}
	return 0, false
}

// CheckChallenges recomputes Points from the completed tasks and stores the
// message for the highest tier reached.
func (e *Engine) CheckChallenges(st *State, tasks []Task) {
	st.Points = TotalPoints(tasks)
	completed := completedCount(tasks)

	if t, ok := reachedTier(st, st.Points, completed); ok {
		st.AchievementMessage = t.message()
		return
	}
	st.AchievementMessage = msgProgress
}

// TierProgress describes how far the player is from one tier.
type TierProgress struct {
	Tier           Tier
	PointsRequired uint32
	PointsToGo     uint32
	Goal           uint32
	Completed      int
	// PointsMet ignores the task goal; the "completed challenges" list shows
	// tiers on points alone.
	PointsMet bool
	Reached   bool
}

// Progress returns one entry per tier, bronze first. Points are read from
// st as last evaluated, the same value CompletedChallenges is given, so a
// weekly overwrite shows up in both.
func Progress(st *State, tasks []Task) []TierProgress {
	points := st.Points
	completed := completedCount(tasks)

	out := make([]TierProgress, 0, len(TiersDescending))
	for i := len(TiersDescending) - 1; i >= 0; i-- {
		t := TiersDescending[i]
		req := t.PointThreshold()
		out = append(out, TierProgress{
			Tier:           t,
			PointsRequired: req,
			PointsToGo:     saturatingSub(req, points),
			Goal:           st.Goal(t),
			Completed:      completed,
			PointsMet:      points >= req,
			Reached:        points >= req && completed >= int(st.Goal(t)),
		})
	}
	return out
}

// CompletedChallenges lists tiers whose point threshold is met, highest first.
func CompletedChallenges(points uint32) []Tier {
	var out []Tier
	for _, t := range TiersDescending {
		if points >= t.PointThreshold() {
			out = append(out, t)
		}
	}
	return out
}

func saturatingSub(a, b uint32) uint32 {
	if b >= a {
		return 0
	}
	return a - b
}
