// Package engine derives points, challenge tiers, daily rewards and the weekly
// streak from a snapshot of tasks. The rule passes never fail and never keep
// hidden counters: each one only overwrites the State fields it owns.
package engine

// Engine evaluates gamification rules against a caller-owned State.
type Engine struct {
	clock Clock
}

// New returns an Engine; a nil clock means SystemClock in local time.
func New(clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Engine{clock: clock}
}

// Today returns the engine's current date as YYYY-MM-DD.
func (e *Engine) Today() string {
	return FormatDate(e.clock.Now())
}

// Pinned returns an Engine frozen at the current instant, so a sequence of
// passes and views all agree on today.
func (e *Engine) Pinned() *Engine {
	return &Engine{clock: FixedClock(e.clock.Now())}
}

// Evaluate runs the three passes in refresh order. WeeklyChallenge runs last,
// so a completed streak's 100 points replace the challenge total.
func (e *Engine) Evaluate(st *State, tasks []Task) {
	e.CheckChallenges(st, tasks)
	e.DailyReward(st, tasks)
	e.WeeklyChallenge(st, tasks)
}
