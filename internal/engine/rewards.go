package engine

import "time"

// StreakDays is the length of the trailing window for the weekly challenge.
const StreakDays = 7

// WeeklyBonus replaces Points when every day of the window has a completion.
const WeeklyBonus uint32 = 100

// windowSentinel is used as the window start when today-6 is not a
// representable calendar date.
const windowSentinel = "0001-01-01"

const (
	msgDaily15    = "Congrats! You completed 15 tasks today!"
	msgDaily10    = "Congrats! You completed 10 tasks today!"
	msgDaily5     = "Congrats! You completed 5 tasks today!"
	msgDailyNone  = "Keep going! You're making progress!"
	msgWeeklyDone = "Congrats! You completed a task every day for the last week!"
)

type dailyStep struct {
	minTasks int
	reward   uint32
	message  string
}

// dailySteps is checked highest first.
var dailySteps = []dailyStep{
	{minTasks: 15, reward: 100, message: msgDaily15},
	{minTasks: 10, reward: 50, message: msgDaily10},
	{minTasks: 5, reward: 25, message: msgDaily5},
}

// DailyReward counts tasks whose completed date is exactly today's
// YYYY-MM-DD string and stores the matching step reward. Any other spelling
// of the date (2024/11/22, 2024-11-22T10:00) does not count.
func (e *Engine) DailyReward(st *State, tasks []Task) {
	today := e.Today()
	n := 0
	for _, t := range tasks {
		if t.CompletedDate != "" && t.CompletedDate == today {
			n++
		}
	}

	for _, step := range dailySteps {
		if n >= step.minTasks {
			st.DailyReward = step.reward
			st.DailyRewardMessage = step.message
			return
		}
	}
	st.DailyReward = 0
	st.DailyRewardMessage = msgDailyNone
}

// WeekBuckets counts completions per day over the trailing week.
// Index 6 is today, index 0 is six days ago.
func (e *Engine) WeekBuckets(tasks []Task) [StreakDays]int {
	var buckets [StreakDays]int

	now := e.clock.Now()
	today := calendarDay(now)
	todayStr := FormatDate(now)
	start := windowStart(today)

	for _, t := range tasks {
		d := t.CompletedDate
		if d == "" || d < start || d > todayStr {
			continue
		}
		completed, ok := skipUnparseableDates(d)
		if !ok {
			continue
		}
		diff := int(today.Sub(completed) / (24 * time.Hour))
		if diff < 0 || diff >= StreakDays {
			continue
		}
		buckets[StreakDays-1-diff]++
	}
	return buckets
}

// WeeklyChallenge awards WeeklyBonus when each of the last seven days has at
// least one completion. The bonus overwrites Points rather than adding to it.
// When the streak is incomplete neither Points nor the message change.
func (e *Engine) WeeklyChallenge(st *State, tasks []Task) {
	buckets := e.WeekBuckets(tasks)
	for _, n := range buckets {
		if n == 0 {
			return
		}
	}
	st.Points = WeeklyBonus
	st.WeeklyChallengeMessage = msgWeeklyDone
}

func windowStart(today time.Time) string {
	start := today.AddDate(0, 0, -(StreakDays - 1))
	if start.Year() < 1 {
		return windowSentinel
	}
	return FormatDate(start)
}

// skipUnparseableDates is the leniency rule for completed dates: a value that
// does not parse as YYYY-MM-DD drops that task from date aggregates and
// evaluation carries on. No pass reports date problems to the caller.
func skipUnparseableDates(s string) (time.Time, bool) {
	d, err := ParseDate(s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
