package engine

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2024, time.November, 22, 15, 4, 5, 0, time.UTC)

func newTestEngine() *Engine {
	return New(FixedClock(testNow))
}

func daysAgo(n int) string {
	return FormatDate(testNow.AddDate(0, 0, -n))
}

func completedTask(p PriorityLevel, date string) Task {
	return Task{Name: "t", Priority: p, Completed: true, CompletedDate: date}
}

func tasksCompletedOn(n int, date string) []Task {
	out := make([]Task, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, completedTask(PriorityLow, date))
	}
	return out
}

func TestPriorityPoints(t *testing.T) {
	cases := map[PriorityLevel]uint32{
		PriorityLow:    10,
		PriorityMedium: 20,
		PriorityHigh:   30,
	}
	for p, want := range cases {
		if got := (Task{Priority: p}).Points(); got != want {
			t.Fatalf("Points(%s)=%d, want %d", p, got, want)
		}
	}
	if got := PriorityLevel(9).Points(); got != 10 {
		t.Fatalf("out-of-range priority points=%d, want 10", got)
	}
}

func TestParsePriority(t *testing.T) {
	cases := map[string]PriorityLevel{
		"":        PriorityLow,
		"3":       PriorityHigh,
		" High ":  PriorityHigh,
		"med":     PriorityMedium,
		"2":       PriorityMedium,
		"urgent!": PriorityLow,
	}
	for in, want := range cases {
		if got := ParsePriority(in); got != want {
			t.Fatalf("ParsePriority(%q)=%s, want %s", in, got, want)
		}
	}
	if got := PriorityFromOrdinal(0); got != PriorityLow {
		t.Fatalf("PriorityFromOrdinal(0)=%s, want Low", got)
	}
}

func TestCheckChallengesBelowBronze(t *testing.T) {
	e := newTestEngine()
	st := NewState()
	tasks := []Task{
		completedTask(PriorityLow, ""),
		completedTask(PriorityMedium, ""),
		{Name: "open", Priority: PriorityHigh},
	}

	e.CheckChallenges(&st, tasks)
	if st.Points != 30 {
		t.Fatalf("points=%d, want 30", st.Points)
	}
	if st.AchievementMessage != msgProgress {
		t.Fatalf("message=%q, want progress message", st.AchievementMessage)
	}
}

func TestCheckChallengesIsIdempotent(t *testing.T) {
	e := newTestEngine()
	st := NewState()
	tasks := tasksCompletedOn(6, "")
	tasks = append(tasks, completedTask(PriorityHigh, ""))

	e.CheckChallenges(&st, tasks)
	first := st
	e.CheckChallenges(&st, tasks)
	if st != first {
		t.Fatalf("second run changed state: %+v vs %+v", st, first)
	}
	if st.Points != 90 {
		t.Fatalf("points=%d, want 90", st.Points)
	}
}

func TestCheckChallengesTiers(t *testing.T) {
	high := func(n int) []Task {
		out := make([]Task, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, completedTask(PriorityHigh, ""))
		}
		return out
	}

	tests := []struct {
		name   string
		goals  [3]uint32 // bronze, silver, gold
		tasks  []Task
		points uint32
		want   string
	}{
		{
			name:   "gold ignores unmet lower goals",
			goals:  [3]uint32{100, 100, 20},
			tasks:  high(20),
			points: 600,
			want:   msgGold,
		},
		{
			name:   "gold points without gold goal falls to silver",
			goals:  [3]uint32{5, 10, 50},
			tasks:  high(20),
			points: 600,
			want:   msgSilver,
		},
		{
			name:   "silver",
			goals:  [3]uint32{1, 4, 20},
			tasks:  high(4),
			points: 120,
			want:   msgSilver,
		},
		{
			name:   "bronze",
			goals:  [3]uint32{5, 10, 20},
			tasks:  tasksCompletedOn(5, ""),
			points: 50,
			want:   msgBronze,
		},
		{
			name:   "points without goal",
			goals:  [3]uint32{5, 10, 20},
			tasks:  high(2),
			points: 60,
			want:   msgProgress,
		},
		{
			name:   "inverted goals are not validated",
			goals:  [3]uint32{50, 2, 20},
			tasks:  high(4),
			points: 120,
			want:   msgSilver,
		},
	}

	e := newTestEngine()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := NewState()
			st.BronzeGoal, st.SilverGoal, st.GoldGoal = tc.goals[0], tc.goals[1], tc.goals[2]
			e.CheckChallenges(&st, tc.tasks)
			if st.Points != tc.points {
				t.Fatalf("points=%d, want %d", st.Points, tc.points)
			}
			if st.AchievementMessage != tc.want {
				t.Fatalf("message=%q, want %q", st.AchievementMessage, tc.want)
			}
		})
	}
}

func TestDailyRewardSteps(t *testing.T) {
	e := newTestEngine()
	today := e.Today()

	cases := []struct {
		n      int
		reward uint32
		msg    string
	}{
		{0, 0, msgDailyNone},
		{4, 0, msgDailyNone},
		{5, 25, msgDaily5},
		{9, 25, msgDaily5},
		{10, 50, msgDaily10},
		{14, 50, msgDaily10},
		{15, 100, msgDaily15},
		{40, 100, msgDaily15},
	}
	for _, tc := range cases {
		st := NewState()
		e.DailyReward(&st, tasksCompletedOn(tc.n, today))
		if st.DailyReward != tc.reward {
			t.Fatalf("n=%d reward=%d, want %d", tc.n, st.DailyReward, tc.reward)
		}
		if st.DailyRewardMessage != tc.msg {
			t.Fatalf("n=%d message=%q, want %q", tc.n, st.DailyRewardMessage, tc.msg)
		}
	}
}

func TestDailyRewardExactStringMatch(t *testing.T) {
	e := newTestEngine()
	st := NewState()

	// Same calendar day, different spelling: none of these count.
	var tasks []Task
	for _, d := range []string{"2024/11/22", "2024-11-22T10:00:00", " 2024-11-22", "22-11-2024", ""} {
		tasks = append(tasks, tasksCompletedOn(5, d)...)
	}
	tasks = append(tasks, tasksCompletedOn(5, daysAgo(1))...)

	e.DailyReward(&st, tasks)
	if st.DailyReward != 0 {
		t.Fatalf("reward=%d, want 0 for non-matching date strings", st.DailyReward)
	}
}

func TestDailyRewardCountsUncompletedWithDate(t *testing.T) {
	e := newTestEngine()
	st := NewState()
	tasks := make([]Task, 5)
	for i := range tasks {
		tasks[i] = Task{Priority: PriorityLow, CompletedDate: e.Today()}
	}
	e.DailyReward(&st, tasks)
	if st.DailyReward != 25 {
		t.Fatalf("reward=%d, want 25", st.DailyReward)
	}
}

func fullWeek() []Task {
	var tasks []Task
	for i := 0; i < StreakDays; i++ {
		tasks = append(tasks, completedTask(PriorityHigh, daysAgo(i)))
	}
	return tasks
}

func TestWeeklyChallengeFullWeekOverwritesPoints(t *testing.T) {
	e := newTestEngine()
	st := NewState()
	st.Points = 999

	e.WeeklyChallenge(&st, fullWeek())
	if st.Points != WeeklyBonus {
		t.Fatalf("points=%d, want %d", st.Points, WeeklyBonus)
	}
	if st.WeeklyChallengeMessage != msgWeeklyDone {
		t.Fatalf("message=%q, want success", st.WeeklyChallengeMessage)
	}
}

func TestWeeklyChallengeMissingDayLeavesStateUntouched(t *testing.T) {
	e := newTestEngine()

	for skip := 0; skip < StreakDays; skip++ {
		var tasks []Task
		for i := 0; i < StreakDays; i++ {
			if i == skip {
				continue
			}
			tasks = append(tasks, completedTask(PriorityLow, daysAgo(i)), completedTask(PriorityLow, daysAgo(i)))
		}
		// A completion just outside the window does not fill the gap.
		tasks = append(tasks, completedTask(PriorityLow, daysAgo(StreakDays)))

		st := NewState()
		st.Points = 42
		before := st
		e.WeeklyChallenge(&st, tasks)
		if st != before {
			t.Fatalf("skip=%d: state changed to %+v", skip, st)
		}
	}
}

func TestWeekBuckets(t *testing.T) {
	e := newTestEngine()
	tasks := []Task{
		completedTask(PriorityLow, daysAgo(0)),
		completedTask(PriorityLow, daysAgo(0)),
		completedTask(PriorityLow, daysAgo(6)),
		completedTask(PriorityLow, daysAgo(3)),
		completedTask(PriorityLow, daysAgo(7)),
		completedTask(PriorityLow, FormatDate(testNow.AddDate(0, 0, 1))),
	}
	got := e.WeekBuckets(tasks)
	want := [StreakDays]int{1, 0, 0, 1, 0, 0, 2}
	if got != want {
		t.Fatalf("buckets=%v, want %v", got, want)
	}
}

// Unparseable dates are skipped on purpose: they must never fail a pass.
func TestUnparseableDatesAreSkipped(t *testing.T) {
	e := newTestEngine()
	tasks := fullWeek()
	// Lexically inside the window but not a valid calendar date.
	tasks[3].CompletedDate = daysAgo(3) + " "
	tasks = append(tasks,
		completedTask(PriorityLow, "2024-11-2"),
		completedTask(PriorityLow, "2024-11-20x"),
		completedTask(PriorityLow, "2024-02-30"),
		Task{Name: "bad due", DueDate: "not a date", Priority: PriorityHigh, Completed: true, CompletedDate: "???"},
	)

	st := NewState()
	st.Points = 7
	e.WeeklyChallenge(&st, tasks)
	if st.Points != 7 {
		t.Fatalf("points=%d, want 7 (day 3 should be missing)", st.Points)
	}

	tasks[3].CompletedDate = daysAgo(3)
	e.WeeklyChallenge(&st, tasks)
	if st.Points != WeeklyBonus {
		t.Fatalf("points=%d, want %d once day 3 is valid", st.Points, WeeklyBonus)
	}
}

func TestWeeklyWindowSentinel(t *testing.T) {
	early := time.Date(1, time.January, 3, 0, 0, 0, 0, time.UTC)
	if got := windowStart(early); got != windowSentinel {
		t.Fatalf("windowStart=%q, want sentinel", got)
	}
	if got := windowStart(calendarDay(testNow)); got != "2024-11-16" {
		t.Fatalf("windowStart=%q, want 2024-11-16", got)
	}

	e := New(FixedClock(early))
	st := NewState()
	e.Evaluate(&st, []Task{completedTask(PriorityLow, "0001-01-01")})
	if st.Points != 10 {
		t.Fatalf("points=%d, want 10", st.Points)
	}
}

func TestWeeklyWindowAcrossMonthBoundary(t *testing.T) {
	e := New(FixedClock(time.Date(2024, time.March, 2, 9, 0, 0, 0, time.UTC)))
	var tasks []Task
	for _, d := range []string{"2024-02-25", "2024-02-26", "2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"} {
		tasks = append(tasks, completedTask(PriorityLow, d))
	}
	st := NewState()
	e.WeeklyChallenge(&st, tasks)
	if st.Points != WeeklyBonus {
		t.Fatalf("points=%d, want %d across leap-day boundary", st.Points, WeeklyBonus)
	}
}

func TestEvaluateWeeklyOverwriteWins(t *testing.T) {
	e := newTestEngine()
	st := NewState()
	tasks := fullWeek()

	e.Evaluate(&st, tasks)
	if st.Points != WeeklyBonus {
		t.Fatalf("points=%d, want weekly %d to replace 210", st.Points, WeeklyBonus)
	}
	// The tier message was decided on the recomputed 210 points before the overwrite.
	if st.AchievementMessage != msgBronze {
		t.Fatalf("achievement=%q", st.AchievementMessage)
	}
	if st.DailyReward != 0 || st.DailyRewardMessage != msgDailyNone {
		t.Fatalf("daily=%d %q", st.DailyReward, st.DailyRewardMessage)
	}

	again := st
	e.Evaluate(&again, tasks)
	if again != st {
		t.Fatalf("Evaluate not idempotent: %+v vs %+v", again, st)
	}
}

func TestEvaluateEmptyAndDegenerateTasks(t *testing.T) {
	e := newTestEngine()
	for _, tasks := range [][]Task{
		nil,
		{},
		{{}},
		{{Priority: -4, Completed: true, CompletedDate: strings.Repeat("9", 64)}},
	} {
		st := NewState()
		e.Evaluate(&st, tasks)
		if st.AchievementMessage == "" || st.DailyRewardMessage == "" {
			t.Fatalf("messages not set for %+v", tasks)
		}
	}
}

func TestProgressAndCompletedChallenges(t *testing.T) {
	st := NewState()
	tasks := []Task{completedTask(PriorityLow, ""), completedTask(PriorityMedium, "")}
	newTestEngine().CheckChallenges(&st, tasks)

	got := Progress(&st, tasks)
	if len(got) != 3 {
		t.Fatalf("len=%d, want 3", len(got))
	}
	wantToGo := []uint32{20, 70, 470}
	wantTier := []Tier{TierBronze, TierSilver, TierGold}
	for i, p := range got {
		if p.Tier != wantTier[i] || p.PointsToGo != wantToGo[i] || p.Completed != 2 {
			t.Fatalf("progress[%d]=%+v", i, p)
		}
	}

	if got := CompletedChallenges(120); !reflect.DeepEqual(got, []Tier{TierSilver, TierBronze}) {
		t.Fatalf("CompletedChallenges(120)=%v", got)
	}
	if got := CompletedChallenges(49); len(got) != 0 {
		t.Fatalf("CompletedChallenges(49)=%v", got)
	}
}

func TestStateGoalsAndDecode(t *testing.T) {
	st := NewState()
	if got := st.SetGoal(TierGold, 0); got != MinGoal {
		t.Fatalf("SetGoal(0)=%d, want %d", got, MinGoal)
	}
	if got := st.SetGoal(TierSilver, 1000); got != MaxGoal {
		t.Fatalf("SetGoal(1000)=%d, want %d", got, MaxGoal)
	}
	st.SetGoal(TierBronze, 12)
	if st.Goal(TierBronze) != 12 || st.Goal(TierSilver) != MaxGoal || st.Goal(TierGold) != MinGoal {
		t.Fatalf("goals=%d/%d/%d", st.BronzeGoal, st.SilverGoal, st.GoldGoal)
	}

	dec, err := DecodeState([]byte(`{"points": 40, "gold_goal": 3, "theme": "dark"}`))
	if err != nil {
		t.Fatalf("DecodeState: %v", err)
	}
	want := NewState()
	want.Points = 40
	want.GoldGoal = 3
	if dec != want {
		t.Fatalf("decoded=%+v, want %+v", dec, want)
	}

	if _, err := DecodeState([]byte(`{"points":`)); err == nil {
		t.Fatalf("expected error for truncated JSON")
	}
	if empty, err := DecodeState(nil); err != nil || empty != NewState() {
		t.Fatalf("DecodeState(nil)=%+v, %v", empty, err)
	}
}

func TestParseTier(t *testing.T) {
	if got, err := ParseTier(" Gold "); err != nil || got != TierGold {
		t.Fatalf("ParseTier(Gold)=%v, %v", got, err)
	}
	if _, err := ParseTier("platinum"); err == nil {
		t.Fatalf("expected error for platinum")
	}
}

func FuzzEvaluate(f *testing.F) {
	f.Add("2024-11-22", "Fuzz task", 3)
	f.Add("invalid-date", "", 0)
	f.Add("9999-99-99", "x", 2)
	f.Fuzz(func(t *testing.T, date, name string, prio int) {
		e := newTestEngine()
		st := NewState()
		tasks := []Task{
			{Name: name, Description: name, DueDate: date, Priority: PriorityLevel(prio), Completed: true, CompletedDate: date},
			{Name: name, DueDate: "invalid-date", Priority: PriorityLow, Completed: prio%2 == 0, CompletedDate: date},
		}
		e.Evaluate(&st, tasks)
		if p := tasks[0].Points(); p != 10 && p != 20 && p != 30 {
			t.Fatalf("points=%d", p)
		}
	})
}

func TestProgressFollowsWeeklyOverwrite(t *testing.T) {
	e := newTestEngine()
	st := NewState()
	var tasks []Task
	for i := 0; i < 17; i++ {
		tasks = append(tasks, completedTask(PriorityHigh, daysAgo(i%StreakDays)))
	}

	e.Evaluate(&st, tasks)
	if st.Points != WeeklyBonus {
		t.Fatalf("points=%d, want %d", st.Points, WeeklyBonus)
	}

	done := map[Tier]bool{}
	for _, tier := range CompletedChallenges(st.Points) {
		done[tier] = true
	}
	for _, p := range Progress(&st, tasks) {
		if p.PointsMet != done[p.Tier] {
			t.Fatalf("%s: PointsMet=%v but completed challenges=%v", p.Tier, p.PointsMet, done[p.Tier])
		}
		if p.PointsToGo != saturatingSub(p.PointsRequired, st.Points) {
			t.Fatalf("%s: PointsToGo=%d with points %d", p.Tier, p.PointsToGo, st.Points)
		}
		if p.Completed != 17 {
			t.Fatalf("%s: completed=%d, want 17", p.Tier, p.Completed)
		}
	}
	if done[TierGold] {
		t.Fatalf("gold should not be completed at %d points", st.Points)
	}
}

func TestPinnedFreezesToday(t *testing.T) {
	calls := 0
	e := New(ClockFunc(func() time.Time {
		calls++
		return testNow.AddDate(0, 0, calls)
	}))
	p := e.Pinned()
	first := p.Today()
	if p.Today() != first {
		t.Fatalf("pinned engine moved from %s to %s", first, p.Today())
	}
	if calls != 1 {
		t.Fatalf("clock read %d times, want 1", calls)
	}
}
