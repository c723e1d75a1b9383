package engine

import (
	"context"
	"database/sql"
	"strings"

	"taskhero/internal/storage"
)

// Service wires the rules engine to persisted tasks and state.
type Service struct {
	db     *sql.DB
	engine *Engine
	tasks  *storage.TaskRepo
	state  *storage.StateRepo
}

func NewService(db *sql.DB, eng *Engine) *Service {
	if eng == nil {
		eng = New(nil)
	}
	return &Service{
		db:     db,
		engine: eng,
		tasks:  storage.NewTaskRepo(db),
		state:  storage.NewStateRepo(db),
	}
}

// Snapshot is everything a view needs after one refresh.
type Snapshot struct {
	Today     string
	State     State
	Tasks     []Task
	Completed int
	Progress  []TierProgress
	Week      [StreakDays]int
}

// Refresh evaluates all passes against the current tasks and persists the
// resulting state.
func (s *Service) Refresh(ctx context.Context) (*Snapshot, error) {
	var snap *Snapshot
	err := storage.WithTx(ctx, s.db, func(r storage.Repos) error {
		rows, err := r.Tasks.ListAll(ctx)
		if err != nil {
			return err
		}
		rec, err := r.State.GetOrCreateMain(ctx)
		if err != nil {
			return err
		}

		day := s.engine.Pinned()
		tasks := tasksFromRows(rows)
		st := stateFromRecord(rec)
		day.Evaluate(&st, tasks)

		if err := r.State.Update(ctx, recordFromState(rec.Key, st)); err != nil {
			return err
		}
		snap = &Snapshot{
			Today:     day.Today(),
			State:     st,
			Tasks:     tasks,
			Completed: completedCount(tasks),
			Progress:  Progress(&st, tasks),
			Week:      day.WeekBuckets(tasks),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// State returns the stored state without re-evaluating it.
func (s *Service) State(ctx context.Context) (State, error) {
	rec, err := s.state.GetOrCreateMain(ctx)
	if err != nil {
		return State{}, err
	}
	return stateFromRecord(rec), nil
}

// Tasks returns all tasks in creation order.
func (s *Service) Tasks(ctx context.Context) ([]Task, error) {
	rows, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return tasksFromRows(rows), nil
}

// SetGoal clamps and stores the task-count goal for a tier.
func (s *Service) SetGoal(ctx context.Context, tier Tier, n int) (uint32, error) {
	var stored uint32
	err := storage.WithTx(ctx, s.db, func(r storage.Repos) error {
		rec, err := r.State.GetOrCreateMain(ctx)
		if err != nil {
			return err
		}
		st := stateFromRecord(rec)
		stored = st.SetGoal(tier, n)
		return r.State.Update(ctx, recordFromState(rec.Key, st))
	})
	if err != nil {
		return 0, err
	}
	return stored, nil
}

func normalizeField(field, v string) (string, error) {
	t := strings.TrimSpace(v)
	if t == "" {
		return "", MissingFieldError{Field: field}
	}
	return t, nil
}

func taskFromRow(row storage.Task) Task {
	t := Task{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		DueDate:     row.DueDate,
		Priority:    PriorityFromOrdinal(row.Priority),
		Completed:   row.Completed,
	}
	if row.CompletedDate != nil {
		t.CompletedDate = *row.CompletedDate
	}
	return t
}

func tasksFromRows(rows []storage.Task) []Task {
	out := make([]Task, 0, len(rows))
	for _, r := range rows {
		out = append(out, taskFromRow(r))
	}
	return out
}

func stateFromRecord(rec *storage.GamificationState) State {
	return State{
		Points:                 uint32(rec.Points),
		BronzeGoal:             uint32(rec.BronzeGoal),
		SilverGoal:             uint32(rec.SilverGoal),
		GoldGoal:               uint32(rec.GoldGoal),
		AchievementMessage:     rec.AchievementMessage,
		DailyReward:            uint32(rec.DailyReward),
		DailyRewardMessage:     rec.DailyRewardMessage,
		WeeklyChallengeMessage: rec.WeeklyChallengeMessage,
	}
}

func recordFromState(key string, st State) *storage.GamificationState {
	return &storage.GamificationState{
		Key:                    key,
		Points:                 int64(st.Points),
		BronzeGoal:             int64(st.BronzeGoal),
		SilverGoal:             int64(st.SilverGoal),
		GoldGoal:               int64(st.GoldGoal),
		AchievementMessage:     st.AchievementMessage,
		DailyReward:            int64(st.DailyReward),
		DailyRewardMessage:     st.DailyRewardMessage,
		WeeklyChallengeMessage: st.WeeklyChallengeMessage,
	}
}
