package engine

import (
	"context"

	"taskhero/internal/storage"
)

type CompleteResult struct {
	TaskID        int64
	PointsAwarded uint32
	CompletedDate string
}

func (s *Service) getTask(ctx context.Context, repo *storage.TaskRepo, id int64) (*storage.Task, error) {
	t, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, TaskNotFoundError{ID: id}
	}
	return t, nil
}

// CompleteTask marks a task done and stamps it with today's date, which is
// what the daily and weekly passes count.
func (s *Service) CompleteTask(ctx context.Context, id int64) (*CompleteResult, error) {
	var res *CompleteResult
	err := storage.WithTx(ctx, s.db, func(r storage.Repos) error {
		row, err := s.getTask(ctx, r.Tasks, id)
		if err != nil {
			return err
		}
		if row.Completed {
			return CompletionStateError{ID: id, Completed: true}
		}

		today := s.engine.Today()
		if err := r.Tasks.SetCompleted(ctx, id, true, &today); err != nil {
			return err
		}
		res = &CompleteResult{
			TaskID:        id,
			PointsAwarded: PriorityFromOrdinal(row.Priority).Points(),
			CompletedDate: today,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ReopenTask clears the completed flag and the completed date.
func (s *Service) ReopenTask(ctx context.Context, id int64) (*Task, error) {
	var out *Task
	err := storage.WithTx(ctx, s.db, func(r storage.Repos) error {
		row, err := s.getTask(ctx, r.Tasks, id)
		if err != nil {
			return err
		}
		if !row.Completed {
			return CompletionStateError{ID: id, Completed: false}
		}
		if err := r.Tasks.SetCompleted(ctx, id, false, nil); err != nil {
			return err
		}
		row.Completed = false
		row.CompletedDate = nil
		t := taskFromRow(*row)
		out = &t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ToggleTask completes an open task or reopens a completed one.
func (s *Service) ToggleTask(ctx context.Context, id int64) (completed bool, err error) {
	row, err := s.getTask(ctx, s.tasks, id)
	if err != nil {
		return false, err
	}
	if row.Completed {
		_, err = s.ReopenTask(ctx, id)
		return false, err
	}
	_, err = s.CompleteTask(ctx, id)
	return err == nil, err
}
