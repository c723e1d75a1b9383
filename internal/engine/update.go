package engine

import (
	"context"

	"taskhero/internal/storage"
)

// EditTaskInput carries the fields to change; nil fields are kept.
type EditTaskInput struct {
	Name        *string
	Description *string
	DueDate     *string
	Priority    *PriorityLevel
}

// EditTask applies a partial update. Edited text fields may not be blank.
func (s *Service) EditTask(ctx context.Context, id int64, in EditTaskInput) (*Task, error) {
	var upd storage.TaskUpdate
	for _, f := range []struct {
		name string
		src  *string
		dst  **string
	}{
		{"name", in.Name, &upd.Name},
		{"description", in.Description, &upd.Description},
		{"due date", in.DueDate, &upd.DueDate},
	} {
		if f.src == nil {
			continue
		}
		v, err := normalizeField(f.name, *f.src)
		if err != nil {
			return nil, err
		}
		*f.dst = &v
	}
	if in.Priority != nil {
		p := int(PriorityFromOrdinal(int(*in.Priority)))
		upd.Priority = &p
	}

	var out *Task
	err := storage.WithTx(ctx, s.db, func(r storage.Repos) error {
		if _, err := s.getTask(ctx, r.Tasks, id); err != nil {
			return err
		}
		if err := r.Tasks.Update(ctx, id, upd); err != nil {
			return err
		}
		row, err := s.getTask(ctx, r.Tasks, id)
		if err != nil {
			return err
		}
		t := taskFromRow(*row)
		out = &t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ClearTasks removes every task and returns how many were deleted. The
// gamification state is kept; the next Refresh recomputes it.
func (s *Service) ClearTasks(ctx context.Context) (int64, error) {
	return s.tasks.DeleteAll(ctx)
}
