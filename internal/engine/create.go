package engine

import (
	"context"

	"taskhero/internal/storage"
)

type AddTaskInput struct {
	Name        string
	Description string
	DueDate     string
	Priority    PriorityLevel
}

// AddTask stores a new, uncompleted task. Name, description and due date are
// all required; the due date is free-form text.
func (s *Service) AddTask(ctx context.Context, in AddTaskInput) (*Task, error) {
	name, err := normalizeField("name", in.Name)
	if err != nil {
		return nil, err
	}
	desc, err := normalizeField("description", in.Description)
	if err != nil {
		return nil, err
	}
	due, err := normalizeField("due date", in.DueDate)
	if err != nil {
		return nil, err
	}

	prio := in.Priority
	if !prio.IsValid() {
		prio = DefaultPriority
	}

	id, err := s.tasks.Insert(ctx, storage.TaskInsert{
		Name:        name,
		Description: desc,
		DueDate:     due,
		Priority:    int(prio),
	})
	if err != nil {
		return nil, err
	}

	return &Task{
		ID:          id,
		Name:        name,
		Description: desc,
		DueDate:     due,
		Priority:    prio,
	}, nil
}
