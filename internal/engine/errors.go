package engine

import "fmt"

// TaskNotFoundError is returned when an operation names a task id that does
// not exist.
type TaskNotFoundError struct {
	ID int64
}

func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}

// CompletionStateError reports a completion toggle that would be a no-op.
type CompletionStateError struct {
	ID        int64
	Completed bool
}

func (e CompletionStateError) Error() string {
	if e.Completed {
		return fmt.Sprintf("task %d is already completed", e.ID)
	}
	return fmt.Sprintf("task %d is not completed", e.ID)
}

// MissingFieldError is returned when a required task field is blank.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}
