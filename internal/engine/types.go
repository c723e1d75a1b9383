package engine

// PriorityLevel is the user-chosen weight of a task.
type PriorityLevel int

const (
	PriorityLow    PriorityLevel = 1
	PriorityMedium PriorityLevel = 2
	PriorityHigh   PriorityLevel = 3
)

// DefaultPriority is used when user input is missing/invalid.
const DefaultPriority PriorityLevel = PriorityLow

func (p PriorityLevel) IsValid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// Points returns the fixed point value of the priority.
// Anything outside Low..High scores like Low.
func (p PriorityLevel) Points() uint32 {
	switch p {
	case PriorityMedium:
		return 20
	case PriorityHigh:
		return 30
	default:
		return 10
	}
}

func (p PriorityLevel) String() string {
	switch p {
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "Low"
	}
}

// Task is the read-only view of a user task the engine evaluates.
type Task struct {
	ID          int64
	Name        string
	Description string
	DueDate     string
	Priority    PriorityLevel
	Completed   bool
	// CompletedDate is expected as YYYY-MM-DD and is empty when the task
	// was never completed.
	CompletedDate string
}

// Points returns the value the task contributes once completed.
func (t Task) Points() uint32 {
	return t.Priority.Points()
}

func completedCount(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}
