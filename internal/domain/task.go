package domain

// Task is a to-do item. DueAt is optional; tasks without one never appear
// in date-range queries or on the calendar.
type Task struct {
	ID        string
	Title     string
	Details   *string
	Priority  TaskPriority
	Done      bool
	DueAt     *int64
	CreatedAt int64
	UpdatedAt int64
}
