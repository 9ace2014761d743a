package domain

// Habit is a recurring practice the user tracks.
type Habit struct {
	ID            string
	Name          string
	Emoji         *string
	Cadence       HabitCadence
	TargetPerWeek int
	Archived      bool
	CreatedAt     int64
	UpdatedAt     int64
}

// HabitCompletion marks one habit done at one moment. HabitID is a soft
// reference: deleting the habit does not cascade to its completions.
type HabitCompletion struct {
	ID          string
	HabitID     string
	CompletedAt int64
	Note        *string
	CreatedAt   int64
	UpdatedAt   int64
}
