package domain

// Workout is one logged exercise session.
type Workout struct {
	ID             string
	Title          string
	Kind           *string
	DurationMin    *int64
	CaloriesBurned *float64
	Note           *string
	PerformedAt    int64
	CreatedAt      int64
	UpdatedAt      int64
}
