package domain

// FoodLog is one eaten item or meal. CalendarEventID is a soft back-reference
// to a calendar entry the caller may have created alongside; either row can
// be deleted independently.
type FoodLog struct {
	ID              string
	Name            string
	Calories        *float64
	ProteinG        *float64
	CarbsG          *float64
	FatG            *float64
	MealType        MealType
	Source          LogSource
	Locked          bool
	CalendarEventID *string
	LoggedAt        int64
	CreatedAt       int64
	UpdatedAt       int64
}

// WaterLog is one drink of water.
type WaterLog struct {
	ID        string
	VolumeML  int64
	LoggedAt  int64
	CreatedAt int64
	UpdatedAt int64
}

// MealPrepPlan schedules a meal to prepare on a given day.
type MealPrepPlan struct {
	ID         string
	Title      string
	MealType   MealType
	Recipe     *string
	PlannedFor int64
	CreatedAt  int64
	UpdatedAt  int64
}

// NutritionProfile holds the user's daily targets. One row per scope,
// written through an upsert.
type NutritionProfile struct {
	ID             string
	CaloriesTarget *float64
	ProteinTargetG *float64
	CarbsTargetG   *float64
	FatTargetG     *float64
	WaterTargetML  *int64
	DietTag        *string
	CreatedAt      int64
	UpdatedAt      int64
}
