package sqlite

// Entity table names, one per record kind. Order matters only for
// readability; there are no FK dependencies between them.
const (
	TableTasks             = "tasks"
	TableHabits            = "habits"
	TableHabitCompletions  = "habit_completions"
	TableFoodLogs          = "food_logs"
	TableWaterLogs         = "water_logs"
	TableMealPrepPlans     = "meal_prep_plans"
	TableNutritionProfiles = "nutrition_profiles"
	TableManifestations    = "manifestations"
	TableAffirmations      = "affirmations"
	TableFinanceRecords    = "finance_records"
	TableFinanceNotes      = "finance_notes"
	TableWorkouts          = "workouts"
	TableAppointments      = "appointments"
	TableNotes             = "notes"
)

var entityTables = []string{
	TableTasks,
	TableHabits,
	TableHabitCompletions,
	TableFoodLogs,
	TableWaterLogs,
	TableMealPrepPlans,
	TableNutritionProfiles,
	TableManifestations,
	TableAffirmations,
	TableFinanceRecords,
	TableFinanceNotes,
	TableWorkouts,
	TableAppointments,
	TableNotes,
}

// EntityTables returns the full table catalog. Reset and Wipe iterate it;
// adding an entity kind means adding its migration and one entry here.
func EntityTables() []string {
	out := make([]string, len(entityTables))
	copy(out, entityTables)
	return out
}
