package domain

// TaskPriority orders tasks in list views.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

func (p TaskPriority) String() string { return string(p) }

func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// HabitCadence is how often a habit is meant to be completed.
type HabitCadence string

const (
	HabitCadenceDaily  HabitCadence = "DAILY"
	HabitCadenceWeekly HabitCadence = "WEEKLY"
)

func (c HabitCadence) String() string { return string(c) }

func (c HabitCadence) IsValid() bool {
	switch c {
	case HabitCadenceDaily, HabitCadenceWeekly:
		return true
	}
	return false
}

// MealType tags food logs and meal-prep slots.
type MealType string

const (
	MealTypeBreakfast MealType = "BREAKFAST"
	MealTypeLunch     MealType = "LUNCH"
	MealTypeDinner    MealType = "DINNER"
	MealTypeSnack     MealType = "SNACK"
)

func (m MealType) String() string { return string(m) }

func (m MealType) IsValid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// LogSource records how a food log entered the app.
type LogSource string

const (
	LogSourceManual  LogSource = "MANUAL"
	LogSourceScan    LogSource = "SCAN"
	LogSourceAIPhoto LogSource = "AI_PHOTO"
)

func (s LogSource) String() string { return string(s) }

func (s LogSource) IsValid() bool {
	switch s {
	case LogSourceManual, LogSourceScan, LogSourceAIPhoto:
		return true
	}
	return false
}

// FinanceKind is the direction of a financial record.
type FinanceKind string

const (
	FinanceKindIncome  FinanceKind = "INCOME"
	FinanceKindExpense FinanceKind = "EXPENSE"
)

func (k FinanceKind) String() string { return string(k) }

func (k FinanceKind) IsValid() bool {
	switch k {
	case FinanceKindIncome, FinanceKindExpense:
		return true
	}
	return false
}
