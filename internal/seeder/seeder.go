// Package seeder fills a scope with a fortnight of sample rows through the
// public repository API, so a fresh install has data on every screen and
// the calendar has something to aggregate. It never touches SQL directly.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/appointment"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/finance"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/habit"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/mindset"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/note"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/nutrition"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/task"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite/workout"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

// seedDays is the size of the sample window: today plus the 13 days before.
const seedDays = 14

// Stores lists every repository the seeder writes through.
type Stores struct {
	Tx *sqlite.TxManager

	Tasks            *task.Repo
	Habits           *habit.Repo
	Completions      *habit.CompletionRepo
	FoodLogs         *nutrition.FoodLogRepo
	WaterLogs        *nutrition.WaterLogRepo
	MealPreps        *nutrition.MealPrepRepo
	NutritionProfile *nutrition.ProfileRepo
	Manifestations   *mindset.ManifestationRepo
	Affirmations     *mindset.AffirmationRepo
	FinanceRecords   *finance.RecordRepo
	FinanceNotes     *finance.NoteRepo
	Workouts         *workout.Repo
	Appointments     *appointment.Repo
	Notes            *note.Repo
}

// Result counts created rows per entity kind.
type Result struct {
	Created map[string]int
}

func (r Result) Total() int {
	total := 0
	for _, n := range r.Created {
		total += n
	}
	return total
}

// Seeder writes the sample fortnight. All timestamps derive from the base
// clock, so two runs with the same base produce identical dates (ids are
// fresh UUIDs each run).
type Seeder struct {
	log    *slog.Logger
	stores Stores
	base   time.Time
}

// New creates a Seeder. A zero base means "now".
func New(log *slog.Logger, stores Stores, base time.Time) *Seeder {
	if base.IsZero() {
		base = time.Now()
	}
	return &Seeder{
		log:    log.With("component", "seeder"),
		stores: stores,
		base:   base,
	}
}

// Run writes the whole sample set for one scope inside a single transaction:
// either every row lands or none do.
func (s *Seeder) Run(ctx context.Context, scope domain.Scope) (Result, error) {
	res := Result{Created: make(map[string]int)}

	s.log.Info("seeding sample data",
		slog.String("scope", scope.String()),
		slog.Time("base", s.base),
	)

	err := s.stores.Tx.RunInTx(ctx, func(ctx context.Context) error {
		steps := []struct {
			kind string
			run  func(context.Context, domain.Scope) (int, error)
		}{
			{"habits", s.seedHabits},
			{"habit completions", s.seedCompletions},
			{"tasks", s.seedTasks},
			{"food logs", s.seedFoodLogs},
			{"water logs", s.seedWaterLogs},
			{"meal preps", s.seedMealPreps},
			{"nutrition profile", s.seedNutritionProfile},
			{"finance records", s.seedFinanceRecords},
			{"finance note", s.seedFinanceNote},
			{"workouts", s.seedWorkouts},
			{"appointments", s.seedAppointments},
			{"notes", s.seedNotes},
			{"manifestations", s.seedManifestations},
			{"affirmations", s.seedAffirmations},
		}
		for _, step := range steps {
			n, err := step.run(ctx, scope)
			if err != nil {
				return fmt.Errorf("seed %s: %w", step.kind, err)
			}
			res.Created[step.kind] = n
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	s.log.Info("seeding done", slog.Int("rows", res.Total()))
	return res, nil
}

// day returns the moment hh:mm on day d of the window, where d zero is
// thirteen days ago and d thirteen is the base day.
func (s *Seeder) day(d, hh, mm int) int64 {
	y, m, dd := s.base.AddDate(0, 0, d-(seedDays-1)).Date()
	return time.Date(y, m, dd, hh, mm, 0, 0, s.base.Location()).UnixMilli()
}

// ---------------------------------------------------------------------------
// Entity kinds
// ---------------------------------------------------------------------------

// habitSet is the fixed trio of sample habits; completion rules below key
// off the position in this slice.
var habitSet = []struct {
	name    string
	emoji   string
	cadence domain.HabitCadence
	target  int
}{
	{"Meditate", "🧘", domain.HabitCadenceDaily, 7},
	{"Morning run", "🏃", domain.HabitCadenceWeekly, 3},
	{"Read 20 pages", "📖", domain.HabitCadenceDaily, 7},
}

func (s *Seeder) seedHabits(ctx context.Context, scope domain.Scope) (int, error) {
	for i, h := range habitSet {
		// Distinct creation minutes keep list order stable.
		at := s.day(0, 8, i)
		emoji := h.emoji
		err := s.stores.Habits.Create(ctx, scope, domain.Habit{
			ID:            domain.NewID(),
			Name:          h.name,
			Emoji:         &emoji,
			Cadence:       h.cadence,
			TargetPerWeek: h.target,
			CreatedAt:     at,
			UpdatedAt:     at,
		})
		if err != nil {
			return 0, err
		}
	}
	return len(habitSet), nil
}

func (s *Seeder) seedCompletions(ctx context.Context, scope domain.Scope) (int, error) {
	habits, err := s.stores.Habits.GetAll(ctx, scope)
	if err != nil {
		return 0, err
	}

	count := 0
	for d := 0; d < seedDays; d++ {
		for i, h := range habits {
			if !completedOn(i, d) {
				continue
			}
			at := s.day(d, 7+i, 30)
			err := s.stores.Completions.Create(ctx, scope, domain.HabitCompletion{
				ID:          domain.NewID(),
				HabitID:     h.ID,
				CompletedAt: at,
				CreatedAt:   at,
				UpdatedAt:   at,
			})
			if err != nil {
				return 0, err
			}
			count++
		}
	}
	return count, nil
}

// completedOn decides whether sample habit i was done on day d: the daily
// habits skip every fifth day, the run happens three times a week.
func completedOn(i, d int) bool {
	switch i {
	case 1:
		return d%7 == 0 || d%7 == 2 || d%7 == 4
	default:
		return d%5 != 4
	}
}

func (s *Seeder) seedTasks(ctx context.Context, scope domain.Scope) (int, error) {
	samples := []struct {
		title    string
		priority domain.TaskPriority
		dueDay   int // -1 for no due date
		done     bool
	}{
		{"Renew gym membership", domain.TaskPriorityHigh, 2, true},
		{"Book dentist appointment", domain.TaskPriorityMedium, 5, true},
		{"File expense report", domain.TaskPriorityHigh, 9, false},
		{"Plan weekend hike", domain.TaskPriorityLow, 12, false},
		{"Clean out garage", domain.TaskPriorityLow, -1, false},
		{"Research meal delivery", domain.TaskPriorityMedium, -1, false},
	}

	for _, t := range samples {
		created := s.day(0, 9, 0)
		rec := domain.Task{
			ID:        domain.NewID(),
			Title:     t.title,
			Priority:  t.priority,
			Done:      t.done,
			CreatedAt: created,
			UpdatedAt: created,
		}
		if t.dueDay >= 0 {
			due := s.day(t.dueDay, 18, 0)
			rec.DueAt = &due
		}
		if err := s.stores.Tasks.Create(ctx, scope, rec); err != nil {
			return 0, err
		}
	}
	return len(samples), nil
}

func (s *Seeder) seedFoodLogs(ctx context.Context, scope domain.Scope) (int, error) {
	breakfasts := []struct {
		name     string
		calories float64
	}{
		{"Oatmeal with berries", 320},
		{"Greek yogurt and granola", 290},
		{"Scrambled eggs on toast", 410},
	}
	dinners := []struct {
		name     string
		calories float64
	}{
		{"Chicken stir-fry", 540},
		{"Salmon with rice", 620},
		{"Lentil curry", 480},
		{"Turkey chili", 510},
	}

	count := 0
	for d := 0; d < seedDays; d++ {
		b := breakfasts[d%len(breakfasts)]
		if err := s.createFoodLog(ctx, scope, b.name, b.calories, domain.MealTypeBreakfast, s.day(d, 8, 15)); err != nil {
			return 0, err
		}
		count++

		dn := dinners[d%len(dinners)]
		if err := s.createFoodLog(ctx, scope, dn.name, dn.calories, domain.MealTypeDinner, s.day(d, 19, 0)); err != nil {
			return 0, err
		}
		count++

		// A snack every third day.
		if d%3 == 0 {
			if err := s.createFoodLog(ctx, scope, "Apple and peanut butter", 210, domain.MealTypeSnack, s.day(d, 15, 30)); err != nil {
				return 0, err
			}
			count++
		}
	}
	return count, nil
}

func (s *Seeder) createFoodLog(ctx context.Context, scope domain.Scope, name string, calories float64, meal domain.MealType, at int64) error {
	protein := calories / 18
	return s.stores.FoodLogs.Create(ctx, scope, domain.FoodLog{
		ID:        domain.NewID(),
		Name:      name,
		Calories:  &calories,
		ProteinG:  &protein,
		MealType:  meal,
		Source:    domain.LogSourceManual,
		LoggedAt:  at,
		CreatedAt: at,
		UpdatedAt: at,
	})
}

func (s *Seeder) seedWaterLogs(ctx context.Context, scope domain.Scope) (int, error) {
	count := 0
	for d := 0; d < seedDays; d++ {
		glasses := 3 + d%3
		for g := 0; g < glasses; g++ {
			at := s.day(d, 9+3*g, 10)
			err := s.stores.WaterLogs.Create(ctx, scope, domain.WaterLog{
				ID:        domain.NewID(),
				VolumeML:  250,
				LoggedAt:  at,
				CreatedAt: at,
				UpdatedAt: at,
			})
			if err != nil {
				return 0, err
			}
			count++
		}
	}
	return count, nil
}

func (s *Seeder) seedMealPreps(ctx context.Context, scope domain.Scope) (int, error) {
	recipe := "Batch-cook Sunday afternoon, portion into five containers."
	samples := []struct {
		title string
		meal  domain.MealType
		day   int
	}{
		{"Overnight oats batch", domain.MealTypeBreakfast, 7},
		{"Chicken and rice boxes", domain.MealTypeLunch, 10},
		{"Veggie lasagna", domain.MealTypeDinner, 13},
	}
	for _, m := range samples {
		at := s.day(m.day, 16, 0)
		err := s.stores.MealPreps.Create(ctx, scope, domain.MealPrepPlan{
			ID:         domain.NewID(),
			Title:      m.title,
			MealType:   m.meal,
			Recipe:     &recipe,
			PlannedFor: at,
			CreatedAt:  s.day(m.day-3, 20, 0),
			UpdatedAt:  s.day(m.day-3, 20, 0),
		})
		if err != nil {
			return 0, err
		}
	}
	return len(samples), nil
}

func (s *Seeder) seedNutritionProfile(ctx context.Context, scope domain.Scope) (int, error) {
	calories := 2200.0
	protein := 140.0
	water := int64(2500)
	diet := "balanced"
	at := s.day(0, 8, 0)

	err := s.stores.NutritionProfile.Save(ctx, scope, domain.NutritionProfile{
		ID:             domain.NewID(),
		CaloriesTarget: &calories,
		ProteinTargetG: &protein,
		WaterTargetML:  &water,
		DietTag:        &diet,
		CreatedAt:      at,
		UpdatedAt:      at,
	})
	if err != nil {
		return 0, err
	}
	return 1, nil
}

func (s *Seeder) seedFinanceRecords(ctx context.Context, scope domain.Scope) (int, error) {
	categories := []string{"groceries", "coffee", "transport"}
	count := 0

	// Paycheck lands on the first day of the window.
	salary := "salary"
	at := s.day(0, 9, 0)
	err := s.stores.FinanceRecords.Create(ctx, scope, domain.FinanceRecord{
		ID:          domain.NewID(),
		AmountCents: 285000,
		Kind:        domain.FinanceKindIncome,
		Category:    &salary,
		OccurredAt:  at,
		CreatedAt:   at,
		UpdatedAt:   at,
	})
	if err != nil {
		return 0, err
	}
	count++

	for d := 0; d < seedDays; d += 2 {
		cat := categories[(d/2)%len(categories)]
		at := s.day(d, 17, 45)
		err := s.stores.FinanceRecords.Create(ctx, scope, domain.FinanceRecord{
			ID:          domain.NewID(),
			AmountCents: int64(1200 + 300*(d%3)),
			Kind:        domain.FinanceKindExpense,
			Category:    &cat,
			OccurredAt:  at,
			CreatedAt:   at,
			UpdatedAt:   at,
		})
		if err != nil {
			return 0, err
		}
		count++
	}
	return count, nil
}

func (s *Seeder) seedFinanceNote(ctx context.Context, scope domain.Scope) (int, error) {
	at := s.day(3, 21, 0)
	err := s.stores.FinanceNotes.Save(ctx, scope, domain.FinanceNote{
		ID:        domain.NewID(),
		Body:      "Goal: put aside 400 this month for the trip. Cut delivery orders.",
		CreatedAt: at,
		UpdatedAt: at,
	})
	if err != nil {
		return 0, err
	}
	return 1, nil
}

func (s *Seeder) seedWorkouts(ctx context.Context, scope domain.Scope) (int, error) {
	run := "cardio"
	gym := "strength"
	count := 0
	for d := 0; d < seedDays; d++ {
		var (
			title string
			kind  *string
			mins  int64
		)
		switch {
		case d%7 == 0 || d%7 == 2 || d%7 == 4:
			title, kind, mins = "Morning run", &run, 35
		case d%7 == 5:
			title, kind, mins = "Gym session", &gym, 55
		default:
			continue
		}

		at := s.day(d, 7, 0)
		burned := float64(mins) * 8.5
		err := s.stores.Workouts.Create(ctx, scope, domain.Workout{
			ID:             domain.NewID(),
			Title:          title,
			Kind:           kind,
			DurationMin:    &mins,
			CaloriesBurned: &burned,
			PerformedAt:    at,
			CreatedAt:      at,
			UpdatedAt:      at,
		})
		if err != nil {
			return 0, err
		}
		count++
	}
	return count, nil
}

func (s *Seeder) seedAppointments(ctx context.Context, scope domain.Scope) (int, error) {
	clinic := "Maple St clinic"
	ends := s.day(4, 11, 0)

	samples := []domain.Appointment{
		{
			ID:        domain.NewID(),
			Title:     "Dentist checkup",
			Location:  &clinic,
			StartsAt:  s.day(4, 10, 0),
			EndsAt:    &ends,
			Reminder:  true,
			CreatedAt: s.day(0, 12, 0),
			UpdatedAt: s.day(0, 12, 0),
		},
		{
			ID:        domain.NewID(),
			Title:     "Coffee with Sam",
			StartsAt:  s.day(11, 15, 0),
			Reminder:  false,
			CreatedAt: s.day(8, 19, 0),
			UpdatedAt: s.day(8, 19, 0),
		},
	}
	for _, a := range samples {
		if err := s.stores.Appointments.Create(ctx, scope, a); err != nil {
			return 0, err
		}
	}
	return len(samples), nil
}

func (s *Seeder) seedNotes(ctx context.Context, scope domain.Scope) (int, error) {
	moods := []string{"calm", "energized", "tired", "focused"}
	bodies := []string{
		"Solid day. The morning run is getting easier.",
		"Skipped meditation, felt it by the afternoon.",
		"Meal prep paid off, no takeout all day.",
		"Long day at work, kept the evening quiet.",
	}

	count := 0
	for d := 0; d < seedDays; d++ {
		// One rest day a week goes unjournaled.
		if d%7 == 3 {
			continue
		}
		mood := moods[d%len(moods)]
		at := s.day(d, 21, 30)
		err := s.stores.Notes.Create(ctx, scope, domain.Note{
			ID:        domain.NewID(),
			Body:      bodies[d%len(bodies)],
			Mood:      &mood,
			EntryAt:   at,
			CreatedAt: at,
			UpdatedAt: at,
		})
		if err != nil {
			return 0, err
		}
		count++
	}
	return count, nil
}

func (s *Seeder) seedManifestations(ctx context.Context, scope domain.Scope) (int, error) {
	samples := []struct {
		text     string
		achieved bool
		day      int
	}{
		{"Run a sub-50 10k this season", false, 1},
		{"Two weeks without ordering delivery", true, 6},
	}
	for _, m := range samples {
		at := s.day(m.day, 22, 0)
		err := s.stores.Manifestations.Create(ctx, scope, domain.Manifestation{
			ID:        domain.NewID(),
			Text:      m.text,
			Achieved:  m.achieved,
			CreatedAt: at,
			UpdatedAt: at,
		})
		if err != nil {
			return 0, err
		}
	}
	return len(samples), nil
}

func (s *Seeder) seedAffirmations(ctx context.Context, scope domain.Scope) (int, error) {
	texts := []string{
		"I follow through on what I start.",
		"Small steps add up.",
		"Rest is part of the plan.",
	}
	for i, text := range texts {
		at := s.day(0, 8, i)
		err := s.stores.Affirmations.Create(ctx, scope, domain.Affirmation{
			ID:        domain.NewID(),
			Text:      text,
			Active:    true,
			CreatedAt: at,
			UpdatedAt: at,
		})
		if err != nil {
			return 0, err
		}
	}
	return len(texts), nil
}
