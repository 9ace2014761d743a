package domain

import (
	"sort"
	"time"
)

// DateKey is a local calendar day in "YYYY-MM-DD" form. Two timestamps on
// the same local day map to the same key regardless of time of day.
type DateKey string

// DayKeyIn derives the DateKey for an epoch-millisecond timestamp using the
// given location's wall-clock day boundaries.
func DayKeyIn(ms int64, loc *time.Location) DateKey {
	return DateKey(time.UnixMilli(ms).In(loc).Format("2006-01-02"))
}

// EventType labels which entity kind produced a calendar event.
type EventType string

const (
	EventTypeTask          EventType = "TASK"
	EventTypeHabit         EventType = "HABIT"
	EventTypeFood          EventType = "FOOD"
	EventTypeWater         EventType = "WATER"
	EventTypeMealPrep      EventType = "MEAL_PREP"
	EventTypeFinance       EventType = "FINANCE"
	EventTypeWorkout       EventType = "WORKOUT"
	EventTypeAppointment   EventType = "APPOINTMENT"
	EventTypeJournal       EventType = "JOURNAL"
	EventTypeManifestation EventType = "MANIFESTATION"
)

func (t EventType) String() string { return string(t) }

func (t EventType) IsValid() bool {
	switch t {
	case EventTypeTask, EventTypeHabit, EventTypeFood, EventTypeWater,
		EventTypeMealPrep, EventTypeFinance, EventTypeWorkout,
		EventTypeAppointment, EventTypeJournal, EventTypeManifestation:
		return true
	}
	return false
}

// EventCount is one (entity kind, occurrences) pair for a single day.
type EventCount struct {
	Type  EventType
	Count int
}

// DayIndex maps each local calendar day to its per-kind event counts.
type DayIndex map[DateKey]map[EventType]int

// Add increments the counter for one event on one day.
func (ix DayIndex) Add(key DateKey, t EventType) {
	day, ok := ix[key]
	if !ok {
		day = make(map[EventType]int)
		ix[key] = day
	}
	day[t]++
}

// Counts returns the day's pairs ordered by type for deterministic output.
func (ix DayIndex) Counts(key DateKey) []EventCount {
	day := ix[key]
	out := make([]EventCount, 0, len(day))
	for t, n := range day {
		out = append(out, EventCount{Type: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// Days returns every day present in the index in ascending order.
func (ix DayIndex) Days() []DateKey {
	out := make([]DateKey, 0, len(ix))
	for k := range ix {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
