package domain

// Appointment is a scheduled calendar entry. EndsAt is optional for
// open-ended entries.
type Appointment struct {
	ID        string
	Title     string
	Location  *string
	StartsAt  int64
	EndsAt    *int64
	Reminder  bool
	CreatedAt int64
	UpdatedAt int64
}
