package domain

// Note is a dated journal entry. EntryAt is the day the entry is about,
// which may differ from when it was written.
type Note struct {
	ID        string
	Body      string
	Mood      *string
	EntryAt   int64
	CreatedAt int64
	UpdatedAt int64
}
