package domain

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh opaque record id. Repositories never generate ids
// themselves; callers mint them (this helper, or any unique token of their
// own) and pass them in.
func NewID() string { return uuid.NewString() }

// Millis converts a time to epoch milliseconds, the unit every record
// timestamp uses.
func Millis(t time.Time) int64 { return t.UnixMilli() }

// FromMillis converts epoch milliseconds back to a time in UTC.
func FromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }
