package sqlite

const weekMillis int64 = 7 * 24 * 60 * 60 * 1000

// WeekRange expands a week-start timestamp into the inclusive [start, end]
// bounds the week covers: seven days minus one millisecond.
func WeekRange(weekStart int64) (start, end int64) {
	return weekStart, weekStart + weekMillis - 1
}
