package domain

import "time"

// Streak counts consecutive learning days ending at today.
//
// dates must be distinct learned dates sorted most recent first. The
// date at position i must equal today minus i days to extend the
// streak; the first mismatch stops the walk. A learner who last
// studied yesterday therefore has a streak of 0 until they study
// today - intentional behavior, not a bug.
func Streak(dates []time.Time, today time.Time) int {
	streak := 0
	for i, d := range dates {
		expected := today.AddDate(0, 0, -i)
		if !sameDate(d, expected) {
			break
		}
		streak++
	}
	return streak
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
