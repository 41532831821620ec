package domain

import (
	"slices"
	"strings"
)

// SortSessionsChronologically orders sessions by (date ascending, start time
// ascending). Both fields are zero-padded strings, so plain string comparison
// yields chronological order. The sort is stable: sessions sharing a date and
// start time keep their input order.
func SortSessionsChronologically(sessions []*Session) {
	slices.SortStableFunc(sessions, func(a, b *Session) int {
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return strings.Compare(a.StartTime, b.StartTime)
	})
}

// SortUsersByUsername orders users by username, case-sensitive ascending,
// matching the collation of the identity store's username index.
func SortUsersByUsername(users []User) {
	slices.SortStableFunc(users, func(a, b User) int {
		return strings.Compare(a.Username, b.Username)
	})
}
