// services/streak.go - activity and login streaks
package services

import (
	"sort"
	"time"

	"fittrack/models"
)

// ActivityStreak counts consecutive active days over an unordered set of
// activity dates. Walking back from the most recent day, a gap of up to 2
// days keeps the streak alive (one rest day allowed); a gap of 3 or more
// breaks it. Duplicates within the same calendar day count once.
func ActivityStreak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	// Bucket by calendar date, not 24h epoch windows; a workout late in the
	// evening and one early the next morning are two distinct days.
	seen := make(map[string]time.Time, len(dates))
	for _, d := range dates {
		day := Day(d)
		seen[day.Format("2006-01-02")] = day
	}

	days := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 1
	current := days[0]
	for _, prev := range days[1:] {
		diff := int(current.Sub(prev).Hours() / 24)
		if diff > 2 {
			break
		}
		streak++
		current = prev
	}
	return streak
}

// AdvanceLoginStreak updates a user's daily login streak in place. Unlike
// activity streaks, login streaks are strict: only an exactly-one-day gap
// extends them, the same day leaves them unchanged, anything else resets
// to 1.
func AdvanceLoginStreak(u *models.User, now time.Time) {
	if u.LastLogin != nil {
		last := Day(*u.LastLogin)
		today := Day(now)
		switch int(today.Sub(last).Hours() / 24) {
		case 0:
			// same day, no change
		case 1:
			u.LoginStreak++
		default:
			u.LoginStreak = 1
		}
	} else {
		u.LoginStreak = 1
	}
	t := now
	u.LastLogin = &t
}
