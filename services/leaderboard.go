// services/leaderboard.go - opt-in community rankings
package services

import (
	"fmt"
	"sort"
	"time"

	"fittrack/models"
)

// BoardRow is one ranked individual entry.
type BoardRow struct {
	Rank        int    `json:"rank"`
	Label       string `json:"label"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	School      string `json:"school,omitempty"`

	Streak       int    `json:"streak,omitempty"`
	Workouts     int    `json:"workouts,omitempty"`
	TotalMinutes int    `json:"total_minutes,omitempty"`
	Score        int    `json:"score,omitempty"`
	Medal        string `json:"medal,omitempty"`
}

// GroupRow is one ranked group (school or class) entry.
type GroupRow struct {
	Rank          int     `json:"rank"`
	Label         string  `json:"label"`
	Group         string  `json:"group"`
	Students      int     `json:"students"`
	AvgNAPFA      float64 `json:"avg_napfa"`
	TotalWorkouts int     `json:"total_workouts"`
}

// RankLabel returns the medal emoji for the top three ranks, "N." otherwise.
func RankLabel(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%d.", rank)
	}
}

// Participants filters to users who opted into leaderboard visibility.
// Users who did not opt in are excluded from every board and from every
// group average's denominator.
func Participants(users []models.User) []models.User {
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.ShowOnLeaderboards {
			out = append(out, u)
		}
	}
	return out
}

func labelRows(rows []BoardRow) {
	for i := range rows {
		rows[i].Rank = i + 1
		rows[i].Label = RankLabel(i + 1)
	}
}

// StreakBoard ranks participants by their current workout streak.
func StreakBoard(participants []models.User) []BoardRow {
	var rows []BoardRow
	for _, u := range participants {
		if len(u.Exercises) == 0 {
			continue
		}
		dates := make([]time.Time, 0, len(u.Exercises))
		for _, e := range u.Exercises {
			dates = append(dates, e.Date)
		}
		rows = append(rows, BoardRow{
			Username:    u.Username,
			DisplayName: u.DisplayName,
			School:      u.School,
			Streak:      ActivityStreak(dates),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Streak > rows[j].Streak })
	labelRows(rows)
	return rows
}

// WeeklyBoard ranks participants by workouts logged in the trailing 7 days.
func WeeklyBoard(participants []models.User, now time.Time) []BoardRow {
	weekAgo := now.AddDate(0, 0, -7)
	var rows []BoardRow
	for _, u := range participants {
		count, minutes := 0, 0
		for _, e := range u.Exercises {
			if e.Date.Before(weekAgo) {
				continue
			}
			count++
			minutes += e.DurationMinutes
		}
		if count == 0 {
			continue
		}
		rows = append(rows, BoardRow{
			Username:     u.Username,
			DisplayName:  u.DisplayName,
			School:       u.School,
			Workouts:     count,
			TotalMinutes: minutes,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Workouts > rows[j].Workouts })
	labelRows(rows)
	return rows
}

// NAPFABoard ranks participants of one age and gender by their latest
// NAPFA total.
func NAPFABoard(participants []models.User, age int, gender string) []BoardRow {
	var rows []BoardRow
	for _, u := range participants {
		if u.Age != age || u.Gender != gender {
			continue
		}
		latest := u.LatestNAPFATest()
		if latest == nil {
			continue
		}
		rows = append(rows, BoardRow{
			Username:    u.Username,
			DisplayName: u.DisplayName,
			School:      u.School,
			Score:       latest.Total,
			Medal:       latest.Medal,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Score > rows[j].Score })
	labelRows(rows)
	return rows
}

// GroupBoard ranks groups of participants by mean latest NAPFA total.
// keyFn extracts the grouping key (school, class); participants with an
// empty key are skipped, and groups with no tested members are dropped
// rather than averaged over zero.
func GroupBoard(participants []models.User, keyFn func(models.User) string) []GroupRow {
	type groupAcc struct {
		students  int
		scoreSum  int
		scored    int
		workouts  int
		firstSeen int
	}
	acc := make(map[string]*groupAcc)
	order := 0
	for _, u := range participants {
		key := keyFn(u)
		if key == "" {
			continue
		}
		g, ok := acc[key]
		if !ok {
			g = &groupAcc{firstSeen: order}
			order++
			acc[key] = g
		}
		g.students++
		g.workouts += len(u.Exercises)
		if latest := u.LatestNAPFATest(); latest != nil {
			g.scoreSum += latest.Total
			g.scored++
		}
	}

	var rows []GroupRow
	keys := make([]string, 0, len(acc))
	for key := range acc {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return acc[keys[i]].firstSeen < acc[keys[j]].firstSeen })

	for _, key := range keys {
		g := acc[key]
		if g.scored == 0 {
			continue
		}
		rows = append(rows, GroupRow{
			Group:         key,
			Students:      g.students,
			AvgNAPFA:      float64(g.scoreSum) / float64(g.scored),
			TotalWorkouts: g.workouts,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].AvgNAPFA > rows[j].AvgNAPFA })
	for i := range rows {
		rows[i].Rank = i + 1
		rows[i].Label = RankLabel(i + 1)
	}
	return rows
}

// SchoolKey and ClassKey are the standard group extractors.
func SchoolKey(u models.User) string { return u.School }
func ClassKey(u models.User) string  { return u.Class }
