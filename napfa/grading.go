// napfa/grading.go - grading and medal rules
package napfa

import (
	"errors"
	"strconv"
	"strings"
)

// Medal labels, matching the values persisted in test history.
const (
	MedalGold   = "🥇 Gold"
	MedalSilver = "🥈 Silver"
	MedalBronze = "🥉 Bronze"
	MedalNone   = "No Medal"
)

// ErrInvalidRunTime is returned for a 2.4km run time not in MM:SS form.
var ErrInvalidRunTime = errors.New("napfa: run time must be in MM:SS format")

// ErrMissingScore is returned when a submission omits one of the six events.
var ErrMissingScore = errors.New("napfa: all six event scores are required")

// Result is the outcome of grading one full test attempt.
type Result struct {
	Grades   map[Event]int `json:"grades"`
	Total    int           `json:"total"`
	MinGrade int           `json:"min_grade"`
	Medal    string        `json:"medal"`
}

// ParseRunTime converts a "MM:SS" string into decimal minutes.
// The string must split into exactly two integer parts on ':'.
func ParseRunTime(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, ErrInvalidRunTime
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, ErrInvalidRunTime
	}
	seconds, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, ErrInvalidRunTime
	}
	return float64(minutes) + float64(seconds)/60, nil
}

// gradeFor returns the 0-5 grade for a score against one event's standard.
// Cutoffs run best to worst: the first cutoff the score clears (>= for
// higher-is-better events, <= for timed events) gives grade 5-i; a score
// clearing none of them is grade 0.
func gradeFor(score float64, std Standard) int {
	for i, cutoff := range std.Cutoffs {
		if std.LowerIsBetter {
			if score <= cutoff {
				return 5 - i
			}
		} else {
			if score >= cutoff {
				return 5 - i
			}
		}
	}
	return 0
}

// Grade scores a full six-event attempt for the given age and gender.
// All six events must be present in raw. The medal checks run in strict
// Gold, Silver, Bronze order; each tier requires both the total threshold
// and a minimum-grade floor, so one weak event can deny a medal outright.
func Grade(age int, gender string, raw map[Event]float64) (Result, error) {
	table, err := StandardsFor(age, gender)
	if err != nil {
		return Result{}, err
	}

	for _, ev := range Events {
		if _, ok := raw[ev]; !ok {
			return Result{}, ErrMissingScore
		}
	}

	res := Result{Grades: make(map[Event]int, len(Events)), MinGrade: 5}
	for _, ev := range Events {
		g := gradeFor(raw[ev], table[ev])
		res.Grades[ev] = g
		res.Total += g
		if g < res.MinGrade {
			res.MinGrade = g
		}
	}

	switch {
	case res.Total >= 21 && res.MinGrade >= 3:
		res.Medal = MedalGold
	case res.Total >= 15 && res.MinGrade >= 2:
		res.Medal = MedalSilver
	case res.Total >= 9 && res.MinGrade >= 1:
		res.Medal = MedalBronze
	default:
		res.Medal = MedalNone
	}

	return res, nil
}
