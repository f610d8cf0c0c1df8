// services/achievements.go - badge awards, points and levels
package services

import (
	"time"

	"fittrack/models"
)

// Snapshot is a user's full in-memory history, already loaded by the caller.
// The achievement scan never touches storage; it only reads this snapshot.
type Snapshot struct {
	Tests       []models.NAPFATest
	Exercises   []models.ExerciseEntry
	Sleep       []models.SleepEntry
	Goals       []models.Goal
	LoginStreak int
	Now         time.Time
}

// BadgeDef is one entry in the declarative badge table.
type BadgeDef struct {
	Name        string
	Description string
	Points      int
	Earned      func(*Snapshot) bool
}

// Award is a badge newly earned during a scan.
type Award struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

func (s *Snapshot) latestTest() *models.NAPFATest {
	if len(s.Tests) == 0 {
		return nil
	}
	return &s.Tests[len(s.Tests)-1]
}

func (s *Snapshot) exerciseDates() []time.Time {
	dates := make([]time.Time, 0, len(s.Exercises))
	for _, e := range s.Exercises {
		dates = append(dates, e.Date)
	}
	return dates
}

func (s *Snapshot) completedGoals() int {
	n := 0
	for _, g := range s.Goals {
		if g.Progress >= 100 {
			n++
		}
	}
	return n
}

// badgeDefs is evaluated in fixed order on every scan. Absent history
// sections simply fail their predicates; nothing here ever errors.
var badgeDefs = []BadgeDef{
	{
		Name:        "🥇 First Gold",
		Description: "Earned your first NAPFA Gold medal!",
		Points:      100,
		Earned: func(s *Snapshot) bool {
			t := s.latestTest()
			return t != nil && t.Medal == "🥇 Gold"
		},
	},
	{
		Name:        "💯 Perfect Score",
		Description: "All Grade 5s on NAPFA test!",
		Points:      200,
		Earned: func(s *Snapshot) bool {
			t := s.latestTest()
			if t == nil {
				return false
			}
			for _, g := range t.Grades() {
				if g != 5 {
					return false
				}
			}
			return true
		},
	},
	{
		Name:        "💪 Century Club",
		Description: "Completed 100 total workouts!",
		Points:      150,
		Earned:      func(s *Snapshot) bool { return len(s.Exercises) >= 100 },
	},
	{
		Name:        "🏋️ Fifty Strong",
		Description: "Completed 50 workouts!",
		Points:      75,
		Earned:      func(s *Snapshot) bool { return len(s.Exercises) >= 50 },
	},
	{
		Name:        "🎯 Getting Started",
		Description: "Completed 10 workouts!",
		Points:      25,
		Earned:      func(s *Snapshot) bool { return len(s.Exercises) >= 10 },
	},
	{
		Name:        "🔥 Week Warrior",
		Description: "7-day workout streak!",
		Points:      50,
		Earned:      func(s *Snapshot) bool { return ActivityStreak(s.exerciseDates()) >= 7 },
	},
	{
		Name:        "🔥🔥 Month Master",
		Description: "30-day workout streak!",
		Points:      150,
		Earned:      func(s *Snapshot) bool { return ActivityStreak(s.exerciseDates()) >= 30 },
	},
	{
		Name:        "🌙 Sleep Champion",
		Description: "7 days of 8+ hours sleep!",
		Points:      50,
		Earned: func(s *Snapshot) bool {
			// Needs at least 7 records inside the trailing 7-day window;
			// older perfect sleep does not count.
			weekAgo := s.Now.AddDate(0, 0, -7)
			recent, good := 0, 0
			for _, e := range s.Sleep {
				if e.Date.Before(weekAgo) {
					continue
				}
				recent++
				if e.TotalHours() >= 8 {
					good++
				}
			}
			return recent >= 7 && good >= 7
		},
	},
	{
		Name:        "🎯 Goal Crusher",
		Description: "Completed 5 fitness goals!",
		Points:      100,
		Earned:      func(s *Snapshot) bool { return s.completedGoals() >= 5 },
	},
	{
		Name:        "🎯 First Goal",
		Description: "Completed your first goal!",
		Points:      30,
		Earned:      func(s *Snapshot) bool { return s.completedGoals() >= 1 },
	},
	{
		Name:        "📅 Daily Visitor",
		Description: "7-day login streak!",
		Points:      40,
		Earned:      func(s *Snapshot) bool { return s.LoginStreak >= 7 },
	},
}

// BadgeCatalog returns the full badge table for display.
func BadgeCatalog() []BadgeDef {
	return badgeDefs
}

// EvaluateBadges scans the snapshot against the badge table and returns the
// badges newly earned, skipping names already held. Running it twice on an
// unchanged snapshot returns nothing the second time.
func EvaluateBadges(snap *Snapshot, existingNames map[string]bool) []Award {
	var awards []Award
	for _, def := range badgeDefs {
		if existingNames[def.Name] {
			continue
		}
		if def.Earned(snap) {
			awards = append(awards, Award{
				Name:        def.Name,
				Description: def.Description,
				Points:      def.Points,
			})
		}
	}
	return awards
}

// Level is a named tier with its [Min, Max) point band.
type Level struct {
	Name string `json:"name"`
	Min  int    `json:"min_points"`
	Max  int    `json:"max_points"`
}

var levelBands = []Level{
	{Name: "Novice", Min: 0, Max: 50},
	{Name: "Beginner", Min: 50, Max: 150},
	{Name: "Intermediate", Min: 150, Max: 300},
	{Name: "Advanced", Min: 300, Max: 500},
	{Name: "Expert", Min: 500, Max: 800},
	{Name: "Master", Min: 800, Max: 1200},
	{Name: "Legend", Min: 1200, Max: 1200},
}

// LevelFor maps a point total to its tier. It is recomputed on every read;
// the tier name is never persisted as independent truth.
func LevelFor(totalPoints int) Level {
	for _, band := range levelBands[:len(levelBands)-1] {
		if totalPoints < band.Max {
			return band
		}
	}
	return levelBands[len(levelBands)-1]
}

// LevelProgress returns progress through the current band in [0, 1].
func LevelProgress(totalPoints int) float64 {
	band := LevelFor(totalPoints)
	if band.Max <= band.Min {
		return 1.0 // Legend has no next band
	}
	return float64(totalPoints-band.Min) / float64(band.Max-band.Min)
}
