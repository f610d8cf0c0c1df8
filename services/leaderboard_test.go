package services

import (
	"testing"

	"fittrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func optedIn(username string) models.User {
	return models.User{Username: username, DisplayName: username, ShowOnLeaderboards: true}
}

func TestRankLabel(t *testing.T) {
	assert.Equal(t, "🥇", RankLabel(1))
	assert.Equal(t, "🥈", RankLabel(2))
	assert.Equal(t, "🥉", RankLabel(3))
	assert.Equal(t, "4.", RankLabel(4))
	assert.Equal(t, "17.", RankLabel(17))
}

func TestParticipantsFiltersOptOuts(t *testing.T) {
	users := []models.User{
		optedIn("ana"),
		{Username: "ben", ShowOnLeaderboards: false},
		optedIn("cai"),
	}
	got := Participants(users)
	require.Len(t, got, 2)
	assert.Equal(t, "ana", got[0].Username)
	assert.Equal(t, "cai", got[1].Username)
}

func TestStreakBoard(t *testing.T) {
	now := day(2024, 4, 10)

	ana := optedIn("ana")
	ana.Exercises = exercisesOn(now, now.AddDate(0, 0, -1), now.AddDate(0, 0, -2))
	ben := optedIn("ben")
	ben.Exercises = exercisesOn(now)
	cai := optedIn("cai") // no workouts, never ranked

	rows := StreakBoard([]models.User{ben, ana, cai})
	require.Len(t, rows, 2)
	assert.Equal(t, "ana", rows[0].Username)
	assert.Equal(t, 3, rows[0].Streak)
	assert.Equal(t, "🥇", rows[0].Label)
	assert.Equal(t, "ben", rows[1].Username)
	assert.Equal(t, "🥈", rows[1].Label)
}

func TestWeeklyBoardWindowAndTies(t *testing.T) {
	now := day(2024, 4, 10)

	ana := optedIn("ana")
	ana.Exercises = []models.ExerciseEntry{
		{Date: now.AddDate(0, 0, -1), DurationMinutes: 30},
		{Date: now.AddDate(0, 0, -2), DurationMinutes: 45},
		{Date: now.AddDate(0, 0, -10), DurationMinutes: 60}, // outside the window
	}
	ben := optedIn("ben")
	ben.Exercises = []models.ExerciseEntry{
		{Date: now.AddDate(0, 0, -3), DurationMinutes: 20},
		{Date: now.AddDate(0, 0, -4), DurationMinutes: 20},
	}

	rows := WeeklyBoard([]models.User{ana, ben}, now)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Workouts)
	assert.Equal(t, 75, rows[0].TotalMinutes)

	// Equal counts keep input order (stable sort)
	assert.Equal(t, "ana", rows[0].Username)
	assert.Equal(t, "ben", rows[1].Username)
}

func TestNAPFABoardBracketsAndLatest(t *testing.T) {
	ana := optedIn("ana")
	ana.Age, ana.Gender = 14, "f"
	ana.NAPFATests = []models.NAPFATest{{Total: 12}, {Total: 20, Medal: "🥈 Silver"}}

	ben := optedIn("ben")
	ben.Age, ben.Gender = 14, "m" // wrong bracket
	ben.NAPFATests = []models.NAPFATest{{Total: 30}}

	cai := optedIn("cai")
	cai.Age, cai.Gender = 14, "f" // untested, excluded

	rows := NAPFABoard([]models.User{ana, ben, cai}, 14, "f")
	require.Len(t, rows, 1)
	assert.Equal(t, "ana", rows[0].Username)
	assert.Equal(t, 20, rows[0].Score, "ranks by latest test, not best")
	assert.Equal(t, "🥈 Silver", rows[0].Medal)
}

func TestGroupBoard(t *testing.T) {
	mkStudent := func(name, school string, total int) models.User {
		u := optedIn(name)
		u.School = school
		if total > 0 {
			u.NAPFATests = []models.NAPFATest{{Total: total}}
		}
		return u
	}

	users := []models.User{
		mkStudent("ana", "North", 20),
		mkStudent("ben", "North", 10),
		mkStudent("cai", "South", 18),
		mkStudent("dee", "South", 0),  // untested, counted as a student but not in the average
		mkStudent("eli", "", 25),      // empty key skipped entirely
		mkStudent("fay", "West", 0),   // only untested members, group dropped
	}

	rows := GroupBoard(users, SchoolKey)
	require.Len(t, rows, 2)

	assert.Equal(t, "South", rows[0].Group)
	assert.InDelta(t, 18, rows[0].AvgNAPFA, 1e-9, "average over tested members only")
	assert.Equal(t, 2, rows[0].Students)

	assert.Equal(t, "North", rows[1].Group)
	assert.InDelta(t, 15, rows[1].AvgNAPFA, 1e-9)
}

func TestGroupBoardExcludesOptOuts(t *testing.T) {
	// An opted-out high scorer must not inflate the class average. The
	// handler filters before grouping; this mirrors that pipeline.
	users := []models.User{
		optedIn("ana"),
		{Username: "ben", School: "North", ShowOnLeaderboards: false,
			NAPFATests: []models.NAPFATest{{Total: 30}}},
	}
	users[0].School = "North"
	users[0].NAPFATests = []models.NAPFATest{{Total: 12}}

	rows := GroupBoard(Participants(users), SchoolKey)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Students)
	assert.InDelta(t, 12, rows[0].AvgNAPFA, 1e-9)
}
