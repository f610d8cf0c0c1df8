package napfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRunTime(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"9:00", 9.0, false},
		{"12:08", 12.0 + 8.0/60, false},
		{"13:30", 13.5, false},
		{"10", 0, true},
		{"10:30:00", 0, true},
		{"ten:30", 0, true},
		{"10:3x", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseRunTime(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidRunTime, "input %q", tt.input)
		} else {
			require.NoError(t, err, "input %q", tt.input)
			assert.InDelta(t, tt.want, got, 1e-9, "input %q", tt.input)
		}
	}
}

func TestGradeForBoundaries(t *testing.T) {
	std := Standard{Cutoffs: [5]float64{40, 36, 32, 28, 24}}

	// Exactly hitting a cutoff earns that grade
	assert.Equal(t, 5, gradeFor(40, std))
	assert.Equal(t, 4, gradeFor(39, std))
	assert.Equal(t, 1, gradeFor(24, std))
	assert.Equal(t, 0, gradeFor(23, std))

	timed := Standard{Cutoffs: [5]float64{9.0, 9.75, 10.5, 11.33, 12.08}, LowerIsBetter: true}
	assert.Equal(t, 5, gradeFor(9.0, timed))
	assert.Equal(t, 4, gradeFor(9.01, timed))
	assert.Equal(t, 1, gradeFor(12.08, timed))
	assert.Equal(t, 0, gradeFor(12.09, timed))
}

func TestGradePerfectScore(t *testing.T) {
	run, err := ParseRunTime("9:00")
	require.NoError(t, err)

	res, err := Grade(14, "m", map[Event]float64{
		SitUps:      40,
		BroadJump:   218,
		SitAndReach: 41,
		PullUps:     10,
		ShuttleRun:  10.2,
		Run:         run,
	})
	require.NoError(t, err)

	for _, ev := range Events {
		assert.Equal(t, 5, res.Grades[ev], "event %s", ev)
	}
	assert.Equal(t, 30, res.Total)
	assert.Equal(t, 5, res.MinGrade)
	assert.Equal(t, MedalGold, res.Medal)
}

func TestGradeWeakRunDeniesMedal(t *testing.T) {
	// 12:08 parses to 12.133 minutes, just over the grade-1 cutoff of 12.08
	run, err := ParseRunTime("12:08")
	require.NoError(t, err)

	res, err := Grade(14, "m", map[Event]float64{
		SitUps:      24,
		BroadJump:   186,
		SitAndReach: 27,
		PullUps:     6,
		ShuttleRun:  12.0,
		Run:         run,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, res.Grades[Run])
	assert.Equal(t, 1, res.Grades[SitUps])
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 0, res.MinGrade)
	assert.Equal(t, MedalNone, res.Medal)
}

func TestGradeMinGradeFloor(t *testing.T) {
	// Five 5s and one 2: total 27 clears the Gold threshold but the
	// minimum-grade floor drops the medal to Silver.
	run, err := ParseRunTime("11:19") // 11.317, grade 2 for 14m
	require.NoError(t, err)

	res, err := Grade(14, "m", map[Event]float64{
		SitUps:      40,
		BroadJump:   218,
		SitAndReach: 41,
		PullUps:     10,
		ShuttleRun:  10.2,
		Run:         run,
	})
	require.NoError(t, err)

	assert.Equal(t, 27, res.Total)
	assert.Equal(t, 2, res.MinGrade)
	assert.Equal(t, MedalSilver, res.Medal)
}

func TestGradeBronze(t *testing.T) {
	// All grade-1 performances: total 9, min 1
	run, err := ParseRunTime("12:00") // 12.0 <= 12.08, grade 1
	require.NoError(t, err)

	res, err := Grade(14, "m", map[Event]float64{
		SitUps:      24,
		BroadJump:   186,
		SitAndReach: 27,
		PullUps:     6,
		ShuttleRun:  12.0,
		Run:         run,
	})
	require.NoError(t, err)

	assert.Equal(t, 6, res.Total)
	assert.Equal(t, MedalNone, res.Medal)

	// Bump three events to grade 2 to reach the Bronze threshold of 9
	res, err = Grade(14, "m", map[Event]float64{
		SitUps:      28,
		BroadJump:   194,
		SitAndReach: 32,
		PullUps:     6,
		ShuttleRun:  12.0,
		Run:         run,
	})
	require.NoError(t, err)
	assert.Equal(t, 9, res.Total)
	assert.Equal(t, 1, res.MinGrade)
	assert.Equal(t, MedalBronze, res.Medal)
}

func TestGradeMissingScore(t *testing.T) {
	_, err := Grade(14, "m", map[Event]float64{
		SitUps: 40,
	})
	assert.ErrorIs(t, err, ErrMissingScore)
}

func TestGradeUnsupportedAge(t *testing.T) {
	raw := map[Event]float64{
		SitUps: 40, BroadJump: 218, SitAndReach: 41,
		PullUps: 10, ShuttleRun: 10.2, Run: 9.0,
	}

	_, err := Grade(11, "m", raw)
	assert.ErrorIs(t, err, ErrUnsupportedAge)

	_, err = Grade(17, "m", raw)
	assert.ErrorIs(t, err, ErrUnsupportedAge)
}

func TestStandardsForAllBrackets(t *testing.T) {
	for age := MinAge; age <= MaxAge; age++ {
		for _, gender := range []string{"m", "f"} {
			table, err := StandardsFor(age, gender)
			require.NoError(t, err, "age %d gender %s", age, gender)
			assert.Len(t, table, len(Events))
			assert.True(t, table[ShuttleRun].LowerIsBetter)
			assert.True(t, table[Run].LowerIsBetter)
			assert.False(t, table[SitUps].LowerIsBetter)
		}
	}

	_, err := StandardsFor(14, "x")
	assert.Error(t, err)
}

func TestStandardsMonotonic(t *testing.T) {
	// Within each event, cutoffs run best to worst with no inversions.
	for age := MinAge; age <= MaxAge; age++ {
		for _, gender := range []string{"m", "f"} {
			table, _ := StandardsFor(age, gender)
			for ev, std := range table {
				for i := 1; i < len(std.Cutoffs); i++ {
					if std.LowerIsBetter {
						assert.Less(t, std.Cutoffs[i-1], std.Cutoffs[i],
							"age %d %s %s cutoff %d", age, gender, ev, i)
					} else {
						assert.Greater(t, std.Cutoffs[i-1], std.Cutoffs[i],
							"age %d %s %s cutoff %d", age, gender, ev, i)
					}
				}
			}
		}
	}
}
