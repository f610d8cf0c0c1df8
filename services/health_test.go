package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMIAndBodyType(t *testing.T) {
	assert.InDelta(t, 20.76, BMI(60, 1.70), 0.01)
	assert.InDelta(t, 0, BMI(60, 0), 1e-9, "zero height never divides")

	bt, _ := BodyType(55, 1.70) // BMI ~19
	assert.Equal(t, "Ectomorph", bt)
	bt, _ = BodyType(70, 1.70) // BMI ~24.2
	assert.Equal(t, "Mesomorph", bt)
	bt, _ = BodyType(90, 1.70) // BMI ~31.1
	assert.Equal(t, "Endomorph", bt)
}

func TestBMR(t *testing.T) {
	// Mifflin-St Jeor: 10*60 + 6.25*170 - 5*14 = 1592.5
	assert.InDelta(t, 1597.5, BMR(60, 170, 14, "m"), 1e-9)
	assert.InDelta(t, 1431.5, BMR(60, 170, 14, "f"), 1e-9)
}

func TestTDEE(t *testing.T) {
	assert.InDelta(t, 1200, TDEE(1000, "sedentary"), 1e-9)
	assert.InDelta(t, 1550, TDEE(1000, "moderate"), 1e-9)
	assert.InDelta(t, 1900, TDEE(1000, "very_active"), 1e-9)
	assert.InDelta(t, 1200, TDEE(1000, "bogus"), 1e-9, "unknown level falls back to sedentary")
}

func TestSleepDuration(t *testing.T) {
	h, m, err := SleepDuration("22:30", "06:45")
	require.NoError(t, err)
	assert.Equal(t, 8, h)
	assert.Equal(t, 15, m)

	// Same-day nap, no wrap
	h, m, err = SleepDuration("13:00", "14:30")
	require.NoError(t, err)
	assert.Equal(t, 1, h)
	assert.Equal(t, 30, m)

	_, _, err = SleepDuration("25:00", "06:00")
	assert.Error(t, err)
	_, _, err = SleepDuration("22:00", "6")
	assert.Error(t, err)
	_, _, err = SleepDuration("22:61", "06:00")
	assert.Error(t, err)
}

func TestSleepQuality(t *testing.T) {
	assert.Equal(t, "Excellent", SleepQuality(9))
	assert.Equal(t, "Excellent", SleepQuality(8))
	assert.Equal(t, "Good", SleepQuality(7))
	assert.Equal(t, "Fair", SleepQuality(6))
	assert.Equal(t, "Poor", SleepQuality(5))
}

func TestNAPFAPercentile(t *testing.T) {
	assert.Equal(t, 95, NAPFAPercentile(30))
	assert.Equal(t, 95, NAPFAPercentile(25))
	assert.Equal(t, 75, NAPFAPercentile(21))
	assert.Equal(t, 50, NAPFAPercentile(15))
	assert.Equal(t, 25, NAPFAPercentile(9))
	assert.Equal(t, 10, NAPFAPercentile(5))
}
