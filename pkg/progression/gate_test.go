package progression

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"disha/entities"
)

func threeDays() []entities.DayEntry {
	return []entities.DayEntry{
		{DayNumber: 1, Title: "Day 1: Algebra"},
		{DayNumber: 2, Title: "Day 2: Trig"},
		{DayNumber: 3, Title: "Day 3: Calculus"},
	}
}

func completeAt(days []entities.DayEntry, idx int, at time.Time) {
	days[idx].IsCompleted = true
	days[idx].CompletedAt = &at
}

func TestStateOf(t *testing.T) {
	g := New(20, true)
	days := threeDays()

	assert.Equal(t, Unlockable, g.StateOf(days, 0))
	assert.Equal(t, Locked, g.StateOf(days, 1))
	assert.Equal(t, Locked, g.StateOf(days, 2))

	completeAt(days, 0, time.Now())
	assert.Equal(t, Completed, g.StateOf(days, 0))
	assert.Equal(t, Unlockable, g.StateOf(days, 1))
	assert.Equal(t, Locked, g.StateOf(days, 2))
}

func TestSequenceCheck(t *testing.T) {
	g := New(20, true)
	days := threeDays()

	// Day 1 incomplete, Day 2 attempted
	err := g.CheckComplete(days, 1, time.Now())
	var seq *SequenceError
	assert.True(t, errors.As(err, &seq))
	assert.Equal(t, 1, seq.RequiredDay)
	assert.Contains(t, err.Error(), "Day 1")

	// snapshot untouched
	assert.False(t, days[1].IsCompleted)
	assert.Nil(t, days[1].CompletedAt)
}

func TestCooldownCheck(t *testing.T) {
	g := New(20, true)
	days := threeDays()
	base := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)
	completeAt(days, 0, base)

	// 10h later: rejected with ~10.0 hours remaining
	err := g.CheckComplete(days, 1, base.Add(10*time.Hour))
	var cool *CooldownError
	assert.True(t, errors.As(err, &cool))
	assert.InDelta(t, 10.0, cool.RemainingHours, 0.01)
	assert.Contains(t, err.Error(), "10.0")

	// 21h later: allowed
	assert.NoError(t, g.CheckComplete(days, 1, base.Add(21*time.Hour)))
}

func TestCooldownUsesMostRecentOtherCompletion(t *testing.T) {
	g := New(20, true)
	days := threeDays()
	base := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)
	completeAt(days, 0, base)
	completeAt(days, 1, base.Add(24*time.Hour))

	// day 3 attempted 5h after day 2 completed
	err := g.CheckComplete(days, 2, base.Add(29*time.Hour))
	var cool *CooldownError
	assert.True(t, errors.As(err, &cool))
	assert.InDelta(t, 15.0, cool.RemainingHours, 0.01)
}

func TestFirstDayHasNoCooldown(t *testing.T) {
	g := New(20, true)
	days := threeDays()
	assert.NoError(t, g.CheckComplete(days, 0, time.Now()))
}

func TestApply(t *testing.T) {
	now := time.Now()
	d := entities.DayEntry{DayNumber: 1}

	Apply(&d, true, now)
	assert.True(t, d.IsCompleted)
	if assert.NotNil(t, d.CompletedAt) {
		assert.Equal(t, now, *d.CompletedAt)
	}

	// un-completing always clears the timestamp
	Apply(&d, false, now.Add(time.Hour))
	assert.False(t, d.IsCompleted)
	assert.Nil(t, d.CompletedAt)
}

func TestRetractionPolicy(t *testing.T) {
	base := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)
	days := threeDays()
	completeAt(days, 0, base)
	completeAt(days, 1, base.Add(24*time.Hour))

	free := New(20, true)
	assert.NoError(t, free.CheckUncomplete(days, 0))

	strict := New(20, false)
	err := strict.CheckUncomplete(days, 0)
	var ret *RetractionError
	assert.True(t, errors.As(err, &ret))
	assert.Equal(t, 2, ret.CompletedDay)

	// last completed day can always be retracted
	assert.NoError(t, strict.CheckUncomplete(days, 1))
}
