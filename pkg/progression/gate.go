// Package progression enforces the rules for marking a plan's days complete:
// days unlock strictly in order, and a real-time cooldown must elapse between
// any two completions on the same plan.
package progression

import (
	"fmt"
	"time"

	"disha/entities"
)

type State int

const (
	Locked State = iota
	Unlockable
	Completed
)

func (s State) String() string {
	switch s {
	case Locked:
		return "locked"
	case Unlockable:
		return "unlockable"
	default:
		return "completed"
	}
}

// Gate holds the progression policy. Cooldown is the minimum interval between
// completions; FreeRetraction controls whether un-completing skips all checks
// (the behavior the original client shipped with).
type Gate struct {
	Cooldown       time.Duration
	FreeRetraction bool
}

func New(cooldownHours float64, freeRetraction bool) Gate {
	return Gate{
		Cooldown:       time.Duration(cooldownHours * float64(time.Hour)),
		FreeRetraction: freeRetraction,
	}
}

// SequenceError rejects an out-of-order completion attempt.
type SequenceError struct {
	RequiredDay int
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("please complete Day %d first", e.RequiredDay)
}

// CooldownError rejects a completion attempted before the cooldown elapsed.
type CooldownError struct {
	RemainingHours float64
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("next day unlocks in %.1f hours", e.RemainingHours)
}

// RetractionError rejects un-completing a day that a later completed day
// depends on, when free retraction is disabled.
type RetractionError struct {
	CompletedDay int
}

func (e *RetractionError) Error() string {
	return fmt.Sprintf("un-complete Day %d before this one", e.CompletedDay)
}

// StateOf reports the gate state of days[idx] against the given snapshot.
func (g Gate) StateOf(days []entities.DayEntry, idx int) State {
	if days[idx].IsCompleted {
		return Completed
	}
	if idx > 0 && !days[idx-1].IsCompleted {
		return Locked
	}
	return Unlockable
}

// CheckComplete validates a completion attempt for days[idx] at time now.
// It never mutates the snapshot; a nil return means the transition is allowed.
func (g Gate) CheckComplete(days []entities.DayEntry, idx int, now time.Time) error {
	if idx < 0 || idx >= len(days) {
		return fmt.Errorf("day index %d out of range", idx)
	}
	if days[idx].IsCompleted {
		return nil // already complete, nothing to gate
	}
	if idx > 0 && !days[idx-1].IsCompleted {
		return &SequenceError{RequiredDay: days[idx-1].DayNumber}
	}

	last := lastCompletion(days, idx)
	if last != nil {
		if elapsed := now.Sub(*last); elapsed < g.Cooldown {
			return &CooldownError{RemainingHours: (g.Cooldown - elapsed).Hours()}
		}
	}
	return nil
}

// CheckUncomplete validates clearing days[idx]. With FreeRetraction the
// transition is always allowed, matching the asymmetry of the original flow.
func (g Gate) CheckUncomplete(days []entities.DayEntry, idx int) error {
	if idx < 0 || idx >= len(days) {
		return fmt.Errorf("day index %d out of range", idx)
	}
	if g.FreeRetraction {
		return nil
	}
	for j := idx + 1; j < len(days); j++ {
		if days[j].IsCompleted {
			return &RetractionError{CompletedDay: days[j].DayNumber}
		}
	}
	return nil
}

// Apply performs the completion toggle on a single entry.
func Apply(day *entities.DayEntry, completed bool, now time.Time) {
	day.IsCompleted = completed
	if completed {
		t := now
		day.CompletedAt = &t
	} else {
		day.CompletedAt = nil
	}
}

// lastCompletion returns the most recent CompletedAt among all entries other
// than days[skip], or nil when none are completed.
func lastCompletion(days []entities.DayEntry, skip int) *time.Time {
	var last *time.Time
	for i := range days {
		if i == skip || days[i].CompletedAt == nil {
			continue
		}
		if last == nil || days[i].CompletedAt.After(*last) {
			last = days[i].CompletedAt
		}
	}
	return last
}
