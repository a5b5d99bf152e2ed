package engine

import (
	"fmt"
	"time"
)

// DayLayout is the ISO calendar-date format used everywhere a date is stored.
const DayLayout = "2006-01-02"

const (
	// BaseGoal is the target on the enrollment day.
	BaseGoal = 50
	// GoalStepPerDay is how much the auto goal rises each elapsed day.
	GoalStepPerDay = 50
)

// Day formats a timestamp as its calendar date.
func Day(t time.Time) string {
	return t.Format(DayLayout)
}

func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return t, nil
}

// DaysBetween returns the whole calendar days from one date to another.
// Negative when to precedes from.
func DaysBetween(from, to string) (int, error) {
	f, err := ParseDay(from)
	if err != nil {
		return 0, err
	}
	t, err := ParseDay(to)
	if err != nil {
		return 0, err
	}
	return int(t.Sub(f).Hours() / 24), nil
}

// GoalFor computes the target count for a specific calendar date: the custom
// goal when one is set, otherwise BaseGoal plus GoalStepPerDay per day since
// enrollment. Callers must pass the date being judged — yesterday's count is
// compared against yesterday's goal, never today's.
func GoalFor(s *Snapshot, forDate string) int {
	if g := s.Settings.CustomGoal; g != nil && *g > 0 {
		return *g
	}
	days, err := DaysBetween(s.User.StartDate, forDate)
	if err != nil || days < 0 {
		days = 0
	}
	return BaseGoal + GoalStepPerDay*days
}
