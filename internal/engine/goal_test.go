package engine

import (
	"testing"
	"time"
)

func TestGoalProgression(t *testing.T) {
	s := DefaultSnapshot(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))

	if got := GoalFor(s, "2024-01-01"); got != 50 {
		t.Fatalf("goal on enrollment day=%d, want 50", got)
	}
	if got := GoalFor(s, "2024-01-02"); got != 100 {
		t.Fatalf("goal day 2=%d, want 100", got)
	}
	if got := GoalFor(s, "2024-01-11"); got != 550 {
		t.Fatalf("goal day 11=%d, want 550", got)
	}

	// Monotone, rising by exactly the step per elapsed day.
	prev := GoalFor(s, "2024-01-01")
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		got := GoalFor(s, Day(day))
		if got != prev+GoalStepPerDay {
			t.Fatalf("goal for %s=%d, want %d", Day(day), got, prev+GoalStepPerDay)
		}
		prev = got
		day = day.AddDate(0, 0, 1)
	}
}

func TestGoalCustomOverride(t *testing.T) {
	s := DefaultSnapshot(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	custom := 120
	s.Settings.CustomGoal = &custom

	for _, date := range []string{"2024-01-01", "2024-02-15", "2025-01-01"} {
		if got := GoalFor(s, date); got != 120 {
			t.Fatalf("custom goal for %s=%d, want 120", date, got)
		}
	}
}

func TestGoalBadDateFallsBackToBase(t *testing.T) {
	s := DefaultSnapshot(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	s.User.StartDate = "garbage"
	if got := GoalFor(s, "2024-01-10"); got != BaseGoal {
		t.Fatalf("goal with bad start date=%d, want %d", got, BaseGoal)
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		from, to string
		want     int
	}{
		{"2024-01-01", "2024-01-01", 0},
		{"2024-01-01", "2024-01-02", 1},
		{"2024-01-01", "2024-01-04", 3},
		{"2024-02-28", "2024-03-01", 2}, // leap year
		{"2024-01-02", "2024-01-01", -1},
	}
	for _, c := range cases {
		got, err := DaysBetween(c.from, c.to)
		if err != nil {
			t.Fatalf("DaysBetween(%s,%s): %v", c.from, c.to, err)
		}
		if got != c.want {
			t.Fatalf("DaysBetween(%s,%s)=%d, want %d", c.from, c.to, got, c.want)
		}
	}
}
