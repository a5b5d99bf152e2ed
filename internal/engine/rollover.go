package engine

import "time"

// RolloverResult reports what a day transition did.
type RolloverResult struct {
	Archived     DayRecord
	GapDays      int
	StreakBefore int
	StreakAfter  int
	RewardReady  bool
}

// Rollover transitions the snapshot's notion of "today" to the current
// calendar date. It archives the stored day (judged against that day's own
// goal), updates the streak, resets the daily count and quest set, and marks
// daily-reward eligibility. Returns nil when no transition happened.
//
// Multiple skipped days collapse into a single gap>1 reset; no records are
// synthesized for days the app was never opened on.
func Rollover(s *Snapshot, now time.Time) *RolloverResult {
	today := Day(now)
	if s.CurrentDate == today {
		return nil
	}

	gap, err := DaysBetween(s.CurrentDate, today)
	if err != nil {
		// Unparseable stored date: treat like a long absence.
		gap = 2
	}
	if gap <= 0 {
		// Clock moved backwards; never roll a day twice.
		return nil
	}

	goal := GoalFor(s, s.CurrentDate)
	rec := DayRecord{
		Date:      s.CurrentDate,
		Count:     s.TodayCount,
		Goal:      goal,
		Completed: s.TodayCount >= goal,
	}
	s.History = append(s.History, rec)

	res := &RolloverResult{
		Archived:     rec,
		GapDays:      gap,
		StreakBefore: s.Streak,
	}

	if gap == 1 && rec.Completed {
		s.Streak++
	} else {
		s.Streak = 0
	}
	res.StreakAfter = s.Streak

	s.TodayCount = 0
	s.CurrentDate = today
	s.Quests = DefaultQuests()
	res.RewardReady = s.LastDailyReward != today

	return res
}
