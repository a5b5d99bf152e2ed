package engine

import "time"

const (
	// RewardBase is the flat daily reward.
	RewardBase = 50
	// RewardStreakStep is the bonus per consecutive claim day.
	RewardStreakStep = 10
)

// RewardClaimable reports whether today's reward is still unclaimed. The
// claim ledger is independent of the main completion streak.
func RewardClaimable(s *Snapshot, now time.Time) bool {
	return s.LastDailyReward != Day(now)
}

// ClaimDailyReward credits today's reward. A claim that does not directly
// follow a claim on the previous calendar day restarts the bonus streak at
// zero; the reward amount uses the streak before the increment.
func ClaimDailyReward(s *Snapshot, now time.Time) (int, error) {
	today := Day(now)
	if s.LastDailyReward == today {
		return 0, ErrRewardAlreadyClaimed
	}
	yesterday := Day(now.AddDate(0, 0, -1))
	if s.LastDailyReward != yesterday {
		s.DailyRewardStreak = 0
	}
	amount := RewardBase + s.DailyRewardStreak*RewardStreakStep
	s.Balance += amount
	s.LastDailyReward = today
	s.DailyRewardStreak++
	return amount, nil
}
