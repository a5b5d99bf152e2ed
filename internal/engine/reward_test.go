package engine

import (
	"errors"
	"testing"
	"time"
)

func TestClaimDailyRewardStreak(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	s := DefaultSnapshot(day1)

	if !RewardClaimable(s, day1) {
		t.Fatalf("fresh profile should have a claimable reward")
	}

	amount, err := ClaimDailyReward(s, day1)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if amount != RewardBase || s.DailyRewardStreak != 1 || s.Balance != RewardBase {
		t.Fatalf("first claim amount=%d streak=%d balance=%d", amount, s.DailyRewardStreak, s.Balance)
	}
	if RewardClaimable(s, day1) {
		t.Fatalf("reward still claimable after claiming")
	}

	if _, err := ClaimDailyReward(s, day1); !errors.Is(err, ErrRewardAlreadyClaimed) {
		t.Fatalf("double claim err=%v, want ErrRewardAlreadyClaimed", err)
	}

	// Consecutive days ramp the bonus.
	day2 := day1.AddDate(0, 0, 1)
	amount, err = ClaimDailyReward(s, day2)
	if err != nil {
		t.Fatalf("claim day 2: %v", err)
	}
	if amount != RewardBase+RewardStreakStep || s.DailyRewardStreak != 2 {
		t.Fatalf("day-2 claim amount=%d streak=%d", amount, s.DailyRewardStreak)
	}
}

func TestClaimAfterMissedDayResetsStreak(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	s := DefaultSnapshot(day1)

	if _, err := ClaimDailyReward(s, day1); err != nil {
		t.Fatalf("claim: %v", err)
	}
	if _, err := ClaimDailyReward(s, day1.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("claim: %v", err)
	}
	if s.DailyRewardStreak != 2 {
		t.Fatalf("streak=%d, want 2", s.DailyRewardStreak)
	}

	// Skip January 3rd entirely; the bonus streak restarts.
	amount, err := ClaimDailyReward(s, day1.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("claim after gap: %v", err)
	}
	if amount != RewardBase || s.DailyRewardStreak != 1 {
		t.Fatalf("post-gap claim amount=%d streak=%d, want base/1", amount, s.DailyRewardStreak)
	}
}
