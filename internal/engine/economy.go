package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	// TapDebounce rejects duplicate input events: a tap landing this close
	// to the previous accepted one is dropped.
	TapDebounce = 80 * time.Millisecond

	// CritChance is the probability a tap lands critical and doubles.
	CritChance = 0.05

	// FunBonusChance is the fun-mode probability of a flat +3/+5 bonus,
	// rolled independently of the critical hit.
	FunBonusChance = 0.08

	// TickInterval is the cadence of the periodic tick that expires effects
	// and applies auto increments.
	TickInterval = time.Second
)

// TapResult describes one resolved tap. A debounced tap comes back with
// Accepted=false and no other fields set.
type TapResult struct {
	Accepted        bool
	Increment       int
	Multiplier      int
	Critical        bool
	FunBonus        int
	LevelsGained    int
	GoalReached     bool
	QuestsCompleted []Quest
	TodayCount      int
	Goal            int
	Balance         int
}

// TickResult describes one periodic tick.
type TickResult struct {
	Rollover       *RolloverResult
	ExpiredEffects int
	AutoIncrement  int
	GoalReached    bool
}

// PurchaseResult describes a successful purchase.
type PurchaseResult struct {
	Item            Item
	Effect          *Effect
	Balance         int
	QuestsCompleted []Quest
}

// ClaimResult describes a daily reward claim.
type ClaimResult struct {
	Amount  int
	Streak  int
	Balance int
}

// Tap resolves one manual tap: debounce, multiplier, critical roll, fun-mode
// bonus, then count/currency/XP deltas, quest progress and the one-shot
// goal-completion signal.
func (s *Service) Tap(ctx context.Context) (*TapResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return nil, ErrNotLoaded
	}

	// A day transition is made durable up front; the debounce rejection
	// below must not lose it.
	now := s.now()
	if s.rolloverLocked(now) != nil {
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
	}
	PruneEffects(s.snap, now)

	if !s.lastTap.IsZero() && now.Sub(s.lastTap) < TapDebounce {
		return &TapResult{Accepted: false}, nil
	}
	s.lastTap = now

	m := MultiplierFor(s.snap, s.policy)
	inc := 1 * m
	crit := s.rng.Float64() < CritChance
	if crit {
		inc *= 2
	}
	funBonus := 0
	if s.snap.Settings.FunMode && s.rng.Float64() < FunBonusChance {
		funBonus = 3
		if s.rng.Float64() >= 0.5 {
			funBonus = 5
		}
		inc += funBonus
	}

	goal := GoalFor(s.snap, s.snap.CurrentDate)
	wasBelow := s.snap.TodayCount < goal

	s.snap.TodayCount += inc
	s.snap.TotalCount += inc
	s.snap.Balance += inc
	levels := GrantXP(&s.snap.User, inc)
	completed := s.advanceQuestsLocked(QuestTapCount, inc)
	goalReached := wasBelow && s.snap.TodayCount >= goal

	res := &TapResult{
		Accepted:        true,
		Increment:       inc,
		Multiplier:      m,
		Critical:        crit,
		FunBonus:        funBonus,
		LevelsGained:    levels,
		GoalReached:     goalReached,
		QuestsCompleted: completed,
		TodayCount:      s.snap.TodayCount,
		Goal:            goal,
		Balance:         s.snap.Balance,
	}

	s.notifier.TapResolved(*res)
	if goalReached {
		s.notifier.GoalReached(s.snap.TodayCount, goal)
	}
	if levels > 0 {
		s.notifier.LeveledUp(s.snap.User.Level)
	}
	s.checkAchievementsLocked(now)

	return res, s.persist(ctx)
}

// Tick runs the 1-second maintenance pass: pending rollover, lazy effect
// expiry, and auto-increment contributions. A tick that changes nothing
// skips the write.
func (s *Service) Tick(ctx context.Context) (*TickResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return nil, ErrNotLoaded
	}

	now := s.now()
	res := &TickResult{}
	res.Rollover = s.rolloverLocked(now)
	res.ExpiredEffects = PruneEffects(s.snap, now)

	if rate := AutoRateFor(s.snap, s.policy); rate > 0 {
		goal := GoalFor(s.snap, s.snap.CurrentDate)
		wasBelow := s.snap.TodayCount < goal

		s.snap.TodayCount += rate
		s.snap.TotalCount += rate
		s.snap.Balance += rate
		res.AutoIncrement = rate
		res.GoalReached = wasBelow && s.snap.TodayCount >= goal
		if res.GoalReached {
			s.notifier.GoalReached(s.snap.TodayCount, goal)
		}
	}

	if res.Rollover == nil && res.ExpiredEffects == 0 && res.AutoIncrement == 0 {
		return res, nil
	}
	s.checkAchievementsLocked(now)
	return res, s.persist(ctx)
}

// Buy purchases a catalog item. Insufficient balance rejects the purchase
// outright — no partial state change. Timed items push a fresh effect with
// its own identity so stacked purchases expire independently.
func (s *Service) Buy(ctx context.Context, itemID string) (*PurchaseResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return nil, ErrNotLoaded
	}

	// A day transition is made durable up front; a rejected purchase must
	// not lose it.
	now := s.now()
	if s.rolloverLocked(now) != nil {
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
	}
	PruneEffects(s.snap, now)

	item, ok := FindItem(itemID)
	if !ok {
		return nil, UnknownItemError{ItemID: itemID}
	}
	if s.snap.Balance < item.Price {
		return nil, InsufficientFundsError{ItemID: item.ID, Price: item.Price, Balance: s.snap.Balance}
	}

	s.snap.Balance -= item.Price
	completed := s.advanceQuestsLocked(QuestBuyItem, 1)

	res := &PurchaseResult{Item: item, QuestsCompleted: completed}
	if item.Duration > 0 {
		eff := Effect{
			ID:        uuid.NewString(),
			Kind:      item.Kind,
			Value:     item.Value,
			ExpiresAt: now.Add(item.Duration),
		}
		s.snap.ActiveEffects = append(s.snap.ActiveEffects, eff)
		res.Effect = &eff
	}
	res.Balance = s.snap.Balance

	s.notifier.ItemPurchased(item)
	return res, s.persist(ctx)
}

// ClaimDaily claims today's daily reward through the ledger.
func (s *Service) ClaimDaily(ctx context.Context) (*ClaimResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return nil, ErrNotLoaded
	}

	// A day transition is made durable up front; a rejected claim must not
	// lose it.
	now := s.now()
	if s.rolloverLocked(now) != nil {
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
	}

	amount, err := ClaimDailyReward(s.snap, now)
	if err != nil {
		return nil, err
	}
	res := &ClaimResult{
		Amount:  amount,
		Streak:  s.snap.DailyRewardStreak,
		Balance: s.snap.Balance,
	}
	return res, s.persist(ctx)
}

// advanceQuestsLocked adds progress to every open quest of the given kind
// and pays each completion reward exactly once. Callers hold the lock.
func (s *Service) advanceQuestsLocked(kind QuestKind, delta int) []Quest {
	var completed []Quest
	for i := range s.snap.Quests {
		q := &s.snap.Quests[i]
		if q.Kind != kind || q.Completed {
			continue
		}
		q.Current += delta
		if q.Current >= q.Target {
			q.Completed = true
			s.snap.Balance += q.Reward
			completed = append(completed, *q)
			s.notifier.QuestCompleted(*q)
		}
	}
	return completed
}
