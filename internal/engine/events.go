package engine

// Notifier receives fire-and-forget feedback triggers from the engine.
// Implementations drive presentation, sound and haptics; whether sound or
// haptics are enabled is the implementation's concern (the settings travel
// in the snapshot). Calls happen while the service lock is held, so
// implementations must not call back into the service.
type Notifier interface {
	TapResolved(res TapResult)
	GoalReached(count, goal int)
	LeveledUp(level int)
	AchievementUnlocked(def AchievementDef)
	QuestCompleted(q Quest)
	ItemPurchased(it Item)
}

// NopNotifier ignores every event.
type NopNotifier struct{}

func (NopNotifier) TapResolved(TapResult)              {}
func (NopNotifier) GoalReached(int, int)               {}
func (NopNotifier) LeveledUp(int)                      {}
func (NopNotifier) AchievementUnlocked(AchievementDef) {}
func (NopNotifier) QuestCompleted(Quest)               {}
func (NopNotifier) ItemPurchased(Item)                 {}
