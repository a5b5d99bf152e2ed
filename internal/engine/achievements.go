package engine

import "time"

// AchievementKind selects the evaluator for a definition. Definitions are
// plain data; behavior lives in the kind table below.
type AchievementKind string

const (
	AchieveHistory   AchievementKind = "history"     // some archived day was completed
	AchieveStreak    AchievementKind = "streak"      // streak >= threshold
	AchieveTotal     AchievementKind = "total"       // total count >= threshold
	AchieveLevel     AchievementKind = "level"       // level >= threshold
	AchieveTimeOfDay AchievementKind = "time_of_day" // local hour < threshold
)

type AchievementDef struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Kind        AchievementKind
	Threshold   int
}

// Achievements is the fixed definition table, in display order.
func Achievements() []AchievementDef {
	return []AchievementDef{
		{ID: "first_step", Title: "First Bloom", Description: "Complete your first daily goal.", Icon: "🌱", Kind: AchieveHistory},
		{ID: "streak_3", Title: "On a Roll", Description: "Reach the goal 3 days in a row.", Icon: "🔥", Kind: AchieveStreak, Threshold: 3},
		{ID: "streak_7", Title: "Legendary Week", Description: "Keep a 7-day streak.", Icon: "👑", Kind: AchieveStreak, Threshold: 7},
		{ID: "total_1000", Title: "Thousand Club", Description: "Reach a lifetime count of 1000.", Icon: "💎", Kind: AchieveTotal, Threshold: 1000},
		{ID: "night_owl", Title: "Night Owl", Description: "Count after midnight.", Icon: "🦉", Kind: AchieveTimeOfDay, Threshold: 5},
		{ID: "level_5", Title: "Seasoned", Description: "Reach level 5.", Icon: "⭐", Kind: AchieveLevel, Threshold: 5},
		{ID: "level_10", Title: "Veteran", Description: "Reach level 10.", Icon: "🌟", Kind: AchieveLevel, Threshold: 10},
	}
}

func FindAchievement(id string) (AchievementDef, bool) {
	for _, def := range Achievements() {
		if def.ID == id {
			return def, true
		}
	}
	return AchievementDef{}, false
}

// kindEvaluators maps each kind to a pure, side-effect-free predicate over
// the full snapshot.
var kindEvaluators = map[AchievementKind]func(def AchievementDef, s *Snapshot, now time.Time) bool{
	AchieveHistory: func(_ AchievementDef, s *Snapshot, _ time.Time) bool {
		for _, d := range s.History {
			if d.Completed {
				return true
			}
		}
		return false
	},
	AchieveStreak: func(def AchievementDef, s *Snapshot, _ time.Time) bool {
		return s.Streak >= def.Threshold
	},
	AchieveTotal: func(def AchievementDef, s *Snapshot, _ time.Time) bool {
		return s.TotalCount >= def.Threshold
	},
	AchieveLevel: func(def AchievementDef, s *Snapshot, _ time.Time) bool {
		return s.User.Level >= def.Threshold
	},
	AchieveTimeOfDay: func(def AchievementDef, _ *Snapshot, now time.Time) bool {
		h := now.Hour()
		return h >= 0 && h < def.Threshold
	},
}

// EvaluateAchievements checks every still-locked definition against the
// snapshot and unlocks all newly satisfied ones in a single pass — multiple
// simultaneous unlocks are all detected, and an unlock is permanent.
func EvaluateAchievements(s *Snapshot, now time.Time) []AchievementDef {
	var unlocked []AchievementDef
	for _, def := range Achievements() {
		if s.Unlocked[def.ID] {
			continue
		}
		eval, ok := kindEvaluators[def.Kind]
		if !ok {
			continue
		}
		if eval(def, s, now) {
			s.Unlocked[def.ID] = true
			unlocked = append(unlocked, def)
		}
	}
	return unlocked
}
