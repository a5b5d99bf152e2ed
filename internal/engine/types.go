package engine

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type Theme string

const (
	ThemeCrystal Theme = "crystal"
	ThemeDark    Theme = "dark"
	ThemeNeon    Theme = "neon"
)

func (t Theme) IsValid() bool {
	switch t {
	case ThemeCrystal, ThemeDark, ThemeNeon:
		return true
	default:
		return false
	}
}

// DefaultTheme is used when a stored theme is missing or unrecognized.
const DefaultTheme Theme = ThemeCrystal

func ParseTheme(input string) (Theme, error) {
	t := Theme(strings.TrimSpace(strings.ToLower(input)))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid theme: %q", input)
	}
	return t, nil
}

type EffectKind string

const (
	EffectMultiplier EffectKind = "multiplier"
	EffectAutoTap    EffectKind = "auto"
)

func (k EffectKind) IsValid() bool {
	switch k {
	case EffectMultiplier, EffectAutoTap:
		return true
	default:
		return false
	}
}

type QuestKind string

const (
	QuestTapCount QuestKind = "tap_count"
	QuestBuyItem  QuestKind = "buy_item"
)

// DayRecord is one archived calendar day. History holds exactly one record
// per rolled-over day, in order of occurrence.
type DayRecord struct {
	Date      string `json:"date"`
	Count     int    `json:"count"`
	Goal      int    `json:"goal"`
	Completed bool   `json:"completed"`
}

type UserProfile struct {
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	StartDate string `json:"startDate"`
	Level     int    `json:"level"`
	XP        int    `json:"xp"`
	MaxXP     int    `json:"maxXp"`
}

type Settings struct {
	SoundEnabled  bool  `json:"soundEnabled"`
	HapticEnabled bool  `json:"hapticEnabled"`
	Theme         Theme `json:"theme"`
	CustomGoal    *int  `json:"customGoal"`
	FunMode       bool  `json:"funMode"`
}

// Effect is a time-boxed modifier. Expired effects are dropped lazily on the
// next tap or tick; ID is unique per purchase so repeated buys of the same
// item expire independently.
type Effect struct {
	ID        string     `json:"id"`
	Kind      EffectKind `json:"kind"`
	Value     int        `json:"value"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

func (e Effect) Expired(now time.Time) bool {
	return !e.ExpiresAt.After(now)
}

// Quest is a daily sub-goal paying a one-time reward. The whole set resets
// fresh on day rollover.
type Quest struct {
	ID        string    `json:"id"`
	Kind      QuestKind `json:"kind"`
	Title     string    `json:"title"`
	Target    int       `json:"target"`
	Current   int       `json:"current"`
	Reward    int       `json:"reward"`
	Completed bool      `json:"completed"`
}

// Snapshot is the root aggregate: the single persisted record describing the
// whole progression state. All mutations go through the Service.
type Snapshot struct {
	CurrentDate       string          `json:"currentDate"`
	TodayCount        int             `json:"todayCount"`
	TotalCount        int             `json:"totalCount"`
	Balance           int             `json:"balance"`
	Streak            int             `json:"streak"`
	History           []DayRecord     `json:"history"`
	User              UserProfile     `json:"user"`
	Settings          Settings        `json:"settings"`
	Unlocked          map[string]bool `json:"achievements"`
	ActiveEffects     []Effect        `json:"activeEffects"`
	Quests            []Quest         `json:"quests"`
	LastDailyReward   string          `json:"lastDailyReward,omitempty"`
	DailyRewardStreak int             `json:"dailyRewardStreak"`
}

func DefaultQuests() []Quest {
	return []Quest{
		{ID: "tap_50", Kind: QuestTapCount, Title: "Count 50 today", Target: 50, Reward: 25},
		{ID: "tap_200", Kind: QuestTapCount, Title: "Count 200 today", Target: 200, Reward: 100},
		{ID: "buy_one", Kind: QuestBuyItem, Title: "Buy a boost", Target: 1, Reward: 50},
	}
}

// DefaultSnapshot is the first-run state.
func DefaultSnapshot(now time.Time) *Snapshot {
	today := Day(now)
	return &Snapshot{
		CurrentDate: today,
		History:     []DayRecord{},
		User: UserProfile{
			Name:      "Guest",
			Avatar:    "✨",
			StartDate: today,
			Level:     1,
			XP:        0,
			MaxXP:     100,
		},
		Settings: Settings{
			SoundEnabled:  true,
			HapticEnabled: true,
			Theme:         DefaultTheme,
		},
		Unlocked:      map[string]bool{},
		ActiveEffects: []Effect{},
		Quests:        DefaultQuests(),
	}
}

// DecodeSnapshot parses a persisted snapshot and migrates older records in
// place: fields a previous schema did not have get their defaults instead of
// failing the load.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.CurrentDate == "" {
		return nil, fmt.Errorf("decode snapshot: missing currentDate")
	}
	s.migrate()
	return &s, nil
}

func EncodeSnapshot(s *Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// migrate fills defaults for fields missing from older persisted schemas.
func (s *Snapshot) migrate() {
	if s.History == nil {
		s.History = []DayRecord{}
	}
	// Counters are never negative; a hostile or mangled document gets
	// clamped rather than rejected.
	if s.TodayCount < 0 {
		s.TodayCount = 0
	}
	if s.TotalCount < 0 {
		s.TotalCount = 0
	}
	if s.Balance < 0 {
		s.Balance = 0
	}
	if s.Streak < 0 {
		s.Streak = 0
	}
	if s.User.StartDate == "" {
		s.User.StartDate = s.CurrentDate
	}
	if s.User.Level < 1 {
		s.User.Level = 1
	}
	if s.User.XP < 0 {
		s.User.XP = 0
	}
	if s.User.MaxXP <= 0 {
		s.User.MaxXP = 100
	}
	if !s.Settings.Theme.IsValid() {
		s.Settings.Theme = DefaultTheme
	}
	if s.Unlocked == nil {
		s.Unlocked = map[string]bool{}
	}
	if s.ActiveEffects == nil {
		s.ActiveEffects = []Effect{}
	}
	if len(s.Quests) == 0 {
		s.Quests = DefaultQuests()
	}
	if s.DailyRewardStreak < 0 {
		s.DailyRewardStreak = 0
	}
}

// Clone returns a deep copy safe to hand to views while the original keeps
// mutating under the service lock.
func (s *Snapshot) Clone() Snapshot {
	out := *s
	out.History = append([]DayRecord(nil), s.History...)
	out.ActiveEffects = append([]Effect(nil), s.ActiveEffects...)
	out.Quests = append([]Quest(nil), s.Quests...)
	out.Unlocked = make(map[string]bool, len(s.Unlocked))
	for id, v := range s.Unlocked {
		out.Unlocked[id] = v
	}
	if s.Settings.CustomGoal != nil {
		g := *s.Settings.CustomGoal
		out.Settings.CustomGoal = &g
	}
	return out
}
