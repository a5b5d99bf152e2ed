package engine

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"resmigul/internal/storage"
)

// Service owns the snapshot and serializes every mutation behind a mutex:
// tap handling and the periodic tick share the same state, and the TUI and
// CLI run them from different goroutines. The snapshot is written back after
// every mutation; a failed write is surfaced but never rolls back memory.
type Service struct {
	mu       sync.Mutex
	store    *storage.SnapshotStore
	snap     *Snapshot
	policy   EffectPolicy
	notifier Notifier
	now      func() time.Time
	rng      *rand.Rand
	lastTap  time.Time
}

type Option func(*Service)

// WithNotifier installs the feedback sink for tap/goal/level/achievement/
// quest/purchase events.
func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

func WithPolicy(p EffectPolicy) Option {
	return func(s *Service) { s.policy = p }
}

// WithClock overrides the wall clock (tests drive rollovers and debounce
// through this).
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRandSource overrides the source behind critical-hit and fun-mode rolls.
func WithRandSource(src rand.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.rng = rand.New(src)
		}
	}
}

func NewService(db *sql.DB, opts ...Option) *Service {
	s := &Service{
		store:    storage.NewSnapshotStore(db),
		policy:   DefaultEffectPolicy(),
		notifier: NopNotifier{},
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load reads the persisted snapshot, falling back to a fresh default when
// nothing is stored or the record is unreadable, then applies the day
// rollover and re-evaluates achievements. Load never fails because of bad
// stored state; only storage I/O errors surface.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	data, err := s.store.Load(ctx, storage.SnapshotKey)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	if data == nil {
		s.snap = DefaultSnapshot(now)
		return s.persist(ctx)
	}

	snap, err := DecodeSnapshot(data)
	if err != nil {
		// Corrupt record: start over rather than refuse to run.
		s.snap = DefaultSnapshot(now)
		return s.persist(ctx)
	}
	s.snap = snap
	s.rolloverLocked(now)
	s.checkAchievementsLocked(now)
	return s.persist(ctx)
}

// State returns a deep copy of the current snapshot for rendering.
func (s *Service) State() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return Snapshot{}, ErrNotLoaded
	}
	return s.snap.Clone(), nil
}

// GoalToday returns today's target count.
func (s *Service) GoalToday() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return 0, ErrNotLoaded
	}
	return GoalFor(s.snap, s.snap.CurrentDate), nil
}

// Export serializes the full snapshot as an indented JSON document.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return nil, ErrNotLoaded
	}
	data, err := json.MarshalIndent(s.snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return data, nil
}

// Import validates and replaces the snapshot wholesale. The document must at
// minimum carry currentDate and history; anything less is rejected with no
// state change. Accepted documents are migrated and rolled over like a load.
func (s *Service) Import(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var probe struct {
		CurrentDate *string          `json:"currentDate"`
		History     *json.RawMessage `json:"history"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return ImportError{Reason: "not a JSON document"}
	}
	if probe.CurrentDate == nil || *probe.CurrentDate == "" {
		return ImportError{Reason: "missing currentDate"}
	}
	if probe.History == nil {
		return ImportError{Reason: "missing history"}
	}

	snap, err := DecodeSnapshot(data)
	if err != nil {
		return ImportError{Reason: "malformed snapshot"}
	}

	now := s.now()
	s.snap = snap
	s.rolloverLocked(now)
	s.checkAchievementsLocked(now)
	return s.persist(ctx)
}

// CheckRollover applies a pending day transition, if any. The TUI calls this
// from its tick so a session left open over midnight still rolls.
func (s *Service) CheckRollover(ctx context.Context) (*RolloverResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return nil, ErrNotLoaded
	}
	res := s.rolloverLocked(s.now())
	if res == nil {
		return nil, nil
	}
	s.checkAchievementsLocked(s.now())
	return res, s.persist(ctx)
}

// Rename updates the profile name.
func (s *Service) Rename(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	return s.updateLocked(ctx, func(snap *Snapshot) { snap.User.Name = name })
}

func (s *Service) SetAvatar(ctx context.Context, avatar string) error {
	avatar = strings.TrimSpace(avatar)
	if avatar == "" {
		return fmt.Errorf("avatar is required")
	}
	return s.updateLocked(ctx, func(snap *Snapshot) { snap.User.Avatar = avatar })
}

func (s *Service) SetTheme(ctx context.Context, t Theme) error {
	if !t.IsValid() {
		return fmt.Errorf("invalid theme: %q", t)
	}
	return s.updateLocked(ctx, func(snap *Snapshot) { snap.Settings.Theme = t })
}

// SetCustomGoal fixes the daily target; goal <= 0 switches back to the
// automatic rising goal.
func (s *Service) SetCustomGoal(ctx context.Context, goal int) error {
	return s.updateLocked(ctx, func(snap *Snapshot) {
		if goal <= 0 {
			snap.Settings.CustomGoal = nil
			return
		}
		snap.Settings.CustomGoal = &goal
	})
}

func (s *Service) SetSound(ctx context.Context, on bool) error {
	return s.updateLocked(ctx, func(snap *Snapshot) { snap.Settings.SoundEnabled = on })
}

func (s *Service) SetHaptic(ctx context.Context, on bool) error {
	return s.updateLocked(ctx, func(snap *Snapshot) { snap.Settings.HapticEnabled = on })
}

func (s *Service) SetFunMode(ctx context.Context, on bool) error {
	return s.updateLocked(ctx, func(snap *Snapshot) { snap.Settings.FunMode = on })
}

func (s *Service) updateLocked(ctx context.Context, fn func(*Snapshot)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return ErrNotLoaded
	}
	fn(s.snap)
	return s.persist(ctx)
}

// rolloverLocked runs the day transition and emits any follow-up events.
// Callers hold the lock.
func (s *Service) rolloverLocked(now time.Time) *RolloverResult {
	return Rollover(s.snap, now)
}

// checkAchievementsLocked unlocks newly satisfied achievements and notifies
// for each one. Callers hold the lock.
func (s *Service) checkAchievementsLocked(now time.Time) []AchievementDef {
	unlocked := EvaluateAchievements(s.snap, now)
	for _, def := range unlocked {
		s.notifier.AchievementUnlocked(def)
	}
	return unlocked
}

// persist writes the snapshot back. In-memory state is already mutated and
// stays authoritative even when the write fails.
func (s *Service) persist(ctx context.Context) error {
	data, err := EncodeSnapshot(s.snap)
	if err != nil {
		return err
	}
	if err := s.store.Save(ctx, storage.SnapshotKey, data); err != nil {
		return fmt.Errorf("persist state: %w", err)
	}
	return nil
}
