package engine

import "time"

// EffectPolicy settles the stacking ambiguity for simultaneous effects: by
// default auto effects stack additively while only the first live multiplier
// counts. Both choices are explicit knobs rather than baked-in behavior.
type EffectPolicy struct {
	StackMultipliers bool
	StackAutoEffects bool
}

func DefaultEffectPolicy() EffectPolicy {
	return EffectPolicy{StackMultipliers: false, StackAutoEffects: true}
}

// PruneEffects drops every effect whose expiry has passed and returns how
// many were removed. Called lazily from every tap and tick.
func PruneEffects(s *Snapshot, now time.Time) int {
	kept := s.ActiveEffects[:0]
	for _, e := range s.ActiveEffects {
		if !e.Expired(now) {
			kept = append(kept, e)
		}
	}
	dropped := len(s.ActiveEffects) - len(kept)
	s.ActiveEffects = kept
	return dropped
}

// MultiplierFor returns the effective tap multiplier from live effects.
func MultiplierFor(s *Snapshot, p EffectPolicy) int {
	m := 1
	for _, e := range s.ActiveEffects {
		if e.Kind != EffectMultiplier || e.Value <= 0 {
			continue
		}
		if !p.StackMultipliers {
			return e.Value
		}
		m *= e.Value
	}
	return m
}

// AutoRateFor returns the per-tick auto increment from live effects.
func AutoRateFor(s *Snapshot, p EffectPolicy) int {
	rate := 0
	for _, e := range s.ActiveEffects {
		if e.Kind != EffectAutoTap || e.Value <= 0 {
			continue
		}
		if !p.StackAutoEffects {
			return e.Value
		}
		rate += e.Value
	}
	return rate
}
