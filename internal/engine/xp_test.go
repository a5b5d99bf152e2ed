package engine

import "testing"

func TestGrantXPSingleLevel(t *testing.T) {
	u := UserProfile{Level: 1, XP: 95, MaxXP: 100}
	levels := GrantXP(&u, 10)
	if levels != 1 {
		t.Fatalf("levels=%d, want 1", levels)
	}
	if u.Level != 2 || u.XP != 5 || u.MaxXP != 150 {
		t.Fatalf("profile=%d/%d/%d, want level 2, xp 5, maxXp 150", u.Level, u.XP, u.MaxXP)
	}
}

func TestGrantXPMultiLevelJump(t *testing.T) {
	u := UserProfile{Level: 1, XP: 0, MaxXP: 100}
	// Thresholds: 100, 150, 225, 337, 505...
	levels := GrantXP(&u, 1000)
	if levels != 4 {
		t.Fatalf("levels=%d, want 4", levels)
	}
	if u.Level != 5 || u.XP != 188 || u.MaxXP != 505 {
		t.Fatalf("profile=%d/%d/%d, want level 5, xp 188, maxXp 505", u.Level, u.XP, u.MaxXP)
	}
}

func TestGrantXPThresholdGrowthFloors(t *testing.T) {
	u := UserProfile{Level: 1, XP: 0, MaxXP: 225}
	GrantXP(&u, 225)
	if u.MaxXP != 337 {
		t.Fatalf("maxXp=%d, want floor(225*1.5)=337", u.MaxXP)
	}
}

func TestGrantXPNonPositive(t *testing.T) {
	u := UserProfile{Level: 3, XP: 40, MaxXP: 225}
	if levels := GrantXP(&u, 0); levels != 0 {
		t.Fatalf("granting 0 xp leveled up")
	}
	if u.Level != 3 || u.XP != 40 {
		t.Fatalf("profile changed on zero grant: %+v", u)
	}
}
