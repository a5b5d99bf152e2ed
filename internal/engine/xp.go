package engine

const (
	// XPGrowthNum/XPGrowthDen encode the 1.5x level threshold growth using
	// integer math, so floor(maxXp * 1.5) is exact.
	XPGrowthNum = 3
	XPGrowthDen = 2
)

// GrantXP adds XP to the profile and resolves any level-ups, looping so a
// single large grant can jump several levels. Returns levels gained.
func GrantXP(u *UserProfile, amount int) int {
	if amount <= 0 {
		return 0
	}
	if u.MaxXP <= 0 {
		u.MaxXP = 100
	}
	u.XP += amount
	levels := 0
	for u.XP >= u.MaxXP {
		u.XP -= u.MaxXP
		u.Level++
		levels++
		u.MaxXP = u.MaxXP * XPGrowthNum / XPGrowthDen
	}
	return levels
}
