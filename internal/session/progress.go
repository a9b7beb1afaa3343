package session

// XPPerChallenge is awarded for each solved challenge.
const XPPerChallenge = 10

// XPPerLevel is the XP needed to go up one level.
const XPPerLevel = 100

// Stats are the player numbers derived from the completed count.
type Stats struct {
	Completed int
	XP        int
	Level     int
}

// StatsFor computes XP and level for completed challenges.
func StatsFor(completed int) Stats {
	xp := completed * XPPerChallenge
	return Stats{
		Completed: completed,
		XP:        xp,
		Level:     xp/XPPerLevel + 1,
	}
}

// XPToNextLevel returns the XP still needed to reach the next level.
func (s Stats) XPToNextLevel() int {
	return XPPerLevel - s.XP%XPPerLevel
}
