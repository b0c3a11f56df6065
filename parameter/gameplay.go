package parameter

// Session bounds and progression rules
const (
	// StartLevel is the level a fresh session begins at
	StartLevel = 1

	// MaxLevel is the final level; reaching it reveals the boss
	MaxLevel = 5

	// MaxHealth caps health; fresh sessions start full
	MaxHealth = 100

	// MaxAmmo is the magazine size restored by reload
	MaxAmmo = 30

	// ScorePerShot is awarded for every successful shot
	ScorePerShot = 10

	// ScorePerLevel is the score interval that advances one level
	ScorePerLevel = 100

	// GlassHitsToBreak is the number of hits that shatters the boss glass
	GlassHitsToBreak = 3

	// CracksPerHit is the number of crack lines drawn per glass hit
	CracksPerHit = 3

	// DefaultHealAmount is restored by one medkit use
	DefaultHealAmount = 25
)
