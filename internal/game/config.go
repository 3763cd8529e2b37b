package game

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible shuffles,
	// enemy spawns and intent rolls. A seed of 0 means a random seed will
	// be generated.
	Seed int64
}

// Gameplay rule constants.
const (
	// HandSize is the number of cards drawn at the start of each player turn.
	HandSize = 5
	// PlayerMaxHealth is the player's starting and maximum health.
	PlayerMaxHealth = 70
	// PlayerMaxEnergy is the energy available each player turn.
	PlayerMaxEnergy = 3
	// RewardChoices is how many card choices a victory offers.
	RewardChoices = 3
	// EndTurnDelay is how long, in seconds, a requested end of turn waits
	// before committing. It exists so the presentation layer can animate
	// the transition; correctness only requires the commit happens once.
	EndTurnDelay = 0.6
)
