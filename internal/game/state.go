// Package game provides the core session state machine and the main loop.
package game

// Phase represents the top-level game phase.
type Phase int

const (
	// PhaseMenu is the title screen before a run begins.
	PhaseMenu Phase = iota
	// PhaseCombat is an active encounter against the current enemy.
	PhaseCombat
	// PhaseRewards offers card choices after a victory.
	PhaseRewards
	// PhaseGameOver is reached when the player's health hits zero.
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseCombat:
		return "combat"
	case PhaseRewards:
		return "rewards"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}
