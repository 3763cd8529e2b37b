package entity

// Player is the single player-controlled combatant for a run.
type Player struct {
	Combatant
	Energy    int
	MaxEnergy int
}

// NewPlayer creates a player at full health and energy.
func NewPlayer(maxHealth, maxEnergy int) *Player {
	return &Player{
		Combatant: Combatant{
			Health:    maxHealth,
			MaxHealth: maxHealth,
		},
		Energy:    maxEnergy,
		MaxEnergy: maxEnergy,
	}
}

// CanAfford reports whether the player has the energy to pay the given cost.
func (p *Player) CanAfford(cost int) bool {
	return p.Energy >= cost
}

// SpendEnergy deducts cost from energy. Returns false without deducting if
// the player cannot afford it; energy never goes negative.
func (p *Player) SpendEnergy(cost int) bool {
	if cost > p.Energy {
		return false
	}
	p.Energy -= cost
	return true
}

// StartTurn begins the player's action phase: block from the previous round
// expires, energy refills, and the vulnerable/weak counters tick down.
func (p *Player) StartTurn() {
	p.ClearBlock()
	p.Energy = p.MaxEnergy
	p.TickStatuses()
}
