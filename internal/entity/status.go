// Package entity provides the combatants: the player and enemies.
package entity

// StatusEffects holds the shared status bookkeeping embedded in every
// combatant. Block absorbs incoming damage before health. Vulnerable and
// Weak are counted in turns remaining; the damage multipliers they imply
// are applied by combat resolution, not here.
type StatusEffects struct {
	Block      int // Damage-absorbing buffer, >= 0
	Vulnerable int // Turns remaining; damage taken is multiplied by 1.5 while > 0
	Weak       int // Turns remaining; damage dealt is multiplied by 0.75 while > 0
}

// GainBlock adds to the block buffer. Negative amounts are ignored.
func (s *StatusEffects) GainBlock(amount int) {
	if amount > 0 {
		s.Block += amount
	}
}

// ApplyVulnerable stacks vulnerable turns onto the existing counter.
func (s *StatusEffects) ApplyVulnerable(turns int) {
	if turns > 0 {
		s.Vulnerable += turns
	}
}

// ApplyWeak stacks weak turns onto the existing counter.
func (s *StatusEffects) ApplyWeak(turns int) {
	if turns > 0 {
		s.Weak += turns
	}
}

// TickStatuses decrements the vulnerable and weak counters by one turn each,
// flooring at zero. Called once per turn by the counter's owner.
func (s *StatusEffects) TickStatuses() {
	if s.Vulnerable > 0 {
		s.Vulnerable--
	}
	if s.Weak > 0 {
		s.Weak--
	}
}

// ClearBlock resets the block buffer to zero. Block does not carry across
// the owner's action phases.
func (s *StatusEffects) ClearBlock() {
	s.Block = 0
}
