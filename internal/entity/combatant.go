package entity

// Combatant is the health-and-status core shared by the player and enemies.
// Damage resolution is identical for both sides: block absorbs first, the
// remainder hits health, health floors at zero.
type Combatant struct {
	Health    int
	MaxHealth int
	StatusEffects
}

// IsAlive reports whether the combatant still has health remaining.
func (c *Combatant) IsAlive() bool {
	return c.Health > 0
}

// TakeDamage applies already-scaled damage: block absorbs first, then the
// remainder is subtracted from health. Returns the health actually lost.
// Vulnerable/weak multipliers must be applied by the caller before this —
// by the time damage reaches here it is a final number.
func (c *Combatant) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}

	if amount <= c.Block {
		c.Block -= amount
		return 0
	}

	amount -= c.Block
	c.Block = 0

	if amount > c.Health {
		amount = c.Health
	}
	c.Health -= amount
	return amount
}
