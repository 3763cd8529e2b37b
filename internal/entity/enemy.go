package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/deckfall/internal/gamedata"
	"github.com/samdwyer/deckfall/internal/rng"
)

// Intent is an enemy's publicly forecast action for its upcoming turn.
type Intent int

const (
	IntentAttack Intent = iota
	IntentDefend
	IntentBuff
)

// String returns a human-readable intent name.
func (i Intent) String() string {
	switch i {
	case IntentAttack:
		return "attack"
	case IntentDefend:
		return "defend"
	case IntentBuff:
		return "buff"
	default:
		return "unknown"
	}
}

// ParseIntent converts an intent name from enemy data into an Intent.
// Unknown names fall back to attack.
func ParseIntent(name string) Intent {
	switch name {
	case "defend":
		return IntentDefend
	case "buff":
		return IntentBuff
	default:
		return IntentAttack
	}
}

// Enemy represents the hostile combatant in the current encounter.
type Enemy struct {
	Combatant
	Def        *gamedata.EnemyDef // Template this enemy was spawned from
	Name       string
	Damage     int // Current base attack damage; buff intents raise it permanently
	BuffAmount int
	Intents    []Intent // Fixed intent set this enemy rolls from
	Intent     Intent   // Forecast action for the upcoming turn
}

// NewEnemyFromDef creates an enemy from a template and rolls its first intent.
func NewEnemyFromDef(def *gamedata.EnemyDef, src rng.Source) *Enemy {
	intents := make([]Intent, 0, len(def.Intents))
	for _, name := range def.Intents {
		intents = append(intents, ParseIntent(name))
	}
	if len(intents) == 0 {
		intents = []Intent{IntentAttack}
	}

	e := &Enemy{
		Combatant: Combatant{
			Health:    def.HP,
			MaxHealth: def.HP,
		},
		Def:        def,
		Name:       def.Name,
		Damage:     def.Damage,
		BuffAmount: def.BuffAmount,
		Intents:    intents,
	}
	e.RollIntent(src)
	return e
}

// RollIntent picks the next turn's intent uniformly from the intent set.
// Rolled eagerly so the forecast is displayable before it executes.
func (e *Enemy) RollIntent(src rng.Source) {
	e.Intent = e.Intents[src.Intn(len(e.Intents))]
}

// AttackDamage returns the damage this enemy's attack would deal right now,
// reduced by its own weak status. This is both the executed and the
// forecast number.
func (e *Enemy) AttackDamage() int {
	damage := e.Damage
	if e.Weak > 0 {
		damage = damage * 3 / 4
	}
	return damage
}

// Buff permanently raises the enemy's base damage by its buff amount.
func (e *Enemy) Buff() {
	e.Damage += e.BuffAmount
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	if e.Def != nil {
		return e.Def.DisplayColor()
	}
	return tcell.ColorWhite
}

// Glyph returns the display symbol for this enemy.
func (e *Enemy) Glyph() rune {
	if e.Def != nil {
		return e.Def.GlyphRune()
	}
	return '?'
}
