// Package deck owns card instances and the three card zones:
// draw pile, hand, and discard pile.
package deck

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/deckfall/internal/gamedata"
)

// Card is a runtime card instance. Every field is value-copied from a
// template at creation, so instances are never aliased: each one lives in
// exactly one zone at a time and duplicating effects mint a fresh instance.
type Card struct {
	ID           string // Unique per instance, not per template
	TemplateID   string
	Name         string
	Type         gamedata.CardType
	Cost         int
	Damage       int
	Block        int
	Vulnerable   int
	Draw         int
	SelfCopy     bool
	AreaOfEffect bool
	Text         string
	color        string
}

// NewCard mints a card instance from a template.
func NewCard(def *gamedata.CardDef) *Card {
	return &Card{
		ID:           uuid.NewString(),
		TemplateID:   def.ID,
		Name:         def.Name,
		Type:         def.Type,
		Cost:         def.Cost,
		Damage:       def.Damage,
		Block:        def.Block,
		Vulnerable:   def.Vulnerable,
		Draw:         def.Draw,
		SelfCopy:     def.SelfCopy,
		AreaOfEffect: def.AreaOfEffect,
		Text:         def.Text,
		color:        def.Color,
	}
}

// Clone mints an independent copy of this card with its own identity.
// Used by self-duplicating effects and reward acquisition.
func (c *Card) Clone() *Card {
	copied := *c
	copied.ID = uuid.NewString()
	return &copied
}

// Color returns the card's display color.
func (c *Card) Color() tcell.Color {
	color, err := gamedata.ParseHexColor(c.color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}
