package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/deckfall/internal/combat"
	"github.com/samdwyer/deckfall/internal/entity"
	"github.com/samdwyer/deckfall/internal/gamedata"
)

// PlayerView is a read-only snapshot of the player.
type PlayerView struct {
	Health     int
	MaxHealth  int
	Energy     int
	MaxEnergy  int
	Block      int
	Vulnerable int
	Weak       int
}

// EnemyView is a read-only snapshot of the current enemy.
type EnemyView struct {
	Name           string
	Glyph          rune
	Color          tcell.Color
	Health         int
	MaxHealth      int
	Block          int
	Vulnerable     int
	Weak           int
	Intent         entity.Intent
	ForecastDamage int // Damage the player would take if the intent is attack
}

// CardView is a read-only snapshot of a card in the hand or a reward choice.
type CardView struct {
	Name       string
	Cost       int
	Type       gamedata.CardType
	Text       string
	Color      tcell.Color
	Affordable bool
}

// Snapshot is the complete observation surface for the presentation layer.
// Everything in it is a value copy; mutating a snapshot has no effect on
// the session.
type Snapshot struct {
	Phase          Phase
	Player         PlayerView
	Enemy          *EnemyView // nil outside combat
	Hand           []CardView
	DeckCount      int
	DiscardCount   int
	Rewards        []CardView // nil outside the rewards phase
	Message        string
	EndTurnPending bool
	Animating      bool
	CombatsWon     int
	TurnsTaken     int
}

// Snapshot captures the observable session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase: s.phase,
		Player: PlayerView{
			Health:     s.player.Health,
			MaxHealth:  s.player.MaxHealth,
			Energy:     s.player.Energy,
			MaxEnergy:  s.player.MaxEnergy,
			Block:      s.player.Block,
			Vulnerable: s.player.Vulnerable,
			Weak:       s.player.Weak,
		},
		DeckCount:      len(s.piles.Deck),
		DiscardCount:   len(s.piles.Discard),
		Message:        s.message,
		EndTurnPending: s.endTurnPending,
		Animating:      s.animating,
		CombatsWon:     s.combatsWon,
		TurnsTaken:     s.turnsTaken,
	}

	if s.enemy != nil {
		snap.Enemy = &EnemyView{
			Name:           s.enemy.Name,
			Glyph:          s.enemy.Glyph(),
			Color:          s.enemy.Color(),
			Health:         s.enemy.Health,
			MaxHealth:      s.enemy.MaxHealth,
			Block:          s.enemy.Block,
			Vulnerable:     s.enemy.Vulnerable,
			Weak:           s.enemy.Weak,
			Intent:         s.enemy.Intent,
			ForecastDamage: combat.ForecastDamage(s.enemy, s.player),
		}
	}

	for _, card := range s.piles.Hand {
		snap.Hand = append(snap.Hand, CardView{
			Name:       card.Name,
			Cost:       card.Cost,
			Type:       card.Type,
			Text:       card.Text,
			Color:      card.Color(),
			Affordable: s.player.CanAfford(card.Cost),
		})
	}

	for _, card := range s.rewards {
		snap.Rewards = append(snap.Rewards, CardView{
			Name:  card.Name,
			Cost:  card.Cost,
			Type:  card.Type,
			Text:  card.Text,
			Color: card.Color(),
		})
	}

	return snap
}
