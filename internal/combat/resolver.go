// Package combat resolves card effects and enemy turns.
package combat

import (
	"github.com/samdwyer/deckfall/internal/deck"
	"github.com/samdwyer/deckfall/internal/entity"
	"github.com/samdwyer/deckfall/internal/gamedata"
	"github.com/samdwyer/deckfall/internal/rng"
)

// PlayResult describes what happened when a card resolved.
type PlayResult struct {
	Damage        int  // Health the enemy actually lost
	BlockGained   int  // Block added to the player
	CardsDrawn    int  // Cards drawn by the card's draw effect
	EnemyDefeated bool // The attack was lethal; remaining effects were skipped
}

// CanPlay reports whether the player can afford the card.
func CanPlay(card *deck.Card, player *entity.Player) bool {
	return player.CanAfford(card.Cost)
}

// ScaleDealt applies the attacker's weak penalty to outgoing damage.
func ScaleDealt(damage int, attacker *entity.StatusEffects) int {
	if attacker.Weak > 0 {
		damage = damage * 3 / 4
	}
	return damage
}

// ScaleTaken applies the defender's vulnerable bonus to incoming damage.
func ScaleTaken(damage int, defender *entity.StatusEffects) int {
	if defender.Vulnerable > 0 {
		damage = damage * 3 / 2
	}
	return damage
}

// PlayCard runs a card's effect pipeline in its fixed order: damage and
// vulnerable first, then block, then draw, then self-copy, then the energy
// cost. A lethal attack short-circuits the pipeline — the card's remaining
// effects do not fire and the energy cost is not paid.
//
// Affordability must be checked by the caller first; moving the played card
// to the discard pile is also the caller's job.
func PlayCard(card *deck.Card, player *entity.Player, enemy *entity.Enemy, piles *deck.Piles, src rng.Source) PlayResult {
	var result PlayResult

	if card.Type == gamedata.CardAttack && enemy != nil {
		damage := ScaleDealt(card.Damage, &player.StatusEffects)
		damage = ScaleTaken(damage, &enemy.StatusEffects)
		result.Damage = enemy.TakeDamage(damage)

		enemy.ApplyVulnerable(card.Vulnerable)

		if !enemy.IsAlive() {
			result.EnemyDefeated = true
			return result
		}
	}

	if card.Block > 0 {
		player.GainBlock(card.Block)
		result.BlockGained = card.Block
	}

	if card.Draw > 0 {
		result.CardsDrawn = piles.Draw(card.Draw, src)
	}

	if card.SelfCopy {
		piles.AddToDiscard(card.Clone())
	}

	player.SpendEnergy(card.Cost)
	return result
}
