package combat

import (
	"github.com/samdwyer/deckfall/internal/entity"
	"github.com/samdwyer/deckfall/internal/rng"
)

// DefendBlock is the flat block an enemy gains from a defend intent.
const DefendBlock = 5

// TurnResult describes what an enemy did on its turn.
type TurnResult struct {
	Action         entity.Intent
	Damage         int  // Health the player actually lost (attack intent)
	PlayerDefeated bool // The attack reduced the player to zero health
}

// TakeTurn executes the enemy's forecast intent against the player, ticks the
// enemy's status counters, and eagerly rolls next turn's intent so it can be
// displayed as a forecast. A lethal attack stops the turn immediately.
func TakeTurn(enemy *entity.Enemy, player *entity.Player, src rng.Source) TurnResult {
	result := TurnResult{Action: enemy.Intent}

	// Block earned last turn has done its job by the time the enemy acts again.
	enemy.ClearBlock()

	switch enemy.Intent {
	case entity.IntentAttack:
		damage := ScaleTaken(enemy.AttackDamage(), &player.StatusEffects)
		result.Damage = player.TakeDamage(damage)
		if !player.IsAlive() {
			result.PlayerDefeated = true
			return result
		}
	case entity.IntentDefend:
		enemy.GainBlock(DefendBlock)
	case entity.IntentBuff:
		enemy.Buff()
	}

	enemy.TickStatuses()
	enemy.RollIntent(src)
	return result
}

// ForecastDamage returns the damage the player would take if the enemy's
// current intent executed now, or 0 for non-attack intents. Accounts for the
// enemy's weak status and the player's vulnerable status.
func ForecastDamage(enemy *entity.Enemy, player *entity.Player) int {
	if enemy.Intent != entity.IntentAttack {
		return 0
	}
	return ScaleTaken(enemy.AttackDamage(), &player.StatusEffects)
}
