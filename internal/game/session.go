package game

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/deckfall/internal/combat"
	"github.com/samdwyer/deckfall/internal/deck"
	"github.com/samdwyer/deckfall/internal/entity"
	"github.com/samdwyer/deckfall/internal/gamedata"
	"github.com/samdwyer/deckfall/internal/rng"
	"github.com/samdwyer/deckfall/internal/telemetry"
)

// Intent rejection signals. All are recoverable; session state is unchanged
// when one is returned.
var (
	// ErrOutOfPhase is returned when an intent is invalid for the current phase.
	ErrOutOfPhase = errors.New("intent not valid in current phase")
	// ErrInvalidIndex is returned for an out-of-range hand or reward index.
	ErrInvalidIndex = errors.New("index out of range")
	// ErrNotEnoughEnergy is returned when the player cannot afford a card.
	ErrNotEnoughEnergy = errors.New("not enough energy")
	// ErrTurnEnding is returned for plays attempted while an end of turn is pending.
	ErrTurnEnding = errors.New("turn is ending")
)

// Session is the single aggregate holding all mutable game state for one run.
// It is the sole entry point for external intents; the presentation layer
// reads it through Snapshot and never mutates it directly.
type Session struct {
	phase   Phase
	player  *entity.Player
	enemy   *entity.Enemy // Present only during combat
	piles   *deck.Piles
	rewards []*deck.Card // Present only during the rewards phase

	cards   *gamedata.CardRegistry
	enemies *gamedata.EnemyRegistry
	rng     rng.Source

	endTurnPending bool
	endTurnElapsed float64

	animating bool // Set by the presentation layer; the core never reads it
	message   string

	combatsWon int
	turnsTaken int
}

// NewSession creates a fresh run at the menu phase. The player and the
// starting deck are built here; enemies are spawned per combat.
func NewSession(cards *gamedata.CardRegistry, enemies *gamedata.EnemyRegistry, src rng.Source) *Session {
	s := &Session{
		phase:   PhaseMenu,
		player:  entity.NewPlayer(PlayerMaxHealth, PlayerMaxEnergy),
		piles:   deck.NewPiles(),
		cards:   cards,
		enemies: enemies,
		rng:     src,
		message: "A new run begins.",
	}

	for _, id := range cards.StartingDeck() {
		if def := cards.GetByID(id); def != nil {
			s.piles.AddToDeck(deck.NewCard(def))
		}
	}
	return s
}

// Phase returns the current top-level phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// StartGame begins the first combat of the run.
func (s *Session) StartGame(ctx context.Context) error {
	if s.phase != PhaseMenu {
		return ErrOutOfPhase
	}

	tracer := telemetry.Tracer("session")
	_, span := tracer.Start(ctx, "session.start")
	span.SetAttributes(attribute.Int("deck_size", s.piles.Size()))
	span.End()

	s.phase = PhaseCombat
	s.startCombat()
	return nil
}

// startCombat initializes an encounter: the player's energy refills and
// block clears, all cards return to a freshly shuffled deck, a new enemy is
// spawned from a uniformly random template, and the opening hand is drawn.
func (s *Session) startCombat() {
	s.player.Energy = s.player.MaxEnergy
	s.player.ClearBlock()

	s.piles.DiscardHand()
	s.piles.ShuffleDeckIn(s.rng)

	s.enemy = entity.NewEnemyFromDef(s.enemies.Random(s.rng), s.rng)
	s.piles.Draw(HandSize, s.rng)

	s.endTurnPending = false
	s.endTurnElapsed = 0
	s.message = fmt.Sprintf("A %s appears!", s.enemy.Name)
}

// PlayCard plays the card at the given hand index. Unaffordable cards and
// out-of-range indexes are rejected without touching state. A successful
// play moves the card to the discard pile; a lethal play also ends the
// combat and enters the rewards phase.
func (s *Session) PlayCard(ctx context.Context, index int) error {
	if s.phase != PhaseCombat {
		return ErrOutOfPhase
	}
	if s.endTurnPending {
		return ErrTurnEnding
	}
	if index < 0 || index >= len(s.piles.Hand) {
		return ErrInvalidIndex
	}

	card := s.piles.Hand[index]
	if !combat.CanPlay(card, s.player) {
		return ErrNotEnoughEnergy
	}

	tracer := telemetry.Tracer("session")
	ctx, span := tracer.Start(ctx, "card.play")
	span.SetAttributes(
		attribute.String("card", card.TemplateID),
		attribute.Int("cost", card.Cost),
		attribute.Int("enemy_hp", s.enemy.Health),
	)
	defer span.End()

	s.piles.RemoveFromHand(index)
	result := combat.PlayCard(card, s.player, s.enemy, s.piles, s.rng)
	s.piles.AddToDiscard(card)

	span.SetAttributes(attribute.Int("damage", result.Damage))

	if result.EnemyDefeated {
		span.SetAttributes(attribute.Bool("lethal", true))
		s.message = fmt.Sprintf("%s is defeated!", s.enemy.Name)
		s.endCombat(ctx)
		return nil
	}

	switch {
	case result.Damage > 0:
		s.message = fmt.Sprintf("%s hits %s for %d.", card.Name, s.enemy.Name, result.Damage)
	case result.BlockGained > 0:
		s.message = fmt.Sprintf("%s grants %d block.", card.Name, result.BlockGained)
	default:
		s.message = fmt.Sprintf("Played %s.", card.Name)
	}
	return nil
}

// RequestEndTurn flags the player's turn as ending. The actual end-of-turn
// resolution commits once EndTurnDelay seconds have been observed through
// AdvanceTime. Requesting again while pending is a no-op.
func (s *Session) RequestEndTurn() error {
	if s.phase != PhaseCombat {
		return ErrOutOfPhase
	}
	if s.endTurnPending {
		return nil
	}
	s.endTurnPending = true
	s.endTurnElapsed = 0
	return nil
}

// AdvanceTime advances the end-turn delay clock by delta seconds. The
// presentation layer drives this from its own tick; delivering extra ticks
// after the threshold is harmless — the commit happens exactly once per
// request.
func (s *Session) AdvanceTime(ctx context.Context, delta float64) {
	if !s.endTurnPending || s.phase != PhaseCombat {
		return
	}
	if delta < 0 {
		return
	}

	s.endTurnElapsed += delta
	if s.endTurnElapsed < EndTurnDelay {
		return
	}

	s.endTurnPending = false
	s.endTurnElapsed = 0
	s.commitEndTurn(ctx)
}

// commitEndTurn resolves the end of the player's turn: the remaining hand is
// discarded, the enemy executes its forecast intent, and if the player
// survives, the next player turn begins.
func (s *Session) commitEndTurn(ctx context.Context) {
	tracer := telemetry.Tracer("session")
	_, span := tracer.Start(ctx, "turn.end")
	span.SetAttributes(
		attribute.String("enemy_intent", s.enemy.Intent.String()),
		attribute.Int("turn", s.turnsTaken),
	)
	defer span.End()

	s.piles.DiscardHand()

	result := combat.TakeTurn(s.enemy, s.player, s.rng)
	s.turnsTaken++
	span.SetAttributes(attribute.Int("damage_to_player", result.Damage))

	if result.PlayerDefeated {
		span.SetAttributes(attribute.Bool("player_defeated", true))
		s.gameOver()
		return
	}

	switch result.Action {
	case entity.IntentAttack:
		s.message = fmt.Sprintf("%s attacks for %d.", s.enemy.Name, result.Damage)
	case entity.IntentDefend:
		s.message = fmt.Sprintf("%s braces itself.", s.enemy.Name)
	case entity.IntentBuff:
		s.message = fmt.Sprintf("%s grows stronger.", s.enemy.Name)
	}

	s.player.StartTurn()
	s.piles.Draw(HandSize, s.rng)
}

// endCombat transitions combat to the rewards phase and generates the
// reward choices by uniform sampling (with replacement) over all templates.
func (s *Session) endCombat(ctx context.Context) {
	tracer := telemetry.Tracer("session")
	_, span := tracer.Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.String("outcome", "victory"),
		attribute.Int("combats_won", s.combatsWon+1),
		attribute.Int("turns_taken", s.turnsTaken),
		attribute.Int("player_hp_remaining", s.player.Health),
	)
	span.End()

	s.combatsWon++
	s.enemy = nil
	s.phase = PhaseRewards
	s.endTurnPending = false
	s.endTurnElapsed = 0

	s.rewards = make([]*deck.Card, 0, RewardChoices)
	for i := 0; i < RewardChoices; i++ {
		s.rewards = append(s.rewards, deck.NewCard(s.cards.Random(s.rng)))
	}
}

// gameOver transitions combat to the game-over phase.
func (s *Session) gameOver() {
	s.enemy = nil
	s.phase = PhaseGameOver
	s.endTurnPending = false
	s.endTurnElapsed = 0
	s.message = "You have fallen."
}

// PickReward adds the chosen reward card to the deck and re-enters combat
// against a newly spawned enemy. The discard pile and deck are reshuffled
// together as the new combat starts.
func (s *Session) PickReward(ctx context.Context, index int) error {
	if s.phase != PhaseRewards {
		return ErrOutOfPhase
	}
	if index < 0 || index >= len(s.rewards) {
		return ErrInvalidIndex
	}

	tracer := telemetry.Tracer("session")
	_, span := tracer.Start(ctx, "reward.pick")
	span.SetAttributes(attribute.String("card", s.rewards[index].TemplateID))
	span.End()

	s.piles.AddToDeck(s.rewards[index])
	s.rewards = nil
	s.phase = PhaseCombat
	s.startCombat()
	return nil
}

// SkipReward declines all reward choices and re-enters combat.
func (s *Session) SkipReward() error {
	if s.phase != PhaseRewards {
		return ErrOutOfPhase
	}
	s.rewards = nil
	s.phase = PhaseCombat
	s.startCombat()
	return nil
}

// AcknowledgeGameOver returns to the menu. The session does not reset
// itself; the caller is expected to construct a new one for a fresh run.
func (s *Session) AcknowledgeGameOver() error {
	if s.phase != PhaseGameOver {
		return ErrOutOfPhase
	}
	s.phase = PhaseMenu
	return nil
}

// SetAnimating records whether the presentation layer is mid-animation.
// The core stores the flag for observers but never interprets it.
func (s *Session) SetAnimating(animating bool) {
	s.animating = animating
}
