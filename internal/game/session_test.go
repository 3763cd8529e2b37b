package game

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/samdwyer/deckfall/internal/gamedata"
)

// testSession builds a session over a minimal, fully controlled data set:
// a ten-card deck of 1-cost attacks and a single enemy template.
func testSession(t *testing.T, enemyHP, enemyDamage int, intents ...string) *Session {
	t.Helper()

	if len(intents) == 0 {
		intents = []string{"defend"}
	}

	startingDeck := make([]string, 10)
	for i := range startingDeck {
		startingDeck[i] = "jab"
	}
	cards := gamedata.NewCardRegistry(gamedata.CardsFile{
		StartingDeck: startingDeck,
		Cards: []gamedata.CardDef{
			{ID: "jab", Name: "Jab", Type: gamedata.CardAttack, Cost: 1, Damage: 3},
		},
	})
	enemies := gamedata.NewEnemyRegistry([]gamedata.EnemyDef{
		{ID: "dummy", Name: "Dummy", HP: enemyHP, Damage: enemyDamage, Intents: intents},
	})

	return NewSession(cards, enemies, rand.New(rand.NewSource(1)))
}

func TestStartGame(t *testing.T) {
	ctx := context.Background()
	s := testSession(t, 1000, 4)

	if s.Phase() != PhaseMenu {
		t.Fatalf("initial phase = %v, want menu", s.Phase())
	}

	if err := s.StartGame(ctx); err != nil {
		t.Fatalf("StartGame() error = %v", err)
	}

	snap := s.Snapshot()
	if snap.Phase != PhaseCombat {
		t.Errorf("phase = %v, want combat", snap.Phase)
	}
	if len(snap.Hand) != HandSize {
		t.Errorf("hand size = %d, want %d", len(snap.Hand), HandSize)
	}
	if snap.DeckCount != 5 {
		t.Errorf("deck count = %d, want 5", snap.DeckCount)
	}
	if snap.Player.Energy != PlayerMaxEnergy {
		t.Errorf("energy = %d, want %d", snap.Player.Energy, PlayerMaxEnergy)
	}
	if snap.Enemy == nil {
		t.Fatal("enemy snapshot missing during combat")
	}
	if snap.Enemy.Health != 1000 {
		t.Errorf("enemy health = %d, want 1000", snap.Enemy.Health)
	}
}

func TestStartGameOutOfPhase(t *testing.T) {
	ctx := context.Background()
	s := testSession(t, 1000, 4)
	s.StartGame(ctx)

	if err := s.StartGame(ctx); !errors.Is(err, ErrOutOfPhase) {
		t.Errorf("second StartGame() error = %v, want ErrOutOfPhase", err)
	}
}

func TestPlayCardOutOfPhase(t *testing.T) {
	ctx := context.Background()
	s := testSession(t, 1000, 4)

	if err := s.PlayCard(ctx, 0); !errors.Is(err, ErrOutOfPhase) {
		t.Errorf("PlayCard in menu error = %v, want ErrOutOfPhase", err)
	}
}

func TestPlayCardInvalidIndex(t *testing.T) {
	ctx := context.Background()
	s := testSession(t, 1000, 4)
	s.StartGame(ctx)

	if err := s.PlayCard(ctx, -1); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("PlayCard(-1) error = %v, want ErrInvalidIndex", err)
	}
	if err := s.PlayCard(ctx, HandSize); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("PlayCard(%d) error = %v, want ErrInvalidIndex", HandSize, err)
	}
}

func TestEnergyConservation(t *testing.T) {
	ctx := context.Background()
	s := testSession(t, 1000, 4)
	s.StartGame(ctx)

	for i := 0; i < PlayerMaxEnergy; i++ {
		if err := s.PlayCard(ctx, 0); err != nil {
			t.Fatalf("play %d error = %v", i, err)
		}
	}

	snap := s.Snapshot()
	if snap.Player.Energy != 0 {
		t.Errorf("energy = %d, want 0", snap.Player.Energy)
	}
	if len(snap.Hand) != HandSize-PlayerMaxEnergy {
		t.Errorf("hand size = %d, want %d", len(snap.Hand), HandSize-PlayerMaxEnergy)
	}
	if snap.DiscardCount != PlayerMaxEnergy {
		t.Errorf("discard count = %d, want %d", snap.DiscardCount, PlayerMaxEnergy)
	}

	// Unaffordable play changes nothing.
	if err := s.PlayCard(ctx, 0); !errors.Is(err, ErrNotEnoughEnergy) {
		t.Fatalf("unaffordable play error = %v, want ErrNotEnoughEnergy", err)
	}
	after := s.Snapshot()
	if after.Player.Energy != 0 || len(after.Hand) != len(snap.Hand) || after.DiscardCount != snap.DiscardCount {
		t.Error("rejected play mutated state")
	}
}

func TestLethalPlayEntersRewards(t *testing.T) {
	ctx := context.Background()
	s := testSession(t, 3, 4) // one jab kills

	s.StartGame(ctx)
	if err := s.PlayCard(ctx, 0); err != nil {
		t.Fatalf("PlayCard error = %v", err)
	}

	snap := s.Snapshot()
	if snap.Phase != PhaseRewards {
		t.Fatalf("phase = %v, want rewards", snap.Phase)
	}
	if len(snap.Rewards) != RewardChoices {
		t.Errorf("reward choices = %d, want %d", len(snap.Rewards), RewardChoices)
	}
	if snap.Enemy != nil {
		t.Error("enemy snapshot present outside combat")
	}
	if snap.CombatsWon != 1 {
		t.Errorf("combats won = %d, want 1", snap.CombatsWon)
	}
	// Lethal pipeline skips the cost.
	if snap.Player.Energy != PlayerMaxEnergy {
		t.Errorf("energy = %d, want %d (lethal skips cost)", snap.Player.Energy, PlayerMaxEnergy)
	}
}

func totalInstances(snap Snapshot) int {
	return snap.DeckCount + snap.DiscardCount + len(snap.Hand)
}

func TestPickRewardGrowsDeckAndResumesCombat(t *testing.T) {
	ctx := context.Background()
	s := testSession(t, 3, 4)
	s.StartGame(ctx)
	s.PlayCard(ctx, 0)

	if err := s.PickReward(ctx, 1); err != nil {
		t.Fatalf("PickReward error = %v", err)
	}

	snap := s.Snapshot()
	if snap.Phase != PhaseCombat {
		t.Errorf("phase = %v, want combat", snap.Phase)
	}
	if got := totalInstances(snap); got != 11 {
		t.Errorf("total instances = %d, want 11", got)
	}
	if snap.Enemy == nil {
		t.Error("no enemy spawned for the next combat")
	}
	if len(snap.Rewards) != 0 {
		t.Error("reward choices still present after pick")
	}
}

func TestSkipReward(t *testing.T) {
	ctx := context.Background()
	s := testSession(t, 3, 4)
	s.StartGame(ctx)
	s.PlayCard(ctx, 0)

	if err := s.SkipReward(); err != nil {
		t.Fatalf("SkipReward error = %v", err)
	}

	snap := s.Snapshot()
	if snap.Phase != PhaseCombat {
		t.Errorf("phase = %v, want combat", snap.Phase)
	}
	if got := totalInstances(snap); got != 10 {
		t.Errorf("total instances = %d, want 10", got)
	}
}

func TestPickRewardValidation(t *testing.T) {
	ctx := context.Background()
	s := testSession(t, 3, 4)

	if err := s.PickReward(ctx, 0); !errors.Is(err, ErrOutOfPhase) {
		t.Errorf("PickReward in menu error = %v, want ErrOutOfPhase", err)
	}

	s.StartGame(ctx)
	s.PlayCard(ctx, 0)
	if err := s.PickReward(ctx, RewardChoices); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("PickReward(%d) error = %v, want ErrInvalidIndex", RewardChoices, err)
	}
}

func TestEndTurnCommitsExactlyOnce(t *testing.T) {
	ctx := context.Background()
	s := testSession(t, 1000, 4, "attack")
	s.StartGame(ctx)
	s.PlayCard(ctx, 0)

	if err := s.RequestEndTurn(); err != nil {
		t.Fatalf("RequestEndTurn error = %v", err)
	}

	// Below the threshold: nothing commits.
	s.AdvanceTime(ctx, EndTurnDelay/2)
	if snap := s.Snapshot(); snap.TurnsTaken != 0 || !snap.EndTurnPending {
		t.Fatalf("committed early: turns=%d pending=%v", snap.TurnsTaken, snap.EndTurnPending)
	}

	// Crossing the threshold commits once.
	s.AdvanceTime(ctx, EndTurnDelay)
	snap := s.Snapshot()
	if snap.TurnsTaken != 1 {
		t.Fatalf("turns taken = %d, want 1", snap.TurnsTaken)
	}
	if snap.EndTurnPending {
		t.Error("end turn still pending after commit")
	}
	if snap.Player.Health != 66 {
		t.Errorf("player health = %d, want 66 (one enemy attack of 4)", snap.Player.Health)
	}
	if len(snap.Hand) != HandSize {
		t.Errorf("hand size = %d, want %d (redrawn)", len(snap.Hand), HandSize)
	}
	if snap.Player.Energy != PlayerMaxEnergy {
		t.Errorf("energy = %d, want %d (reset)", snap.Player.Energy, PlayerMaxEnergy)
	}

	// Extra ticks after the threshold are harmless.
	for i := 0; i < 5; i++ {
		s.AdvanceTime(ctx, EndTurnDelay*10)
	}
	if got := s.Snapshot().TurnsTaken; got != 1 {
		t.Errorf("turns taken after extra ticks = %d, want 1", got)
	}
}

func TestRequestEndTurnWhilePendingIsNoop(t *testing.T) {
	ctx := context.Background()
	s := testSession(t, 1000, 4)
	s.StartGame(ctx)

	s.RequestEndTurn()
	s.AdvanceTime(ctx, EndTurnDelay/2)
	if err := s.RequestEndTurn(); err != nil {
		t.Fatalf("second RequestEndTurn error = %v", err)
	}

	// The second request must not restart the delay window from scratch and
	// must not produce a second commit.
	s.AdvanceTime(ctx, EndTurnDelay)
	if got := s.Snapshot().TurnsTaken; got != 1 {
		t.Errorf("turns taken = %d, want 1", got)
	}
}

func TestPlayCardWhileTurnEnding(t *testing.T) {
	ctx := context.Background()
	s := testSession(t, 1000, 4)
	s.StartGame(ctx)
	s.RequestEndTurn()

	if err := s.PlayCard(ctx, 0); !errors.Is(err, ErrTurnEnding) {
		t.Errorf("PlayCard while ending error = %v, want ErrTurnEnding", err)
	}
}

func TestEnemyLethalAttackEndsGame(t *testing.T) {
	ctx := context.Background()
	s := testSession(t, 1000, 1000, "attack")
	s.StartGame(ctx)

	s.RequestEndTurn()
	s.AdvanceTime(ctx, EndTurnDelay)

	snap := s.Snapshot()
	if snap.Phase != PhaseGameOver {
		t.Fatalf("phase = %v, want gameover", snap.Phase)
	}
	if snap.Player.Health != 0 {
		t.Errorf("player health = %d, want 0", snap.Player.Health)
	}

	if err := s.RequestEndTurn(); !errors.Is(err, ErrOutOfPhase) {
		t.Errorf("RequestEndTurn after game over error = %v, want ErrOutOfPhase", err)
	}

	if err := s.AcknowledgeGameOver(); err != nil {
		t.Fatalf("AcknowledgeGameOver error = %v", err)
	}
	if s.Phase() != PhaseMenu {
		t.Errorf("phase after acknowledge = %v, want menu", s.Phase())
	}
}

func TestAcknowledgeGameOverOutOfPhase(t *testing.T) {
	s := testSession(t, 1000, 4)
	if err := s.AcknowledgeGameOver(); !errors.Is(err, ErrOutOfPhase) {
		t.Errorf("AcknowledgeGameOver in menu error = %v, want ErrOutOfPhase", err)
	}
}

func TestSetAnimating(t *testing.T) {
	s := testSession(t, 1000, 4)

	s.SetAnimating(true)
	if !s.Snapshot().Animating {
		t.Error("animating flag not exposed")
	}
	s.SetAnimating(false)
	if s.Snapshot().Animating {
		t.Error("animating flag not cleared")
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseMenu, "menu"},
		{PhaseCombat, "combat"},
		{PhaseRewards, "rewards"},
		{PhaseGameOver, "gameover"},
		{Phase(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.expected {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.expected)
		}
	}
}
