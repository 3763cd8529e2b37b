package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/deckfall/internal/gamedata"
	"github.com/samdwyer/deckfall/internal/rng"
	"github.com/samdwyer/deckfall/internal/telemetry"
	"github.com/samdwyer/deckfall/internal/ui"
)

// tickInterval is how often the run loop wakes up to advance session time.
const tickInterval = 50 * time.Millisecond

// Game wires the core session to the terminal. All gameplay rules live in
// Session; this shell only translates key events into intents and snapshots
// into pixels.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	cards    *gamedata.CardRegistry
	enemies  *gamedata.EnemyRegistry
	rng      rng.Source
	running  bool
	notice   string // Last rejected-intent feedback, shown on the message line
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	cards, err := gamedata.LoadCardRegistry()
	if err != nil {
		return nil, err
	}
	enemies, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	src := rng.NewSeeded(cfg.Seed)
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		session:  NewSession(cards, enemies, src),
		cards:    cards,
		enemies:  enemies,
		rng:      src,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Int("card_templates", g.cards.Count()),
		attribute.Int("enemy_templates", g.enemies.Count()),
	)
	initSpan.End()

	// Wake the loop regularly so the end-turn delay elapses in real time
	// even when no keys are pressed.
	stopTicker := make(chan struct{})
	go func() {
		ticker := time.NewTicker(tickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g.screen.PostEvent(tcell.NewEventInterrupt(nil))
			case <-stopTicker:
				return
			}
		}
	}()

	lastTick := time.Now()
	for g.running {
		g.renderer.Render(toRenderState(g.session.Snapshot(), g.notice))

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			g.handleKeyEvent(ctx, ev)
		case *tcell.EventInterrupt:
			now := time.Now()
			g.session.AdvanceTime(ctx, now.Sub(lastTick).Seconds())
			lastTick = now
		case *tcell.EventResize:
			g.screen.Sync()
		}
	}

	close(stopTicker)
	g.screen.Close()
	return nil
}

// handleKeyEvent translates keyboard input into session intents.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	case tcell.KeyEnter:
		g.handleConfirm(ctx)
		return
	case tcell.KeyRune:
	default:
		return
	}

	r := ev.Rune()
	switch {
	case r == 'q' || r == 'Q':
		g.running = false
	case r >= '1' && r <= '9':
		g.handleNumber(ctx, int(r-'1'))
	case r == 'e' || r == 'E':
		g.intent(g.session.RequestEndTurn())
	case r == 's' || r == 'S':
		g.handleSkip(ctx)
	}
}

// handleConfirm handles Enter per phase.
func (g *Game) handleConfirm(ctx context.Context) {
	switch g.session.Phase() {
	case PhaseMenu:
		g.intent(g.session.StartGame(ctx))
	case PhaseCombat:
		g.intent(g.session.RequestEndTurn())
	case PhaseGameOver:
		if err := g.session.AcknowledgeGameOver(); err == nil {
			// The session does not reset in place; a fresh run needs a
			// fresh aggregate.
			g.session = NewSession(g.cards, g.enemies, g.rng)
		}
	}
}

// handleNumber handles 1-9 per phase: hand index in combat, choice index in
// the rewards phase.
func (g *Game) handleNumber(ctx context.Context, index int) {
	switch g.session.Phase() {
	case PhaseCombat:
		g.intent(g.session.PlayCard(ctx, index))
	case PhaseRewards:
		g.intent(g.session.PickReward(ctx, index))
	case PhaseMenu:
		g.intent(g.session.StartGame(ctx))
	}
}

// handleSkip handles 's' per phase.
func (g *Game) handleSkip(ctx context.Context) {
	switch g.session.Phase() {
	case PhaseMenu:
		g.intent(g.session.StartGame(ctx))
	case PhaseRewards:
		g.intent(g.session.SkipReward())
	}
}

// intent records rejected-intent feedback for the message line.
func (g *Game) intent(err error) {
	if err != nil {
		g.notice = err.Error()
		return
	}
	g.notice = ""
}

// toRenderState converts a session snapshot into the renderer's input.
func toRenderState(snap Snapshot, notice string) ui.RenderState {
	state := ui.RenderState{
		Phase:   snap.Phase.String(),
		Message: snap.Message,
		Player: ui.StatLine{
			Health:     snap.Player.Health,
			MaxHealth:  snap.Player.MaxHealth,
			Energy:     snap.Player.Energy,
			MaxEnergy:  snap.Player.MaxEnergy,
			Block:      snap.Player.Block,
			Vulnerable: snap.Player.Vulnerable,
			Weak:       snap.Player.Weak,
		},
		DeckCount:      snap.DeckCount,
		DiscardCount:   snap.DiscardCount,
		EndTurnPending: snap.EndTurnPending,
		CombatsWon:     snap.CombatsWon,
	}
	if notice != "" {
		state.Message = notice
	}

	if snap.Enemy != nil {
		state.Enemy = &ui.EnemyLine{
			Name:           snap.Enemy.Name,
			Glyph:          snap.Enemy.Glyph,
			Color:          snap.Enemy.Color,
			Health:         snap.Enemy.Health,
			MaxHealth:      snap.Enemy.MaxHealth,
			Block:          snap.Enemy.Block,
			Vulnerable:     snap.Enemy.Vulnerable,
			Weak:           snap.Enemy.Weak,
			Intent:         snap.Enemy.Intent.String(),
			ForecastDamage: snap.Enemy.ForecastDamage,
		}
	}

	for _, c := range snap.Hand {
		state.Hand = append(state.Hand, ui.CardLine{
			Name:       c.Name,
			Cost:       c.Cost,
			Text:       c.Text,
			Color:      c.Color,
			Affordable: c.Affordable,
		})
	}
	for _, c := range snap.Rewards {
		state.Rewards = append(state.Rewards, ui.CardLine{
			Name:       c.Name,
			Cost:       c.Cost,
			Text:       c.Text,
			Color:      c.Color,
			Affordable: true,
		})
	}
	return state
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
