package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// StatLine holds the player numbers the renderer draws.
type StatLine struct {
	Health     int
	MaxHealth  int
	Energy     int
	MaxEnergy  int
	Block      int
	Vulnerable int
	Weak       int
}

// EnemyLine holds the enemy numbers and forecast the renderer draws.
type EnemyLine struct {
	Name           string
	Glyph          rune
	Color          tcell.Color
	Health         int
	MaxHealth      int
	Block          int
	Vulnerable     int
	Weak           int
	Intent         string
	ForecastDamage int
}

// CardLine holds one card's display fields.
type CardLine struct {
	Name       string
	Cost       int
	Text       string
	Color      tcell.Color
	Affordable bool
}

// RenderState is everything the renderer needs for one frame. It is plain
// display data; the game package assembles it from a session snapshot.
type RenderState struct {
	Phase          string
	Player         StatLine
	Enemy          *EnemyLine
	Hand           []CardLine
	Rewards        []CardLine
	DeckCount      int
	DiscardCount   int
	Message        string
	EndTurnPending bool
	CombatsWon     int
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame for the current phase.
func (r *Renderer) Render(state RenderState) {
	r.screen.Clear()

	switch state.Phase {
	case "menu":
		r.renderMenu()
	case "combat":
		r.renderCombat(state)
	case "rewards":
		r.renderRewards(state)
	case "gameover":
		r.renderGameOver(state)
	}

	r.screen.Show()
}

func (r *Renderer) renderMenu() {
	title := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.drawText(2, 2, "D E C K F A L L", title)
	r.drawText(2, 4, "Fight. Win. Grow the deck. Fall.", tcell.StyleDefault)
	r.drawText(2, 6, "[enter] start run    [q] quit", dimStyle())
}

func (r *Renderer) renderCombat(state RenderState) {
	y := 1

	if e := state.Enemy; e != nil {
		glyphStyle := tcell.StyleDefault.Foreground(e.Color).Bold(true)
		r.screen.SetContent(2, y, e.Glyph, glyphStyle)
		r.drawText(4, y, fmt.Sprintf("%s  %d/%d HP", e.Name, e.Health, e.MaxHealth), tcell.StyleDefault)
		y++
		r.drawText(4, y, statusSuffix(e.Block, e.Vulnerable, e.Weak), dimStyle())
		y++

		intent := "intends to " + e.Intent
		if e.ForecastDamage > 0 {
			intent = fmt.Sprintf("%s for %d", intent, e.ForecastDamage)
		}
		r.drawText(4, y, intent, tcell.StyleDefault.Foreground(tcell.ColorRed))
		y += 2
	}

	p := state.Player
	r.drawText(2, y, fmt.Sprintf("You  %d/%d HP  %d/%d energy", p.Health, p.MaxHealth, p.Energy, p.MaxEnergy), tcell.StyleDefault.Foreground(tcell.ColorYellow))
	y++
	r.drawText(2, y, statusSuffix(p.Block, p.Vulnerable, p.Weak), dimStyle())
	y += 2

	for i, card := range state.Hand {
		style := tcell.StyleDefault.Foreground(card.Color)
		if !card.Affordable {
			style = dimStyle()
		}
		r.drawText(2, y, fmt.Sprintf("[%d] (%d) %-14s %s", i+1, card.Cost, card.Name, card.Text), style)
		y++
	}
	y++

	r.drawText(2, y, fmt.Sprintf("deck %d  discard %d  wins %d", state.DeckCount, state.DiscardCount, state.CombatsWon), dimStyle())
	y += 2

	if state.EndTurnPending {
		r.drawText(2, y, "Ending turn...", tcell.StyleDefault.Foreground(tcell.ColorRed))
	} else {
		r.drawText(2, y, state.Message, tcell.StyleDefault)
	}
	y++
	r.drawText(2, y, "[1-9] play card  [e] end turn  [q] quit", dimStyle())
}

func (r *Renderer) renderRewards(state RenderState) {
	r.drawText(2, 1, "Victory! Choose a card:", tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))

	y := 3
	for i, card := range state.Rewards {
		style := tcell.StyleDefault.Foreground(card.Color)
		r.drawText(2, y, fmt.Sprintf("[%d] (%d) %-14s %s", i+1, card.Cost, card.Name, card.Text), style)
		y++
	}
	y++
	r.drawText(2, y, "[1-3] take card  [s] skip", dimStyle())
}

func (r *Renderer) renderGameOver(state RenderState) {
	r.drawText(2, 2, "GAME OVER", tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	r.drawText(2, 4, fmt.Sprintf("Combats won: %d", state.CombatsWon), tcell.StyleDefault)
	r.drawText(2, 6, "[enter] back to menu  [q] quit", dimStyle())
}

// drawText writes a string starting at the given position.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, style)
	}
}

// statusSuffix formats the block/vulnerable/weak counters.
func statusSuffix(block, vulnerable, weak int) string {
	return fmt.Sprintf("block %d  vulnerable %d  weak %d", block, vulnerable, weak)
}

func dimStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
}
