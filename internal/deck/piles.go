package deck

import "github.com/samdwyer/deckfall/internal/rng"

// Piles holds the three card zones. Every card instance in play belongs to
// exactly one of them; the zone transitions below move instances without
// ever changing their identity.
type Piles struct {
	Deck    []*Card // Draw pile, drawn from the front
	Hand    []*Card // Index-addressable for play
	Discard []*Card // Accumulates played and discarded cards in append order
}

// NewPiles creates empty zones.
func NewPiles() *Piles {
	return &Piles{}
}

// ShuffleDeckIn moves the entire discard pile into the deck, then applies a
// uniform Fisher-Yates permutation over the combined pile. The result carries
// no dependency on prior element order.
func (p *Piles) ShuffleDeckIn(src rng.Source) {
	p.Deck = append(p.Deck, p.Discard...)
	p.Discard = p.Discard[:0]

	for i := len(p.Deck) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		p.Deck[i], p.Deck[j] = p.Deck[j], p.Deck[i]
	}
}

// Draw moves up to count cards from the front of the deck into the hand, one
// at a time. If the deck runs out mid-draw and the discard pile is non-empty,
// the discard is reshuffled in and drawing continues. Running out of both
// piles is not an error; the draw just stops short. Returns the number of
// cards actually drawn.
func (p *Piles) Draw(count int, src rng.Source) int {
	drawn := 0
	for drawn < count {
		if len(p.Deck) == 0 {
			if len(p.Discard) == 0 {
				break
			}
			p.ShuffleDeckIn(src)
		}
		card := p.Deck[0]
		p.Deck = p.Deck[1:]
		p.Hand = append(p.Hand, card)
		drawn++
	}
	return drawn
}

// DiscardHand moves every card in the hand to the discard pile in hand order.
func (p *Piles) DiscardHand() {
	p.Discard = append(p.Discard, p.Hand...)
	p.Hand = p.Hand[:0]
}

// RemoveFromHand removes and returns the card at the given hand index, or
// nil if the index is out of range.
func (p *Piles) RemoveFromHand(index int) *Card {
	if index < 0 || index >= len(p.Hand) {
		return nil
	}
	card := p.Hand[index]
	p.Hand = append(p.Hand[:index], p.Hand[index+1:]...)
	return card
}

// AddToDiscard appends a card to the discard pile.
func (p *Piles) AddToDiscard(card *Card) {
	p.Discard = append(p.Discard, card)
}

// AddToDeck appends a card to the back of the deck.
func (p *Piles) AddToDeck(card *Card) {
	p.Deck = append(p.Deck, card)
}

// Size returns the total number of card instances across all three zones.
func (p *Piles) Size() int {
	return len(p.Deck) + len(p.Hand) + len(p.Discard)
}
