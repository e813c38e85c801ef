// Package deck provides a standard 52-card deck for dealing hands.
//
// Dealing from a deck is the boundary where card uniqueness is enforced:
// a freshly shuffled deck structurally guarantees that no card is dealt
// twice, which is exactly the precondition poker.Hand construction
// requires but never checks.
package deck

import (
	rand "math/rand/v2"

	"github.com/LegendaryBo/holdem-calculator/poker"
)

// Deck is a standard 52-card deck.
type Deck struct {
	cards [52]poker.Card
	next  int
	rng   *rand.Rand
}

// New creates a shuffled deck. The random source must not be nil and must
// not be shared across goroutines; give each worker its own.
func New(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}

	i := 0
	for suit := poker.Clubs; suit <= poker.Spades; suit++ {
		for rank := poker.Two; rank <= poker.Ace; rank++ {
			d.cards[i] = poker.NewCard(rank, suit)
			i++
		}
	}

	d.Shuffle()
	return d
}

// Shuffle reshuffles the full deck using Fisher-Yates and rewinds dealing
// to the top.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Reset rewinds dealing to the top without reshuffling, replaying the
// same order.
func (d *Deck) Reset() {
	d.next = 0
}

// Deal deals the next n cards, or nil when fewer than n remain. The
// returned slice aliases the deck and is only valid until the next
// Shuffle.
func (d *Deck) Deal(n int) []poker.Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards
}

// DealOne deals a single card. ok is false when the deck is exhausted.
func (d *Deck) DealOne() (card poker.Card, ok bool) {
	if d.next >= len(d.cards) {
		return poker.Card{}, false
	}
	card = d.cards[d.next]
	d.next++
	return card, true
}

// CardsRemaining returns the number of cards left to deal.
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
