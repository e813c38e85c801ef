package deck

import (
	rand "math/rand/v2"
	"testing"

	"github.com/LegendaryBo/holdem-calculator/poker"
)

func TestDeckDealsAllUniqueCards(t *testing.T) {
	t.Parallel()
	d := New(rand.New(rand.NewPCG(1, 2)))

	seen := make(map[poker.Card]bool, 52)
	for i := 0; i < 52; i++ {
		card, ok := d.DealOne()
		if !ok {
			t.Fatalf("deck exhausted after %d cards", i)
		}
		if seen[card] {
			t.Fatalf("card %s dealt twice", card)
		}
		seen[card] = true
	}

	if _, ok := d.DealOne(); ok {
		t.Error("expected exhausted deck")
	}
	if got := d.CardsRemaining(); got != 0 {
		t.Errorf("CardsRemaining() = %d, want 0", got)
	}
}

func TestDeckDeal(t *testing.T) {
	t.Parallel()
	d := New(rand.New(rand.NewPCG(3, 4)))

	community := d.Deal(5)
	if len(community) != 5 {
		t.Fatalf("Deal(5) returned %d cards", len(community))
	}
	if got := d.CardsRemaining(); got != 47 {
		t.Errorf("CardsRemaining() = %d, want 47", got)
	}

	if cards := d.Deal(48); cards != nil {
		t.Error("Deal past the end of the deck should return nil")
	}
}

func TestDeckShuffleIsDeterministicPerSeed(t *testing.T) {
	t.Parallel()
	a := New(rand.New(rand.NewPCG(9, 9)))
	b := New(rand.New(rand.NewPCG(9, 9)))

	for i := 0; i < 52; i++ {
		ca, _ := a.DealOne()
		cb, _ := b.DealOne()
		if ca != cb {
			t.Fatalf("decks with identical seeds diverged at card %d: %s vs %s", i, ca, cb)
		}
	}
}

func TestDeckResetReplaysOrder(t *testing.T) {
	t.Parallel()
	d := New(rand.New(rand.NewPCG(7, 8)))
	first := make([]poker.Card, 5)
	copy(first, d.Deal(5))
	d.Reset()
	again := d.Deal(5)
	for i := range first {
		if first[i] != again[i] {
			t.Fatalf("card %d after Reset = %s, want %s", i, again[i], first[i])
		}
	}
}

func TestDeckShuffleRewinds(t *testing.T) {
	t.Parallel()
	d := New(rand.New(rand.NewPCG(5, 6)))
	d.Deal(20)
	d.Shuffle()
	if got := d.CardsRemaining(); got != 52 {
		t.Errorf("CardsRemaining() after Shuffle = %d, want 52", got)
	}
}
