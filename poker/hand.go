package poker

import (
	"math/bits"
	"strings"
)

// Hand is a packed set of 5 to 7 distinct cards.
//
// The 64 bits are divided into four 16-bit lanes, one per suit, with
// clubs in the lowest lane:
//
//	 63      48 47      32 31      16 15       0
//	+----------+----------+----------+----------+
//	|  Spades  |  Hearts  | Diamonds |   Clubs  |
//	+----------+----------+----------+----------+
//
// Within a lane, the low 13 bits are a presence mask (bit r set iff the
// card of rank r in that suit is present) and the top 3 bits count the
// set presence bits, i.e. the number of cards of that suit:
//
//	 15  14  13  12  11                 ...                  1   0
//	+-----------+---+---+---+---+---+---+---+---+---+---+---+---+
//	|   COUNT   | A | K | Q | J | T | 9 | 8 | 7 | 6 | 5 | 4 | 3 | 2 |
//	+-----------+---+---+---+---+---+---+---+---+---+---+---+---+---+
//
// A single card contributes exactly one presence bit and a count of one,
// so hands holding disjoint card sets combine by plain integer addition:
// the sum of two packed values is the packed value of the union. The
// composition is associative and commutative, which makes incremental
// construction cheap (community cards accumulated once, hole cards added
// per player).
//
// Precondition (callers' responsibility, not checked here): no card may
// appear twice across the cards of a hand or the operands of Add, and the
// combined hand holds at most 7 cards. Violating this silently corrupts
// the count fields (presence bits carry into them) and every downstream
// evaluation becomes undefined. Enforce uniqueness structurally where
// cards enter the system, e.g. by dealing from a deck.
type Hand uint64

const (
	laneBits      = 16
	rankMask      = 0x1FFF // low 13 bits of a lane
	presenceMask  = 0x1FFF_1FFF_1FFF_1FFF
	countMask     = 0xE000_E000_E000_E000
	countShift    = 13
	cardCountUnit = 1 << countShift // a single card's contribution to a lane count
)

// NewHand packs the given cards, in any order, into a Hand.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h += handOf(c)
	}
	return h
}

// handOf returns the single-card hand: one presence bit and a count of 1
// in the card's suit lane.
func handOf(c Card) Hand {
	return Hand((cardCountUnit | uint64(1)<<c.Rank) << (laneBits * uint(c.Suit)))
}

// Add combines two hands holding disjoint card sets. See the Hand
// precondition for what disjoint means here.
func (h Hand) Add(other Hand) Hand {
	return h + other
}

// AddCard returns the hand with one more card. The card must not already
// be present.
func (h Hand) AddCard(c Card) Hand {
	return h + handOf(c)
}

// SuitPlane returns the 13-bit presence mask of the given suit.
func (h Hand) SuitPlane(s Suit) uint16 {
	return uint16(h>>(laneBits*uint(s))) & rankMask
}

// SuitCount returns the number of cards of the given suit.
func (h Hand) SuitCount(s Suit) int {
	return int(h>>(laneBits*uint(s)+countShift)) & 7
}

// NumCards returns the total number of cards in the hand.
func (h Hand) NumCards() int {
	sc := uint64(h) & countMask
	return int((sc>>13 + sc>>29 + sc>>45 + sc>>61) & 0x3F)
}

// Cards unpacks the hand back into its cards, highest bit position first.
func (h Hand) Cards() []Card {
	v := uint64(h) & presenceMask
	cards := make([]Card, 0, 7)
	for v != 0 {
		b := uint(bits.Len64(v) - 1)
		cards = append(cards, Card{Rank: Rank(b % laneBits), Suit: Suit(b / laneBits)})
		v &^= 1 << b
	}
	return cards
}

// String renders the hand's cards in unpacking order, e.g. "As Kd 2c".
func (h Hand) String() string {
	cards := h.Cards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
