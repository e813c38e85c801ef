// Package simulation runs Monte-Carlo hold 'em simulations on top of the
// poker evaluator: full-table win-rate tables over the 169 starting-hand
// classes, and head-to-head equity for named hands.
package simulation

import "github.com/LegendaryBo/holdem-calculator/poker"

// NumHoleClasses is the number of distinct two-card starting hands when
// only ranks and suitedness matter: 13 pairs plus 78 suited plus 78
// offsuit combinations.
const NumHoleClasses = 169

// HoleClass identifies one of the 169 starting-hand classes. The index is
// laid out as a 13x13 grid over (a, b) rank pairs: pairs on the diagonal,
// offsuit hands at a*13+b with a < b, suited hands mirrored at b*13+a.
type HoleClass uint8

// ClassOf classifies two hole cards by rank and suitedness.
func ClassOf(c1, c2 poker.Card) HoleClass {
	lo, hi := c1.Rank, c2.Rank
	if lo > hi {
		lo, hi = hi, lo
	}
	if c1.Suit == c2.Suit {
		return HoleClass(uint(hi)*13 + uint(lo))
	}
	return HoleClass(uint(lo)*13 + uint(hi))
}

// Suited reports whether the class is a suited (non-pair) hand.
func (hc HoleClass) Suited() bool {
	return hc/13 > hc%13
}

// Pair reports whether the class is a pocket pair.
func (hc HoleClass) Pair() bool {
	return hc/13 == hc%13
}

// String returns the conventional label: "AA", "AKs", "AKo".
func (hc HoleClass) String() string {
	a, b := poker.Rank(hc/13), poker.Rank(hc%13)
	hi, lo := a, b
	if hi < lo {
		hi, lo = lo, hi
	}
	switch {
	case a == b:
		return hi.String() + lo.String()
	case a > b:
		return hi.String() + lo.String() + "s"
	default:
		return hi.String() + lo.String() + "o"
	}
}
