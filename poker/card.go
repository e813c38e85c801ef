// Package poker evaluates the strength of texas hold 'em hands.
//
// The package is built around three value types: Card, Hand and
// HandStrength. Cards are packed into a Hand (a single uint64), the Hand
// is evaluated with Evaluate, and the resulting HandStrength values are
// compared as plain integers. Everything is pure and allocation-free, so
// any number of evaluations may run concurrently without coordination.
package poker

import "fmt"

// Rank represents the rank of a card, ordered from Two (lowest) to Ace.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "23456789TJQKA"
const suitChars = "cdhs"

// String returns the canonical one-character form of the rank ('2'..'A').
func (r Rank) String() string {
	if r > Ace {
		return "?"
	}
	return string(rankChars[r])
}

// Suit represents the suit of a card.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the canonical one-character form of the suit ('c'..'s').
func (s Suit) String() string {
	if s > Spades {
		return "?"
	}
	return string(suitChars[s])
}

// Card is an immutable (rank, suit) pair. Two cards are equal iff both
// fields match.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from a rank and a suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// CardOf creates a card from its rank and suit characters. Both upper and
// lower case are accepted. It returns an error when either character does
// not name a known rank or suit; a partially-valid card is never produced.
func CardOf(rankChar, suitChar byte) (Card, error) {
	rank, err := parseRank(rankChar)
	if err != nil {
		return Card{}, err
	}
	suit, err := parseSuit(suitChar)
	if err != nil {
		return Card{}, err
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCard parses two-character notation like "As" or "2c" into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: want 2 characters", s)
	}
	return CardOf(s[0], s[1])
}

// String returns the two-character notation of the card (e.g. "As").
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

func parseRank(b byte) (Rank, error) {
	switch b {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(b - '2'), nil
	case 'T', 't':
		return Ten, nil
	case 'J', 'j':
		return Jack, nil
	case 'Q', 'q':
		return Queen, nil
	case 'K', 'k':
		return King, nil
	case 'A', 'a':
		return Ace, nil
	default:
		return 0, fmt.Errorf("unknown rank %q", b)
	}
}

func parseSuit(b byte) (Suit, error) {
	switch b {
	case 'c', 'C':
		return Clubs, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'h', 'H':
		return Hearts, nil
	case 's', 'S':
		return Spades, nil
	default:
		return 0, fmt.Errorf("unknown suit %q", b)
	}
}
