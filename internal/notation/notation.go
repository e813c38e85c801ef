// Package notation converts between card slices and the compact text
// notation used on the command line: two characters per card, e.g.
// "AcKd" or "Td 7s 8h" (spaces are ignored).
package notation

import (
	"fmt"
	"strings"

	"github.com/LegendaryBo/holdem-calculator/poker"
)

// ParseCards parses card notation into a slice of cards. Errors identify
// the offending position; no cards are returned on failure.
func ParseCards(s string) ([]poker.Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length %d: want two characters per card", len(s))
	}

	cards := make([]poker.Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := poker.CardOf(s[i], s[i+1])
		if err != nil {
			return nil, fmt.Errorf("card at position %d: %w", i/2+1, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses card notation and panics on error. For tests and
// hard-coded notation only.
func MustParseCards(s string) []poker.Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("parse cards %q: %v", s, err))
	}
	return cards
}

// FormatCards renders cards space-separated, e.g. "Ac Kd".
func FormatCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
