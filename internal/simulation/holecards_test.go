package simulation

import (
	"testing"

	"github.com/LegendaryBo/holdem-calculator/internal/notation"
	"github.com/LegendaryBo/holdem-calculator/poker"
)

func classOf(t *testing.T, s string) HoleClass {
	t.Helper()
	cards := notation.MustParseCards(s)
	if len(cards) != 2 {
		t.Fatalf("want 2 cards in %q, got %d", s, len(cards))
	}
	return ClassOf(cards[0], cards[1])
}

func TestClassLabels(t *testing.T) {
	tests := []struct {
		cards string
		label string
	}{
		{"AsAh", "AA"},
		{"2c2d", "22"},
		{"AsKs", "AKs"},
		{"AsKh", "AKo"},
		{"KhAs", "AKo"},
		{"7d2c", "72o"},
		{"2c7d", "72o"},
		{"Th9h", "T9s"},
		{"5s4s", "54s"},
	}
	for _, tt := range tests {
		got := classOf(t, tt.cards).String()
		if got != tt.label {
			t.Errorf("ClassOf(%s) = %s, want %s", tt.cards, got, tt.label)
		}
	}
}

func TestClassOrderIndependence(t *testing.T) {
	tests := []struct{ a, b string }{
		{"AsKh", "KhAs"},
		{"AsKs", "KsAs"},
		{"9c9d", "9d9c"},
		{"7d2c", "2c7d"},
	}
	for _, tt := range tests {
		if classOf(t, tt.a) != classOf(t, tt.b) {
			t.Errorf("ClassOf(%s) != ClassOf(%s)", tt.a, tt.b)
		}
	}
}

func TestClassSuitedAndPair(t *testing.T) {
	if c := classOf(t, "AsKs"); !c.Suited() || c.Pair() {
		t.Errorf("AKs: Suited=%v Pair=%v", c.Suited(), c.Pair())
	}
	if c := classOf(t, "AsKh"); c.Suited() || c.Pair() {
		t.Errorf("AKo: Suited=%v Pair=%v", c.Suited(), c.Pair())
	}
	if c := classOf(t, "AsAh"); c.Suited() || !c.Pair() {
		t.Errorf("AA: Suited=%v Pair=%v", c.Suited(), c.Pair())
	}
}

// Every two-card combination must map inside the 169 classes, and every
// class must be hit by at least one combination.
func TestClassCoversAllCombinations(t *testing.T) {
	var seen [NumHoleClasses]bool
	for s1 := poker.Clubs; s1 <= poker.Spades; s1++ {
		for r1 := poker.Two; r1 <= poker.Ace; r1++ {
			for s2 := poker.Clubs; s2 <= poker.Spades; s2++ {
				for r2 := poker.Two; r2 <= poker.Ace; r2++ {
					c1 := poker.NewCard(r1, s1)
					c2 := poker.NewCard(r2, s2)
					if c1 == c2 {
						continue
					}
					class := ClassOf(c1, c2)
					if int(class) >= NumHoleClasses {
						t.Fatalf("ClassOf(%s, %s) = %d out of range", c1, c2, class)
					}
					seen[class] = true
				}
			}
		}
	}
	for i, ok := range seen {
		if !ok {
			t.Errorf("class %d (%s) never produced", i, HoleClass(i))
		}
	}
}
