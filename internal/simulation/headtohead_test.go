package simulation

import (
	"strings"
	"testing"

	"github.com/LegendaryBo/holdem-calculator/internal/notation"
	"github.com/LegendaryBo/holdem-calculator/internal/randutil"
	"github.com/LegendaryBo/holdem-calculator/poker"
)

func holes(t *testing.T, hands ...string) [][]poker.Card {
	t.Helper()
	out := make([][]poker.Card, len(hands))
	for i, h := range hands {
		out[i] = notation.MustParseCards(h)
	}
	return out
}

func TestHeadToHeadAcesVersusKings(t *testing.T) {
	odds, err := HeadToHead(holes(t, "AsAh", "KsKh"), nil, 20000, randutil.New(1))
	if err != nil {
		t.Fatal(err)
	}

	aa := odds[0].Equity(20000)
	kk := odds[1].Equity(20000)
	if aa < 0.76 || aa > 0.88 {
		t.Errorf("AA equity = %.3f, want roughly 0.82", aa)
	}
	if got := aa + kk; got < 0.999 || got > 1.001 {
		t.Errorf("equities sum to %.4f, want 1", got)
	}
}

func TestHeadToHeadSharedBoardTies(t *testing.T) {
	// The board is a royal flush; every trial splits.
	board := notation.MustParseCards("Ah Kh Qh Jh Th")
	odds, err := HeadToHead(holes(t, "2c3c", "2d3d"), board, 100, randutil.New(1))
	if err != nil {
		t.Fatal(err)
	}
	for i, o := range odds {
		if o.Wins != 0 || o.Ties != 100 {
			t.Errorf("player %d: wins=%d ties=%d, want 0 wins 100 ties", i+1, o.Wins, o.Ties)
		}
		if eq := o.Equity(100); eq != 0.5 {
			t.Errorf("player %d: equity = %v, want 0.5", i+1, eq)
		}
		if o.Categories[poker.StraightFlush] != 100 {
			t.Errorf("player %d: straight flush count = %d, want 100", i+1, o.Categories[poker.StraightFlush])
		}
	}
}

func TestHeadToHeadDominatedOnFullBoard(t *testing.T) {
	// Full board, no cards left to draw: the result is exact.
	board := notation.MustParseCards("2c 7d 9h Js Qc")
	odds, err := HeadToHead(holes(t, "AsAh", "KsKh"), board, 50, randutil.New(1))
	if err != nil {
		t.Fatal(err)
	}
	if odds[0].Wins != 50 || odds[1].Wins != 0 {
		t.Errorf("wins = %d/%d, want 50/0", odds[0].Wins, odds[1].Wins)
	}
	if odds[0].Categories[poker.OnePair] != 50 {
		t.Errorf("AA pair count = %d, want 50", odds[0].Categories[poker.OnePair])
	}
}

func TestHeadToHeadRejectsBadInput(t *testing.T) {
	rng := randutil.New(1)

	tests := []struct {
		name   string
		hands  [][]poker.Card
		board  []poker.Card
		trials int
		errSub string
	}{
		{"one hand", holes(t, "AsAh"), nil, 100, "at least 2"},
		{"duplicate across hands", holes(t, "AsAh", "AsKh"), nil, 100, "duplicate card As"},
		{"duplicate on board", holes(t, "AsAh", "KsKh"), notation.MustParseCards("As2c3c"), 100, "duplicate card As"},
		{"three card hand", [][]poker.Card{notation.MustParseCards("As Ah Kd"), notation.MustParseCards("QsQh")}, nil, 100, "exactly 2"},
		{"oversized board", holes(t, "AsAh", "KsKh"), notation.MustParseCards("2c3c4c5c6c7c"), 100, "at most 5"},
		{"zero trials", holes(t, "AsAh", "KsKh"), nil, 0, "trials"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HeadToHead(tt.hands, tt.board, tt.trials, rng)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errSub) {
				t.Errorf("error %q does not mention %q", err, tt.errSub)
			}
		})
	}
}
