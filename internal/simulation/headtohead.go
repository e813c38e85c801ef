package simulation

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/LegendaryBo/holdem-calculator/poker"
)

// cardSet is a 52-bit set used to detect duplicate cards across the
// players' hole cards and the board.
type cardSet uint64

func cardBit(c poker.Card) cardSet {
	return 1 << (uint(c.Suit)*13 + uint(c.Rank))
}

func (cs *cardSet) add(c poker.Card) bool {
	b := cardBit(c)
	if *cs&b != 0 {
		return false
	}
	*cs |= b
	return true
}

// PlayerOdds holds the Monte Carlo outcome for one player in a
// head-to-head matchup.
type PlayerOdds struct {
	Cards []poker.Card
	Wins  int
	Ties  int

	// tieEquity accumulates the fractional pot share from split pots,
	// 1/k per k-way tie.
	tieEquity float64

	// Categories counts how often the player's final 7-card hand made
	// each category, indexed by poker.Category.
	Categories [poker.StraightFlush + 1]int
}

// Equity returns the player's share of the pot over the run, counting a
// k-way tie as 1/k of a win.
func (p *PlayerOdds) Equity(trials int) float64 {
	if trials == 0 {
		return 0
	}
	return (float64(p.Wins) + p.tieEquity) / float64(trials)
}

// HeadToHead estimates each player's odds given known hole cards and an
// optional partial board. The remaining board cards are drawn uniformly
// from the unseen portion of the deck each trial.
func HeadToHead(holes [][]poker.Card, board []poker.Card, trials int, rng *rand.Rand) ([]PlayerOdds, error) {
	if len(holes) < 2 {
		return nil, fmt.Errorf("need at least 2 hands, got %d", len(holes))
	}
	if len(holes) > MaxPlayers {
		return nil, fmt.Errorf("at most %d hands supported, got %d", MaxPlayers, len(holes))
	}
	if len(board) > 5 {
		return nil, fmt.Errorf("board has %d cards, at most 5 allowed", len(board))
	}
	if trials <= 0 {
		return nil, fmt.Errorf("trials must be positive, got %d", trials)
	}

	var used cardSet
	for i, hole := range holes {
		if len(hole) != 2 {
			return nil, fmt.Errorf("hand %d has %d cards, exactly 2 required", i+1, len(hole))
		}
		for _, c := range hole {
			if !used.add(c) {
				return nil, fmt.Errorf("duplicate card %s", c)
			}
		}
	}
	for _, c := range board {
		if !used.add(c) {
			return nil, fmt.Errorf("duplicate card %s", c)
		}
	}

	// Unseen cards, sampled without replacement by the swap trick each
	// trial.
	var unseen []poker.Card
	for s := poker.Clubs; s <= poker.Spades; s++ {
		for r := poker.Two; r <= poker.Ace; r++ {
			c := poker.NewCard(r, s)
			if used&cardBit(c) == 0 {
				unseen = append(unseen, c)
			}
		}
	}

	odds := make([]PlayerOdds, len(holes))
	playerHands := make([]poker.Hand, len(holes))
	for i, hole := range holes {
		odds[i].Cards = hole
		playerHands[i] = poker.NewHand(hole...)
	}
	baseBoard := poker.NewHand(board...)
	needed := 5 - len(board)

	leaders := make([]int, 0, len(holes))

	for t := 0; t < trials; t++ {
		full := baseBoard
		for k := 0; k < needed; k++ {
			idx := k + rng.IntN(len(unseen)-k)
			unseen[k], unseen[idx] = unseen[idx], unseen[k]
			full = full.AddCard(unseen[k])
		}

		leaders = leaders[:0]
		var best poker.HandStrength
		for i, ph := range playerHands {
			s := poker.Evaluate(full.Add(ph))
			odds[i].Categories[s.Category()]++
			switch {
			case i == 0 || s.Beats(best):
				best = s
				leaders = append(leaders[:0], i)
			case s == best:
				leaders = append(leaders, i)
			}
		}

		if len(leaders) == 1 {
			odds[leaders[0]].Wins++
		} else {
			share := 1 / float64(len(leaders))
			for _, i := range leaders {
				odds[i].Ties++
				odds[i].tieEquity += share
			}
		}
	}

	return odds, nil
}
