package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/log"

	"github.com/LegendaryBo/holdem-calculator/internal/notation"
	"github.com/LegendaryBo/holdem-calculator/poker"
)

// EvalCmd classifies one or more complete hands and, when given several,
// declares the winner.
type EvalCmd struct {
	Hands []string `arg:"" required:"" help:"Hands of 5 to 7 cards, e.g. 'AcKcQcJcTc'"`
}

// validateDistinct rejects a hand naming the same card twice. Hand
// packing is additive and silently corrupts on repeated cards, so user
// notation must be screened before packing.
func validateDistinct(cards []poker.Card) error {
	seen := make(map[poker.Card]bool, len(cards))
	for _, card := range cards {
		if seen[card] {
			return fmt.Errorf("duplicate card %s", card)
		}
		seen[card] = true
	}
	return nil
}

func (c *EvalCmd) Run(logger *log.Logger) error {
	type evaluated struct {
		cards    []poker.Card
		strength poker.HandStrength
	}

	hands := make([]evaluated, 0, len(c.Hands))
	for i, arg := range c.Hands {
		cards, err := notation.ParseCards(arg)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(cards) < 5 || len(cards) > 7 {
			return fmt.Errorf("hand %d: must contain 5 to 7 cards, got %d", i+1, len(cards))
		}
		if err := validateDistinct(cards); err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		hand := poker.NewHand(cards...)
		hands = append(hands, evaluated{cards: cards, strength: poker.Evaluate(hand)})
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("hand"), headerStyle.Render("result"))
	for _, h := range hands {
		fmt.Fprintf(w, "%s\t%s\n",
			handStyle.Render(notation.FormatCards(h.cards)),
			categoryStyle.Render(h.strength.String()))
	}
	w.Flush()

	if len(hands) > 1 {
		best := hands[0].strength
		for _, h := range hands[1:] {
			if h.strength.Beats(best) {
				best = h.strength
			}
		}
		var winners []string
		for _, h := range hands {
			if h.strength == best {
				winners = append(winners, notation.FormatCards(h.cards))
			}
		}
		fmt.Printf("\n")
		if len(winners) == 1 {
			fmt.Printf("%s %s\n", headerStyle.Render("winner:"), handStyle.Render(winners[0]))
		} else {
			fmt.Printf("%s\n", headerStyle.Render("tie between:"))
			for _, win := range winners {
				fmt.Printf("  %s\n", handStyle.Render(win))
			}
		}
	}
	return nil
}
