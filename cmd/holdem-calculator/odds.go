package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"

	"github.com/LegendaryBo/holdem-calculator/internal/notation"
	"github.com/LegendaryBo/holdem-calculator/internal/randutil"
	"github.com/LegendaryBo/holdem-calculator/internal/simulation"
	"github.com/LegendaryBo/holdem-calculator/poker"
)

// OddsCmd runs a head-to-head Monte Carlo matchup between known hands,
// optionally on a partial board.
type OddsCmd struct {
	Hands         []string `arg:"" required:"" help:"Player hands, e.g. 'AcKd' 'QhJs'"`
	Board         string   `short:"b" help:"Community board cards (e.g. 'Td7s8h')"`
	Possibilities bool     `short:"p" help:"Show per-category probabilities"`
	Trials        int      `short:"t" default:"100000" help:"Number of Monte Carlo trials"`
	Seed          *int64   `help:"Random seed for reproducible results"`
}

func (c *OddsCmd) Run(logger *log.Logger) error {
	hands, err := parseHands(c.Hands)
	if err != nil {
		return err
	}

	var board []poker.Card
	if c.Board != "" {
		board, err = notation.ParseCards(c.Board)
		if err != nil {
			return fmt.Errorf("board: %w", err)
		}
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	logger.Debug("calculating odds", "hands", len(hands), "trials", c.Trials, "seed", seed)

	start := time.Now()
	odds, err := simulation.HeadToHead(hands, board, c.Trials, randutil.New(seed))
	if err != nil {
		return err
	}

	displayOdds(odds, board, c.Trials, c.Possibilities)
	fmt.Printf("\n%d trials in %v\n", c.Trials, time.Since(start).Truncate(time.Millisecond))
	return nil
}

func parseHands(args []string) ([][]poker.Card, error) {
	hands := make([][]poker.Card, 0, len(args))
	for i, arg := range args {
		hand, err := notation.ParseCards(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(hand) != 2 {
			return nil, fmt.Errorf("hand %d: must contain exactly 2 cards, got %d", i+1, len(hand))
		}
		hands = append(hands, hand)
	}
	return hands, nil
}

func displayOdds(odds []simulation.PlayerOdds, board []poker.Card, trials int, showPossibilities bool) {
	if len(board) > 0 {
		fmt.Printf("%s\n", headerStyle.Render("board"))
		fmt.Printf("%s\n\n", notation.FormatCards(board))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("equity"))

	for _, o := range odds {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			handStyle.Render(notation.FormatCards(o.Cards)),
			winStyle.Render(fmt.Sprintf("%.1f%%", float64(o.Wins)/float64(trials)*100)),
			tieStyle.Render(fmt.Sprintf("%.1f%%", float64(o.Ties)/float64(trials)*100)),
			winStyle.Render(fmt.Sprintf("%.1f%%", o.Equity(trials)*100)))
	}
	w.Flush()

	if showPossibilities {
		fmt.Printf("\n")
		displayPossibilities(odds, trials)
	}
}

func displayPossibilities(odds []simulation.PlayerOdds, trials int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s", categoryStyle.Render("hand"))
	for _, o := range odds {
		fmt.Fprintf(w, "\t%s", handStyle.Render(notation.FormatCards(o.Cards)))
	}
	fmt.Fprintf(w, "\n")

	for cat := poker.StraightFlush; ; cat-- {
		fmt.Fprintf(w, "%s", categoryStyle.Render(cat.String()))
		for _, o := range odds {
			pct := float64(o.Categories[cat]) / float64(trials) * 100
			fmt.Fprintf(w, "\t%.1f%%", pct)
		}
		fmt.Fprintf(w, "\n")
		if cat == poker.HighCard {
			break
		}
	}
	w.Flush()
}
