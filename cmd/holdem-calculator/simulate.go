package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"

	"github.com/LegendaryBo/holdem-calculator/internal/simulation"
)

// SimulateCmd deals random full-table hands and tabulates how often each
// of the 169 starting-hand classes wins, for every table size at once.
type SimulateCmd struct {
	Config  string `short:"c" default:"simulation.hcl" help:"Simulation config file (HCL)"`
	Players int    `help:"Number of players at the table (overrides config)"`
	Trials  int    `help:"Number of hands to simulate (overrides config)"`
	Workers int    `help:"Number of parallel workers (overrides config, 0 = all CPUs)"`
	Seed    *int64 `help:"Random seed for reproducible results"`
}

func (c *SimulateCmd) Run(logger *log.Logger) error {
	cfg, err := simulation.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Players != 0 {
		cfg.Simulation.Players = c.Players
	}
	if c.Trials != 0 {
		cfg.Simulation.Trials = c.Trials
	}
	if c.Workers != 0 {
		cfg.Simulation.Workers = c.Workers
	}
	if c.Seed != nil {
		cfg.Simulation.Seed = *c.Seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("starting simulation",
		"players", cfg.Simulation.Players,
		"trials", cfg.Simulation.Trials,
		"workers", cfg.Simulation.Workers,
		"seed", seed)

	ctx := setupSignalHandler()
	start := time.Now()
	results, err := simulation.NewSimulator(cfg.Simulation).Run(ctx, seed)
	if err != nil {
		return err
	}
	logger.Debug("simulation finished", "duration", time.Since(start).Truncate(time.Millisecond))

	displaySimulation(results)
	fmt.Printf("\n%d hands in %v\n", results.Trials, time.Since(start).Truncate(time.Millisecond))
	return nil
}

func displaySimulation(results *simulation.Results) {
	classes := make([]simulation.HoleClass, simulation.NumHoleClasses)
	for i := range classes {
		classes[i] = simulation.HoleClass(i)
	}
	// Best hands first, judged at the full table.
	sort.SliceStable(classes, func(i, j int) bool {
		a := results.Classes[classes[i]]
		b := results.Classes[classes[j]]
		return a.WinRate(results.Players) > b.WinRate(results.Players)
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s", headerStyle.Render("hand"))
	for p := 2; p <= results.Players; p++ {
		fmt.Fprintf(w, "\t%s", headerStyle.Render(fmt.Sprintf("%dp win", p)))
		fmt.Fprintf(w, "\t%s", headerStyle.Render("tie"))
	}
	fmt.Fprintf(w, "\n")

	for _, class := range classes {
		stats := &results.Classes[class]
		fmt.Fprintf(w, "%s", handStyle.Render(class.String()))
		for p := 2; p <= results.Players; p++ {
			fmt.Fprintf(w, "\t%s", winStyle.Render(fmt.Sprintf("%.1f%%", stats.WinRate(p)*100)))
			fmt.Fprintf(w, "\t%s", tieStyle.Render(fmt.Sprintf("%.1f%%", stats.TieRate(p)*100)))
		}
		fmt.Fprintf(w, "\n")
	}

	w.Flush()
}
