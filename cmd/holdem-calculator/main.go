package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Verbose bool             `short:"v" help:"Enable debug logging"`
	Version kong.VersionFlag `help:"Show version"`

	Simulate SimulateCmd `cmd:"" help:"Simulate full tables and rank the 169 starting hands"`
	Odds     OddsCmd     `cmd:"" help:"Calculate head-to-head odds for known hands"`
	Eval     EvalCmd     `cmd:"" help:"Evaluate 5-7 card hands and pick the winner"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-calculator"),
		kong.Description("Texas hold 'em hand evaluator and Monte Carlo odds calculator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
