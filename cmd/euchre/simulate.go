package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/euchre/internal/bot"
	"github.com/lox/euchre/internal/randutil"
	"github.com/lox/euchre/internal/simulator"
)

// SimulateCmd plays bot-only matches between two difficulty tiers
type SimulateCmd struct {
	Matches   int     `short:"n" default:"1000" help:"Number of matches to play"`
	Team      string  `default:"hard" enum:"easy,medium,hard" help:"Difficulty of the measured team (seats 0 and 2)"`
	Opponent  string  `short:"o" default:"medium" enum:"easy,medium,hard" help:"Difficulty of the opposing team"`
	Seed      *int64  `help:"Deterministic RNG seed (optional)"`
	Workers   int     `short:"w" help:"Concurrent matches (default: CPU count, at most 8)"`
	Duplicate bool    `help:"Replay every deal with the teams swapped to cancel out card luck"`
	MaxHands  int     `default:"500" help:"Abandon a match that runs longer than this many hands"`
	LoneRate  float64 `help:"Chance (0-1) that a hand is dealt as a lone hand"`
	Debug     bool    `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	level := log.WarnLevel
	if c.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	team, err := bot.ParseDifficulty(c.Team)
	if err != nil {
		return err
	}
	opponent, err := bot.ParseDifficulty(c.Opponent)
	if err != nil {
		return err
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	}
	seed = randutil.Seed(seed)

	sim := simulator.New(simulator.Config{
		Matches:   c.Matches,
		Sides:     [2]bot.Difficulty{team, opponent},
		Seed:      seed,
		Workers:   c.Workers,
		Duplicate: c.Duplicate,
		MaxHands:  c.MaxHands,
		LoneRate:  c.LoneRate,
		Logger:    logger,
	})

	fmt.Println(titleStyle.Render("♠ ♥ Euchre Simulation ♦ ♣"))
	fmt.Printf("Starting simulation: %d matches, %s (seed: %d)\n", c.Matches, sim.Describe(), seed)

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	printResults(os.Stdout, stats, sim.Describe(), time.Since(start))
	return nil
}
