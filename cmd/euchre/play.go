package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/euchre/internal/bot"
	"github.com/lox/euchre/internal/config"
	"github.com/lox/euchre/internal/game"
	"github.com/lox/euchre/internal/pacing"
	"github.com/lox/euchre/internal/randutil"
	"github.com/lox/euchre/internal/session"
	"github.com/lox/euchre/internal/tui"
)

// PlayCmd runs an interactive match
type PlayCmd struct {
	Config     string `short:"c" default:"${config_file}" help:"Path to HCL config file (optional)"`
	Seat       *int   `help:"Seat to play from, 0-3, or -1 to watch the bots"`
	Difficulty string `short:"d" help:"Difficulty for every bot seat (easy, medium, hard)"`
	Seed       *int64 `help:"Deterministic RNG seed (optional)"`
	LogFile    string `help:"Write logs to this file instead of the configured one"`
	Debug      bool   `help:"Enable debug logging"`
	Fast       bool   `help:"Skip the pauses between bot moves, tricks and hands"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	c.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           cfg.LogLevel(),
	})

	seed := randutil.Seed(cfg.Match.Seed)
	logger.Info("Starting match", "seed", seed, "human", cfg.HumanSeat(), "difficulty", cfg.Match.Difficulty)

	engine := newEngine(cfg, randutil.New(seed), logger)
	pacer := pacing.New(quartz.NewReal(), cfg.Delays())

	model := tui.NewTUIModel(logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	bridge := tui.NewBridge(model, program.Send)
	sess := session.New(engine, pacer, bridge, logger,
		session.WithHintDifficulty(cfg.Difficulty(game.NoSeat)))

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		err := sess.Run(ctx)
		if !engine.Match().Over() {
			bridge.Close()
		}
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}
	if winner, over := engine.Winner(); over {
		scores := engine.Scores()
		fmt.Printf("%s won %d-%d after %d hands.\n", winner, scores[winner], scores[winner.Other()], engine.HandNumber())
	}
	return nil
}

// applyOverrides lets flags win over the config file.
func (c *PlayCmd) applyOverrides(cfg *config.Config) {
	if c.Seat != nil {
		cfg.Match.HumanSeat = *c.Seat
	}
	if c.Difficulty != "" {
		cfg.Match.Difficulty = c.Difficulty
		cfg.Seats = nil
	}
	if c.Seed != nil {
		cfg.Match.Seed = *c.Seed
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if c.Debug {
		cfg.Log.Level = "debug"
	}
	if c.Fast {
		zero := 0
		cfg.Pacing.BotDelay = &zero
		cfg.Pacing.TrickPause = &zero
		cfg.Pacing.HandPause = &zero
	}
}

// newEngine seats a bot at every seat but the human's. The hard tier signals
// to the human's partner.
func newEngine(cfg *config.Config, rng *rand.Rand, logger *log.Logger) *game.Engine {
	human := cfg.HumanSeat()
	signalSeat := bot.DefaultSignalSeat
	if human.Valid() {
		signalSeat = human.Partner()
	}

	opts := []game.EngineOption{
		game.WithHumanSeat(human),
		game.WithFirstDealer(cfg.FirstDealer()),
		game.WithLogCapacity(cfg.Match.LogCapacity),
		game.WithLoneRate(cfg.Match.LoneRate),
	}
	for seat := range game.Seat(game.NumSeats) {
		if seat == human {
			continue
		}
		agent := bot.New(cfg.Difficulty(seat), rng, logger, bot.WithSignalSeat(signalSeat))
		opts = append(opts, game.WithAgent(seat, agent))
	}
	return game.NewEngine(rng, logger, opts...)
}
