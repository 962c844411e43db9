package simulator

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/euchre/internal/bot"
	"github.com/lox/euchre/internal/game"
	"github.com/lox/euchre/internal/randutil"
	"github.com/lox/euchre/internal/statistics"
)

// DefaultMaxHands bounds a single match. Real matches end far sooner.
const DefaultMaxHands = 500

// Config holds configuration for running simulations
type Config struct {
	Matches   int
	Sides     [2]bot.Difficulty // Side 0 is the side statistics are reported for
	Seed      int64
	Workers   int
	Duplicate bool // Replay every seed with the sides swapped to cancel out card luck
	MaxHands  int
	LoneRate  float64 // Chance that a hand is dealt with one seat sitting out
	Logger    *log.Logger
}

// Simulator runs bot-only euchre matches
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = min(runtime.NumCPU(), 8)
	}
	if config.MaxHands <= 0 {
		config.MaxHands = DefaultMaxHands
	}
	return &Simulator{config: config, logger: config.Logger.WithPrefix("simulator")}
}

// Describe names the matchup, e.g. "hard vs easy (duplicate)".
func (s *Simulator) Describe() string {
	desc := fmt.Sprintf("%s vs %s", s.config.Sides[0], s.config.Sides[1])
	if s.config.Duplicate {
		desc += " (duplicate)"
	}
	if s.config.LoneRate > 0 {
		desc += fmt.Sprintf(" (%.0f%% lone)", s.config.LoneRate*100)
	}
	return desc
}

// Run plays every match and returns the combined statistics. Results are
// gathered in match order, so a seed gives the same statistics whatever the
// worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Matches <= 0 {
		return nil, fmt.Errorf("invalid match count: %d", s.config.Matches)
	}
	if s.config.LoneRate < 0 || s.config.LoneRate > 1 {
		return nil, fmt.Errorf("invalid lone rate: %g", s.config.LoneRate)
	}

	perSeed := 1
	if s.config.Duplicate {
		perSeed = 2
	}
	results := make([]statistics.MatchResult, s.config.Matches*perSeed)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := range results {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := s.PlayMatch(ctx, i/perSeed, i%perSeed == 1)
			if err != nil {
				return fmt.Errorf("match %d: %w", i+1, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}

	// Validate statistics before returning
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Simulation complete", "matches", stats.Matches, "hands", stats.Hands, "matchup", s.Describe())
	return stats, nil
}

// PlayMatch plays match n to completion. When swapped, side 0's bots take
// seats 1 and 3 instead of 0 and 2; the result is still reported for side 0.
func (s *Simulator) PlayMatch(ctx context.Context, n int, swapped bool) (statistics.MatchResult, error) {
	seed := randutil.Derive(s.config.Seed, n)
	rng := randutil.New(seed)

	side := func(t game.Team) int {
		if swapped {
			return int(t.Other())
		}
		return int(t)
	}

	opts := []game.EngineOption{
		game.WithHumanSeat(game.NoSeat),
		game.WithFirstDealer(game.Seat(n % game.NumSeats)),
		game.WithLoneRate(s.config.LoneRate),
	}
	for seat := range game.Seat(game.NumSeats) {
		difficulty := s.config.Sides[side(seat.Team())]
		opts = append(opts, game.WithAgent(seat, bot.New(difficulty, rng, s.config.Logger)))
	}
	engine := game.NewEngine(rng, s.config.Logger, opts...)

	result := statistics.MatchResult{Seed: seed}
	unsubscribe := engine.EventBus().Subscribe(game.SubscriberFunc(func(event game.GameEvent) {
		if event.EventType() != game.EventTypeHandScored {
			return
		}
		tally(&result, engine.LastScore(), side)
	}))
	defer unsubscribe()

	for !engine.Match().Over() {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if engine.HandNumber() >= s.config.MaxHands {
			return result, fmt.Errorf("no winner after %d hands (seed: %d)", s.config.MaxHands, seed)
		}
		if err := engine.DealHands(); err != nil {
			return result, err
		}
		if _, err := engine.Advance(); err != nil {
			return result, err
		}
		if engine.Phase() != game.PhaseHandOver && engine.Phase() != game.PhaseMatchOver {
			return result, fmt.Errorf("hand %d stalled in %s (seed: %d)", engine.HandNumber(), engine.Phase(), seed)
		}
	}

	winner, _ := engine.Winner()
	scores := engine.Scores()
	result.Winner = side(winner)
	result.Scores[side(0)] = scores[0]
	result.Scores[side(1)] = scores[1]
	result.Hands = engine.HandNumber()

	s.logger.Debug("Match complete", "match", n, "swapped", swapped, "winner", result.Winner, "scores", result.Scores)
	return result, nil
}

func tally(result *statistics.MatchResult, score *game.HandScore, side func(game.Team) int) {
	if score == nil {
		return
	}
	result.Teams[side(score.Maker)].Calls++
	t := &result.Teams[side(score.Team)]
	switch score.Kind {
	case game.Made:
		t.Made++
	case game.March:
		t.Marches++
	case game.LoneMarch:
		t.LoneMarches++
	case game.Euchre:
		t.Euchres++
	case game.LoneEuchre:
		t.LoneEuchres++
	}
}
