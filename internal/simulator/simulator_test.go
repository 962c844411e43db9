package simulator

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/euchre/internal/bot"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestNew(t *testing.T) {
	s := New(Config{Matches: 3, Logger: quietLogger()})
	assert.Positive(t, s.config.Workers)
	assert.LessOrEqual(t, s.config.Workers, 8)
	assert.Equal(t, DefaultMaxHands, s.config.MaxHands)
}

func TestRun(t *testing.T) {
	s := New(Config{
		Matches: 12,
		Sides:   [2]bot.Difficulty{bot.Hard, bot.Easy},
		Seed:    12345,
		Workers: 4,
		Logger:  quietLogger(),
	})

	stats, err := s.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, stats.Validate())

	assert.Equal(t, 12, stats.Matches)
	assert.Equal(t, 12, stats.Teams[0].Wins+stats.Teams[1].Wins)
	assert.GreaterOrEqual(t, stats.ShortestMatch, 3, "ten points take at least three hands")
	for team := range stats.Teams {
		assert.Equal(t, stats.Teams[team].Points, stats.Teams[team].TeamTally.Points())
	}
	assert.Equal(t, "hard vs easy", s.Describe())
}

func TestRunIsDeterministic(t *testing.T) {
	run := func(workers int) []float64 {
		s := New(Config{
			Matches: 8,
			Sides:   [2]bot.Difficulty{bot.Medium, bot.Hard},
			Seed:    99,
			Workers: workers,
			Logger:  quietLogger(),
		})
		stats, err := s.Run(context.Background())
		require.NoError(t, err)
		return stats.Values
	}
	assert.Equal(t, run(1), run(4))
}

func TestRunDuplicate(t *testing.T) {
	s := New(Config{
		Matches:   5,
		Sides:     [2]bot.Difficulty{bot.Medium, bot.Medium},
		Seed:      7,
		Workers:   2,
		Duplicate: true,
		Logger:    quietLogger(),
	})
	stats, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, stats.Matches)
	assert.Equal(t, "medium vs medium (duplicate)", s.Describe())
}

func TestPlayMatchSwappedReportsForSideZero(t *testing.T) {
	s := New(Config{Sides: [2]bot.Difficulty{bot.Hard, bot.Easy}, Seed: 3, Logger: quietLogger()})

	r, err := s.PlayMatch(context.Background(), 0, true)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, r.Scores[r.Winner], 10)
	assert.Less(t, r.Scores[1-r.Winner], 10)
	for side := range r.Teams {
		assert.Equal(t, r.Scores[side], r.Teams[side].Points())
	}
	assert.Equal(t, r.Hands, r.Teams[0].Calls+r.Teams[1].Calls)
}

func TestRunWithLoneHands(t *testing.T) {
	s := New(Config{
		Matches:  20,
		Sides:    [2]bot.Difficulty{bot.Hard, bot.Medium},
		Seed:     77,
		LoneRate: 1,
		Logger:   quietLogger(),
	})

	stats, err := s.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, stats.Validate())

	var lone int
	for _, team := range stats.Teams {
		lone += team.LoneMarches + team.LoneEuchres
	}
	assert.Positive(t, lone)
	assert.Equal(t, "hard vs medium (100% lone)", s.Describe())
}

func TestRunErrors(t *testing.T) {
	_, err := New(Config{Logger: quietLogger()}).Run(context.Background())
	assert.ErrorContains(t, err, "invalid match count")

	_, err = New(Config{Matches: 1, LoneRate: 2, Logger: quietLogger()}).Run(context.Background())
	assert.ErrorContains(t, err, "invalid lone rate")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = New(Config{Matches: 4, Logger: quietLogger()}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = New(Config{Matches: 1, MaxHands: 1, Logger: quietLogger()}).Run(context.Background())
	assert.ErrorContains(t, err, "no winner after 1 hands")
}
