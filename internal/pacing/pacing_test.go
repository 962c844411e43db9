package pacing

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPauseWaitsForClock(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mockClock := quartz.NewMock(t)
	delays := Delays{BotTurn: 500 * time.Millisecond}
	p := New(mockClock, delays)

	done := make(chan error, 1)
	go func() { done <- p.Pause(ctx, BotTurn) }()

	// Advancing by exactly the delay can never overshoot the pause's timer,
	// whether or not it has been registered yet.
	var err error
	require.Eventually(t, func() bool {
		select {
		case err = <-done:
			return true
		default:
			mockClock.Advance(delays.BotTurn).MustWait(ctx)
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
	assert.NoError(t, err)
}

func TestPauseHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := New(quartz.NewMock(t), Delays{HandEnd: time.Hour})

	done := make(chan error, 1)
	go func() { done <- p.Pause(ctx, HandEnd) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("pause ignored cancellation")
	}
}

func TestZeroDelayReturnsImmediately(t *testing.T) {
	p := New(quartz.NewMock(t), Delays{})
	for _, kind := range []Kind{BotTurn, TrickEnd, HandEnd} {
		assert.NoError(t, p.Pause(context.Background(), kind))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Pause(ctx, BotTurn), context.Canceled)
}

func TestDefaultDelays(t *testing.T) {
	d := DefaultDelays()
	assert.Equal(t, 1500*time.Millisecond, d.For(TrickEnd))
	assert.Equal(t, d.BotTurn, d.For(BotTurn))
	assert.Zero(t, d.For(Kind(9)))
	assert.Equal(t, "trick-end", TrickEnd.String())
}
