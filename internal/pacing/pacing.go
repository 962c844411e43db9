// Package pacing slows automated play down to a speed a person can follow.
// Delays run on an injectable clock and never touch game state.
package pacing

import (
	"context"
	"time"

	"github.com/coder/quartz"
)

// Kind names the moment being paced.
type Kind int

const (
	BotTurn Kind = iota
	TrickEnd
	HandEnd
)

func (k Kind) String() string {
	switch k {
	case BotTurn:
		return "bot-turn"
	case TrickEnd:
		return "trick-end"
	case HandEnd:
		return "hand-end"
	default:
		return "unknown"
	}
}

// Delays holds how long each kind of pause lasts. Zero disables the pause.
type Delays struct {
	BotTurn  time.Duration
	TrickEnd time.Duration
	HandEnd  time.Duration
}

// DefaultDelays keeps a completed trick on the table for a moment before it
// is cleared.
func DefaultDelays() Delays {
	return Delays{
		BotTurn:  500 * time.Millisecond,
		TrickEnd: 1500 * time.Millisecond,
		HandEnd:  2 * time.Second,
	}
}

// For returns the delay for kind.
func (d Delays) For(kind Kind) time.Duration {
	switch kind {
	case BotTurn:
		return d.BotTurn
	case TrickEnd:
		return d.TrickEnd
	case HandEnd:
		return d.HandEnd
	}
	return 0
}

// Pacer waits out delays on a clock.
type Pacer struct {
	clock  quartz.Clock
	delays Delays
}

// New creates a pacer. A nil clock uses real time.
func New(clock quartz.Clock, delays Delays) *Pacer {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Pacer{clock: clock, delays: delays}
}

// Delays returns the configured delays.
func (p *Pacer) Delays() Delays { return p.delays }

// Pause blocks for the delay configured for kind, or until ctx is done.
func (p *Pacer) Pause(ctx context.Context, kind Kind) error {
	d := p.delays.For(kind)
	if d <= 0 {
		return ctx.Err()
	}

	fired := make(chan struct{})
	timer := p.clock.AfterFunc(d, func() {
		close(fired)
	}, "pacing", kind.String())
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-fired:
		return nil
	}
}
