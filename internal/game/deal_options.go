package game

import "github.com/lox/euchre/internal/deck"

// DealOption configures a Deal during creation.
type DealOption func(*dealConfig)

type dealConfig struct {
	deck          *deck.Deck
	loneSeat      Seat
	loneChance    float64
	manualDiscard [NumSeats]bool
}

// WithDeck sets a specific pre-shuffled deck.
// This overrides the RNG for deck creation.
func WithDeck(d *deck.Deck) DealOption {
	return func(c *dealConfig) {
		c.deck = d
	}
}

// WithLoneSeat deals the hand with seat playing alone: its partner is dealt
// no cards and sits the hand out.
func WithLoneSeat(seat Seat) DealOption {
	return func(c *dealConfig) {
		c.loneSeat = seat
	}
}

// WithLoneChance deals a lone hand with probability p unless WithLoneSeat
// already chose one. The lone seat is drawn from the three seats whose
// partner is not dealing.
func WithLoneChance(p float64) DealOption {
	return func(c *dealConfig) {
		c.loneChance = p
	}
}

// WithManualDiscard makes the seat choose its own discard when it deals and
// is ordered up, instead of discarding its weakest card automatically.
func WithManualDiscard(seat Seat) DealOption {
	return func(c *dealConfig) {
		if seat.Valid() {
			c.manualDiscard[seat] = true
		}
	}
}
