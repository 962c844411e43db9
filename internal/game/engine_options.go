package game

import "github.com/coder/quartz"

// EngineOption configures an Engine during creation.
type EngineOption func(*Engine)

// WithClock sets the clock used to timestamp events. Defaults to the real clock.
func WithClock(clock quartz.Clock) EngineOption {
	return func(e *Engine) { e.clock = clock }
}

// WithEventBus publishes notifications on bus instead of a private bus.
func WithEventBus(bus EventBus) EngineOption {
	return func(e *Engine) { e.bus = bus }
}

// WithAgent hands a seat to an automated agent.
func WithAgent(seat Seat, agent Agent) EngineOption {
	return func(e *Engine) {
		if seat.Valid() {
			e.agents[seat] = agent
		}
	}
}

// WithHumanSeat sets the seat driven from outside the engine. NoSeat makes
// every seat automated. Defaults to seat 0.
func WithHumanSeat(seat Seat) EngineOption {
	return func(e *Engine) { e.humanSeat = seat }
}

// WithFirstDealer sets who deals the first hand. Defaults to seat 3, so seat 0
// leads the first hand.
func WithFirstDealer(seat Seat) EngineOption {
	return func(e *Engine) {
		if seat.Valid() {
			e.dealer = (seat + NumSeats - 1) % NumSeats
		}
	}
}

// WithLogCapacity bounds the event log.
func WithLogCapacity(n int) EngineOption {
	return func(e *Engine) { e.history = NewEventLog(n) }
}

// WithLoneRate deals each hand as a lone hand with probability p. Explicit
// WithLoneSeat deal options still take precedence.
func WithLoneRate(p float64) EngineOption {
	return func(e *Engine) { e.loneRate = p }
}
