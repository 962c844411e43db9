package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/euchre/internal/deck"
)

// Engine is the game controller for one match. It owns the match and the
// current deal, applies commands from the human seat and drives automated
// seats through their agents. An Engine is not safe for concurrent use; its
// owner is the only writer.
type Engine struct {
	rng       *rand.Rand
	clock     quartz.Clock
	logger    *log.Logger
	bus       EventBus
	history   *EventLog
	agents    [NumSeats]Agent
	humanSeat Seat
	loneRate  float64

	match     *Match
	deal      *Deal
	dealer    Seat
	handNum   int
	lastScore *HandScore
}

// NewEngine creates the controller for a new match. The RNG drives every
// shuffle; pass a seeded one for reproducible matches.
func NewEngine(rng *rand.Rand, logger *log.Logger, opts ...EngineOption) *Engine {
	if rng == nil {
		panic("rng is required for engine creation")
	}
	e := &Engine{
		rng:       rng,
		clock:     quartz.NewReal(),
		logger:    logger.WithPrefix("engine"),
		bus:       NewEventBus(),
		history:   NewEventLog(DefaultLogCapacity),
		humanSeat: 0,
		match:     NewMatch(),
		dealer:    2,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EventBus returns the bus notifications are published on
func (e *Engine) EventBus() EventBus {
	return e.bus
}

// HumanSeat returns the seat driven from outside, or NoSeat.
func (e *Engine) HumanSeat() Seat {
	return e.humanSeat
}

func (e *Engine) publish(kind EventType) {
	e.bus.Publish(NewEvent(kind, e.clock.Now()))
}

func (e *Engine) current() (*Deal, error) {
	if e.match.Over() {
		return nil, ErrMatchOver
	}
	if e.deal == nil {
		return nil, ErrNoDeal
	}
	return e.deal, nil
}

// DealHands passes the deal to the left and deals a fresh hand, superseding
// the previous one.
func (e *Engine) DealHands(opts ...DealOption) error {
	if e.match.Over() {
		return ErrMatchOver
	}

	dealer := e.dealer.Next()
	if e.humanSeat.Valid() {
		opts = append([]DealOption{WithManualDiscard(e.humanSeat)}, opts...)
	}
	if e.loneRate > 0 {
		opts = append([]DealOption{WithLoneChance(e.loneRate)}, opts...)
	}
	deal, err := NewDeal(e.rng, dealer, opts...)
	if err != nil {
		return fmt.Errorf("deal hand: %w", err)
	}

	e.dealer = dealer
	e.deal = deal
	e.handNum++
	e.lastScore = nil

	kitty, _ := deal.Kitty()
	e.history.Addf("Hand %d: %s deals, %s turns up %s", e.handNum, dealer, dealer, kitty)
	for seat := range Seat(NumSeats) {
		if !deal.Active(seat) {
			e.history.Addf("%s sits out while %s plays alone", seat, seat.Partner())
		}
	}
	e.logger.Info("Dealt hand", "hand", e.handNum, "dealer", dealer, "kitty", kitty)
	e.publish(EventTypeHandStarted)
	return nil
}

// OrderUp accepts the kitty suit as trump for the seat (first round).
func (e *Engine) OrderUp(seat Seat) error {
	d, err := e.current()
	if err != nil {
		return err
	}
	kitty, _ := d.Kitty()
	if err := d.OrderUp(seat); err != nil {
		e.logger.Debug("Rejected order up", "seat", seat, "error", err)
		return err
	}

	e.history.Addf("%s orders up %s; %s picks up %s", seat, kitty.Suit.Name(), d.Dealer(), kitty)
	if d.AwaitingDiscard() {
		e.history.Addf("Waiting for %s to discard", d.Dealer())
	} else {
		e.history.Addf("%s discards", d.Dealer())
	}
	e.logger.Debug("Ordered up", "seat", seat, "trump", kitty.Suit.Name())
	return nil
}

// PassBid passes the seat's bidding turn in either round.
func (e *Engine) PassBid(seat Seat) error {
	d, err := e.current()
	if err != nil {
		return err
	}
	round := d.Round()
	if err := d.Pass(seat); err != nil {
		e.logger.Debug("Rejected pass", "seat", seat, "error", err)
		return err
	}

	e.history.Addf("%s passes", seat)
	switch {
	case round == 1 && d.Round() == 2:
		e.history.Addf("%s is turned down", d.TurnedDown().Name())
	case d.Forced():
		e.history.Addf("%s is stuck and calls %s", d.Dealer(), d.Trump().Name())
	}
	e.logger.Debug("Passed", "seat", seat, "round", d.Round())
	return nil
}

// OrderUpSecondRound names trump for the seat in the second round.
func (e *Engine) OrderUpSecondRound(seat Seat, suit deck.Suit) error {
	d, err := e.current()
	if err != nil {
		return err
	}
	if err := d.OrderUpSecondRound(seat, suit); err != nil {
		e.logger.Debug("Rejected call", "seat", seat, "suit", suit.Name(), "error", err)
		return err
	}
	e.history.Addf("%s calls %s", seat, suit.Name())
	e.logger.Debug("Called trump", "seat", seat, "trump", suit.Name())
	return nil
}

// Discard completes a human dealer's pickup.
func (e *Engine) Discard(card deck.Card) error {
	d, err := e.current()
	if err != nil {
		return err
	}
	if err := d.Discard(card); err != nil {
		e.logger.Debug("Rejected discard", "card", card, "error", err)
		return err
	}
	e.history.Addf("%s discards", d.Dealer())
	return nil
}

// PlayCard plays a card for the seat. Illegal plays are rejected and leave
// the hand untouched.
func (e *Engine) PlayCard(seat Seat, card deck.Card) error {
	d, err := e.current()
	if err != nil {
		return err
	}
	resolved, err := d.PlayCard(seat, card)
	if err != nil {
		e.logger.Debug("Rejected play", "seat", seat, "card", card, "error", err)
		return err
	}

	e.history.Addf("%s plays %s", seat, card)
	if !resolved {
		return nil
	}

	last := d.LastTrick()
	e.history.Addf("%s wins the trick with %s", last.Winner.Seat, last.Winner.Card)
	e.logger.Debug("Trick resolved", "winner", last.Winner.Seat, "card", last.Winner.Card)
	e.publish(EventTypeTrickResolved)

	if d.Complete() {
		e.scoreHand(d)
	}
	return nil
}

func (e *Engine) scoreHand(d *Deal) {
	score := ScoreHand(d.Outcome())
	e.match.Apply(score)
	e.lastScore = &score

	scores := e.match.Scores()
	e.history.Addf("%s scores %d (%s, makers took %d): %d-%d",
		score.Team, score.Points, score.Kind, score.MakerTricks, scores[0], scores[1])
	e.logger.Info("Hand scored", "team", score.Team, "points", score.Points, "kind", score.Kind, "scores", scores)
	e.publish(EventTypeHandScored)

	if winner, over := e.match.Winner(); over {
		e.history.Addf("%s wins the match %d-%d", winner, scores[winner], scores[winner.Other()])
		e.logger.Info("Match over", "winner", winner, "hands", e.match.Hands())
		e.publish(EventTypeMatchOver)
	}
}

// Step applies one decision for the automated seat whose turn it is. It
// returns false when nothing was done: the human seat must act, the hand or
// match is over, or the agent had no move.
func (e *Engine) Step() (bool, error) {
	d, err := e.current()
	if err != nil {
		return false, nil
	}

	switch d.Phase() {
	case PhaseBidding:
		seat := d.Bidder()
		agent := e.agentFor(seat)
		if agent == nil {
			return false, nil
		}
		return true, e.applyBid(seat, agent.DecideBid(e.View(seat)))

	case PhasePlaying:
		seat := d.ToAct()
		agent := e.agentFor(seat)
		if agent == nil {
			return false, nil
		}
		legal := d.LegalPlays(seat)
		decision, ok := agent.DecidePlay(e.View(seat), legal)
		if !ok {
			e.logger.Debug("No move available", "seat", seat)
			return false, nil
		}
		if err := e.PlayCard(seat, decision.Card); err != nil {
			e.logger.Error("Failed to apply agent play", "error", err, "seat", seat, "card", decision.Card)
			if len(legal) == 0 {
				return false, fmt.Errorf("%s has no legal play", seat)
			}
			if err := e.PlayCard(seat, legal[0]); err != nil {
				return false, fmt.Errorf("fallback play for %s: %w", seat, err)
			}
		}
		return true, nil
	}

	// Discards are only ever awaited from the human seat.
	return false, nil
}

func (e *Engine) applyBid(seat Seat, decision BidDecision) error {
	var err error
	if decision.Action == Order {
		if e.deal.Round() == 1 {
			err = e.OrderUp(seat)
		} else {
			err = e.OrderUpSecondRound(seat, decision.Suit)
		}
		if err == nil {
			e.logger.Debug("Agent bid", "seat", seat, "reasoning", decision.Reasoning)
			return nil
		}
		e.logger.Error("Failed to apply agent bid", "error", err, "seat", seat, "suit", decision.Suit.Name())
	}
	if err := e.PassBid(seat); err != nil {
		return fmt.Errorf("pass for %s: %w", seat, err)
	}
	return nil
}

// Advance steps automated seats until the human must act, the hand ends or
// an agent has no move. It returns how many decisions were applied.
func (e *Engine) Advance() (int, error) {
	n := 0
	for {
		ok, err := e.Step()
		if err != nil {
			return n, err
		}
		if !ok {
			return n, nil
		}
		n++
	}
}

func (e *Engine) agentFor(seat Seat) Agent {
	if !seat.Valid() || seat == e.humanSeat {
		return nil
	}
	return e.agents[seat]
}
