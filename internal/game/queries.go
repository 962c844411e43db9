package game

import "github.com/lox/euchre/internal/deck"

// Snapshot is everything a presentation layer shows for one seat's point of view.
type Snapshot struct {
	View
	HandNumber      int
	Phase           Phase
	ToAct           Seat
	Bidder          Seat
	AwaitingDiscard bool
	Legal           []deck.Card
	HandSizes       [NumSeats]int
	LastTrick       *CompletedTrick
	LastScore       *HandScore
	Winner          Team
	MatchOver       bool
	Log             []string
}

// Deal returns the current deal, or nil before the first DealHands.
func (e *Engine) Deal() *Deal { return e.deal }

// Phase returns the stage of the match.
func (e *Engine) Phase() Phase {
	switch {
	case e.match.Over():
		return PhaseMatchOver
	case e.deal == nil:
		return PhaseWaiting
	default:
		return e.deal.Phase()
	}
}

// Trump returns trump for the current hand, or deck.NoSuit.
func (e *Engine) Trump() deck.Suit {
	if e.deal == nil {
		return deck.NoSuit
	}
	return e.deal.Trump()
}

// Trick returns the plays in the trick under way.
func (e *Engine) Trick() []Play {
	if e.deal == nil {
		return nil
	}
	return e.deal.Trick()
}

// LastTrick returns the most recently resolved trick of this hand.
func (e *Engine) LastTrick() *CompletedTrick {
	if e.deal == nil {
		return nil
	}
	return e.deal.LastTrick()
}

// Hand returns a copy of a seat's cards.
func (e *Engine) Hand(seat Seat) []deck.Card {
	if e.deal == nil {
		return nil
	}
	return e.deal.Hand(seat)
}

// Hands returns a copy of every seat's cards.
func (e *Engine) Hands() [NumSeats][]deck.Card {
	var hands [NumSeats][]deck.Card
	for seat := range Seat(NumSeats) {
		hands[seat] = e.Hand(seat)
	}
	return hands
}

// Kitty returns the face-up kitty while it is on offer.
func (e *Engine) Kitty() (deck.Card, bool) {
	if e.deal == nil {
		return deck.Card{}, false
	}
	return e.deal.Kitty()
}

// BiddingRound returns 1 or 2 while bidding, otherwise 0.
func (e *Engine) BiddingRound() int {
	if e.deal == nil {
		return 0
	}
	return e.deal.Round()
}

// CurrentBidder returns the seat whose bid it is, or NoSeat.
func (e *Engine) CurrentBidder() Seat {
	if e.deal == nil {
		return NoSeat
	}
	return e.deal.Bidder()
}

// AwaitingDiscard reports whether play waits on the human dealer's discard.
func (e *Engine) AwaitingDiscard() bool {
	return e.deal != nil && e.deal.AwaitingDiscard()
}

// AvailableSuits returns the suits that may be called in the second round.
func (e *Engine) AvailableSuits() []deck.Suit {
	if e.deal == nil {
		return append([]deck.Suit(nil), deck.Suits...)
	}
	return e.deal.AvailableSuits()
}

// LegalPlays returns the cards the seat may play now.
func (e *Engine) LegalPlays(seat Seat) []deck.Card {
	if e.deal == nil || e.deal.Phase() != PhasePlaying {
		return nil
	}
	return e.deal.LegalPlays(seat)
}

// ToAct returns the seat due to play a card, or NoSeat.
func (e *Engine) ToAct() Seat {
	if e.deal == nil {
		return NoSeat
	}
	return e.deal.ToAct()
}

// Dealer returns the dealer of the current hand.
func (e *Engine) Dealer() Seat {
	if e.deal == nil {
		return NoSeat
	}
	return e.deal.Dealer()
}

// Leader returns the seat leading the current trick.
func (e *Engine) Leader() Seat {
	if e.deal == nil {
		return NoSeat
	}
	return e.deal.Leader()
}

// TrumpCaller returns the seat that made trump this hand.
func (e *Engine) TrumpCaller() Seat {
	if e.deal == nil {
		return NoSeat
	}
	return e.deal.Caller()
}

// TrickCounts returns the tricks each seat has taken this hand.
func (e *Engine) TrickCounts() [NumSeats]int {
	if e.deal == nil {
		return [NumSeats]int{}
	}
	return e.deal.Tricks()
}

// Scores returns match points for each team.
func (e *Engine) Scores() [2]int { return e.match.Scores() }

// Match returns the running match.
func (e *Engine) Match() *Match { return e.match }

// LastScore returns the score of the hand just finished, or nil mid-hand.
func (e *Engine) LastScore() *HandScore { return e.lastScore }

// Winner returns the match winner once there is one.
func (e *Engine) Winner() (Team, bool) { return e.match.Winner() }

// HandNumber returns how many hands have been dealt.
func (e *Engine) HandNumber() int { return e.handNum }

// Log returns the human-readable event log.
func (e *Engine) Log() []string { return e.history.Entries() }

// View builds the read-only state the seat may see.
func (e *Engine) View(seat Seat) View {
	v := View{
		Seat:       seat,
		Dealer:     NoSeat,
		Leader:     NoSeat,
		Caller:     NoSeat,
		Trump:      deck.NoSuit,
		TurnedDown: deck.NoSuit,
		Scores:     e.match.Scores(),
	}
	d := e.deal
	if d == nil {
		return v
	}
	v.Hand = d.Hand(seat)
	v.Dealer = d.Dealer()
	v.Leader = d.Leader()
	v.Round = d.Round()
	v.Kitty, v.KittyUp = d.Kitty()
	v.TurnedDown = d.TurnedDown()
	v.Available = d.AvailableSuits()
	v.Trump = d.Trump()
	v.Caller = d.Caller()
	v.Trick = d.Trick()
	v.Tricks = d.Tricks()
	return v
}

// Snapshot collects the seat's view plus table-wide state for display.
func (e *Engine) Snapshot(seat Seat) Snapshot {
	s := Snapshot{
		View:            e.View(seat),
		HandNumber:      e.handNum,
		Phase:           e.Phase(),
		ToAct:           e.ToAct(),
		Bidder:          e.CurrentBidder(),
		AwaitingDiscard: e.AwaitingDiscard(),
		Legal:           e.LegalPlays(seat),
		LastTrick:       e.LastTrick(),
		LastScore:       e.lastScore,
		Log:             e.Log(),
	}
	s.Winner, s.MatchOver = e.match.Winner()
	for other := range Seat(NumSeats) {
		s.HandSizes[other] = len(e.Hand(other))
	}
	return s
}
