package game

import "github.com/lox/euchre/internal/deck"

// BidAction is a bidding choice.
type BidAction int

const (
	Pass BidAction = iota
	Order
)

func (a BidAction) String() string {
	if a == Order {
		return "order"
	}
	return "pass"
}

// BidDecision represents a seat's bid with reasoning. Suit is only read in the
// second round, where the bidder names trump.
type BidDecision struct {
	Action    BidAction
	Suit      deck.Suit
	Reasoning string // Human-readable explanation
}

// PlayDecision represents the card a seat chose with reasoning.
type PlayDecision struct {
	Card      deck.Card
	Reasoning string
}

// View is the read-only state one seat can see when deciding.
type View struct {
	Seat       Seat
	Hand       []deck.Card // Only the deciding seat's cards
	Dealer     Seat
	Leader     Seat
	Round      int // 1 or 2 while bidding, 0 during play
	Kitty      deck.Card
	KittyUp    bool
	TurnedDown deck.Suit
	Available  []deck.Suit
	Trump      deck.Suit
	Caller     Seat
	Trick      []Play
	Tricks     [NumSeats]int
	Scores     [2]int
}

// LeadSuit returns the effective suit led to the current trick, or deck.NoSuit.
func (v View) LeadSuit() deck.Suit {
	if len(v.Trick) == 0 {
		return deck.NoSuit
	}
	return deck.EffectiveSuit(v.Trick[0].Card, v.Trump)
}

// Agent represents any automated seat that can make decisions.
// Agents receive immutable views and return decisions; the engine applies them.
type Agent interface {
	// DecideBid chooses to pass or order up during either bidding round.
	DecideBid(view View) BidDecision

	// DecidePlay chooses a card from legal. It returns false when the seat has
	// no card to play.
	DecidePlay(view View, legal []deck.Card) (PlayDecision, bool)
}
