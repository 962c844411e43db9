package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/lox/euchre/internal/deck"
)

// HandSize is the number of cards each active seat is dealt.
const HandSize = 5

// Play is one card laid on the table by a seat.
type Play struct {
	Seat Seat
	Card deck.Card
}

// CompletedTrick is a resolved trick kept for display after the table clears.
type CompletedTrick struct {
	Plays  []Play
	Lead   deck.Suit
	Winner Play
}

// Phase is the stage a deal (or the match around it) is in.
type Phase int

const (
	PhaseWaiting Phase = iota
	PhaseBidding
	PhaseDiscard
	PhasePlaying
	PhaseHandOver
	PhaseMatchOver
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseBidding:
		return "bidding"
	case PhaseDiscard:
		return "discard"
	case PhasePlaying:
		return "playing"
	case PhaseHandOver:
		return "hand over"
	case PhaseMatchOver:
		return "match over"
	default:
		return "unknown"
	}
}

// Deal is one hand of play: the cards, the bidding and the tricks. A Deal is
// superseded by the next one once its hand has been scored.
type Deal struct {
	dealer Seat
	leader Seat

	hands    [NumSeats][]deck.Card
	dealt    [NumSeats]int
	kitty    deck.Card
	kittyUp  bool
	undealt  []deck.Card
	discards []deck.Card
	played   []deck.Card

	trump           deck.Suit
	turnedDown      deck.Suit
	round           int
	turnsLeft       int
	bidder          Seat
	caller          Seat
	forced          bool
	awaitingDiscard bool
	manualDiscard   [NumSeats]bool

	trick     []Play
	lastTrick *CompletedTrick
	tricks    [NumSeats]int
}

// randomLoneSeat picks any seat but the dealer's partner, who may not sit out.
func randomLoneSeat(rng *rand.Rand, dealer Seat) Seat {
	candidates := make([]Seat, 0, NumSeats-1)
	for seat := range Seat(NumSeats) {
		if seat.Partner() != dealer {
			candidates = append(candidates, seat)
		}
	}
	return candidates[rng.IntN(len(candidates))]
}

// NewDeal deals a hand with the given dealer. The seat to the dealer's left
// leads and bids first. The RNG is only used when no deck is supplied.
func NewDeal(rng *rand.Rand, dealer Seat, opts ...DealOption) (*Deal, error) {
	if !dealer.Valid() {
		panic("dealer position out of range")
	}

	cfg := &dealConfig{loneSeat: NoSeat}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.loneSeat == NoSeat && cfg.loneChance > 0 && rng != nil && rng.Float64() < cfg.loneChance {
		cfg.loneSeat = randomLoneSeat(rng, dealer)
	}

	if cfg.loneSeat != NoSeat {
		if !cfg.loneSeat.Valid() {
			return nil, fmt.Errorf("lone seat %d: %w", cfg.loneSeat, ErrInvalidSeat)
		}
		if cfg.loneSeat.Partner() == dealer {
			return nil, ErrInvalidLoneSeat
		}
	}

	d := cfg.deck
	if d == nil {
		if rng == nil {
			panic("rng is required when no deck is supplied")
		}
		d = deck.New(rng)
	}

	deal := &Deal{
		dealer:        dealer,
		leader:        dealer.Next(),
		trump:         deck.NoSuit,
		turnedDown:    deck.NoSuit,
		round:         1,
		turnsLeft:     NumSeats,
		bidder:        dealer.Next(),
		caller:        NoSeat,
		manualDiscard: cfg.manualDiscard,
	}

	sittingOut := NoSeat
	if cfg.loneSeat != NoSeat {
		sittingOut = cfg.loneSeat.Partner()
	}

	for range HandSize {
		for i := range NumSeats {
			seat := (dealer + 1 + Seat(i)) % NumSeats
			if seat == sittingOut {
				continue
			}
			card, ok := d.Deal()
			if !ok {
				panic("deck exhausted while dealing")
			}
			deal.hands[seat] = append(deal.hands[seat], card)
		}
	}

	kitty, ok := d.Deal()
	if !ok {
		panic("deck exhausted before the kitty")
	}
	deal.kitty = kitty
	deal.kittyUp = true
	deal.undealt = d.DealRest()

	for seat := range NumSeats {
		deal.dealt[seat] = len(deal.hands[seat])
	}

	deal.assertConserved()
	return deal, nil
}

// Dealer returns the dealing seat.
func (d *Deal) Dealer() Seat { return d.dealer }

// Leader returns the seat leading the current (or next) trick.
func (d *Deal) Leader() Seat { return d.leader }

// Hand returns a copy of the seat's cards.
func (d *Deal) Hand(seat Seat) []deck.Card {
	if !seat.Valid() {
		return nil
	}
	return append([]deck.Card(nil), d.hands[seat]...)
}

// DealtSizes returns how many cards each seat held when the deal was made.
func (d *Deal) DealtSizes() [NumSeats]int { return d.dealt }

// Active reports whether the seat was dealt in. A lone hand's partner is not.
func (d *Deal) Active(seat Seat) bool {
	return seat.Valid() && d.dealt[seat] > 0
}

func (d *Deal) activeCount() int {
	n := 0
	for seat := range Seat(NumSeats) {
		if d.Active(seat) {
			n++
		}
	}
	return n
}

func (d *Deal) nextActive(from Seat) Seat {
	seat := from.Next()
	for range NumSeats {
		if d.Active(seat) {
			return seat
		}
		seat = seat.Next()
	}
	return NoSeat
}

// Kitty returns the face-up card while it is still on offer.
func (d *Deal) Kitty() (deck.Card, bool) {
	return d.kitty, d.kittyUp
}

// Trump returns the trump suit, or deck.NoSuit while bidding is open.
func (d *Deal) Trump() deck.Suit { return d.trump }

// TurnedDown returns the kitty suit refused in the first round, if any.
func (d *Deal) TurnedDown() deck.Suit { return d.turnedDown }

// Round returns 1 or 2 while bidding, 0 once trump is decided.
func (d *Deal) Round() int { return d.round }

// TurnsLeft returns how many bidding turns remain in the current round.
func (d *Deal) TurnsLeft() int { return d.turnsLeft }

// Bidder returns the seat whose bidding turn it is, or NoSeat once closed.
func (d *Deal) Bidder() Seat {
	if d.round == 0 {
		return NoSeat
	}
	return d.bidder
}

// Caller returns the seat that made trump.
func (d *Deal) Caller() Seat { return d.caller }

// Forced reports whether the dealer was made to call trump after everyone passed.
func (d *Deal) Forced() bool { return d.forced }

// AwaitingDiscard reports whether play is blocked on the dealer's discard.
func (d *Deal) AwaitingDiscard() bool { return d.awaitingDiscard }

// Trick returns the plays in the trick under way.
func (d *Deal) Trick() []Play { return append([]Play(nil), d.trick...) }

// LastTrick returns a copy of the most recently resolved trick, or nil.
func (d *Deal) LastTrick() *CompletedTrick {
	if d.lastTrick == nil {
		return nil
	}
	last := *d.lastTrick
	last.Plays = append([]Play(nil), d.lastTrick.Plays...)
	return &last
}

// Tricks returns per-seat trick counts.
func (d *Deal) Tricks() [NumSeats]int { return d.tricks }

// Discards returns the cards out of play: a turned-down kitty or the dealer's discard.
func (d *Deal) Discards() []deck.Card { return append([]deck.Card(nil), d.discards...) }

// Undealt returns the cards left in the deck after dealing.
func (d *Deal) Undealt() []deck.Card { return append([]deck.Card(nil), d.undealt...) }

// Complete reports whether every trick of the hand has been played.
func (d *Deal) Complete() bool {
	if d.round != 0 || d.awaitingDiscard {
		return false
	}
	for _, hand := range d.hands {
		if len(hand) > 0 {
			return false
		}
	}
	return true
}

// Phase returns the deal's current stage.
func (d *Deal) Phase() Phase {
	switch {
	case d.round > 0:
		return PhaseBidding
	case d.awaitingDiscard:
		return PhaseDiscard
	case d.Complete():
		return PhaseHandOver
	default:
		return PhasePlaying
	}
}

// Outcome summarises the deal for scoring.
func (d *Deal) Outcome() Outcome {
	return Outcome{Caller: d.caller, Tricks: d.tricks, Dealt: d.dealt}
}

// cards returns every card the deal accounts for, wherever it is.
func (d *Deal) cards() []deck.Card {
	all := make([]deck.Card, 0, deck.Size)
	for _, hand := range d.hands {
		all = append(all, hand...)
	}
	if d.kittyUp {
		all = append(all, d.kitty)
	}
	for _, p := range d.trick {
		all = append(all, p.Card)
	}
	all = append(all, d.undealt...)
	all = append(all, d.discards...)
	return append(all, d.played...)
}

func (d *Deal) assertConserved() {
	all := d.cards()
	if len(all) != deck.Size {
		panic(fmt.Sprintf("card conservation violated: %d cards accounted for", len(all)))
	}
	seen := make(map[deck.Card]bool, deck.Size)
	for _, c := range all {
		if seen[c] {
			panic(fmt.Sprintf("card conservation violated: %s appears twice", c))
		}
		seen[c] = true
	}
}
