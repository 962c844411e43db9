package game

import (
	"github.com/lox/euchre/internal/deck"
)

// AvailableSuits returns the suits that may still be named as trump: every
// suit except the one turned down in the first round.
func (d *Deal) AvailableSuits() []deck.Suit {
	suits := make([]deck.Suit, 0, len(deck.Suits))
	for _, s := range deck.Suits {
		if s != d.turnedDown {
			suits = append(suits, s)
		}
	}
	return suits
}

func (d *Deal) checkBidder(seat Seat, round int) error {
	if !seat.Valid() {
		return ErrInvalidSeat
	}
	switch d.round {
	case 0:
		return ErrBiddingClosed
	case round:
	default:
		return ErrWrongRound
	}
	if seat != d.bidder {
		return ErrNotYourTurn
	}
	return nil
}

// OrderUp makes the face-up kitty suit trump. The kitty goes to the dealer,
// who then discards down to five.
func (d *Deal) OrderUp(seat Seat) error {
	if err := d.checkBidder(seat, 1); err != nil {
		return err
	}
	if !d.Active(seat) {
		return ErrSittingOut
	}

	d.trump = d.kitty.Suit
	d.caller = seat
	d.hands[d.dealer] = append(d.hands[d.dealer], d.kitty)
	d.kittyUp = false
	d.closeBidding()

	if d.manualDiscard[d.dealer] {
		d.awaitingDiscard = true
	} else {
		d.discardWeakest()
	}
	d.assertConserved()
	return nil
}

// Pass declines to name trump. After four passes in the first round the kitty
// is turned down; after three in the second the dealer is forced to call.
func (d *Deal) Pass(seat Seat) error {
	if !seat.Valid() {
		return ErrInvalidSeat
	}
	if d.round == 0 {
		return ErrBiddingClosed
	}
	if seat != d.bidder {
		return ErrNotYourTurn
	}

	d.turnsLeft--
	d.bidder = d.bidder.Next()
	if d.turnsLeft > 0 {
		return nil
	}

	if d.round == 1 {
		d.turnedDown = d.kitty.Suit
		d.discards = append(d.discards, d.kitty)
		d.kittyUp = false
		d.round = 2
		d.turnsLeft = NumSeats - 1
		d.bidder = d.dealer.Next()
		d.assertConserved()
		return nil
	}

	// Everyone but the dealer passed: the dealer takes the first suit left.
	d.forced = true
	d.orderSecondRound(d.dealer, d.AvailableSuits()[0])
	return nil
}

// OrderUpSecondRound names any suit other than the turned-down one as trump.
func (d *Deal) OrderUpSecondRound(seat Seat, suit deck.Suit) error {
	if err := d.checkBidder(seat, 2); err != nil {
		return err
	}
	if !d.Active(seat) {
		return ErrSittingOut
	}
	if !suit.Valid() {
		return ErrInvalidSuit
	}
	if suit == d.turnedDown {
		return ErrSuitTurnedDown
	}
	d.orderSecondRound(seat, suit)
	return nil
}

func (d *Deal) orderSecondRound(seat Seat, suit deck.Suit) {
	d.trump = suit
	d.caller = seat
	d.awaitingDiscard = false
	d.closeBidding()
}

// Discard removes a card from the dealer's six-card hand after an order up.
func (d *Deal) Discard(card deck.Card) error {
	if !d.awaitingDiscard {
		return ErrNotAwaitingDiscard
	}
	hand, ok := deck.Remove(d.hands[d.dealer], card)
	if !ok {
		return ErrCardNotInHand
	}
	d.hands[d.dealer] = hand
	d.discards = append(d.discards, card)
	d.awaitingDiscard = false
	d.assertConserved()
	return nil
}

// discardWeakest drops the dealer's lowest card, weighing every card as if
// trump had been led. Ties go to the first card in hand order.
func (d *Deal) discardWeakest() {
	hand := d.hands[d.dealer]
	worst := 0
	for i := 1; i < len(hand); i++ {
		if deck.Weight(hand[i], d.trump, d.trump) < deck.Weight(hand[worst], d.trump, d.trump) {
			worst = i
		}
	}
	card := hand[worst]
	d.hands[d.dealer], _ = deck.Remove(hand, card)
	d.discards = append(d.discards, card)
}

func (d *Deal) closeBidding() {
	d.round = 0
	d.turnsLeft = 0
	if !d.Active(d.leader) {
		d.leader = d.nextActive(d.leader)
	}
}
