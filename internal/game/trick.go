package game

import (
	"fmt"

	"github.com/lox/euchre/internal/deck"
)

// LeadSuit returns the effective suit of the trick's first card, or
// deck.NoSuit when nothing has been led.
func (d *Deal) LeadSuit() deck.Suit {
	if len(d.trick) == 0 {
		return deck.NoSuit
	}
	return deck.EffectiveSuit(d.trick[0].Card, d.trump)
}

// LegalPlays returns the cards the seat may play into the current trick.
// The leader may play anything; others must follow the effective lead suit
// when they can.
func (d *Deal) LegalPlays(seat Seat) []deck.Card {
	if !seat.Valid() {
		return nil
	}
	hand := d.hands[seat]
	lead := d.LeadSuit()
	if lead == deck.NoSuit {
		return append([]deck.Card(nil), hand...)
	}

	var follow []deck.Card
	for _, c := range hand {
		if deck.EffectiveSuit(c, d.trump) == lead {
			follow = append(follow, c)
		}
	}
	if len(follow) == 0 {
		return append([]deck.Card(nil), hand...)
	}
	return follow
}

// ToAct returns the seat due to play next, or NoSeat outside trick play.
func (d *Deal) ToAct() Seat {
	if d.Phase() != PhasePlaying {
		return NoSeat
	}
	if len(d.trick) == 0 {
		return d.leader
	}
	return d.nextActive(d.trick[len(d.trick)-1].Seat)
}

// PlayCard lays a card from the seat's hand. It reports whether the play
// completed and resolved the trick.
func (d *Deal) PlayCard(seat Seat, card deck.Card) (bool, error) {
	switch d.Phase() {
	case PhasePlaying:
	case PhaseDiscard:
		return false, ErrAwaitingDiscard
	default:
		return false, ErrNotPlaying
	}
	if !seat.Valid() {
		return false, ErrInvalidSeat
	}
	if seat != d.ToAct() {
		return false, ErrNotYourTurn
	}
	if !deck.Contains(d.hands[seat], card) {
		return false, ErrCardNotInHand
	}
	if !deck.Contains(d.LegalPlays(seat), card) {
		return false, ErrMustFollowSuit
	}

	d.hands[seat], _ = deck.Remove(d.hands[seat], card)
	d.trick = append(d.trick, Play{Seat: seat, Card: card})

	if len(d.trick) < d.activeCount() {
		return false, nil
	}
	d.resolveTrick()
	return true, nil
}

// resolveTrick awards a full trick to its highest card. The winner leads next.
func (d *Deal) resolveTrick() {
	if len(d.trick) != d.activeCount() {
		panic(fmt.Sprintf("resolving a trick with %d plays", len(d.trick)))
	}
	if !d.trump.Valid() {
		panic("resolving a trick without trump")
	}

	winner := Winner(d.trick, d.trump)
	d.leader = winner.Seat
	d.tricks[winner.Seat]++
	d.lastTrick = &CompletedTrick{
		Plays:  d.trick,
		Lead:   d.LeadSuit(),
		Winner: winner,
	}
	for _, p := range d.trick {
		d.played = append(d.played, p.Card)
	}
	d.trick = nil
	d.assertConserved()
}

// Winner returns the play that takes the trick. The first card sets the lead
// suit; the heaviest card wins, the earlier play on equal weight.
func Winner(plays []Play, trump deck.Suit) Play {
	if len(plays) == 0 {
		panic("no plays to judge")
	}
	lead := deck.EffectiveSuit(plays[0].Card, trump)
	best := plays[0]
	bestWeight := deck.Weight(best.Card, lead, trump)
	for _, p := range plays[1:] {
		if w := deck.Weight(p.Card, lead, trump); w > bestWeight {
			best, bestWeight = p, w
		}
	}
	return best
}
