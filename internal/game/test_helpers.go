package game

import (
	"fmt"

	"github.com/lox/euchre/internal/deck"
)

// StackDeck builds a deck that deals exactly the given hands and kitty when
// dealer deals. Hands are written as card codes ("JhAhKsQs9c"); an empty
// string leaves that seat out, as for a lone hand's partner. Cards not named
// end up undealt.
func StackDeck(dealer Seat, hands [NumSeats]string, kitty string) *deck.Deck {
	var parsed [NumSeats][]deck.Card
	used := make(map[deck.Card]bool)
	for seat, h := range hands {
		parsed[seat] = deck.MustParseCards(h)
		if n := len(parsed[seat]); n != 0 && n != HandSize {
			panic(fmt.Sprintf("seat %d: %d cards, want %d", seat, n, HandSize))
		}
		for _, c := range parsed[seat] {
			if used[c] {
				panic(fmt.Sprintf("card %s stacked twice", c))
			}
			used[c] = true
		}
	}
	kittyCard := deck.MustParseCards(kitty)[0]
	if used[kittyCard] {
		panic(fmt.Sprintf("kitty %s already in a hand", kittyCard))
	}
	used[kittyCard] = true

	order := make([]deck.Card, 0, deck.Size)
	for round := range HandSize {
		for i := range NumSeats {
			seat := (dealer + 1 + Seat(i)) % NumSeats
			if len(parsed[seat]) == 0 {
				continue
			}
			order = append(order, parsed[seat][round])
		}
	}
	order = append(order, kittyCard)
	for _, c := range deck.Build() {
		if !used[c] {
			order = append(order, c)
		}
	}
	return deck.NewStacked(order...)
}
