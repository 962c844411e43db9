package bot

import (
	"fmt"

	"github.com/lox/euchre/internal/deck"
	"github.com/lox/euchre/internal/game"
)

// SecondRoundThreshold is how many trump cards any tier wants before naming a
// suit in the second round.
const SecondRoundThreshold = 2

// Advice is a bidding recommendation with the numbers behind it.
type Advice struct {
	Action    game.BidAction
	Suit      deck.Suit
	Count     int
	Threshold int
	Rationale string
}

// AdviseRoundOne recommends ordering up the kitty when the hand holds enough
// of its suit, bowers included.
func AdviseRoundOne(hand []deck.Card, kitty deck.Card, difficulty Difficulty) Advice {
	count := deck.CountSuit(hand, kitty.Suit)
	a := Advice{
		Action:    game.Pass,
		Suit:      kitty.Suit,
		Count:     count,
		Threshold: difficulty.Threshold(),
	}
	if count >= a.Threshold {
		a.Action = game.Order
		a.Rationale = fmt.Sprintf("You have %d trump cards (≥ %d), good chance to win.", count, a.Threshold)
	} else {
		a.Rationale = fmt.Sprintf("Only %d trump cards (< %d), better to pass.", count, a.Threshold)
	}
	return a
}

// AdviseRoundTwo picks the available suit the hand holds most of. Ties go to
// the suit listed first.
func AdviseRoundTwo(hand []deck.Card, available []deck.Suit) Advice {
	a := Advice{Action: game.Pass, Suit: deck.NoSuit, Threshold: SecondRoundThreshold}
	for _, suit := range available {
		if n := deck.CountSuit(hand, suit); a.Suit == deck.NoSuit || n > a.Count {
			a.Suit, a.Count = suit, n
		}
	}
	if a.Suit == deck.NoSuit {
		a.Rationale = "No suit left to call, pass."
		return a
	}
	if a.Count >= a.Threshold {
		a.Action = game.Order
		a.Rationale = fmt.Sprintf("Best suit is %s with %d trump cards (≥ %d), call it.", a.Suit.Name(), a.Count, a.Threshold)
	} else {
		a.Rationale = fmt.Sprintf("Best suit is %s with only %d trump cards (< %d), better to pass.", a.Suit.Name(), a.Count, a.Threshold)
	}
	return a
}

// Advise gives the advice for whichever bidding round the view is in.
func Advise(view game.View, difficulty Difficulty) Advice {
	switch view.Round {
	case 1:
		return AdviseRoundOne(view.Hand, view.Kitty, difficulty)
	case 2:
		return AdviseRoundTwo(view.Hand, view.Available)
	}
	return Advice{Action: game.Pass, Suit: view.Trump, Rationale: "Bidding is over."}
}
