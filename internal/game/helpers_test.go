package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/euchre/internal/deck"
)

// Dealer 3 deals these in the standard scenario: seat 0 leads and bids first.
var scenarioHands = [NumSeats]string{
	"JhAhKsQs9c",
	"JdKhAcKcQd",
	"ThQhAsJsTc",
	"9sTsAdKdTd",
}

const scenarioKitty = "9h"

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func card(code string) deck.Card {
	c, err := deck.ParseCard(code)
	if err != nil {
		panic(err)
	}
	return c
}

func cards(codes string) []deck.Card {
	return deck.MustParseCards(codes)
}

func scenarioDeal(opts ...DealOption) *Deal {
	opts = append([]DealOption{WithDeck(StackDeck(3, scenarioHands, scenarioKitty))}, opts...)
	d, err := NewDeal(nil, 3, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// firstLegalAgent always passes and plays the first legal card.
type firstLegalAgent struct{}

func (firstLegalAgent) DecideBid(View) BidDecision {
	return BidDecision{Action: Pass, Reasoning: "always pass"}
}

func (firstLegalAgent) DecidePlay(_ View, legal []deck.Card) (PlayDecision, bool) {
	if len(legal) == 0 {
		return PlayDecision{}, false
	}
	return PlayDecision{Card: legal[0], Reasoning: "first legal"}, true
}
