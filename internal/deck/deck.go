package deck

import (
	"math/rand/v2"
)

// Size is the number of cards in a euchre deck.
const Size = 24

// Deck represents a 24-card euchre deck
type Deck struct {
	cards []Card
	next  int
}

// Build returns the 24 distinct cards, nine through ace in every suit.
func Build() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// Shuffle randomizes cards in place using Fisher-Yates
func Shuffle(cards []Card, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// New creates a freshly shuffled deck with explicit RNG
func New(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}
	cards := Build()
	Shuffle(cards, rng)
	return &Deck{cards: cards}
}

// NewStacked creates a deck that deals the given cards in order, without
// shuffling. Used for deterministic tests and replays.
func NewStacked(cards ...Card) *Deck {
	stacked := make([]Card, len(cards))
	copy(stacked, cards)
	return &Deck{cards: stacked}
}

// Deal removes and returns the top card from the deck
func (d *Deck) Deal() (Card, bool) {
	if d.next >= len(d.cards) {
		return Card{}, false
	}
	card := d.cards[d.next]
	d.next++
	return card, true
}

// DealN deals up to n cards from the deck
func (d *Deck) DealN(n int) []Card {
	n = min(n, d.CardsRemaining())
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}

// DealRest deals every card still in the deck
func (d *Deck) DealRest() []Card {
	return d.DealN(d.CardsRemaining())
}
