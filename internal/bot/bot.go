package bot

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/euchre/internal/deck"
	"github.com/lox/euchre/internal/game"
)

// DefaultSignalSeat is the hard tier's signalling seat: the human's partner
// when the human sits in seat 0.
const DefaultSignalSeat game.Seat = 2

// SignalTrumpCount is how many trump the signal seat needs before it leads its
// highest one.
const SignalTrumpCount = 3

// Bot is an automated euchre opponent. It satisfies game.Agent.
type Bot struct {
	difficulty Difficulty
	signalSeat game.Seat
	rng        *rand.Rand
	logger     *log.Logger
}

// Option configures a Bot.
type Option func(*Bot)

// WithSignalSeat sets the seat whose hard-tier bot signals trump strength by
// leading its highest trump. NoSeat disables signalling.
func WithSignalSeat(seat game.Seat) Option {
	return func(b *Bot) { b.signalSeat = seat }
}

// New creates a bot playing at the given difficulty. The RNG is only drawn
// from by the easy tier.
func New(difficulty Difficulty, rng *rand.Rand, logger *log.Logger, opts ...Option) *Bot {
	if rng == nil {
		panic("rng is required for bot creation")
	}
	b := &Bot{
		difficulty: difficulty,
		signalSeat: DefaultSignalSeat,
		rng:        rng,
		logger:     logger.WithPrefix("bot"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Difficulty returns the bot's tier.
func (b *Bot) Difficulty() Difficulty { return b.difficulty }

// DecideBid follows the bidding advice for the bot's tier.
func (b *Bot) DecideBid(view game.View) game.BidDecision {
	advice := Advise(view, b.difficulty)
	b.logger.Debug("Bot bid",
		"seat", view.Seat,
		"round", view.Round,
		"action", advice.Action,
		"suit", advice.Suit.Name(),
		"count", advice.Count)
	return game.BidDecision{Action: advice.Action, Suit: advice.Suit, Reasoning: advice.Rationale}
}

// DecidePlay chooses a card from legal according to the bot's tier.
func (b *Bot) DecidePlay(view game.View, legal []deck.Card) (game.PlayDecision, bool) {
	if len(view.Hand) == 0 || len(legal) == 0 {
		return game.PlayDecision{}, false
	}

	thinking := &ThinkingContext{}
	var card deck.Card
	switch b.difficulty {
	case Easy:
		card = legal[b.rng.IntN(len(legal))]
		thinking.AddThought(fmt.Sprintf("picked %s at random from %d legal cards", card, len(legal)))
	case Medium:
		card = lightest(view, legal)
		thinking.AddThought(fmt.Sprintf("playing lowest card %s", card))
	default:
		card = b.hardPlay(view, legal, thinking)
	}

	decision := game.PlayDecision{Card: card, Reasoning: thinking.GetThoughts()}
	b.logger.Debug("Bot play",
		"seat", view.Seat,
		"difficulty", b.difficulty,
		"card", card,
		"reasoning", decision.Reasoning)
	return decision, true
}

func (b *Bot) hardPlay(view game.View, legal []deck.Card, thinking *ThinkingContext) deck.Card {
	if len(view.Trick) == 0 && view.Seat == b.signalSeat {
		trump := trumpCards(legal, view.Trump)
		if len(trump) >= SignalTrumpCount {
			card := heaviest(trump, func(c deck.Card) int { return deck.Weight(c, view.Trump, view.Trump) })
			thinking.AddThought(fmt.Sprintf("holding %d trump", len(trump)))
			thinking.AddThought(fmt.Sprintf("leading highest trump %s to signal partner", card))
			return card
		}
	}
	card := heaviest(legal, playWeight(view))
	thinking.AddThought(fmt.Sprintf("playing highest card %s", card))
	return card
}

// playWeight weighs a card against the trick's lead, or as the lead itself
// when the trick is empty.
func playWeight(view game.View) func(deck.Card) int {
	lead := view.LeadSuit()
	return func(c deck.Card) int {
		if lead == deck.NoSuit {
			return deck.Weight(c, deck.EffectiveSuit(c, view.Trump), view.Trump)
		}
		return deck.Weight(c, lead, view.Trump)
	}
}

func lightest(view game.View, legal []deck.Card) deck.Card {
	weight := playWeight(view)
	best := legal[0]
	for _, c := range legal[1:] {
		if weight(c) < weight(best) {
			best = c
		}
	}
	return best
}

func heaviest(cards []deck.Card, weight func(deck.Card) int) deck.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if weight(c) > weight(best) {
			best = c
		}
	}
	return best
}

func trumpCards(cards []deck.Card, trump deck.Suit) []deck.Card {
	var out []deck.Card
	for _, c := range cards {
		if trump.Valid() && deck.EffectiveSuit(c, trump) == trump {
			out = append(out, c)
		}
	}
	return out
}

// ThinkingContext accumulates a bot's thoughts while it decides
type ThinkingContext struct {
	thoughts []string
}

// AddThought adds a thought to the thinking process
func (tc *ThinkingContext) AddThought(thought string) {
	tc.thoughts = append(tc.thoughts, thought)
}

// GetThoughts returns the complete stream of thoughts
func (tc *ThinkingContext) GetThoughts() string {
	if len(tc.thoughts) == 0 {
		return "No clear reasoning available"
	}
	return strings.Join(tc.thoughts, ". ")
}
