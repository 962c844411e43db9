// Package game implements the rules of four-handed euchre.
//
// A match is driven by an Engine, which owns the running Match and the
// current Deal. A Deal covers one hand: the deal itself, two rounds of trump
// bidding, the dealer's discard, five tricks and the scoring of the hand.
//
// # Basic Usage
//
// Create an engine with bots in seats 1-3 and play the human seat:
//
//	e := game.NewEngine(randutil.New(42), logger,
//	    game.WithAgent(1, bot.New(bot.Medium, 1, rng, logger)),
//	    ...)
//	e.DealHands()
//	e.Advance()                 // bots bid until it is seat 0's turn
//	e.OrderUp(0)
//	e.Advance()
//	e.PlayCard(0, e.LegalPlays(0)[0])
//
// # Deterministic Testing
//
// Every shuffle draws from the engine's RNG. For complete control supply a
// stacked deck per hand:
//
//	e.DealHands(game.WithDeck(deck.NewStacked(cards...)))
//
// # Architecture
//
// Commands either apply completely or return one of the sentinel errors in
// errors.go with nothing changed. Legality (turn order, following suit) is
// checked by the engine, not the caller. Notifications are published on the
// EventBus after the state they announce is visible to queries.
package game
