// Package session drives a match for one human seat: it paces the automated
// seats, prompts the human for commands and applies them to the engine.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/euchre/internal/bot"
	"github.com/lox/euchre/internal/game"
	"github.com/lox/euchre/internal/pacing"
	"github.com/lox/euchre/internal/randutil"
)

// ErrQuit is returned by a Prompter when the human leaves the table.
var ErrQuit = errors.New("quit")

// Prompter is the presentation layer a session talks to.
type Prompter interface {
	// Update redraws the table from the human seat's point of view.
	Update(snapshot game.Snapshot)
	// Notify shows a one-line status message.
	Notify(message string)
	// Prompt blocks until the human enters a command line.
	Prompt(ctx context.Context) (string, error)
}

// Option configures a Session.
type Option func(*Session)

// WithHintDifficulty sets the tier whose bidding thresholds the hint uses.
func WithHintDifficulty(d bot.Difficulty) Option {
	return func(s *Session) { s.hintDifficulty = d }
}

// Session runs one match to completion.
type Session struct {
	engine         *game.Engine
	pacer          *pacing.Pacer
	prompter       Prompter
	logger         *log.Logger
	advisor        *bot.Bot
	hintDifficulty bot.Difficulty

	trickResolved bool
}

// New creates a session. The engine's automated seats must already have agents.
func New(engine *game.Engine, pacer *pacing.Pacer, prompter Prompter, logger *log.Logger, opts ...Option) *Session {
	s := &Session{
		engine:         engine,
		pacer:          pacer,
		prompter:       prompter,
		logger:         logger.WithPrefix("session"),
		hintDifficulty: bot.Medium,
	}
	for _, opt := range opts {
		opt(s)
	}
	// The hard tier never draws from its RNG, so any seed will do.
	s.advisor = bot.New(bot.Hard, randutil.New(1), logger, bot.WithSignalSeat(game.NoSeat))
	return s
}

// Run plays until the match is won, the human quits or ctx is cancelled.
// Quitting is not an error.
func (s *Session) Run(ctx context.Context) error {
	unsubscribe := s.engine.EventBus().Subscribe(game.SubscriberFunc(func(event game.GameEvent) {
		if event.EventType() == game.EventTypeTrickResolved {
			s.trickResolved = true
		}
	}))
	defer unsubscribe()

	s.update()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch s.engine.Phase() {
		case game.PhaseMatchOver:
			winner, _ := s.engine.Winner()
			scores := s.engine.Scores()
			s.prompter.Notify(fmt.Sprintf("%s wins the match %d-%d", winner, scores[winner], scores[winner.Other()]))
			s.update()
			return nil

		case game.PhaseWaiting, game.PhaseHandOver:
			if s.engine.Phase() == game.PhaseHandOver {
				if err := s.pacer.Pause(ctx, pacing.HandEnd); err != nil {
					return err
				}
			}
			if err := s.engine.DealHands(); err != nil {
				return fmt.Errorf("deal: %w", err)
			}
			s.update()
			continue
		}

		if s.humanToAct() {
			quit, err := s.humanTurn(ctx)
			if err != nil || quit {
				return err
			}
		} else if err := s.botTurn(ctx); err != nil {
			return err
		}

		if s.trickResolved {
			s.trickResolved = false
			if err := s.pacer.Pause(ctx, pacing.TrickEnd); err != nil {
				return err
			}
			s.update()
		}
	}
}

func (s *Session) update() {
	s.prompter.Update(s.engine.Snapshot(s.engine.HumanSeat()))
}

func (s *Session) humanToAct() bool {
	human := s.engine.HumanSeat()
	if !human.Valid() {
		return false
	}
	switch s.engine.Phase() {
	case game.PhaseBidding:
		return s.engine.CurrentBidder() == human
	case game.PhaseDiscard:
		return s.engine.Dealer() == human
	case game.PhasePlaying:
		return s.engine.ToAct() == human
	}
	return false
}

func (s *Session) botTurn(ctx context.Context) error {
	if err := s.pacer.Pause(ctx, pacing.BotTurn); err != nil {
		return err
	}
	ok, err := s.engine.Step()
	if err != nil {
		return fmt.Errorf("bot turn: %w", err)
	}
	if !ok {
		return fmt.Errorf("no move available in %s", s.engine.Phase())
	}
	s.update()
	return nil
}

func (s *Session) humanTurn(ctx context.Context) (bool, error) {
	line, err := s.prompter.Prompt(ctx)
	if errors.Is(err, ErrQuit) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	cmd, err := ParseCommand(line)
	if err != nil {
		s.prompter.Notify(err.Error())
		return false, nil
	}
	if cmd.Kind == CmdQuit {
		s.logger.Info("Human quit", "hand", s.engine.HandNumber())
		return true, nil
	}

	if err := s.apply(cmd); err != nil {
		s.logger.Debug("Rejected command", "command", cmd.Kind, "error", err)
		s.prompter.Notify(err.Error())
		return false, nil
	}
	s.update()
	return false, nil
}

func (s *Session) apply(cmd Command) error {
	human := s.engine.HumanSeat()
	switch cmd.Kind {
	case CmdOrder:
		if s.engine.BiddingRound() == 2 {
			return fmt.Errorf("name a suit: call <suit>")
		}
		return s.engine.OrderUp(human)
	case CmdPass:
		return s.engine.PassBid(human)
	case CmdCall:
		return s.engine.OrderUpSecondRound(human, cmd.Suit)
	case CmdDiscard:
		return s.engine.Discard(cmd.Card)
	case CmdPlay:
		if s.engine.AwaitingDiscard() {
			return s.engine.Discard(cmd.Card)
		}
		return s.engine.PlayCard(human, cmd.Card)
	case CmdHint:
		s.prompter.Notify(s.Hint())
		return nil
	case CmdHelp:
		s.prompter.Notify(HelpText)
		return nil
	}
	return fmt.Errorf("unsupported command %s", cmd.Kind)
}

// Hint suggests the human's next move.
func (s *Session) Hint() string {
	human := s.engine.HumanSeat()
	view := s.engine.View(human)
	switch s.engine.Phase() {
	case game.PhaseBidding:
		advice := bot.Advise(view, s.hintDifficulty)
		if advice.Action == game.Order && view.Round == 2 {
			return fmt.Sprintf("Call %s. %s", advice.Suit.Name(), advice.Rationale)
		}
		return fmt.Sprintf("%s. %s", capitalise(advice.Action.String()), advice.Rationale)
	case game.PhaseDiscard:
		return "Discard your weakest card, usually a low off-suit card."
	case game.PhasePlaying:
		decision, ok := s.advisor.DecidePlay(view, s.engine.LegalPlays(human))
		if !ok {
			return "Nothing to play."
		}
		return fmt.Sprintf("Play %s: %s", decision.Card, decision.Reasoning)
	}
	return "No move needed right now."
}

func capitalise(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
