package session

import (
	"fmt"
	"strings"

	"github.com/lox/euchre/internal/deck"
)

// CommandKind is what the human asked for.
type CommandKind int

const (
	CmdOrder CommandKind = iota
	CmdPass
	CmdCall
	CmdDiscard
	CmdPlay
	CmdHint
	CmdHelp
	CmdQuit
)

func (k CommandKind) String() string {
	switch k {
	case CmdOrder:
		return "order"
	case CmdPass:
		return "pass"
	case CmdCall:
		return "call"
	case CmdDiscard:
		return "discard"
	case CmdPlay:
		return "play"
	case CmdHint:
		return "hint"
	case CmdHelp:
		return "help"
	case CmdQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is a parsed line of input.
type Command struct {
	Kind CommandKind
	Suit deck.Suit
	Card deck.Card
}

// HelpText lists the commands the prompt accepts.
const HelpText = "order | pass | call <suit> | discard <card> | play <card> (or just <card>) | hint | quit"

// ParseCommand parses one line typed at the prompt.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command; try: %s", HelpText)
	}

	verb, args := fields[0], fields[1:]
	switch verb {
	case "order", "o", "pickup", "pick":
		return Command{Kind: CmdOrder}, nil
	case "pass", "p":
		return Command{Kind: CmdPass}, nil
	case "hint", "h":
		return Command{Kind: CmdHint}, nil
	case "help", "?":
		return Command{Kind: CmdHelp}, nil
	case "quit", "q", "exit":
		return Command{Kind: CmdQuit}, nil
	case "call", "c":
		if len(args) != 1 {
			return Command{}, fmt.Errorf("usage: call <suit>")
		}
		suit, err := deck.ParseSuit(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdCall, Suit: suit}, nil
	case "discard", "d":
		if len(args) != 1 {
			return Command{}, fmt.Errorf("usage: discard <card>")
		}
		card, err := deck.ParseCard(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdDiscard, Card: card}, nil
	case "play":
		if len(args) != 1 {
			return Command{}, fmt.Errorf("usage: play <card>")
		}
		card, err := deck.ParseCard(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdPlay, Card: card}, nil
	}

	if len(args) == 0 {
		if card, err := deck.ParseCard(verb); err == nil {
			return Command{Kind: CmdPlay, Card: card}, nil
		}
	}
	return Command{}, fmt.Errorf("unknown command %q; try: %s", line, HelpText)
}
