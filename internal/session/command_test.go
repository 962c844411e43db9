package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/euchre/internal/deck"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"order", Command{Kind: CmdOrder}},
		{"  O ", Command{Kind: CmdOrder}},
		{"pass", Command{Kind: CmdPass}},
		{"call spades", Command{Kind: CmdCall, Suit: deck.Spades}},
		{"c ♦", Command{Kind: CmdCall, Suit: deck.Diamonds}},
		{"discard 9s", Command{Kind: CmdDiscard, Card: deck.NewCard(deck.Spades, deck.Nine)}},
		{"play 10d", Command{Kind: CmdPlay, Card: deck.NewCard(deck.Diamonds, deck.Ten)}},
		{"Jh", Command{Kind: CmdPlay, Card: deck.NewCard(deck.Hearts, deck.Jack)}},
		{"hint", Command{Kind: CmdHint}},
		{"?", Command{Kind: CmdHelp}},
		{"exit", Command{Kind: CmdQuit}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseCommand(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	for _, line := range []string{"", "fold", "call", "call purple", "discard", "play Xz", "Jh Qh"} {
		_, err := ParseCommand(line)
		assert.Error(t, err, line)
	}
}
