package tui

import (
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/euchre/internal/deck"
	"github.com/lox/euchre/internal/game"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func biddingSnapshot() game.Snapshot {
	return game.Snapshot{
		View: game.View{
			Seat:       0,
			Hand:       deck.MustParseCards("JhAhKsQs9c"),
			Dealer:     3,
			Leader:     0,
			Round:      1,
			Kitty:      deck.NewCard(deck.Hearts, deck.Nine),
			KittyUp:    true,
			TurnedDown: deck.NoSuit,
			Trump:      deck.NoSuit,
			Caller:     game.NoSeat,
			Scores:     [2]int{3, 7},
		},
		HandNumber: 4,
		Phase:      game.PhaseBidding,
		ToAct:      0,
		Bidder:     0,
		Log:        []string{"Hand 4: Seat 3 deals, Seat 3 turns up 9♥"},
	}
}

func TestTUITestMode(t *testing.T) {
	t.Run("test mode captures the snapshot log", func(t *testing.T) {
		tui := NewTUIModelWithOptions(quietLogger(), true)
		assert.True(t, tui.IsTestMode())
		assert.Empty(t, tui.GetCapturedLog())

		tui.Update(SnapshotMsg{Snapshot: biddingSnapshot()})
		tui.Update(NoticeMsg{Text: "not this seat's turn"})

		assert.Equal(t, []string{"Hand 4: Seat 3 deals, Seat 3 turns up 9♥"}, tui.GetCapturedLog())
		assert.Equal(t, []string{"not this seat's turn"}, tui.GetNotices())
	})

	t.Run("production mode does not capture", func(t *testing.T) {
		tui := NewTUIModel(quietLogger())
		assert.False(t, tui.IsTestMode())

		tui.Update(SnapshotMsg{Snapshot: biddingSnapshot()})
		assert.Nil(t, tui.GetCapturedLog())
		assert.Nil(t, tui.GetNotices())
		assert.Error(t, tui.InjectLine("pass"))
	})

	t.Run("enter submits the typed line", func(t *testing.T) {
		tui := NewTUIModelWithOptions(quietLogger(), true)
		tui.actionInput.SetValue("  call spades ")
		tui.Update(tea.KeyMsg{Type: tea.KeyEnter})

		select {
		case line := <-tui.Lines():
			assert.Equal(t, "call spades", line)
		default:
			t.Fatal("no line submitted")
		}
		assert.Empty(t, tui.actionInput.Value())
	})

	t.Run("blank enter submits nothing", func(t *testing.T) {
		tui := NewTUIModelWithOptions(quietLogger(), true)
		tui.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.Empty(t, tui.Lines())
	})

	t.Run("a second queued line is refused", func(t *testing.T) {
		tui := NewTUIModelWithOptions(quietLogger(), true)
		require.NoError(t, tui.InjectLine("pass"))
		assert.Error(t, tui.InjectLine("pass"))

		tui.actionInput.SetValue("order")
		tui.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.Contains(t, tui.status, "Still working")
	})

	t.Run("ctrl+c submits quit", func(t *testing.T) {
		tui := NewTUIModelWithOptions(quietLogger(), true)
		_, cmd := tui.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		assert.NotNil(t, cmd)
		assert.Equal(t, "quit", <-tui.Lines())
		assert.Empty(t, tui.View())
	})
}

func TestView(t *testing.T) {
	tui := NewTUIModelWithOptions(quietLogger(), true)
	assert.Equal(t, "Loading...", tui.View())

	tui.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	tui.Update(SnapshotMsg{Snapshot: biddingSnapshot()})

	view := tui.View()
	assert.Contains(t, view, "Hand 4")
	assert.Contains(t, view, "Team 1 (you):")
	assert.Contains(t, view, "Turned up: 9♥")
	assert.Contains(t, view, "Order up 9♥ or pass?")
}

func TestActionPaneSortsHand(t *testing.T) {
	tui := NewTUIModelWithOptions(quietLogger(), true)
	s := biddingSnapshot()
	s.Hand = deck.MustParseCards("9cAhJdKsJh")
	s.Trump = deck.Hearts
	s.Phase = game.PhasePlaying
	tui.Update(SnapshotMsg{Snapshot: s})

	sorted := deck.MustParseCards("9cAhJdKsJh")
	deck.Sort(sorted, deck.Hearts)
	require.Equal(t, deck.MustParseCards("JhJdAh"), sorted[:3])

	pane := tui.renderActionPane()
	assert.Contains(t, pane, formatCards(sorted))
	assert.Equal(t, deck.MustParseCards("9cAhJdKsJh"), s.Hand, "the snapshot's hand is left alone")
}

func TestPromptFor(t *testing.T) {
	s := biddingSnapshot()
	assert.Equal(t, "Order up 9♥ or pass?", promptFor(s))

	s.Round = 2
	s.KittyUp = false
	s.TurnedDown = deck.Hearts
	s.Available = []deck.Suit{deck.Diamonds, deck.Clubs, deck.Spades}
	assert.Equal(t, "Call diamonds, clubs, spades or pass?", promptFor(s))

	s.Bidder = 1
	assert.Equal(t, "Waiting...", promptFor(s))

	s.Phase = game.PhaseDiscard
	s.AwaitingDiscard = true
	s.Dealer = 0
	assert.Equal(t, "Discard a card: discard <card>", promptFor(s))

	s.AwaitingDiscard = false
	s.Phase = game.PhasePlaying
	s.ToAct = 0
	s.Legal = deck.MustParseCards("Ks")
	assert.Equal(t, "Your play: [K♠]", promptFor(s))

	s.Seat = game.NoSeat
	assert.Equal(t, "Spectating...", promptFor(s))

	s.MatchOver = true
	s.Winner = 1
	assert.Equal(t, "Team 2 wins the match. Ctrl+C to exit.", promptFor(s))
}

func TestBridge(t *testing.T) {
	tui := NewTUIModelWithOptions(quietLogger(), true)
	bridge := NewBridge(tui, func(msg tea.Msg) { tui.Update(msg) })

	bridge.Update(biddingSnapshot())
	assert.Equal(t, 4, tui.snapshot.HandNumber)

	bridge.Notify("Order. You have 2 trump cards (≥ 2), good chance to win.")
	assert.Len(t, tui.GetNotices(), 1)

	require.NoError(t, tui.InjectLine("order"))
	line, err := bridge.Prompt(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "order", line)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = bridge.Prompt(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	bridge.Close()
	assert.Len(t, tui.quitSignal, 1)
}
