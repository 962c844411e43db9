package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/euchre/internal/game"
	"github.com/lox/euchre/internal/session"
)

// Bridge lets a session drive a running TUI program. Redraws travel as
// messages so the model is only ever touched on the program's goroutine.
type Bridge struct {
	tui  *TUIModel
	send func(tea.Msg)
}

var _ session.Prompter = (*Bridge)(nil)

// NewBridge creates a bridge that delivers messages with send, normally
// (*tea.Program).Send.
func NewBridge(tui *TUIModel, send func(tea.Msg)) *Bridge {
	return &Bridge{tui: tui, send: send}
}

// Update redraws the table.
func (b *Bridge) Update(snapshot game.Snapshot) {
	b.send(SnapshotMsg{Snapshot: snapshot})
}

// Notify shows a status line.
func (b *Bridge) Notify(message string) {
	b.tui.logger.Debug("Notice", "text", message)
	b.send(NoticeMsg{Text: message})
}

// Prompt waits for the next line typed into the input field.
func (b *Bridge) Prompt(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-b.tui.Lines():
		if !ok {
			return "", session.ErrQuit
		}
		return line, nil
	}
}

// Close tells the program to exit.
func (b *Bridge) Close() {
	b.tui.SendQuitSignal()
}
