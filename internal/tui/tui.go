package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/euchre/internal/deck"
	"github.com/lox/euchre/internal/game"
)

const placeholder = "order, pass, call <suit>, discard <card>, <card>, hint, help, quit"

// TUIModel represents the Bubble Tea model for the card table
type TUIModel struct {
	logger *log.Logger

	// UI components
	logViewport viewport.Model
	actionInput textinput.Model

	// State
	snapshot    game.Snapshot
	gameLog     []string
	status      string
	lines       chan string
	quitSignal  chan struct{}
	quitting    bool
	focusedPane int // 0 = log, 1 = input

	// Dimensions
	width       int
	height      int
	initialized bool

	// Test mode
	testMode    bool
	capturedLog []string
	notices     []string
}

// SnapshotMsg redraws the table from a new snapshot.
type SnapshotMsg struct {
	Snapshot game.Snapshot
}

// NoticeMsg shows a status line above the input.
type NoticeMsg struct {
	Text string
}

// QuitMsg is a custom message to signal quit
type QuitMsg struct{}

// NewTUIModel creates a new TUI model
func NewTUIModel(logger *log.Logger) *TUIModel {
	return NewTUIModelWithOptions(logger, false)
}

// NewTUIModelWithOptions creates a new TUI model with test mode option
func NewTUIModelWithOptions(logger *log.Logger, testMode bool) *TUIModel {
	// Sized properly when the first WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(focusBorder).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	return &TUIModel{
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		actionInput: ti,
		lines:       make(chan string, 1),
		quitSignal:  make(chan struct{}, 1),
		focusedPane: 1,
		testMode:    testMode,
	}
}

// Init initializes the TUI model
func (m *TUIModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listenForQuit())
}

func (m *TUIModel) listenForQuit() tea.Cmd {
	return func() tea.Msg {
		<-m.quitSignal
		return QuitMsg{}
	}
}

// Update handles messages in the TUI
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case QuitMsg:
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)

	case SnapshotMsg:
		m.setSnapshot(msg.Snapshot)
		return m, nil

	case NoticeMsg:
		m.status = msg.Text
		if m.testMode {
			m.notices = append(m.notices, msg.Text)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			m.submit("quit")
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.actionInput.Focus()
			} else {
				m.focusedPane = 0
				m.actionInput.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				if line := strings.TrimSpace(m.actionInput.Value()); line != "" {
					m.submit(line)
				}
				m.actionInput.SetValue("")
			}
		case "up", "k":
			if m.focusedPane == 0 {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == 0 {
				m.logViewport.ScrollDown(1)
			}
		case "pgup", "b":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageUp()
			}
		case "pgdown", "f":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageDown()
			}
		case "home", "g":
			if m.focusedPane == 0 {
				m.logViewport.GotoTop()
			}
		case "end", "G":
			if m.focusedPane == 0 {
				m.logViewport.GotoBottom()
			}
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.actionInput, cmd = m.actionInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit hands a typed line to whoever is prompting. One line may be queued
// ahead of the prompt; anything more is refused until the table catches up.
func (m *TUIModel) submit(line string) {
	select {
	case m.lines <- line:
	default:
		m.status = "Still working on your last command..."
	}
}

func (m *TUIModel) setSnapshot(s game.Snapshot) {
	m.snapshot = s
	m.gameLog = s.Log

	if m.testMode {
		m.capturedLog = append([]string(nil), s.Log...)
		return
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// View renders the TUI
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	actionContent := m.renderActionPane()
	actionHeight := lipgloss.Height(actionContent)
	actionPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.borderFor(1)).
		Width(max(m.width-2, 1)).
		Height(max(actionHeight, 1)).
		Render(actionContent)

	sidebarContent := m.renderSidebarPane()
	sidebarWidth := max(lipgloss.Width(sidebarContent), 28)
	paneHeight := max(m.height-actionHeight-4, 1)

	sidebarPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(idleBorder).
		Width(sidebarWidth).
		Height(paneHeight).
		Render(sidebarContent)

	logWidth := max(m.width-sidebarWidth-4, 1)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.Width = logWidth
	m.logViewport.Height = paneHeight
	if !m.initialized && logWidth > 1 && paneHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.borderFor(0)).
		Width(logWidth).
		Height(paneHeight).
		Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, logPane, sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Top, topRow, actionPane)
}

func (m *TUIModel) borderFor(pane int) lipgloss.Color {
	if m.focusedPane == pane {
		return focusBorder
	}
	return idleBorder
}

// renderSidebarPane shows the scores, trump and the trick in progress
func (m *TUIModel) renderSidebarPane() string {
	s := m.snapshot
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(fmt.Sprintf(" Hand %d ", s.HandNumber)))
	b.WriteString("\n\n")

	for _, team := range []game.Team{0, 1} {
		label := team.String()
		if s.Seat.Valid() && s.Seat.Team() == team {
			label += " (you)"
		}
		b.WriteString(ScoreStyle.Render(fmt.Sprintf("%-15s %2d", label+":", s.Scores[team])))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s.Dealer.Valid() {
		b.WriteString(fmt.Sprintf("Dealer: %s\n", s.Dealer))
	}
	switch {
	case s.Trump.Valid():
		b.WriteString(TrumpStyle.Render(fmt.Sprintf("Trump: %s %s", s.Trump, s.Trump.Name())))
		b.WriteString(fmt.Sprintf("\nCalled by: %s\n", s.Caller))
		b.WriteString(fmt.Sprintf("Tricks: %d-%d\n", teamTricks(s.Tricks, 0), teamTricks(s.Tricks, 1)))
	case s.KittyUp:
		b.WriteString(fmt.Sprintf("Turned up: %s\n", formatCard(s.Kitty)))
	case s.TurnedDown.Valid():
		b.WriteString(fmt.Sprintf("Turned down: %s\n", s.TurnedDown.Name()))
	}

	if len(s.Trick) > 0 {
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render("Current trick:"))
		b.WriteString("\n")
		for _, p := range s.Trick {
			b.WriteString(fmt.Sprintf("  %s: %s\n", p.Seat, formatCard(p.Card)))
		}
	} else if s.LastTrick != nil {
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render("Last trick:"))
		b.WriteString("\n")
		for _, p := range s.LastTrick.Plays {
			b.WriteString(fmt.Sprintf("  %s: %s\n", p.Seat, formatCard(p.Card)))
		}
		b.WriteString(fmt.Sprintf("  won by %s\n", s.LastTrick.Winner.Seat))
	}

	if s.LastScore != nil && s.Phase == game.PhaseHandOver {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s, +%d\n", s.LastScore.Team, s.LastScore.Kind, s.LastScore.Points))
	}

	return b.String()
}

// renderActionPane renders the hand, the prompt and the input field
func (m *TUIModel) renderActionPane() string {
	s := m.snapshot
	var b strings.Builder

	if s.Seat.Valid() && len(s.Hand) > 0 {
		b.WriteString(HandInfoStyle.Render("Hand: "))
		hand := append([]deck.Card(nil), s.Hand...)
		deck.Sort(hand, s.Trump)
		b.WriteString(formatCards(hand))
		b.WriteString("\n")
	}
	b.WriteString(PromptStyle.Render(promptFor(s)))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(StatusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.actionInput.View())
	b.WriteString("\n")

	if m.focusedPane == 0 {
		b.WriteString(InfoStyle.Render("Log focused: ↑↓ scroll, PgUp/PgDn half page, Home/End, Tab to input"))
	} else {
		b.WriteString(InfoStyle.Render("Tab to scroll log • Enter to submit • Ctrl+C to quit"))
	}
	return b.String()
}

// promptFor says what the human seat is expected to do next.
func promptFor(s game.Snapshot) string {
	switch {
	case s.MatchOver:
		return fmt.Sprintf("%s wins the match. Ctrl+C to exit.", s.Winner)
	case !s.Seat.Valid():
		return "Spectating..."
	case s.AwaitingDiscard && s.Dealer == s.Seat:
		return "Discard a card: discard <card>"
	case s.Phase == game.PhaseBidding && s.Bidder == s.Seat:
		if s.Round == 1 {
			return fmt.Sprintf("Order up %s or pass?", formatCard(s.Kitty))
		}
		names := make([]string, len(s.Available))
		for i, suit := range s.Available {
			names[i] = suit.Name()
		}
		return fmt.Sprintf("Call %s or pass?", strings.Join(names, ", "))
	case s.Phase == game.PhasePlaying && s.ToAct == s.Seat:
		return "Your play: " + formatCards(s.Legal)
	}
	return "Waiting..."
}

func teamTricks(tricks [game.NumSeats]int, team game.Team) int {
	seats := team.Seats()
	return tricks[seats[0]] + tricks[seats[1]]
}

func formatCard(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

func formatCards(cards []deck.Card) string {
	formatted := make([]string, len(cards))
	for i, c := range cards {
		formatted[i] = formatCard(c)
	}
	return "[" + strings.Join(formatted, " ") + "]"
}

// Lines delivers each line the human submits.
func (m *TUIModel) Lines() <-chan string {
	return m.lines
}

// SendQuitSignal signals the TUI to quit gracefully
func (m *TUIModel) SendQuitSignal() {
	select {
	case m.quitSignal <- struct{}{}:
	default:
	}
}

// GetCapturedLog returns the log from the latest snapshot (test mode only)
func (m *TUIModel) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	return append([]string(nil), m.capturedLog...)
}

// GetNotices returns every notice shown so far (test mode only)
func (m *TUIModel) GetNotices() []string {
	if !m.testMode {
		return nil
	}
	return append([]string(nil), m.notices...)
}

// InjectLine programmatically submits a line (test mode only)
func (m *TUIModel) InjectLine(line string) error {
	if !m.testMode {
		return fmt.Errorf("line injection only available in test mode")
	}
	select {
	case m.lines <- line:
		return nil
	default:
		return fmt.Errorf("input channel full")
	}
}

// IsTestMode returns whether the TUI is in test mode
func (m *TUIModel) IsTestMode() bool {
	return m.testMode
}
