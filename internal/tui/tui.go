package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/ohell/internal/game"
	"github.com/lox/ohell/internal/gameid"
	"github.com/lox/ohell/internal/scorecard"
)

// Exporter writes the final scorecard and returns where it went
type Exporter func(snap game.Snapshot) (string, error)

// Option configures a Model
type Option func(*Model)

// WithTestMode captures log entries and skips viewport updates
func WithTestMode() Option {
	return func(m *Model) {
		m.testMode = true
	}
}

// WithExporter exports the scorecard whenever a game ends
func WithExporter(export Exporter) Option {
	return func(m *Model) {
		m.export = export
	}
}

// WithFormatting sets how session events are written to the log pane
func WithFormatting(opts game.FormattingOptions) Option {
	return func(m *Model) {
		m.formatter = game.NewEventFormatter(opts)
	}
}

// Model is the Bubble Tea model that renders a session and turns typed
// commands into session operations
type Model struct {
	session   *game.Session
	logger    *log.Logger
	formatter *game.EventFormatter
	board     *scorecard.Renderer
	export    Exporter

	// UI components
	logViewport viewport.Model
	input       textinput.Model

	// State
	gameLog     []string
	quitting    bool
	focusedPane int // 0 = log, 1 = input

	// Dimensions
	width       int
	height      int
	initialized bool

	// Test mode
	testMode    bool
	capturedLog []string
}

// NewModel creates a model for session and subscribes it to the session's
// events
func NewModel(session *game.Session, logger *log.Logger, opts ...Option) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "Type a command (bid 1 3, made 1, next, help)"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 100
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	m := &Model{
		session:     session,
		logger:      logger.WithPrefix("tui"),
		formatter:   game.NewEventFormatter(game.FormattingOptions{}),
		board:       scorecard.NewRenderer(lipgloss.DefaultRenderer()),
		logViewport: vp,
		input:       ti,
		gameLog:     []string{},
		focusedPane: 1,
		capturedLog: []string{},
	}
	for _, opt := range opts {
		opt(m)
	}

	session.EventBus().Subscribe(m)
	return m
}

// OnEvent writes session events to the log and exports the scorecard when
// the game ends
func (m *Model) OnEvent(event game.GameEvent) {
	if line := m.formatter.Format(event); line != "" {
		m.AddLogEntry(line)
	}

	if _, ok := event.(game.GameOverEvent); ok && m.export != nil {
		path, err := m.export(m.session.Snapshot())
		if err != nil {
			m.logger.Error("Failed to export scorecard", "error", err)
			m.AddLogEntry(ErrorStyle.Render(err.Error()))
			return
		}
		m.logger.Info("Exported scorecard", "path", path)
		m.AddLogEntry(SuccessStyle.Render("Scorecard saved to " + path))
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.input.Focus()
			} else {
				m.focusedPane = 0
				m.input.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				input := m.input.Value()
				m.input.SetValue("")
				if quit := m.Submit(input); quit {
					m.quitting = true
					return m, tea.Quit
				}
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
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	// The viewport's own keymap would scroll on letters typed into the input
	if _, isKey := msg.(tea.KeyMsg); !isKey || m.focusedPane == 0 {
		m.logViewport, cmd = m.logViewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// Submit runs one line of input against the session and reports whether the
// program should quit
func (m *Model) Submit(input string) bool {
	cmd := ParseCommand(input)
	m.logger.Debug("Command", "action", cmd.Action, "args", cmd.Args)

	quit, err := m.execute(cmd)
	if err != nil {
		m.logger.Debug("Command rejected", "action", cmd.Action, "error", err)
		m.AddLogEntry(ErrorStyle.Render(err.Error()))
	}
	return quit
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	snap := m.session.Snapshot()

	header := m.renderHeader(snap)

	actionContent := m.renderActionPane(snap)
	actionStyle := paneStyle(m.focusedPane == 1).Width(max(m.width-2, 1))
	actionPane := actionStyle.Render(actionContent)

	board := m.board.Scoreboard(snap)

	sidebarContent := m.renderRoundPane(snap)
	sidebarWidth := max(lipgloss.Width(sidebarContent), 28)

	used := lipgloss.Height(header) + lipgloss.Height(actionPane) + lipgloss.Height(board)
	paneHeight := max(m.height-used-2, 1)

	sidebarPane := paneStyle(false).
		Width(sidebarWidth).
		Height(paneHeight).
		Render(sidebarContent)

	logWidth := max(m.width-sidebarWidth-4, 1)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.Width = logWidth
	m.logViewport.Height = paneHeight

	// On first proper sizing, show the latest entries
	if !m.initialized && logWidth > 1 && paneHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logPane := paneStyle(m.focusedPane == 0).
		Width(logWidth).
		Height(paneHeight).
		Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, logPane, sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Left, header, topRow, board, actionPane)
}

func paneStyle(focused bool) lipgloss.Style {
	border := unfocusedBorder
	if focused {
		border = focusedBorder
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// renderHeader renders the title bar
func (m *Model) renderHeader(snap game.Snapshot) string {
	title := HeaderStyle.Render("♠ O'Hell Scorer ♥")
	status := InfoStyle.Render(fmt.Sprintf("  game %s • %s", gameid.Short(snap.SessionID), snap.Phase))
	return title + status
}

// renderRoundPane renders the current round and each active player's bid
// and result
func (m *Model) renderRoundPane(snap game.Snapshot) string {
	var content strings.Builder

	switch {
	case snap.GameOver:
		content.WriteString(RoundStyle.Render("Game Over!"))
		content.WriteString("\n\n")
		for i, standing := range snap.Standings() {
			content.WriteString(fmt.Sprintf("%d. %s %d\n", i+1, standing.Name, standing.Total))
		}
		return content.String()
	case snap.TotalRounds == 0:
		content.WriteString(ErrorStyle.Render("No rounds to play"))
		content.WriteString("\n")
		content.WriteString(InfoStyle.Render(fmt.Sprintf("cards must be %d-%d", game.MinStartingCards, game.MaxStartingCards)))
		content.WriteString("\n")
	default:
		content.WriteString(RoundStyle.Render(fmt.Sprintf("Round %d/%d (%d cards)", snap.CurrentRound, snap.TotalRounds, snap.CardsInRound)))
		content.WriteString("\n")
	}

	if !snap.SetupLocked {
		content.WriteString(InfoStyle.Render(fmt.Sprintf("Starting cards: %d", snap.StartingCards)))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	for _, p := range snap.Players {
		if !p.Active {
			if !snap.SetupLocked {
				content.WriteString(InactiveStyle.Render(fmt.Sprintf("%d. (empty)", p.Seat+1)))
				content.WriteString("\n")
			}
			continue
		}

		content.WriteString(PlayerNameStyle.Render(fmt.Sprintf("%d. %s", p.Seat+1, p.Name)))
		content.WriteString(fmt.Sprintf("  bid %d  ", p.Bid))
		content.WriteString(m.renderResult(p))
		content.WriteString("\n")
	}

	return content.String()
}

// renderResult renders a player's result for the current round
func (m *Model) renderResult(p game.PlayerView) string {
	if !p.Recorded {
		return InfoStyle.Render("…")
	}
	if p.RoundScore > 0 {
		return SuccessStyle.Render(fmt.Sprintf("✓ +%d", p.RoundScore))
	}
	return ErrorStyle.Render("✗ 0")
}

// renderActionPane renders the command input and help line
func (m *Model) renderActionPane(snap game.Snapshot) string {
	var content strings.Builder

	content.WriteString(m.input.View())
	content.WriteString("\n")

	var help string
	switch {
	case m.focusedPane == 0:
		help = "Log focused: ↑↓ scroll, PgUp/PgDn half page, Home/End, Tab to input"
	case snap.GameOver:
		help = "'new' to start again • Ctrl+C to quit"
	case snap.FinalRound:
		help = "Last round: 'next' finishes the game • 'help' for commands • Ctrl+C to quit"
	default:
		help = "Tab to scroll log • 'help' for commands • Ctrl+C to quit"
	}
	content.WriteString(InfoStyle.Render(help))

	return content.String()
}

// AddLogEntry adds an entry to the game log
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)

	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// ClearLog clears the game log
func (m *Model) ClearLog() {
	m.gameLog = []string{}
	m.logViewport.SetContent("")
}

// GetCapturedLog returns the captured log entries (test mode only)
func (m *Model) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// IsTestMode returns whether the TUI is in test mode
func (m *Model) IsTestMode() bool {
	return m.testMode
}
