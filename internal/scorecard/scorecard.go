// Package scorecard renders session scoreboards as tables, for the terminal
// UI and for plain-text export.
package scorecard

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/lox/ohell/internal/fileutil"
	"github.com/lox/ohell/internal/game"
)

// Empty is shown for rounds without a result
const Empty = "-"

// Styles used when rendering tables
type Styles struct {
	Border  lipgloss.Style
	Header  lipgloss.Style
	Name    lipgloss.Style
	Cell    lipgloss.Style
	Current lipgloss.Style
	Total   lipgloss.Style
	Title   lipgloss.Style
}

// Renderer renders scoreboards with a fixed set of styles
type Renderer struct {
	styles Styles
}

// NewRenderer creates a renderer with colour styles bound to r
func NewRenderer(r *lipgloss.Renderer) *Renderer {
	return &Renderer{styles: Styles{
		Border:  r.NewStyle().Foreground(lipgloss.Color("#626262")),
		Header:  r.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true).Padding(0, 1),
		Name:    r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true).Padding(0, 1),
		Cell:    r.NewStyle().Padding(0, 1).Align(lipgloss.Center),
		Current: r.NewStyle().Padding(0, 1).Align(lipgloss.Center).Background(lipgloss.Color("#3D3A1E")),
		Total:   r.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true).Padding(0, 1).Align(lipgloss.Right),
		Title:   r.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
	}}
}

// Plain returns a renderer that never emits escape sequences
func Plain() *Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewRenderer(r)
}

// Scoreboard renders one row per active player with a column per round and
// a total. The current round's column is highlighted until the game is over.
func (r *Renderer) Scoreboard(snap game.Snapshot) string {
	headers := make([]string, 0, len(snap.Rounds)+2)
	headers = append(headers, "Player")
	for i, cards := range snap.Rounds {
		headers = append(headers, fmt.Sprintf("R%d (%d)", i+1, cards))
	}
	headers = append(headers, "Total")

	active := snap.Active()
	rows := make([][]string, 0, len(active))
	for _, p := range active {
		row := make([]string, 0, len(headers))
		row = append(row, p.Name)
		for _, cell := range p.Cells {
			row = append(row, FormatCell(cell))
		}
		row = append(row, strconv.Itoa(p.Total))
		rows = append(rows, row)
	}

	currentCol := -1
	if !snap.GameOver && snap.CurrentRound >= 1 && snap.CurrentRound <= len(snap.Rounds) {
		currentCol = snap.CurrentRound
	}
	lastCol := len(headers) - 1

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.styles.Header
			case col == 0:
				return r.styles.Name
			case col == lastCol:
				return r.styles.Total
			case col == currentCol:
				return r.styles.Current
			default:
				return r.styles.Cell
			}
		})

	return t.String()
}

// Rounds renders the round sequence as a two-row table
func (r *Renderer) Rounds(rounds []int) string {
	headers := make([]string, 0, len(rounds)+1)
	cards := make([]string, 0, len(rounds)+1)
	headers = append(headers, "Round")
	cards = append(cards, "Cards")
	for i, n := range rounds {
		headers = append(headers, strconv.Itoa(i+1))
		cards = append(cards, strconv.Itoa(n))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.styles.Border).
		Headers(headers...).
		Row(cards...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return r.styles.Header
			}
			return r.styles.Cell
		})

	return t.String()
}

// Report renders the final scorecard: a title, the scoreboard and the
// standings.
func (r *Renderer) Report(snap game.Snapshot) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("O'Hell scorecard " + snap.SessionID))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Starting cards: %d  Rounds: %d  Status: %s\n\n",
		snap.StartingCards, snap.TotalRounds, snap.Phase))
	b.WriteString(r.Scoreboard(snap))
	b.WriteString("\n\n")

	for i, standing := range snap.Standings() {
		b.WriteString(fmt.Sprintf("%d. %s %d\n", i+1, standing.Name, standing.Total))
	}
	return b.String()
}

// FormatCell renders a scoreboard cell
func FormatCell(cell game.Cell) string {
	if !cell.Recorded {
		return Empty
	}
	return strconv.Itoa(cell.Score)
}

// FileName is the export file name for a session
func FileName(sessionID string) string {
	return fmt.Sprintf("ohell-%s.txt", sessionID)
}

// Export writes the plain-text report for snap into dir and returns the
// path written.
func Export(dir string, snap game.Snapshot) (string, error) {
	path := filepath.Join(dir, FileName(snap.SessionID))
	report := Plain().Report(snap)

	if err := fileutil.WriteFileAtomic(path, []byte(report), 0o644); err != nil {
		return "", fmt.Errorf("failed to export scorecard: %w", err)
	}
	return path, nil
}
