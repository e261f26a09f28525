package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/ohell/internal/game"
)

// Command is a parsed line of user input
type Command struct {
	Action string
	Args   []string
}

// ParseCommand splits input into a lower-cased action and its arguments.
// Arguments keep their case so player names survive.
func ParseCommand(input string) Command {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return Command{}
	}
	return Command{
		Action: strings.ToLower(parts[0]),
		Args:   parts[1:],
	}
}

var (
	errSetupLocked = errors.New("setup is locked once round 1 is over; use 'new' to start again")
	errGameOver    = errors.New("the game is over; use 'new' to start again")
)

var helpLines = []string{
	"cards <8-15>          starting hand size (round 1 only)",
	"name <seat> <name>    name a seat 1-6, no name clears it (round 1 only)",
	"bid <player> <n>      set a bid for this round",
	"made <player>         bid made: scores 10 + bid (also: yes, y)",
	"miss <player>         bid missed: scores 0 (also: no, n)",
	"next                  next round, or finish on the last round",
	"new                   start a new game",
	"quit                  exit",
}

// execute applies a command to the session. It reports whether the program
// should quit.
func (m *Model) execute(cmd Command) (bool, error) {
	switch cmd.Action {
	case "":
		return false, nil

	case "quit", "exit", "q":
		return true, nil

	case "help", "?":
		for _, line := range helpLines {
			m.AddLogEntry(InfoStyle.Render(line))
		}
		return false, nil

	case "cards":
		if len(cmd.Args) != 1 {
			return false, fmt.Errorf("usage: cards <%d-%d>", game.MinStartingCards, game.MaxStartingCards)
		}
		if m.session.IsSetupLocked() {
			return false, errSetupLocked
		}
		m.session.SetStartingCardsInput(cmd.Args[0])
		return false, nil

	case "name":
		if len(cmd.Args) < 1 {
			return false, errors.New("usage: name <seat> <name>")
		}
		if m.session.IsSetupLocked() {
			return false, errSetupLocked
		}
		seat, err := parseSeat(cmd.Args[0])
		if err != nil {
			return false, err
		}
		name := strings.Join(cmd.Args[1:], " ")
		if _, err := strconv.Atoi(name); err == nil {
			return false, fmt.Errorf("name %q is a number and would hide a seat", name)
		}
		if other := m.findPlayer(name); name != "" && other >= 0 && other != seat {
			return false, fmt.Errorf("%s is already at seat %d", name, other+1)
		}
		m.session.SetPlayerName(seat, name)
		return false, nil

	case "bid", "b":
		if len(cmd.Args) != 2 {
			return false, errors.New("usage: bid <player> <n>")
		}
		if m.session.IsGameOver() {
			return false, errGameOver
		}
		seat, err := m.resolvePlayer(cmd.Args[0])
		if err != nil {
			return false, err
		}
		m.session.SetBidInput(seat, cmd.Args[1])
		if bid, cards := m.session.Bid(seat), m.session.CardsInRound(); bid > cards {
			m.AddLogEntry(WarningStyle.Render(fmt.Sprintf("%s bids %d with only %d cards dealt", m.session.PlayerName(seat), bid, cards)))
		}
		return false, nil

	case "made", "yes", "y", "miss", "no", "n":
		if len(cmd.Args) != 1 {
			return false, fmt.Errorf("usage: %s <player>", cmd.Action)
		}
		if m.session.IsGameOver() {
			return false, errGameOver
		}
		seat, err := m.resolvePlayer(cmd.Args[0])
		if err != nil {
			return false, err
		}
		if m.session.HasResult(seat) {
			return false, fmt.Errorf("%s already has a result for round %d", m.session.PlayerName(seat), m.session.CurrentRound())
		}
		made := cmd.Action == "made" || cmd.Action == "yes" || cmd.Action == "y"
		if !m.session.RecordResult(seat, made) {
			return false, errors.New("no rounds to play; set starting cards between 8 and 15")
		}
		return false, nil

	case "next", "finish":
		if m.session.IsGameOver() {
			return false, errGameOver
		}
		if m.session.TotalRounds() == 0 {
			return false, errors.New("no rounds to play; set starting cards between 8 and 15")
		}
		m.session.AdvanceRound()
		return false, nil

	case "new", "reset":
		m.ClearLog()
		m.session.Reset()
		return false, nil

	default:
		return false, fmt.Errorf("unknown command %q (try 'help')", cmd.Action)
	}
}

// parseSeat converts a 1-based seat number to an index
func parseSeat(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > game.MaxPlayers {
		return 0, fmt.Errorf("seat must be a number from 1 to %d, got %q", game.MaxPlayers, arg)
	}
	return n - 1, nil
}

// resolvePlayer accepts a seat number or a player name and requires the seat
// to be active. Seat numbers win over names.
func (m *Model) resolvePlayer(arg string) (int, error) {
	seat, err := parseSeat(arg)
	if err != nil {
		if seat = m.findPlayer(arg); seat < 0 {
			return 0, fmt.Errorf("no player %q", arg)
		}
	}
	if m.session.PlayerName(seat) == "" {
		return 0, fmt.Errorf("seat %d is empty", seat+1)
	}
	return seat, nil
}

// findPlayer returns the seat whose name matches case-insensitively, or -1
func (m *Model) findPlayer(name string) int {
	if name == "" {
		return -1
	}
	for _, seat := range m.session.ActivePlayers() {
		if strings.EqualFold(m.session.PlayerName(seat), name) {
			return seat
		}
	}
	return -1
}
