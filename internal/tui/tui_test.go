package tui

import (
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/ohell/internal/game"
)

func newTestModel(t *testing.T, opts ...Option) (*Model, *game.Session) {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}) // Quiet logger for tests

	session := game.NewSession(
		game.WithLogger(logger),
		game.WithIDGenerator(func() string { return "01h5n0et5q6mt3v7ms1234abcd" }),
	)
	m := NewModel(session, logger, append([]Option{WithTestMode()}, opts...)...)
	return m, session
}

func submitAll(m *Model, lines ...string) {
	for _, line := range lines {
		m.Submit(line)
	}
}

func lastLog(m *Model) string {
	entries := m.GetCapturedLog()
	if len(entries) == 0 {
		return ""
	}
	return entries[len(entries)-1]
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected Command
	}{
		{"", Command{}},
		{"   ", Command{}},
		{"next", Command{Action: "next", Args: []string{}}},
		{"BID 1 3", Command{Action: "bid", Args: []string{"1", "3"}}},
		{"name 2 Mary Ann", Command{Action: "name", Args: []string{"2", "Mary", "Ann"}}},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, ParseCommand(test.input), "input: %q", test.input)
	}
}

func TestTUITestMode(t *testing.T) {
	t.Run("test mode captures log entries", func(t *testing.T) {
		m, _ := newTestModel(t)

		assert.True(t, m.IsTestMode())
		assert.Empty(t, m.GetCapturedLog())

		m.AddLogEntry("first")
		m.AddLogEntry("second")
		assert.Equal(t, []string{"first", "second"}, m.GetCapturedLog())
	})

	t.Run("production mode does not capture logs", func(t *testing.T) {
		logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
		m := NewModel(game.NewSession(), logger)

		assert.False(t, m.IsTestMode())
		m.AddLogEntry("Some log entry")
		assert.Nil(t, m.GetCapturedLog())
	})
}

func TestSetupCommands(t *testing.T) {
	m, s := newTestModel(t)

	submitAll(m, "cards 8", "name 1 Alice", "name 2 Mary Ann", "name 4 Dan")

	assert.Equal(t, 8, s.StartingCards())
	assert.Equal(t, "Mary Ann", s.PlayerName(1))
	assert.Equal(t, []int{0, 1, 3}, s.ActivePlayers())
	assert.Equal(t, []string{
		"Starting with 8 cards (16 rounds)",
		"Seat 1: Alice",
		"Seat 2: Mary Ann",
		"Seat 4: Dan",
	}, m.GetCapturedLog())

	t.Run("clear a seat", func(t *testing.T) {
		m.Submit("name 4")
		assert.Equal(t, []int{0, 1}, s.ActivePlayers())
	})

	t.Run("duplicate name", func(t *testing.T) {
		m.Submit("name 3 alice")
		assert.Contains(t, lastLog(m), "already at seat 1")
		assert.Equal(t, "", s.PlayerName(2))
	})

	t.Run("numeric name", func(t *testing.T) {
		m.Submit("name 3 2")
		assert.Contains(t, lastLog(m), "is a number")
		assert.Equal(t, "", s.PlayerName(2))
	})

	t.Run("bad seat", func(t *testing.T) {
		m.Submit("name 7 Greg")
		assert.Contains(t, lastLog(m), "seat must be a number from 1 to 6")
	})

	t.Run("out of range cards empties the round sequence", func(t *testing.T) {
		m.Submit("cards 20")
		assert.Contains(t, lastLog(m), "out of range")
		assert.Equal(t, 0, s.TotalRounds())

		m.Submit("next")
		assert.Contains(t, lastLog(m), "no rounds to play")
		m.Submit("made 1")
		assert.Contains(t, lastLog(m), "no rounds to play")

		m.Submit("cards 8")
		assert.Equal(t, 16, s.TotalRounds())
	})
}

func TestRoundCommands(t *testing.T) {
	m, s := newTestModel(t)
	submitAll(m, "cards 8", "name 1 Alice", "name 2 Bob")

	submitAll(m, "bid 1 3", "bid bob 2", "made alice", "miss 2")

	assert.Equal(t, 13, s.Total(0))
	assert.Equal(t, 0, s.Total(1))
	entries := m.GetCapturedLog()
	assert.Contains(t, entries, "Alice made 3: +13 (total 13)")
	assert.Contains(t, entries, "Bob missed 2: +0 (total 0)")

	t.Run("second result is refused", func(t *testing.T) {
		m.Submit("y 1")
		assert.Contains(t, lastLog(m), "Alice already has a result for round 1")
		assert.Equal(t, 13, s.Total(0))
	})

	t.Run("empty seat", func(t *testing.T) {
		m.Submit("bid 5 1")
		assert.Contains(t, lastLog(m), "seat 5 is empty")
		m.Submit("made carol")
		assert.Contains(t, lastLog(m), `no player "carol"`)
	})

	t.Run("bid above cards warns but sticks", func(t *testing.T) {
		m.Submit("bid 1 12")
		assert.Equal(t, 12, s.Bid(0))
		assert.Contains(t, lastLog(m), "Alice bids 12 with only 8 cards dealt")
	})

	t.Run("next locks setup", func(t *testing.T) {
		m.Submit("next")
		assert.Equal(t, 2, s.CurrentRound())
		assert.Contains(t, lastLog(m), "ROUND 2/16 (7 cards)")
		assert.Equal(t, 0, s.Bid(0))

		m.Submit("cards 10")
		assert.Contains(t, lastLog(m), "setup is locked")
		m.Submit("name 3 Carol")
		assert.Contains(t, lastLog(m), "setup is locked")
		assert.Equal(t, 8, s.StartingCards())
	})

	t.Run("usage errors", func(t *testing.T) {
		m.Submit("bid 1")
		assert.Contains(t, lastLog(m), "usage: bid")
		m.Submit("made")
		assert.Contains(t, lastLog(m), "usage: made")
		m.Submit("dance")
		assert.Contains(t, lastLog(m), `unknown command "dance"`)
	})
}

func TestGameOverAndReset(t *testing.T) {
	var exported []game.Snapshot
	m, s := newTestModel(t, WithExporter(func(snap game.Snapshot) (string, error) {
		exported = append(exported, snap)
		return "/tmp/ohell-test.txt", nil
	}))
	submitAll(m, "cards 8", "name 1 Alice", "name 2 Bob", "bid 2 1", "made 2")

	for i := 0; i < 16; i++ {
		m.Submit("next")
	}
	require.True(t, s.IsGameOver())

	assert.Contains(t, m.GetCapturedLog(), "=== Game Over ===\n1. Bob 11\n2. Alice 0")
	assert.Contains(t, lastLog(m), "Scorecard saved to /tmp/ohell-test.txt")
	require.Len(t, exported, 1)
	assert.True(t, exported[0].GameOver)

	m.Submit("next")
	assert.Contains(t, lastLog(m), "the game is over")
	m.Submit("bid 1 2")
	assert.Contains(t, lastLog(m), "the game is over")

	m.Submit("new")
	assert.Equal(t, game.PhaseSetup, s.Phase())
	assert.Empty(t, s.ActivePlayers())
	assert.Equal(t, "New game 01h5n0et5q6mt3v7ms1234abcd", lastLog(m))
}

func TestExportFailureIsLogged(t *testing.T) {
	m, s := newTestModel(t, WithExporter(func(game.Snapshot) (string, error) {
		return "", errors.New("disk full")
	}))
	m.Submit("cards 8")
	for !s.IsGameOver() {
		m.Submit("next")
	}
	assert.Contains(t, lastLog(m), "disk full")
}

func TestHelpAndQuit(t *testing.T) {
	m, _ := newTestModel(t)

	assert.False(t, m.Submit("help"))
	assert.Len(t, m.GetCapturedLog(), len(helpLines))

	assert.False(t, m.Submit(""))
	assert.True(t, m.Submit("quit"))
	assert.True(t, m.Submit("Q"))
}

func TestUpdate(t *testing.T) {
	m, s := newTestModel(t)

	t.Run("enter submits the input line", func(t *testing.T) {
		m.input.SetValue("cards 9")
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.Equal(t, 9, s.StartingCards())
		assert.Empty(t, m.input.Value())
	})

	t.Run("quit command quits", func(t *testing.T) {
		m.input.SetValue("quit")
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
		assert.Empty(t, m.View())
	})
}

func TestUpdateTabSwitchesFocus(t *testing.T) {
	m, s := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focusedPane)

	// Enter does nothing while the log is focused
	m.input.SetValue("cards 9")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, game.DefaultStartingCards, s.StartingCards())

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focusedPane)
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	submitAll(m, "cards 8", "name 1 Alice", "name 3 Carol", "bid 1 2", "made 1")

	view := m.View()
	assert.Contains(t, view, "O'Hell Scorer")
	assert.Contains(t, view, "1234abcd")
	assert.Contains(t, view, "Round 1/16 (8 cards)")
	assert.Contains(t, view, "1. Alice")
	assert.Contains(t, view, "3. Carol")
	assert.Contains(t, view, "2. (empty)")
	assert.Contains(t, view, "✓ +12")
	assert.Contains(t, view, "R16 (8)")

	for i := 0; i < 16; i++ {
		m.Submit("next")
	}
	view = m.View()
	assert.Contains(t, view, "Game Over!")
	assert.Contains(t, view, "1. Alice 12")
	assert.True(t, strings.Contains(view, "'new' to start again"))
}

func TestResolvePlayerPrefersSeatNumbers(t *testing.T) {
	m, s := newTestModel(t)
	submitAll(m, "name 1 Alice", "name 2 Bob")

	m.Submit("made 2")
	assert.True(t, s.HasResult(1))
	assert.False(t, s.HasResult(0))

	m.Submit("miss alice")
	assert.True(t, s.HasResult(0))

	m.Submit("made 9")
	assert.Contains(t, lastLog(m), `no player "9"`)
}

func TestViewAfterStartingCardsBecomeInvalid(t *testing.T) {
	for _, cards := range []string{"5", "20", "abc"} {
		t.Run(cards, func(t *testing.T) {
			m, s := newTestModel(t)
			m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
			submitAll(m, "name 1 Ann", "bid 1 3", "made 1", "cards "+cards)
			require.Equal(t, 0, s.TotalRounds())

			var view string
			require.NotPanics(t, func() { view = m.View() })
			assert.Contains(t, view, "No rounds to play")
			assert.Contains(t, view, "✓ +13")
		})
	}
}

func TestTypingDoesNotScrollLog(t *testing.T) {
	m, _ := newTestModel(t)
	m.logViewport.Width = 40
	m.logViewport.Height = 3
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "entry"
	}
	m.logViewport.SetContent(strings.Join(lines, "\n"))
	m.logViewport.GotoTop()

	for _, r := range "bid made" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Equal(t, "bid made", m.input.Value())
	assert.Equal(t, 0, m.logViewport.YOffset)

	// With the log focused the same keys scroll it
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Greater(t, m.logViewport.YOffset, 0)
}
