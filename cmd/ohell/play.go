package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/ohell/cmd/ohell/shared"
	"github.com/lox/ohell/internal/config"
	"github.com/lox/ohell/internal/game"
	"github.com/lox/ohell/internal/scorecard"
	"github.com/lox/ohell/internal/tui"
)

// PlayCmd runs the interactive scorer
type PlayCmd struct {
	Config    string   `kong:"default='ohell.hcl',type='path',help='HCL config file (optional)'"`
	Cards     int      `kong:"help='Starting number of cards (8-15)'"`
	Player    []string `kong:"short='p',help='Player name, repeat for each seat in order'"`
	ExportDir string   `kong:"type='path',help='Write the final scorecard to this directory'"`
	LogFile   string   `kong:"type='path',help='Log file (the terminal is taken by the UI)'"`
	Debug     bool     `kong:"help='Enable debug logging'"`
	ShowBids  bool     `kong:"help='Log every bid change'"`
}

func (c *PlayCmd) Run() error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	logger := shared.SetupFileLogger(logFile, cfg.LogLevel())

	session := game.NewSession(game.WithLogger(logger))
	logger.Info("Starting session", "session", session.ID(), "cards", cfg.Game.StartingCards, "players", len(cfg.Game.Players))

	opts := []tui.Option{
		tui.WithFormatting(game.FormattingOptions{ShowBids: c.ShowBids}),
	}
	if dir := cfg.Export.Dir; dir != "" {
		opts = append(opts, tui.WithExporter(func(snap game.Snapshot) (string, error) {
			return scorecard.Export(dir, snap)
		}))
	}
	model := tui.NewModel(session, logger, opts...)
	model.AddLogEntry(tui.InfoStyle.Render("Type 'help' for commands."))

	// Seed setup after subscribing so the choices show up in the log
	cfg.Apply(session)

	return runProgram(shared.SetupSignalHandler(logger), model, logger)
}

func (c *PlayCmd) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if c.Cards != 0 {
		cfg.Game.StartingCards = c.Cards
	}
	if len(c.Player) > 0 {
		cfg.Game.Players = c.Player
	}
	if c.ExportDir != "" {
		cfg.Export.Dir = c.ExportDir
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if c.Debug {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// runProgram runs the TUI until it exits or ctx is cancelled
func runProgram(ctx context.Context, model tea.Model, logger *log.Logger) error {
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithoutSignalHandler())

	runCtx, cancel := context.WithCancel(ctx)
	g, runCtx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		defer cancel()
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		logger.Info("TUI exited")
		return nil
	})

	g.Go(func() error {
		<-runCtx.Done()
		program.Quit()
		return nil
	})

	return g.Wait()
}
