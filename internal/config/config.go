// Package config loads ohell settings from an HCL file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/ohell/internal/game"
)

// DefaultFile is the config file looked up when none is given
const DefaultFile = "ohell.hcl"

// Config represents the complete configuration
type Config struct {
	Game   GameSettings   `hcl:"game,block"`
	Log    LogSettings    `hcl:"log,block"`
	Export ExportSettings `hcl:"export,block"`
}

// GameSettings seeds the first game's setup
type GameSettings struct {
	StartingCards int      `hcl:"starting_cards,optional"`
	Players       []string `hcl:"players,optional"`
}

// LogSettings controls the log file written while the TUI runs
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// ExportSettings controls scorecard export at game over. An empty Dir
// disables export.
type ExportSettings struct {
	Dir string `hcl:"dir,optional"`
}

// fileConfig mirrors Config with optional blocks so a file may omit any of
// them.
type fileConfig struct {
	Game   *GameSettings   `hcl:"game,block"`
	Log    *LogSettings    `hcl:"log,block"`
	Export *ExportSettings `hcl:"export,block"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: GameSettings{
			StartingCards: game.DefaultStartingCards,
		},
		Log: LogSettings{
			Level: "info",
			File:  "ohell.log",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if raw.Game != nil {
		if raw.Game.StartingCards != 0 {
			cfg.Game.StartingCards = raw.Game.StartingCards
		}
		cfg.Game.Players = raw.Game.Players
	}
	if raw.Log != nil {
		if raw.Log.Level != "" {
			cfg.Log.Level = raw.Log.Level
		}
		if raw.Log.File != "" {
			cfg.Log.File = raw.Log.File
		}
	}
	if raw.Export != nil {
		cfg.Export.Dir = raw.Export.Dir
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !game.ValidStartingCards(c.Game.StartingCards) {
		return fmt.Errorf("starting_cards must be between %d and %d, got %d",
			game.MinStartingCards, game.MaxStartingCards, c.Game.StartingCards)
	}

	if len(c.Game.Players) > game.MaxPlayers {
		return fmt.Errorf("at most %d players, got %d", game.MaxPlayers, len(c.Game.Players))
	}

	seen := make(map[string]bool)
	for i, name := range c.Game.Players {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, err := strconv.Atoi(name); err == nil {
			return fmt.Errorf("player %d: name %q is a number and would hide a seat", i+1, name)
		}
		// Players are looked up by name without regard to case
		key := strings.ToLower(name)
		if seen[key] {
			return fmt.Errorf("player %d: duplicate name %q", i+1, name)
		}
		seen[key] = true
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}

	return nil
}

// LogLevel returns the parsed log level, falling back to info
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Apply seeds a session's setup with the configured starting cards and
// player names. Seats beyond the configured names are left as they are.
func (c *Config) Apply(s *game.Session) {
	s.SetStartingCards(c.Game.StartingCards)
	for i, name := range c.Game.Players {
		s.SetPlayerName(i, name)
	}
}
