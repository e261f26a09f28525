package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/ohell/internal/game"
	"github.com/lox/ohell/internal/scorecard"
)

// RoundsCmd prints the round sequence for a starting hand size
type RoundsCmd struct {
	Cards   int  `kong:"arg,optional,default='12',help='Starting number of cards (8-15)'"`
	NoColor bool `kong:"help='Disable colour output'"`
}

func (c *RoundsCmd) Run() error {
	if !game.ValidStartingCards(c.Cards) {
		return fmt.Errorf("starting cards must be between %d and %d, got %d",
			game.MinStartingCards, game.MaxStartingCards, c.Cards)
	}

	renderer := scorecard.NewRenderer(lipgloss.DefaultRenderer())
	if c.NoColor {
		renderer = scorecard.Plain()
	}

	rounds := game.Rounds(c.Cards)
	fmt.Printf("%d rounds starting with %d cards\n", len(rounds), c.Cards)
	fmt.Println(renderer.Rounds(rounds))
	return nil
}
