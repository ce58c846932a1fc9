package game

import (
	"errors"
	"fmt"
)

// ErrUnknownCommand is returned for a command name nothing handles
var ErrUnknownCommand = errors.New("unknown command")

// Command represents a game action that can be performed
type Command interface {
	CommandName() string
}

// Deal starts a new round
type Deal struct{}

func (c Deal) CommandName() string { return "deal" }

// Hit draws one card for the player
type Hit struct{}

func (c Hit) CommandName() string { return "hit" }

// Stand ends the player's turn
type Stand struct{}

func (c Stand) CommandName() string { return "stand" }

// DoubleDown doubles the bet and draws exactly one card
type DoubleDown struct{}

func (c DoubleDown) CommandName() string { return "double-down" }

// Surrender gives up the hand for half the bet
type Surrender struct{}

func (c Surrender) CommandName() string { return "surrender" }

// BuyInsurance insures the bet against a dealer blackjack
type BuyInsurance struct{}

func (c BuyInsurance) CommandName() string { return "buy-insurance" }

// Split splits a pair into two hands
type Split struct{}

func (c Split) CommandName() string { return "split" }

var commandsByName = map[string]Command{}

func init() {
	for _, cmd := range []Command{Deal{}, Hit{}, Stand{}, DoubleDown{}, Surrender{}, BuyInsurance{}, Split{}} {
		commandsByName[cmd.CommandName()] = cmd
	}
}

// CommandFromName returns the command registered under name
func CommandFromName(name string) (Command, error) {
	cmd, ok := commandsByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	return cmd, nil
}
