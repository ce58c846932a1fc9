package domain

import (
	"errors"
	"fmt"

	"github.com/lazharichir/blackjack/events"
)

var (
	ErrInactive          = errors.New("participant is not active")
	ErrNotSupported      = errors.New("action is not supported")
	ErrActionNotAllowed  = errors.New("action is not allowed for this hand")
	ErrInvalidAmount     = errors.New("amount must not be negative")
	ErrPlayerStillActive = errors.New("player has not finished acting")
)

// Action names a participant action.
type Action string

const (
	ActionHit          Action = "hit"
	ActionStand        Action = "stand"
	ActionDoubleDown   Action = "double-down"
	ActionSurrender    Action = "surrender"
	ActionBuyInsurance Action = "buy-insurance"
	ActionSplit        Action = "split"
	ActionTakeTurn     Action = "take-turn"
	ActionAddCash      Action = "add-cash"
	ActionRemoveCash   Action = "remove-cash"
)

// ActionError reports which participant action failed and why.
type ActionError struct {
	Action Action
	Seat   events.Seat
	Err    error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s cannot %s: %v", e.Seat, e.Action, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }

func actionError(seat events.Seat, action Action, err error) error {
	return &ActionError{Action: action, Seat: seat, Err: err}
}
