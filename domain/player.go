package domain

import (
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
)

// Player represents the human player: a participant with a cash balance
// and the extra blackjack actions.
type Player struct {
	participant

	cash        int
	bankrupt    bool
	doubled     bool
	surrendered bool
}

// NewPlayer creates an active player drawing from the given shoe
func NewPlayer(rules Rules, shoe *cards.Shoe) *Player {
	return newPlayer(rules, "", shoe)
}

func newPlayer(rules Rules, gameID string, shoe *cards.Shoe) *Player {
	return &Player{
		participant: newParticipant(events.SeatPlayer, gameID, rules, shoe),
		cash:        rules.StartingCash,
	}
}

// DoubleDown takes exactly one more card and ends the turn. The hand must
// be allowed to double.
func (p *Player) DoubleDown() error {
	if !p.active {
		return actionError(p.seat, ActionDoubleDown, ErrInactive)
	}
	if !p.hand.CanDouble() {
		return actionError(p.seat, ActionDoubleDown, ErrActionNotAllowed)
	}
	// set before the hit: a bust ends the round immediately
	p.doubled = true
	if err := p.Hit(); err != nil {
		p.doubled = false
		return err
	}
	p.deactivate(ReasonDoubleDown)
	return nil
}

// Surrender forfeits the hand without drawing
func (p *Player) Surrender() error {
	if !p.active {
		return actionError(p.seat, ActionSurrender, ErrInactive)
	}
	p.surrendered = true
	p.deactivate(ReasonSurrender)
	return nil
}

// BuyInsurance is not supported yet.
func (p *Player) BuyInsurance() error {
	return actionError(p.seat, ActionBuyInsurance, ErrNotSupported)
}

// Split is not supported yet: a player plays a single hand.
func (p *Player) Split() error {
	return actionError(p.seat, ActionSplit, ErrNotSupported)
}

func (p *Player) Doubled() bool     { return p.doubled }
func (p *Player) Surrendered() bool { return p.surrendered }
func (p *Player) Cash() int         { return p.cash }
func (p *Player) IsBankrupt() bool  { return p.bankrupt }

// AddCash adds amount to the player's balance
func (p *Player) AddCash(amount int) error {
	if amount < 0 {
		return actionError(p.seat, ActionAddCash, ErrInvalidAmount)
	}
	p.changeCash(amount)
	return nil
}

// RemoveCash removes amount from the player's balance. A balance of zero or
// less makes the player bankrupt and inactive.
func (p *Player) RemoveCash(amount int) error {
	if amount < 0 {
		return actionError(p.seat, ActionRemoveCash, ErrInvalidAmount)
	}
	p.changeCash(-amount)
	if p.cash <= 0 {
		if !p.bankrupt {
			p.bankrupt = true
			p.emitEvent(events.PlayerBankrupt{GameID: p.gameID, Seat: p.seat, Cash: p.cash})
		}
		p.deactivate(ReasonBankrupt)
	}
	return nil
}

func (p *Player) changeCash(change int) {
	if change == 0 {
		return
	}
	before := p.cash
	p.cash += change
	p.emitEvent(events.CashChanged{
		GameID: p.gameID,
		Seat:   p.seat,
		Before: before,
		After:  p.cash,
		Change: change,
	})
}
