package domain

import (
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
)

// Participant is what the player and the dealer have in common: a hand,
// an active flag, and the hit and stand actions.
type Participant interface {
	Seat() events.Seat
	Hand() *Hand
	IsActive() bool
	Hit() error
	Stand()
	RegisterEventHandler(handler events.EventHandler)
}

// PlayerActions is the action set offered to the human player.
type PlayerActions interface {
	Participant
	DoubleDown() error
	Surrender() error
	BuyInsurance() error
	Split() error
}

var (
	_ PlayerActions = (*Player)(nil)
	_ Participant   = (*Dealer)(nil)
)

// Reasons carried by ParticipantDeactivated.
const (
	ReasonStand      = "stand"
	ReasonBust       = "bust"
	ReasonBlackjack  = "blackjack"
	ReasonMaxScore   = "max-score"
	ReasonSurrender  = "surrender"
	ReasonDoubleDown = "double-down"
	ReasonBankrupt   = "bankrupt"
)

// participant owns a hand and draws into it from the shoe of its game.
// Once inactive it never becomes active again.
type participant struct {
	notifier

	seat   events.Seat
	gameID string
	rules  Rules
	hand   *Hand
	shoe   *cards.Shoe
	active bool
}

func newParticipant(seat events.Seat, gameID string, rules Rules, shoe *cards.Shoe) participant {
	return participant{
		seat:   seat,
		gameID: gameID,
		rules:  rules,
		hand:   newHand(rules, gameID, seat),
		shoe:   shoe,
		active: true,
	}
}

func (p *participant) Seat() events.Seat { return p.seat }
func (p *participant) Hand() *Hand       { return p.hand }
func (p *participant) IsActive() bool    { return p.active }

// Hit draws one card from the shoe into the hand
func (p *participant) Hit() error {
	if !p.active {
		return actionError(p.seat, ActionHit, ErrInactive)
	}
	card, err := p.shoe.Deal()
	if err != nil {
		return actionError(p.seat, ActionHit, err)
	}
	p.receive(card, false)
	return nil
}

// Stand ends the participant's turn. It can be called at any time.
func (p *participant) Stand() {
	p.deactivate(ReasonStand)
}

// receive adds a card to the hand and deactivates the participant when the
// hand is bust, a blackjack, or can no longer hit.
func (p *participant) receive(card cards.Card, faceDown bool) {
	p.hand.addCard(card, faceDown)
	if !p.active {
		return
	}
	switch {
	case p.hand.IsBust():
		p.deactivate(ReasonBust)
	case p.hand.HasBlackjack():
		p.deactivate(ReasonBlackjack)
	case !p.hand.CanHit():
		p.deactivate(ReasonMaxScore)
	}
}

func (p *participant) deactivate(reason string) {
	wasActive := p.active
	p.active = false
	p.hand.setState(HandInactive)
	if wasActive {
		p.emitEvent(events.ParticipantDeactivated{GameID: p.gameID, Seat: p.seat, Reason: reason})
	}
}
