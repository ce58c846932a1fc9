package domain

import (
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
)

const (
	dealerStandsOn = 18
	soft17         = 17
)

// Dealer plays the house hand. Its first card is the hole card, its second
// card is the one showing.
type Dealer struct {
	participant
}

// NewDealer creates an active dealer drawing from the given shoe
func NewDealer(rules Rules, shoe *cards.Shoe) *Dealer {
	return newDealer(rules, "", shoe)
}

func newDealer(rules Rules, gameID string, shoe *cards.Shoe) *Dealer {
	return &Dealer{participant: newParticipant(events.SeatDealer, gameID, rules, shoe)}
}

// UpCard returns the dealer's face-up card. The boolean is false until the
// dealer holds two cards.
func (d *Dealer) UpCard() (cards.Card, bool) {
	if d.hand.Len() < 2 {
		return cards.Card{}, false
	}
	return d.hand.cards[1], true
}

// TakeTurn plays the dealer's hand: below 17 always hits, exactly 17 hits
// only on a soft hand when the rules say so, 18 and above never draws. The
// dealer is inactive afterwards.
func (d *Dealer) TakeTurn() error {
	drawn := 0
	for d.active && d.hand.Score() < dealerStandsOn {
		if d.hand.Score() == soft17 && !(d.rules.DealerHitsSoft17 && d.hand.IsSoft()) {
			break
		}
		if err := d.Hit(); err != nil {
			return actionError(d.seat, ActionTakeTurn, err)
		}
		drawn++
	}
	d.Stand()

	d.emitEvent(events.DealerTurnTaken{GameID: d.gameID, CardsDrawn: drawn, FinalScore: d.hand.Score()})
	return nil
}
