package game

import (
	"log/slog"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
)

// SeatRecord is one side of a replayed round.
type SeatRecord struct {
	Cards  cards.Stack
	Score  int
	Result string
	Active bool
}

// RoundRecord is a round rebuilt from its event history.
type RoundRecord struct {
	GameID         string
	Bet            int
	Player         SeatRecord
	Dealer         SeatRecord
	CashChange     int
	Bankrupt       bool
	OfferInsurance bool
	OfferSurrender bool
	Payout         int
	IsOver         bool
}

func (r *RoundRecord) seat(seat events.Seat) *SeatRecord {
	if seat == events.SeatDealer {
		return &r.Dealer
	}
	return &r.Player
}

// Rehydrate applies the events of a round in order and returns its record
func Rehydrate(history []events.Event) *RoundRecord {
	record := &RoundRecord{
		Player: SeatRecord{Active: true, Result: "TBD"},
		Dealer: SeatRecord{Active: true, Result: "TBD"},
	}
	for _, event := range history {
		record.apply(event)
	}
	return record
}

// apply dispatches events to their appropriate appliers
func (r *RoundRecord) apply(event events.Event) {
	switch e := event.(type) {
	case events.RoundStarted:
		r.GameID = e.GameID
		r.Bet = e.Bet
	case events.CardDealt:
		r.seat(e.Seat).Cards.AddCard(e.Card)
	case events.ScoreChanged:
		r.seat(e.Seat).Score = e.After
	case events.HandResultSet:
		r.seat(e.Seat).Result = e.Result
	case events.ParticipantDeactivated:
		r.seat(e.Seat).Active = false
	case events.CashChanged:
		r.CashChange += e.Change
	case events.PlayerBankrupt:
		r.Bankrupt = true
	case events.OfferInsuranceChanged:
		r.OfferInsurance = e.Offered
	case events.OfferSurrenderChanged:
		r.OfferSurrender = e.Offered
	case events.RoundSettled:
		r.Bet = e.Bet
		r.Payout = e.Payout
	case events.GameOver:
		r.IsOver = true
	case events.HandFlagChanged, events.HandStateChanged, events.DealerTurnTaken:
		// derived from the cards
	default:
		slog.Warn("unknown event type", "event", event.EventName())
	}
}
