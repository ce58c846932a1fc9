package events

import (
	"github.com/lazharichir/blackjack/cards"
)

// Seat identifies which participant of a round an event concerns.
type Seat string

const (
	SeatPlayer Seat = "player"
	SeatDealer Seat = "dealer"
)

// Hand flag names carried by HandFlagChanged.
const (
	FlagCanSplit     = "can-split"
	FlagCanDouble    = "can-double"
	FlagCanHit       = "can-hit"
	FlagIsBust       = "is-bust"
	FlagIsSoft       = "is-soft"
	FlagHasBlackjack = "has-blackjack"
)

// RoundStarted is emitted once a round is created, before any card is dealt.
type RoundStarted struct {
	GameID string
	Decks  int
	Bet    int
}

func (e RoundStarted) EventName() string { return "round-started" }

// CardDealt is emitted whenever a card is added to a hand.
type CardDealt struct {
	GameID   string
	Seat     Seat
	Card     cards.Card
	Position int  // zero-based position of the card in the hand
	FaceDown bool // the dealer's hole card
}

func (e CardDealt) EventName() string { return "card-dealt" }

// ScoreChanged is emitted when the score of a hand changes.
type ScoreChanged struct {
	GameID string
	Seat   Seat
	Before int
	After  int
}

func (e ScoreChanged) EventName() string { return "score-changed" }

// HandFlagChanged is emitted when one of the derived boolean flags of a hand changes.
type HandFlagChanged struct {
	GameID string
	Seat   Seat
	Flag   string
	Value  bool
}

func (e HandFlagChanged) EventName() string { return "hand-flag-changed" }

// HandStateChanged is emitted when a hand becomes active or inactive.
type HandStateChanged struct {
	GameID string
	Seat   Seat
	State  string
}

func (e HandStateChanged) EventName() string { return "hand-state-changed" }

// HandResultSet is emitted when the result of a hand is decided.
type HandResultSet struct {
	GameID string
	Seat   Seat
	Result string
}

func (e HandResultSet) EventName() string { return "hand-result-set" }

// ParticipantDeactivated is emitted when a player or dealer stops acting.
type ParticipantDeactivated struct {
	GameID string
	Seat   Seat
	Reason string
}

func (e ParticipantDeactivated) EventName() string { return "participant-deactivated" }

// CashChanged is emitted when the player's cash balance changes.
type CashChanged struct {
	GameID string
	Seat   Seat
	Before int
	After  int
	Change int
}

func (e CashChanged) EventName() string { return "cash-changed" }

// PlayerBankrupt is emitted when the player's balance reaches zero or less.
type PlayerBankrupt struct {
	GameID string
	Seat   Seat
	Cash   int
}

func (e PlayerBankrupt) EventName() string { return "player-bankrupt" }

// OfferInsuranceChanged is emitted when the insurance offer is computed.
type OfferInsuranceChanged struct {
	GameID  string
	Offered bool
}

func (e OfferInsuranceChanged) EventName() string { return "offer-insurance-changed" }

// OfferSurrenderChanged is emitted when the surrender offer is computed.
type OfferSurrenderChanged struct {
	GameID  string
	Offered bool
}

func (e OfferSurrenderChanged) EventName() string { return "offer-surrender-changed" }

// DealerTurnTaken is emitted after the dealer has finished drawing.
type DealerTurnTaken struct {
	GameID     string
	CardsDrawn int
	FinalScore int
}

func (e DealerTurnTaken) EventName() string { return "dealer-turn-taken" }

// RoundSettled is emitted once the bet has been paid or collected.
type RoundSettled struct {
	GameID       string
	PlayerResult string
	DealerResult string
	Bet          int
	Payout       int // signed change to the player's cash
}

func (e RoundSettled) EventName() string { return "round-settled" }

// GameOver is emitted when the round has ended.
type GameOver struct {
	GameID       string
	PlayerResult string
	DealerResult string
	PlayerScore  int
	DealerScore  int
}

func (e GameOver) EventName() string { return "game-over" }
