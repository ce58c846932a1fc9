package domain

import (
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
)

type HandResult string

const (
	ResultBlackjack HandResult = "BLACKJACK"
	ResultBust      HandResult = "BUST"
	ResultLose      HandResult = "LOSE"
	ResultPush      HandResult = "PUSH"
	ResultWin       HandResult = "WIN"
	ResultTBD       HandResult = "TBD"
)

type HandState string

const (
	HandActive   HandState = "ACTIVE"
	HandInactive HandState = "INACTIVE"
)

// derived holds every value a hand computes from its cards.
type derived struct {
	score        int
	canSplit     bool
	canDouble    bool
	canHit       bool
	isBust       bool
	isSoft       bool
	hasBlackjack bool
}

// Hand is the ordered set of cards held by one participant plus its score
// and eligibility flags. Every derived value is recomputed when a card is
// added or the hand becomes inactive, and each change is emitted. Cards,
// state and result are changed only through the participant and the game.
type Hand struct {
	notifier

	rules  Rules
	gameID string
	seat   events.Seat

	cards  cards.Stack
	d      derived
	result HandResult
	state  HandState
}

// NewHand creates an empty, active hand played with the given rules
func NewHand(rules Rules) *Hand {
	return newHand(rules, "", "")
}

func newHand(rules Rules, gameID string, seat events.Seat) *Hand {
	h := &Hand{
		rules:  rules,
		gameID: gameID,
		seat:   seat,
		cards:  cards.Stack{},
		result: ResultTBD,
		state:  HandActive,
	}
	h.d = h.compute()
	return h
}

func (h *Hand) addCard(card cards.Card, faceDown bool) {
	h.cards.AddCard(card)
	h.emitEvent(events.CardDealt{
		GameID:   h.gameID,
		Seat:     h.seat,
		Card:     card,
		Position: len(h.cards) - 1,
		FaceDown: faceDown,
	})
	h.update()
}

func (h *Hand) compute() derived {
	var d derived
	d.score = h.calculateScore()
	d.isBust = d.score > h.rules.MaxScore
	d.hasBlackjack = h.HasTwoCards() && d.score == h.rules.MaxScore

	aces := h.NumberOfAces()
	d.isSoft = h.HasTwoCards() && aces >= 1 && aces <= 2

	if h.rules.SplitsAllowed && h.HasTwoCards() {
		first, second := h.cards[0], h.cards[1]
		if h.rules.SplitOnValue {
			d.canSplit = first.SameValue(second)
		} else {
			d.canSplit = first.SameRank(second)
		}
	}

	if h.state == HandActive {
		d.canHit = d.score < h.rules.MaxScore
		d.canDouble = h.rules.DoubleDownAllowed && h.HasTwoCards() && d.score > 8 && d.score < 12
	}
	return d
}

// calculateScore counts every Ace as 11, then takes 10 points off one Ace at
// a time while the total is over the max score.
func (h *Hand) calculateScore() int {
	score := 0
	for _, c := range h.cards {
		score += c.Value()
	}
	for aces := h.NumberOfAces(); score > h.rules.MaxScore && aces > 0; aces-- {
		score -= 10
	}
	return score
}

func (h *Hand) update() {
	prev, next := h.d, h.compute()
	h.d = next

	if prev.score != next.score {
		h.emitEvent(events.ScoreChanged{GameID: h.gameID, Seat: h.seat, Before: prev.score, After: next.score})
	}

	flags := []struct {
		name       string
		prev, next bool
	}{
		{events.FlagCanSplit, prev.canSplit, next.canSplit},
		{events.FlagCanDouble, prev.canDouble, next.canDouble},
		{events.FlagCanHit, prev.canHit, next.canHit},
		{events.FlagIsBust, prev.isBust, next.isBust},
		{events.FlagIsSoft, prev.isSoft, next.isSoft},
		{events.FlagHasBlackjack, prev.hasBlackjack, next.hasBlackjack},
	}
	for _, f := range flags {
		if f.prev != f.next {
			h.emitEvent(events.HandFlagChanged{GameID: h.gameID, Seat: h.seat, Flag: f.name, Value: f.next})
		}
	}
}

// Cards returns a copy of the cards in deal order
func (h *Hand) Cards() cards.Stack {
	return h.cards.Clone()
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

func (h *Hand) Score() int         { return h.d.score }
func (h *Hand) CanSplit() bool     { return h.d.canSplit }
func (h *Hand) CanDouble() bool    { return h.d.canDouble }
func (h *Hand) CanHit() bool       { return h.d.canHit }
func (h *Hand) IsBust() bool       { return h.d.isBust }
func (h *Hand) HasBlackjack() bool { return h.d.hasBlackjack }

// IsSoft reports a two-card hand holding one or two Aces. It is false for
// any other number of cards.
func (h *Hand) IsSoft() bool { return h.d.isSoft }

func (h *Hand) HasTwoCards() bool {
	return len(h.cards) == 2
}

func (h *Hand) NumberOfAces() int {
	n := 0
	for _, c := range h.cards {
		if c.IsAce() {
			n++
		}
	}
	return n
}

func (h *Hand) Result() HandResult {
	return h.result
}

// setResult records the outcome of the hand
func (h *Hand) setResult(result HandResult) {
	if h.result == result {
		return
	}
	h.result = result
	h.emitEvent(events.HandResultSet{GameID: h.gameID, Seat: h.seat, Result: string(result)})
}

func (h *Hand) State() HandState {
	return h.state
}

// setState changes the hand state. An inactive hand can no longer hit or
// double, whatever its score. Only the owning participant changes it.
func (h *Hand) setState(state HandState) {
	if h.state == state {
		return
	}
	h.state = state
	h.emitEvent(events.HandStateChanged{GameID: h.gameID, Seat: h.seat, State: string(state)})
	h.update()
}

func (h *Hand) String() string {
	return h.cards.String()
}
