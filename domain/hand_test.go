package domain

import (
	"reflect"
	"testing"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handOf(t *testing.T, rules Rules, shorthand string) *Hand {
	t.Helper()
	stack, err := cards.ParseStack(shorthand)
	require.NoError(t, err)

	hand := NewHand(rules)
	for _, c := range stack {
		hand.addCard(c, false)
	}
	return hand
}

func TestHand_Score(t *testing.T) {
	tests := []struct {
		cards string
		score int
	}{
		{"", 0},
		{"2C", 2},
		{"TS 9H", 19},
		{"KS QH", 20},
		{"AS KD", 21},
		{"AS AD", 12},
		{"AS AD AH", 13},
		{"AS 5D KH", 16},
		{"AS 9D AH", 21},
		{"TS 9H 5D", 24},
		{"AS AD AH AC 7S", 21},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			hand := handOf(t, DefaultRules(), tt.cards)
			assert.Equal(t, tt.score, hand.Score())
			assert.Equal(t, tt.score > 21, hand.IsBust())
		})
	}
}

func TestHand_Blackjack(t *testing.T) {
	assert.True(t, handOf(t, DefaultRules(), "AS KD").HasBlackjack())
	assert.False(t, handOf(t, DefaultRules(), "7S 7D 7H").HasBlackjack(), "21 with three cards is not a blackjack")
	assert.False(t, handOf(t, DefaultRules(), "AS 9D").HasBlackjack())
}

func TestHand_IsSoft(t *testing.T) {
	assert.True(t, handOf(t, DefaultRules(), "AS 6D").IsSoft())
	assert.True(t, handOf(t, DefaultRules(), "AS AD").IsSoft())
	assert.False(t, handOf(t, DefaultRules(), "TS 7D").IsSoft())
	assert.False(t, handOf(t, DefaultRules(), "AS 2D 4H").IsSoft(), "only two-card hands are soft")
	assert.False(t, handOf(t, DefaultRules(), "AS").IsSoft())
}

func TestHand_CanSplit(t *testing.T) {
	byRank := DefaultRules()
	byValue := DefaultRules()
	byValue.SplitOnValue = true
	noSplits := DefaultRules()
	noSplits.SplitsAllowed = false

	assert.True(t, handOf(t, byRank, "8S 8D").CanSplit())
	assert.False(t, handOf(t, byRank, "TS KD").CanSplit())
	assert.True(t, handOf(t, byValue, "TS KD").CanSplit())
	assert.False(t, handOf(t, byValue, "9S KD").CanSplit())
	assert.False(t, handOf(t, noSplits, "8S 8D").CanSplit())
	assert.False(t, handOf(t, byRank, "8S 8D 8H").CanSplit())
}

func TestHand_CanDouble(t *testing.T) {
	tests := []struct {
		cards string
		want  bool
	}{
		{"4S 4D", false},
		{"4S 5D", true},
		{"4S 6D", true},
		{"5S 6D", true},
		{"6S 6D", false},
		{"2S 3D 5H", false},
	}
	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			assert.Equal(t, tt.want, handOf(t, DefaultRules(), tt.cards).CanDouble())
		})
	}

	rules := DefaultRules()
	rules.DoubleDownAllowed = false
	assert.False(t, handOf(t, rules, "5S 6D").CanDouble())
}

func TestHand_InactiveClearsActions(t *testing.T) {
	hand := handOf(t, DefaultRules(), "5S 6D")
	require.True(t, hand.CanHit())
	require.True(t, hand.CanDouble())

	hand.setState(HandInactive)

	assert.Equal(t, HandInactive, hand.State())
	assert.False(t, hand.CanHit())
	assert.False(t, hand.CanDouble())
	assert.Equal(t, 11, hand.Score())
}

func TestHand_EmitsOnlyChanges(t *testing.T) {
	hand := NewHand(DefaultRules())
	var received []events.Event
	hand.RegisterEventHandler(func(e events.Event) { received = append(received, e) })

	hand.addCard(cards.NewCard(cards.Five, cards.Spades), false)
	require.Len(t, received, 2)
	assert.IsType(t, events.CardDealt{}, received[0])
	assert.Equal(t, events.ScoreChanged{Seat: "", Before: 0, After: 5}, received[1])

	received = nil
	hand.addCard(cards.NewCard(cards.Six, cards.Diamonds), false)
	assert.Contains(t, received, events.HandFlagChanged{Flag: events.FlagCanDouble, Value: true})
	assert.Contains(t, received, events.ScoreChanged{Before: 5, After: 11})

	received = nil
	hand.setResult(ResultWin)
	hand.setResult(ResultWin)
	assert.Equal(t, []events.Event{events.HandResultSet{Result: "WIN"}}, received)
}

func TestHand_CardsIsACopy(t *testing.T) {
	hand := handOf(t, DefaultRules(), "AS KD")
	hand.Cards()[0] = cards.NewCard(cards.Two, cards.Clubs)
	assert.Equal(t, 21, hand.Score())
	assert.Equal(t, "A♠ K♦", hand.String())
}

func TestHand_NoExportedMutators(t *testing.T) {
	handType := reflect.TypeOf(&Hand{})
	for _, name := range []string{"AddCard", "SetState", "SetResult"} {
		_, ok := handType.MethodByName(name)
		assert.False(t, ok, "%s must not be callable outside the domain", name)
	}

	game := newTestGame(t, DefaultRules(), "TS 9H 7D 8C 2S")
	game.Player().Stand()
	assert.False(t, game.Player().IsActive())
	assert.Equal(t, HandInactive, game.Player().Hand().State(), "hand state follows the participant")
}
