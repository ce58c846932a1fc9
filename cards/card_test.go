package cards

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		// Valid cards with different suit notations
		{"Ace of Spades Unicode", "A♠", Card{Rank: Ace, Suit: Spades}, false},
		{"Ace of Spades lowercase", "As", Card{Rank: Ace, Suit: Spades}, false},
		{"Ace of Spades uppercase", "AS", Card{Rank: Ace, Suit: Spades}, false},
		{"Ten of Hearts Unicode", "10♥", Card{Rank: Ten, Suit: Hearts}, false},
		{"Ten of Hearts letter", "Th", Card{Rank: Ten, Suit: Hearts}, false},
		{"Ten of Hearts digits", "10H", Card{Rank: Ten, Suit: Hearts}, false},
		{"Queen of Diamonds Unicode", "Q♦", Card{Rank: Queen, Suit: Diamonds}, false},
		{"Queen of Diamonds lowercase", "qd", Card{Rank: Queen, Suit: Diamonds}, false},
		{"Two of Clubs Unicode", "2♣", Card{Rank: Two, Suit: Clubs}, false},
		{"Two of Clubs uppercase", "2C", Card{Rank: Two, Suit: Clubs}, false},
		{"King of Hearts", "Kh", Card{Rank: King, Suit: Hearts}, false},
		{"Jack of Hearts", "Jh", Card{Rank: Jack, Suit: Hearts}, false},
		{"Nine of Hearts", "9h", Card{Rank: Nine, Suit: Hearts}, false},

		// Invalid inputs
		{"Input with trailing space", "AS ", Card{}, true},
		{"Input with leading space", " AS", Card{}, true},
		{"Too short input", "A", Card{}, true},
		{"Empty input", "", Card{}, true},
		{"Invalid suit", "10X", Card{}, true},
		{"Invalid rank", "11S", Card{}, true},
		{"Reverse order", "♠A", Card{}, true},
		{"Number too large", "100S", Card{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CardFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err, "CardFromString(%q) should return an error", tt.input)
			} else {
				require.NoError(t, err, "CardFromString(%q) should not return an error", tt.input)
				require.Equal(t, tt.want, got, "CardFromString(%q) should return the correct card", tt.input)
			}
		})
	}
}

func TestRankValues(t *testing.T) {
	want := map[Rank]int{
		Two: 2, Three: 3, Four: 4, Five: 5, Six: 6, Seven: 7, Eight: 8, Nine: 9,
		Ten: 10, Jack: 10, Queen: 10, King: 10, Ace: 11,
	}
	require.Len(t, Ranks, 13)
	for _, r := range Ranks {
		assert.Equal(t, want[r], r.Value(), "value of %s", r)
		assert.Len(t, r.Letter(), 1, "letter of %s", r)
	}
	assert.Equal(t, "T", Ten.Letter())
	assert.Equal(t, "Ace", Ace.String())
}

func TestSuitLabels(t *testing.T) {
	require.Equal(t, []Suit{Clubs, Diamonds, Spades, Hearts}, Suits)
	assert.Equal(t, "C", Clubs.Letter())
	assert.Equal(t, "♦", Diamonds.Symbol())
	assert.Equal(t, "Spades", Spades.String())
	assert.Equal(t, "?", Suit(9).Letter())
}

func TestCard_Compare(t *testing.T) {
	aceSpades := NewCard(Ace, Spades)
	aceHearts := NewCard(Ace, Hearts)
	twoHearts := NewCard(Two, Hearts)

	assert.Equal(t, 0, aceSpades.Compare(NewCard(Ace, Spades)))
	assert.Equal(t, -1, aceSpades.Compare(aceHearts), "same rank orders by suit")
	assert.Equal(t, 1, aceSpades.Compare(twoHearts), "rank orders before suit")
	assert.True(t, twoHearts.Less(aceSpades))
	assert.False(t, aceHearts.Less(aceSpades))

	hand := Stack{aceHearts, twoHearts, aceSpades, NewCard(Ten, Clubs)}
	sort.Slice(hand, func(i, j int) bool { return hand[i].Less(hand[j]) })
	assert.Equal(t, "2♥ T♣ A♠ A♥", hand.String())
}

func TestCard_Equality(t *testing.T) {
	ten := NewCard(Ten, Clubs)
	king := NewCard(King, Clubs)

	assert.True(t, ten.Equals(NewCard(Ten, Clubs)))
	assert.False(t, ten.Equals(NewCard(Ten, Hearts)))
	assert.True(t, ten.SameValue(king))
	assert.False(t, ten.SameRank(king))
	assert.True(t, ten.SameRank(NewCard(Ten, Spades)))
}

func TestCard_String(t *testing.T) {
	card := NewCard(Ten, Spades)
	assert.Equal(t, "T♠", card.String())
	assert.Equal(t, "TS", card.Code())
	assert.Equal(t, 10, card.Value())
	assert.True(t, NewCard(Ace, Clubs).IsAce())
}

func TestCard_JSON(t *testing.T) {
	data, err := json.Marshal(struct{ Card Card }{NewCard(Queen, Hearts)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Card":"QH"}`, string(data))

	var decoded struct{ Card Card }
	require.NoError(t, json.Unmarshal([]byte(`{"Card":"7♣"}`), &decoded))
	assert.Equal(t, NewCard(Seven, Clubs), decoded.Card)

	_, err = json.Marshal(Card{Rank: Rank(40)})
	assert.Error(t, err)
}
