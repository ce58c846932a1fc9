package cards

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeldCard_Visibility(t *testing.T) {
	held := NewHeldCard(NewCard(Ace, Spades), FaceUp)
	assert.False(t, held.IsFaceDown())
	assert.Equal(t, "A♠", held.Label())

	held.Hide()
	assert.True(t, held.IsFaceDown())
	assert.Equal(t, "??", held.Label())

	held.Reveal()
	assert.Equal(t, "A♠", held.Label())
}

func TestHeldCard_MarshalJSON(t *testing.T) {
	stack, err := ParseStack("AS TD")
	require.NoError(t, err)
	held := NewHeldStack(stack, FaceUp)
	held[0].Hide()

	data, err := json.Marshal(held)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"card":"??","visibility":"down"},{"card":"TD","visibility":"up"}]`, string(data))
	assert.Equal(t, []string{"??", "T♦"}, held.Labels())
}

func TestHeldCard_UnmarshalJSON(t *testing.T) {
	var held HeldStack
	err := json.Unmarshal([]byte(`[{"card":"??","visibility":"down"},{"card":"TD","visibility":"up"}]`), &held)
	require.NoError(t, err)

	require.Len(t, held, 2)
	assert.True(t, held[0].IsFaceDown())
	assert.Equal(t, NewHeldCard(NewCard(Ten, Diamonds), FaceUp), held[1])

	err = json.Unmarshal([]byte(`[{"card":"ZZ","visibility":"up"}]`), &held)
	assert.Error(t, err)
}
