package cards

import (
	"errors"
	"math/rand"
	"time"
)

const (
	MinDecks     = 1
	DefaultDecks = 3
	MaxDecks     = 8
)

// ErrShoeEmpty is returned when a card is requested from an empty shoe
var ErrShoeEmpty = errors.New("the shoe is empty, a card cannot be dealt")

// Shoe represents multiple decks of cards dealt first in, first out
type Shoe struct {
	cards Stack
	decks int
}

// ClampDecks brings a requested deck count into [MinDecks, MaxDecks]
func ClampDecks(numDecks int) int {
	if numDecks < MinDecks {
		return MinDecks
	}
	if numDecks > MaxDecks {
		return MaxDecks
	}
	return numDecks
}

// NewShoe creates a shuffled shoe with the given number of decks. Counts
// outside [MinDecks, MaxDecks] are clamped. A nil rng uses a time-seeded source.
func NewShoe(numDecks int, rng *rand.Rand) *Shoe {
	numDecks = ClampDecks(numDecks)

	cards := make(Stack, 0, numDecks*DeckSize)
	for i := 0; i < numDecks; i++ {
		cards.AddCards(canonicalDeck...)
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return &Shoe{cards: cards, decks: numDecks}
}

// ShoeFromStack creates a shoe that deals the given cards in order, without
// shuffling.
func ShoeFromStack(stack Stack) *Shoe {
	return &Shoe{cards: stack.Clone()}
}

// Deal removes and returns the card at the front of the shoe
func (s *Shoe) Deal() (Card, error) {
	card, ok := s.cards.DealCard()
	if !ok {
		return Card{}, ErrShoeEmpty
	}
	return card, nil
}

// Remaining returns the number of cards left in the shoe
func (s *Shoe) Remaining() int {
	return s.cards.Len()
}

// Decks returns the number of decks the shoe was built from, or 0 for a
// shoe built from an explicit stack
func (s *Shoe) Decks() int {
	return s.decks
}

// Cards returns a copy of the cards left in the shoe, front first
func (s *Shoe) Cards() Stack {
	return s.cards.Clone()
}
