package cards

// DeckSize is the number of cards in a standard deck
const DeckSize = 52

var canonicalDeck = buildDeck()

func buildDeck() Stack {
	deck := make(Stack, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			deck.AddCard(Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}

// NewDeck52 returns a standard deck of 52 cards, ordered by suit then rank.
// Each call returns an independent copy.
func NewDeck52() Stack {
	return canonicalDeck.Clone()
}
