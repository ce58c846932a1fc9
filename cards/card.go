package cards

import (
	"fmt"
	"strings"
)

// CardFromString creates a card from a string representation
// e.g., "10♠" or "Ts" or "TS" -> Card{Rank: Ten, Suit: Spades}
// e.g., "A♥" or "ah" -> Card{Rank: Ace, Suit: Hearts}
func CardFromString(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %q", s)
	}

	var suit Suit
	var rankPart string
	switch {
	case strings.HasSuffix(s, "♣"):
		suit, rankPart = Clubs, strings.TrimSuffix(s, "♣")
	case strings.HasSuffix(s, "♦"):
		suit, rankPart = Diamonds, strings.TrimSuffix(s, "♦")
	case strings.HasSuffix(s, "♠"):
		suit, rankPart = Spades, strings.TrimSuffix(s, "♠")
	case strings.HasSuffix(s, "♥"):
		suit, rankPart = Hearts, strings.TrimSuffix(s, "♥")
	default:
		rankPart = s[:len(s)-1]
		switch s[len(s)-1:] {
		case "c", "C":
			suit = Clubs
		case "d", "D":
			suit = Diamonds
		case "s", "S":
			suit = Spades
		case "h", "H":
			suit = Hearts
		default:
			return Card{}, fmt.Errorf("invalid card suit: %q", s[len(s)-1:])
		}
	}

	var rank Rank
	switch strings.ToUpper(rankPart) {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "10", "T":
		rank = Ten
	case "9":
		rank = Nine
	case "8":
		rank = Eight
	case "7":
		rank = Seven
	case "6":
		rank = Six
	case "5":
		rank = Five
	case "4":
		rank = Four
	case "3":
		rank = Three
	case "2":
		rank = Two
	default:
		return Card{}, fmt.Errorf("invalid card rank: %q", rankPart)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// Suit represents a card suit. The declaration order is the ordering used
// when comparing cards.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Spades
	Hearts
)

// Suits lists every suit in declaration order.
var Suits = []Suit{Clubs, Diamonds, Spades, Hearts}

var suitInfo = [...]struct {
	name   string
	letter string
	symbol string
}{
	Clubs:    {"Clubs", "C", "♣"},
	Diamonds: {"Diamonds", "D", "♦"},
	Spades:   {"Spades", "S", "♠"},
	Hearts:   {"Hearts", "H", "♥"},
}

func (s Suit) valid() bool { return s >= Clubs && s <= Hearts }

// Letter returns the single-letter code of the suit.
func (s Suit) Letter() string {
	if !s.valid() {
		return "?"
	}
	return suitInfo[s].letter
}

// Symbol returns the display symbol of the suit.
func (s Suit) Symbol() string {
	if !s.valid() {
		return "?"
	}
	return suitInfo[s].symbol
}

func (s Suit) String() string {
	if !s.valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitInfo[s].name
}

// Rank represents a card rank. The declaration order is the ordering used
// when comparing cards.
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank in declaration order.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankInfo = [...]struct {
	name   string
	letter string
	value  int
}{
	Two:   {"Two", "2", 2},
	Three: {"Three", "3", 3},
	Four:  {"Four", "4", 4},
	Five:  {"Five", "5", 5},
	Six:   {"Six", "6", 6},
	Seven: {"Seven", "7", 7},
	Eight: {"Eight", "8", 8},
	Nine:  {"Nine", "9", 9},
	Ten:   {"Ten", "T", 10},
	Jack:  {"Jack", "J", 10},
	Queen: {"Queen", "Q", 10},
	King:  {"King", "K", 10},
	Ace:   {"Ace", "A", 11},
}

func (r Rank) valid() bool { return r >= Two && r <= Ace }

// Value returns the blackjack point value of the rank. An Ace counts 11 here;
// hands reduce it to 1 when needed.
func (r Rank) Value() int {
	if !r.valid() {
		return 0
	}
	return rankInfo[r].value
}

// Letter returns the single-character label of the rank.
func (r Rank) Letter() string {
	if !r.valid() {
		return "?"
	}
	return rankInfo[r].letter
}

func (r Rank) String() string {
	if !r.valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankInfo[r].name
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card of the given rank and suit
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the string representation of a card, e.g. "A♠"
func (c Card) String() string {
	return c.Rank.Letter() + c.Suit.Symbol()
}

// Code returns the two-letter code of a card, e.g. "AS"
func (c Card) Code() string {
	return c.Rank.Letter() + c.Suit.Letter()
}

// Value returns the point value of the card
func (c Card) Value() int {
	return c.Rank.Value()
}

// IsAce checks if the card is an ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// Equals checks if two cards are equal
func (c Card) Equals(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

// SameRank checks if two cards share a rank
func (c Card) SameRank(other Card) bool {
	return c.Rank == other.Rank
}

// SameValue checks if two cards are worth the same number of points
func (c Card) SameValue(other Card) bool {
	return c.Value() == other.Value()
}

// Compare orders cards by rank, then by suit. It returns -1, 0 or +1.
func (c Card) Compare(other Card) int {
	switch {
	case c.Rank < other.Rank:
		return -1
	case c.Rank > other.Rank:
		return 1
	case c.Suit < other.Suit:
		return -1
	case c.Suit > other.Suit:
		return 1
	}
	return 0
}

// MarshalText encodes the card as its two-letter code
func (c Card) MarshalText() ([]byte, error) {
	if !c.Rank.valid() || !c.Suit.valid() {
		return nil, fmt.Errorf("invalid card: rank %d, suit %d", int(c.Rank), int(c.Suit))
	}
	return []byte(c.Code()), nil
}

// UnmarshalText decodes any shorthand accepted by CardFromString
func (c *Card) UnmarshalText(text []byte) error {
	card, err := CardFromString(string(text))
	if err != nil {
		return err
	}
	*c = card
	return nil
}

// Less reports whether c orders before other
func (c Card) Less(other Card) bool {
	return c.Compare(other) < 0
}
