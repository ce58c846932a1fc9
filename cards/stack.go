package cards

import (
	"fmt"
	"strings"
)

// Stack represents multiple cards
type Stack []Card

// NewStack creates a new stack with the given cards
func NewStack(cards ...Card) Stack {
	return Stack(cards)
}

// ParseStack parses a space-separated list of card shorthands, e.g. "AS KD 7h"
func ParseStack(s string) (Stack, error) {
	var stack Stack
	for _, field := range strings.Fields(s) {
		card, err := CardFromString(field)
		if err != nil {
			return nil, fmt.Errorf("parse stack %q: %w", s, err)
		}
		stack.AddCard(card)
	}
	return stack, nil
}

// AddCard adds a card to the end of the stack
func (s *Stack) AddCard(card Card) {
	*s = append(*s, card)
}

// AddCards adds cards to the end of the stack
func (s *Stack) AddCards(cards ...Card) {
	*s = append(*s, cards...)
}

// DealCard removes and returns the first card of the stack. The boolean is
// false when the stack is empty.
func (s *Stack) DealCard() (Card, bool) {
	if len(*s) == 0 {
		return Card{}, false
	}
	card := (*s)[0]
	*s = (*s)[1:]
	return card, true
}

// Len returns the number of cards in the stack
func (s Stack) Len() int {
	return len(s)
}

// Clone returns an independent copy of the stack
func (s Stack) Clone() Stack {
	if s == nil {
		return nil
	}
	out := make(Stack, len(s))
	copy(out, s)
	return out
}

func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
