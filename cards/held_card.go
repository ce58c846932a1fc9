package cards

import "encoding/json"

type CardVisibility string

const (
	FaceDown CardVisibility = "down" // Nobody can see
	FaceUp   CardVisibility = "up"   // Everyone can see
)

// HeldCard represents a card that's in play with visibility information
type HeldCard struct {
	Card
	Visibility CardVisibility
}

// NewHeldCard creates a new held card with the specified visibility
func NewHeldCard(card Card, visibility CardVisibility) HeldCard {
	return HeldCard{
		Card:       card,
		Visibility: visibility,
	}
}

// IsFaceDown checks if the card is hidden
func (c HeldCard) IsFaceDown() bool {
	return c.Visibility == FaceDown
}

// Hide sets the card as face down
func (c *HeldCard) Hide() {
	c.Visibility = FaceDown
}

// Reveal sets the card as face up
func (c *HeldCard) Reveal() {
	c.Visibility = FaceUp
}

// Label returns the card shorthand, or "??" when it is face down
func (c HeldCard) Label() string {
	if c.IsFaceDown() {
		return "??"
	}
	return c.String()
}

type heldCardJSON struct {
	Card       string         `json:"card"`
	Visibility CardVisibility `json:"visibility"`
}

// MarshalJSON encodes the card code and visibility. A face-down card is
// encoded without its rank and suit.
func (c HeldCard) MarshalJSON() ([]byte, error) {
	out := heldCardJSON{Card: "??", Visibility: c.Visibility}
	if !c.IsFaceDown() {
		out.Card = c.Code()
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes what MarshalJSON encodes. A face-down card decodes
// to the zero Card.
func (c *HeldCard) UnmarshalJSON(data []byte) error {
	var in heldCardJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*c = HeldCard{Visibility: in.Visibility}
	if in.Visibility == FaceDown {
		return nil
	}
	card, err := CardFromString(in.Card)
	if err != nil {
		return err
	}
	c.Card = card
	return nil
}

type HeldStack []HeldCard

// NewHeldStack wraps every card of the stack with the given visibility
func NewHeldStack(stack Stack, visibility CardVisibility) HeldStack {
	held := make(HeldStack, len(stack))
	for i, c := range stack {
		held[i] = NewHeldCard(c, visibility)
	}
	return held
}

// Labels returns the label of every card
func (s HeldStack) Labels() []string {
	labels := make([]string, len(s))
	for i, c := range s {
		labels[i] = c.Label()
	}
	return labels
}
