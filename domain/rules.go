package domain

import (
	"errors"

	"github.com/lazharichir/blackjack/cards"
)

// Rules defines the rules a round is played with. A Rules value is copied
// into every hand and game at construction, so changing it only affects
// rounds created afterwards.
type Rules struct {
	NumberOfDecks     int
	MaxScore          int
	SplitsAllowed     bool
	SplitOnValue      bool // false compares ranks, true compares point values
	DoubleDownAllowed bool
	OfferInsurance    bool
	OfferSurrender    bool
	DealerHitsSoft17  bool
	MinBet            int
	StartingCash      int
}

// DefaultRules returns the house rules of the table
func DefaultRules() Rules {
	return Rules{
		NumberOfDecks:     cards.DefaultDecks,
		MaxScore:          21,
		SplitsAllowed:     true,
		SplitOnValue:      false,
		DoubleDownAllowed: true,
		OfferInsurance:    true,
		OfferSurrender:    false,
		DealerHitsSoft17:  true,
		MinBet:            25,
		StartingCash:      1000,
	}
}

// Validate checks the rules can be played with. The number of decks is not
// checked here: the shoe clamps it.
func (r Rules) Validate() error {
	var errs []error
	if r.MaxScore <= 0 {
		errs = append(errs, errors.New("max score must be positive"))
	}
	if r.MinBet < 0 {
		errs = append(errs, errors.New("min bet must not be negative"))
	}
	if r.StartingCash < 0 {
		errs = append(errs, errors.New("starting cash must not be negative"))
	}
	return errors.Join(errs...)
}
