package domain

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
)

// Game is one round of blackjack between a player and the dealer. It owns
// the shoe, deals the initial cards, and decides the outcome once the
// player has stopped acting.
type Game struct {
	notifier

	id     string
	rules  Rules
	shoe   *cards.Shoe
	player *Player
	dealer *Dealer

	offerInsurance bool
	offerSurrender bool
	gameIsOver     bool

	dealing   bool
	finishing bool
	err       error
}

type gameOptions struct {
	id       string
	rng      *rand.Rand
	shoe     *cards.Shoe
	handlers []events.EventHandler
}

// Option configures a new game
type Option func(*gameOptions)

// WithID sets the game ID instead of generating one
func WithID(id string) Option {
	return func(o *gameOptions) { o.id = id }
}

// WithSeed shuffles the shoe with a source seeded with seed
func WithSeed(seed int64) Option {
	return func(o *gameOptions) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand shuffles the shoe with rng
func WithRand(rng *rand.Rand) Option {
	return func(o *gameOptions) { o.rng = rng }
}

// WithShoe deals from shoe instead of building one from the rules
func WithShoe(shoe *cards.Shoe) Option {
	return func(o *gameOptions) { o.shoe = shoe }
}

// WithEventHandler subscribes handler before the first card is dealt
func WithEventHandler(handler events.EventHandler) Option {
	return func(o *gameOptions) { o.handlers = append(o.handlers, handler) }
}

// NewGame creates a round and deals the initial cards player, dealer,
// player, dealer. If the player cannot act after the deal the round is
// finished straight away.
func NewGame(rules Rules, opts ...Option) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	var o gameOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}
	if o.shoe == nil {
		o.shoe = cards.NewShoe(rules.NumberOfDecks, o.rng)
	}

	g := &Game{
		id:     o.id,
		rules:  rules,
		shoe:   o.shoe,
		player: newPlayer(rules, o.id, o.shoe),
		dealer: newDealer(rules, o.id, o.shoe),
	}
	for _, h := range o.handlers {
		g.RegisterEventHandler(h)
	}

	g.player.Hand().RegisterEventHandler(g.emitEvent)
	g.dealer.Hand().RegisterEventHandler(g.emitEvent)
	g.player.RegisterEventHandler(g.handleParticipantEvent)
	g.dealer.RegisterEventHandler(g.handleParticipantEvent)

	g.emitEvent(events.RoundStarted{GameID: g.id, Decks: g.shoe.Decks(), Bet: rules.MinBet})

	if err := g.playGame(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) playGame() error {
	if err := g.dealInitialCards(); err != nil {
		return err
	}
	g.calculateOfferInsurance()
	g.calculateOfferSurrender()

	if !g.player.IsActive() {
		return g.Finish()
	}
	return nil
}

func (g *Game) dealInitialCards() error {
	g.dealing = true
	defer func() { g.dealing = false }()

	for i := 0; i < 2; i++ {
		if err := g.dealTo(&g.player.participant, false); err != nil {
			return err
		}
		// the dealer's first card is the hole card
		if err := g.dealTo(&g.dealer.participant, i == 0); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) dealTo(p *participant, faceDown bool) error {
	card, err := g.shoe.Deal()
	if err != nil {
		return fmt.Errorf("deal initial cards to %s: %w", p.seat, err)
	}
	p.receive(card, faceDown)
	return nil
}

func (g *Game) calculateOfferInsurance() {
	upCard, ok := g.dealer.UpCard()
	g.setOfferInsurance(g.rules.OfferInsurance && ok && upCard.IsAce() && g.dealer.Hand().HasTwoCards())
}

func (g *Game) calculateOfferSurrender() {
	hand := g.player.Hand()
	g.setOfferSurrender(g.rules.OfferSurrender && hand.HasTwoCards() && hand.Score() < g.rules.MaxScore)
}

func (g *Game) setOfferInsurance(offered bool) {
	if g.offerInsurance == offered {
		return
	}
	g.offerInsurance = offered
	g.emitEvent(events.OfferInsuranceChanged{GameID: g.id, Offered: offered})
}

func (g *Game) setOfferSurrender(offered bool) {
	if g.offerSurrender == offered {
		return
	}
	g.offerSurrender = offered
	g.emitEvent(events.OfferSurrenderChanged{GameID: g.id, Offered: offered})
}

// handleParticipantEvent forwards participant events and finishes the
// round once the player stops acting.
func (g *Game) handleParticipantEvent(event events.Event) {
	g.emitEvent(event)

	ev, ok := event.(events.ParticipantDeactivated)
	if !ok || ev.Seat != events.SeatPlayer || g.dealing {
		return
	}
	// recorded in g.err, returned by Err
	_ = g.Finish()
}

// Finish plays the dealer's turn, determines the winner, settles the bet and
// ends the round. The dealer does not draw against a busted or surrendered
// hand. Calling Finish on a finished round does nothing.
func (g *Game) Finish() error {
	if g.gameIsOver || g.finishing {
		return nil
	}
	if g.player.IsActive() {
		return ErrPlayerStillActive
	}
	g.finishing = true
	defer func() { g.finishing = false }()

	if g.player.Hand().IsBust() || g.player.Surrendered() {
		g.dealer.Stand()
	} else if err := g.dealer.TakeTurn(); err != nil {
		g.err = fmt.Errorf("finish round %s: %w", g.id, err)
		return g.err
	}

	g.DetermineWinner()
	g.settle()

	g.gameIsOver = true
	g.emitEvent(events.GameOver{
		GameID:       g.id,
		PlayerResult: string(g.player.Hand().Result()),
		DealerResult: string(g.dealer.Hand().Result()),
		PlayerScore:  g.player.Hand().Score(),
		DealerScore:  g.dealer.Hand().Score(),
	})
	return nil
}

// DetermineWinner compares the final scores and records the result of both
// hands. A surrendered hand loses. When both hands are over the max score
// the player busts and the dealer wins, since the player busts first.
func (g *Game) DetermineWinner() {
	playerHand, dealerHand := g.player.Hand(), g.dealer.Hand()
	playerScore, dealerScore := playerHand.Score(), dealerHand.Score()
	maxScore := g.rules.MaxScore

	switch {
	case g.player.Surrendered():
		playerHand.setResult(ResultLose)
		dealerHand.setResult(ResultWin)
	case playerScore > maxScore:
		playerHand.setResult(ResultBust)
		dealerHand.setResult(ResultWin)
	case dealerScore > maxScore:
		playerHand.setResult(ResultWin)
		dealerHand.setResult(ResultBust)
	case playerScore > dealerScore:
		playerHand.setResult(ResultWin)
		dealerHand.setResult(ResultLose)
	case dealerScore > playerScore:
		playerHand.setResult(ResultLose)
		dealerHand.setResult(ResultWin)
	default:
		playerHand.setResult(ResultPush)
		dealerHand.setResult(ResultPush)
	}
}

// Bet returns the amount at stake: the minimum bet, twice that after a
// double down.
func (g *Game) Bet() int {
	if g.player.Doubled() {
		return 2 * g.rules.MinBet
	}
	return g.rules.MinBet
}

func (g *Game) settle() {
	bet := g.Bet()
	hand := g.player.Hand()

	payout := 0
	switch hand.Result() {
	case ResultWin:
		payout = bet
		if hand.HasBlackjack() {
			payout = bet * 3 / 2
		}
	case ResultLose, ResultBust:
		payout = -bet
		if g.player.Surrendered() {
			payout = -bet / 2
		}
	}

	if payout > 0 {
		_ = g.player.AddCash(payout)
	} else if payout < 0 {
		_ = g.player.RemoveCash(-payout)
	}

	g.emitEvent(events.RoundSettled{
		GameID:       g.id,
		PlayerResult: string(hand.Result()),
		DealerResult: string(g.dealer.Hand().Result()),
		Bet:          bet,
		Payout:       payout,
	})
}

// NewRound is not supported: a new round is a new Game.
func (g *Game) NewRound() error {
	return ErrNotSupported
}

func (g *Game) ID() string           { return g.id }
func (g *Game) Rules() Rules         { return g.rules }
func (g *Game) Shoe() *cards.Shoe    { return g.shoe }
func (g *Game) Player() *Player      { return g.player }
func (g *Game) Dealer() *Dealer      { return g.dealer }
func (g *Game) OfferInsurance() bool { return g.offerInsurance }
func (g *Game) OfferSurrender() bool { return g.offerSurrender }
func (g *Game) IsOver() bool         { return g.gameIsOver }

// Err returns the error that stopped the round from finishing, if any
func (g *Game) Err() error { return g.err }
