package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/domain"
	"github.com/lazharichir/blackjack/events"
	"github.com/sanity-io/litter"
)

var (
	ErrRoundInProgress = errors.New("cannot deal a new round while another is in progress")
	ErrNoRound         = errors.New("no round has been dealt")
)

// Engine runs consecutive rounds for one player. Every event a round emits
// is appended to the event store before subscribers see it.
type Engine struct {
	eventStore events.EventStore
	rules      domain.Rules
	logger     *slog.Logger
	rng        *rand.Rand
	newShoe    func() *cards.Shoe

	game          *domain.Game
	appendErr     error
	eventHandlers []events.EventHandler
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithLogger sets the engine logger, slog.Default() otherwise
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// WithSeed makes the shuffles of every round reproducible
func WithSeed(seed int64) EngineOption {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithShoes deals each round from the shoe returned by newShoe
func WithShoes(newShoe func() *cards.Shoe) EngineOption {
	return func(e *Engine) { e.newShoe = newShoe }
}

// NewEngine creates an engine that plays rounds with the given rules and
// records their events in eventStore.
func NewEngine(eventStore events.EventStore, rules domain.Rules, opts ...EngineOption) (*Engine, error) {
	if eventStore == nil {
		return nil, errors.New("event store is required")
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	engine := &Engine{
		eventStore: eventStore,
		rules:      rules,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(engine)
	}
	if engine.rng == nil {
		engine.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return engine, nil
}

// Execute runs a command against the current round
func (e *Engine) Execute(cmd Command) error {
	e.logger.Debug("executing command", "command", cmd.CommandName())

	if _, ok := cmd.(Deal); ok {
		return e.Deal()
	}
	if e.game == nil {
		return ErrNoRound
	}

	e.appendErr = nil
	player := e.game.Player()
	prevErr := e.game.Err()

	var err error
	switch cmd.(type) {
	case Hit:
		err = player.Hit()
	case Stand:
		player.Stand()
	case DoubleDown:
		err = player.DoubleDown()
	case Surrender:
		err = player.Surrender()
	case BuyInsurance:
		err = player.BuyInsurance()
	case Split:
		err = player.Split()
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.CommandName())
	}

	if err != nil {
		e.logger.Info("command rejected", "command", cmd.CommandName(), "game", e.game.ID(), "error", err)
		return err
	}

	// a finish failure is reported by the command that caused it only
	var finishErr error
	if gameErr := e.game.Err(); gameErr != prevErr {
		finishErr = gameErr
	}
	return errors.Join(finishErr, e.appendErr)
}

// Deal starts a new round. The previous round, if any, must be over or
// have failed to finish.
func (e *Engine) Deal() error {
	if e.game != nil && !e.game.IsOver() && e.game.Err() == nil {
		return ErrRoundInProgress
	}

	e.appendErr = nil
	opts := []domain.Option{domain.WithEventHandler(e.record)}
	if e.newShoe != nil {
		opts = append(opts, domain.WithShoe(e.newShoe()))
	} else {
		opts = append(opts, domain.WithRand(e.rng))
	}

	game, err := domain.NewGame(e.rules, opts...)
	if err != nil {
		return fmt.Errorf("failed to deal round: %w", err)
	}
	e.game = game

	upCard, _ := game.Dealer().UpCard()
	e.logger.Info("round dealt",
		"game", game.ID(),
		"player", game.Player().Hand().String(),
		"dealer_up", upCard.String(),
	)
	return errors.Join(game.Err(), e.appendErr)
}

// record appends the event to the store and forwards it to subscribers
func (e *Engine) record(event events.Event) {
	if err := e.eventStore.Append(event); err != nil {
		e.logger.Error("failed to append event", "event", event.EventName(), "error", err)
		if e.appendErr == nil {
			e.appendErr = fmt.Errorf("failed to append %s event: %w", event.EventName(), err)
		}
	}
	if e.logger.Enabled(context.Background(), slog.LevelDebug) {
		e.logger.Debug("event", "name", event.EventName(), "event", litter.Sdump(event))
	}
	if over, ok := event.(events.GameOver); ok {
		e.logger.Info("round over",
			"game", over.GameID,
			"player", over.PlayerResult,
			"dealer", over.DealerResult,
		)
	}
	for _, handler := range e.eventHandlers {
		handler(event)
	}
}

// RegisterEventHandler subscribes handler to the events of every round
func (e *Engine) RegisterEventHandler(handler events.EventHandler) {
	if handler != nil {
		e.eventHandlers = append(e.eventHandlers, handler)
	}
}

// Game returns the current round, nil before the first deal
func (e *Engine) Game() *domain.Game { return e.game }

// Rules returns the rules every round is played with
func (e *Engine) Rules() domain.Rules { return e.rules }

// History loads every event recorded for a round
func (e *Engine) History(gameID string) ([]events.Event, error) {
	history, err := e.eventStore.LoadEvents(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	return history, nil
}

// Replay rebuilds the record of a round from its stored events
func (e *Engine) Replay(gameID string) (*RoundRecord, error) {
	history, err := e.History(gameID)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("no events recorded for round %s", gameID)
	}
	return Rehydrate(history), nil
}

// View returns what the player is allowed to see of the current round
func (e *Engine) View() (View, error) {
	if e.game == nil {
		return View{}, ErrNoRound
	}
	return NewView(e.game), nil
}
