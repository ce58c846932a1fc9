package events

import (
	"encoding/json"
	"log/slog"

	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/game"
	"github.com/lazharichir/blackjack/server/connection"
)

const (
	EnvelopeView  = "view"
	EnvelopeError = "error"
)

// EventEnvelope wraps an event with its name for client consumption
type EventEnvelope struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload"`
}

// ErrorPayload is the payload of an error envelope
type ErrorPayload struct {
	Message string `json:"message"`
}

// hiddenCardDealt is sent instead of CardDealt for the hole card
type hiddenCardDealt struct {
	GameID   string
	Seat     events.Seat
	Position int
	FaceDown bool
}

// Dispatcher routes round events and views to clients
type Dispatcher struct {
	logger *slog.Logger
}

// NewDispatcher creates a new event dispatcher
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{logger: logger}
}

// HandlerFor returns the event handler forwarding a client's round events.
// While the dealer's hole card is down its value is not sent, and neither are
// the dealer's score, flags, hand state or deactivation.
func (d *Dispatcher) HandlerFor(client *connection.Client) events.EventHandler {
	holeHidden := false

	return func(event events.Event) {
		var payload any = event

		switch e := event.(type) {
		case events.RoundStarted:
			holeHidden = true
		case events.GameOver:
			holeHidden = false
		case events.CardDealt:
			if e.FaceDown && holeHidden {
				payload = hiddenCardDealt{GameID: e.GameID, Seat: e.Seat, Position: e.Position, FaceDown: true}
			}
		case events.ScoreChanged:
			if e.Seat == events.SeatDealer && holeHidden {
				return
			}
		case events.HandFlagChanged:
			if e.Seat == events.SeatDealer && holeHidden {
				return
			}
		case events.HandStateChanged:
			if e.Seat == events.SeatDealer && holeHidden {
				return
			}
		case events.ParticipantDeactivated:
			if e.Seat == events.SeatDealer && holeHidden {
				return
			}
		}

		d.send(client, event.EventName(), payload)
	}
}

// SendView sends a snapshot of the client's current round
func (d *Dispatcher) SendView(client *connection.Client, view game.View) {
	d.send(client, EnvelopeView, view)
}

// SendError reports a failed command to the client
func (d *Dispatcher) SendError(client *connection.Client, err error) {
	d.send(client, EnvelopeError, ErrorPayload{Message: err.Error()})
}

func (d *Dispatcher) send(client *connection.Client, name string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		d.logger.Error("failed to marshal payload", "name", name, "error", err)
		return
	}

	envelope, err := json.Marshal(EventEnvelope{Name: name, Payload: data})
	if err != nil {
		d.logger.Error("failed to marshal envelope", "name", name, "error", err)
		return
	}

	d.logger.Debug("dispatching", "client", client.ID, "name", name)
	client.Send <- envelope
}
