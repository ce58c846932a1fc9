package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/domain"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/game"
	"github.com/lazharichir/blackjack/server/connection"
	serverevents "github.com/lazharichir/blackjack/server/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestRouter(t *testing.T, shorthand string) (*CommandRouter, *connection.Client) {
	t.Helper()
	stack, err := cards.ParseStack(shorthand)
	require.NoError(t, err)

	engine, err := game.NewEngine(events.NewInMemoryEventStore(), domain.DefaultRules(),
		game.WithLogger(quietLogger),
		game.WithShoes(func() *cards.Shoe { return cards.ShoeFromStack(stack) }),
	)
	require.NoError(t, err)

	client := &connection.Client{ID: "client-1", Send: make(chan []byte, 256), Engine: engine}
	return NewCommandRouter(serverevents.NewDispatcher(quietLogger), quietLogger), client
}

func names(t *testing.T, client *connection.Client) []string {
	t.Helper()
	var out []string
	for {
		select {
		case data := <-client.Send:
			var env serverevents.EventEnvelope
			require.NoError(t, json.Unmarshal(data, &env))
			out = append(out, env.Name)
		default:
			return out
		}
	}
}

func TestHandleCommand_Flow(t *testing.T) {
	router, client := newTestRouter(t, "TS TH 9D 7C 5S")

	require.NoError(t, router.HandleCommand(client, []byte(`{"name":"deal"}`)))
	assert.Equal(t, []string{serverevents.EnvelopeView}, names(t, client), "no event handler is registered")

	require.NoError(t, router.HandleCommand(client, []byte(`{"name":"hit"}`)))
	assert.True(t, client.Engine.Game().IsOver())
	assert.Equal(t, []string{serverevents.EnvelopeView}, names(t, client))
}

func TestHandleCommand_Errors(t *testing.T) {
	router, client := newTestRouter(t, "TS TH 9D 7C 5S")

	err := router.HandleCommand(client, []byte(`not json`))
	assert.Error(t, err)
	assert.Equal(t, []string{serverevents.EnvelopeError}, names(t, client))

	err = router.HandleCommand(client, []byte(`{"name":"fold"}`))
	assert.ErrorIs(t, err, game.ErrUnknownCommand)
	assert.Equal(t, []string{serverevents.EnvelopeError}, names(t, client))

	err = router.HandleCommand(client, []byte(`{"name":"stand"}`))
	assert.ErrorIs(t, err, game.ErrNoRound)
	assert.Equal(t, []string{serverevents.EnvelopeError}, names(t, client), "no view before the first deal")

	require.NoError(t, router.HandleCommand(client, []byte(`{"name":"deal"}`)))
	names(t, client)

	err = router.HandleCommand(client, []byte(`{"name":"split"}`))
	assert.ErrorIs(t, err, domain.ErrNotSupported)
	assert.Equal(t, []string{serverevents.EnvelopeError, serverevents.EnvelopeView}, names(t, client))
}
