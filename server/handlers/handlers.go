package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/lazharichir/blackjack/game"
	"github.com/lazharichir/blackjack/server/connection"
	"github.com/lazharichir/blackjack/server/events"
)

// CommandRouter routes incoming commands to the client's engine
type CommandRouter struct {
	dispatcher *events.Dispatcher
	logger     *slog.Logger
}

// NewCommandRouter creates a new command router
func NewCommandRouter(dispatcher *events.Dispatcher, logger *slog.Logger) *CommandRouter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommandRouter{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// HandleCommand processes an incoming command message. A rejected command
// is reported to the client as an error envelope; the current view is sent
// after every command that reached the engine.
func (r *CommandRouter) HandleCommand(client *connection.Client, message []byte) error {
	var baseCmd struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(message, &baseCmd); err != nil {
		err = fmt.Errorf("invalid command message: %w", err)
		r.dispatcher.SendError(client, err)
		return err
	}

	cmd, err := game.CommandFromName(baseCmd.Name)
	if err != nil {
		r.dispatcher.SendError(client, err)
		return err
	}

	execErr := client.Engine.Execute(cmd)
	if execErr != nil {
		r.dispatcher.SendError(client, execErr)
	}

	if view, err := client.Engine.View(); err == nil {
		r.dispatcher.SendView(client, view)
	}
	return execErr
}
