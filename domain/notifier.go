package domain

import "github.com/lazharichir/blackjack/events"

// notifier keeps the handlers subscribed to an entity's change events.
type notifier struct {
	eventHandlers []events.EventHandler
}

// RegisterEventHandler registers a callback function that will be called when events occur
func (n *notifier) RegisterEventHandler(handler events.EventHandler) {
	if handler == nil {
		return
	}
	n.eventHandlers = append(n.eventHandlers, handler)
}

// emitEvent notifies all registered handlers of a new event
func (n *notifier) emitEvent(event events.Event) {
	for _, handler := range n.eventHandlers {
		handler(event)
	}
}
