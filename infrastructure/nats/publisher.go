package nats

import (
	"encoding/json"

	"taskboard/pkg/logger"
)

// EventEnvelope is the wire format for relayed push events.
type EventEnvelope struct {
	Room  string          `json:"room"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// EventPublisher relays push events through NATS so every API instance's hub
// can fan them out to its local connections. It implements ports.Notifier.
type EventPublisher struct {
	client *Client
}

func NewEventPublisher(client *Client) *EventPublisher {
	return &EventPublisher{client: client}
}

func (p *EventPublisher) EmitToRoom(room, event string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		logger.Error("Failed to marshal event payload", "event", event, "error", err)
		return
	}

	envelope, err := json.Marshal(EventEnvelope{
		Room:  room,
		Event: event,
		Data:  payload,
	})
	if err != nil {
		logger.Error("Failed to marshal event envelope", "event", event, "error", err)
		return
	}

	// Failed publishes are dropped; the push channel has no error path back
	// to the caller.
	if err := p.client.conn.Publish(SubjectTaskEvents, envelope); err != nil {
		logger.Warn("Failed to publish event", "event", event, "room", room, "error", err)
	}
}
