package nats

import (
	"encoding/json"

	"github.com/nats-io/nats.go"

	"taskboard/domain/ports"
	"taskboard/pkg/logger"
)

// EventSubscriber feeds relayed push events into the local hub.
type EventSubscriber struct {
	client *Client
	sub    *nats.Subscription
}

func NewEventSubscriber(client *Client) *EventSubscriber {
	return &EventSubscriber{client: client}
}

// Start subscribes to the task-event subject and forwards each envelope to
// the notifier (the local websocket hub).
func (s *EventSubscriber) Start(notifier ports.Notifier) error {
	sub, err := s.client.conn.Subscribe(SubjectTaskEvents, func(msg *nats.Msg) {
		var envelope EventEnvelope
		if err := json.Unmarshal(msg.Data, &envelope); err != nil {
			logger.Warn("Dropping malformed event envelope", "error", err)
			return
		}

		var data any
		if len(envelope.Data) > 0 {
			if err := json.Unmarshal(envelope.Data, &data); err != nil {
				logger.Warn("Dropping event with malformed payload", "event", envelope.Event, "error", err)
				return
			}
		}

		notifier.EmitToRoom(envelope.Room, envelope.Event, data)
	})
	if err != nil {
		return err
	}

	s.sub = sub
	logger.Info("Event relay subscriber started", "subject", SubjectTaskEvents)
	return nil
}

func (s *EventSubscriber) Stop() {
	if s.sub != nil {
		_ = s.sub.Unsubscribe()
	}
}
