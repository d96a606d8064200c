// FILE: internal/service/relay_service.go
package service

import (
	"context"

	"ai-assistant-be/internal/pkg/logger"
	internalWS "ai-assistant-be/internal/websocket"
	"ai-assistant-be/pkg/events"
	pktNats "ai-assistant-be/pkg/nats"

	"github.com/google/uuid"
)

// RelayService forwards durable bus events to connected websocket clients
// so the UI reflects task and event creation in real time.
type RelayService struct {
	subscriber *pktNats.Subscriber
	delivery   PushDelivery
	logger     logger.ILogger
}

func NewRelayService(sub *pktNats.Subscriber, delivery PushDelivery, log logger.ILogger) *RelayService {
	return &RelayService{
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *RelayService) Start() {
	err := s.subscriber.Subscribe("events.>", "ws-relay-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("RelayService", "Failed to start relay subscriber", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("RelayService", "Relay started, listening to events.>", nil)
}

func (s *RelayService) handleEvent(ctx context.Context, event events.Event) error {
	// Suggestions are pushed by the dispatcher over the in-process bus;
	// relaying them again would double-deliver.
	if event.EventType() == events.TypeSuggestionCreated {
		return nil
	}

	payload := event.Payload()
	userIDStr, _ := payload["user_id"].(string)
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		s.logger.Warn("RelayService", "Event without a valid user_id, dropping", map[string]interface{}{"type": event.EventType()})
		return nil
	}

	if s.delivery != nil {
		s.delivery.Send(uid, internalWS.Payload{
			Event: event.EventType(),
			Data:  payload,
		})
	}
	return nil
}
