// FILE: internal/service/dispatcher_service.go
package service

import (
	"context"
	"encoding/json"
	"log"

	internalWS "ai-assistant-be/internal/websocket"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// PushDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type PushDelivery interface {
	Send(userID uuid.UUID, p internalWS.Payload)
}

type IDispatcherService interface {
	Consume(ctx context.Context) error
}

// dispatcherService drains the suggestion notify topic and pushes each
// entry to the owning user's websocket connections.
type dispatcherService struct {
	pubSub   *gochannel.GoChannel
	delivery PushDelivery
}

func NewDispatcherService(pubSub *gochannel.GoChannel, delivery PushDelivery) IDispatcherService {
	return &dispatcherService{
		pubSub:   pubSub,
		delivery: delivery,
	}
}

func (ds *dispatcherService) Consume(ctx context.Context) error {
	messages, err := ds.pubSub.Subscribe(ctx, SuggestionNotifyTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ds.processMessage(msg)
		}
	}()

	return nil
}

func (ds *dispatcherService) processMessage(msg *message.Message) {
	var push SuggestionPush
	if err := json.Unmarshal(msg.Payload, &push); err != nil {
		log.Printf("[ERROR] Failed to unmarshal suggestion push: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uid, err := uuid.Parse(push.UserID)
	if err != nil {
		log.Printf("[ERROR] Suggestion push with invalid user id %q", push.UserID)
		msg.Ack()
		return
	}

	if ds.delivery != nil {
		ds.delivery.Send(uid, internalWS.Payload{
			Event: "SUGGESTION_CREATED",
			Data:  push,
		})
	}
	msg.Ack()
}
