package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	internalWS "ai-assistant-be/internal/websocket"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type capturedPush struct {
	userID  uuid.UUID
	payload internalWS.Payload
}

type fakeDelivery struct {
	pushes chan capturedPush
}

func newFakeDelivery() *fakeDelivery {
	return &fakeDelivery{pushes: make(chan capturedPush, 8)}
}

func (d *fakeDelivery) Send(userID uuid.UUID, p internalWS.Payload) {
	d.pushes <- capturedPush{userID: userID, payload: p}
}

func TestDispatcherPushesSuggestionToOwner(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	delivery := newFakeDelivery()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ds := NewDispatcherService(pubSub, delivery)
	if err := ds.Consume(ctx); err != nil {
		t.Fatalf("Consume() error = %v", err)
	}

	owner := uuid.New()
	push := SuggestionPush{
		UserID:       owner.String(),
		SuggestionID: uuid.New().String(),
		Type:         "reminder",
		Message:      "Task X is due tomorrow",
		CreatedAt:    time.Now(),
	}
	payload, _ := json.Marshal(push)
	if err := pubSub.Publish(SuggestionNotifyTopic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	select {
	case got := <-delivery.pushes:
		if got.userID != owner {
			t.Errorf("Send userID = %s, want %s", got.userID, owner)
		}
		if got.payload.Event != "SUGGESTION_CREATED" {
			t.Errorf("payload event = %q, want %q", got.payload.Event, "SUGGESTION_CREATED")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no push delivered within 2s")
	}
}

func TestDispatcherDropsMalformedMessages(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	delivery := newFakeDelivery()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ds := NewDispatcherService(pubSub, delivery)
	if err := ds.Consume(ctx); err != nil {
		t.Fatalf("Consume() error = %v", err)
	}

	bad := message.NewMessage(watermill.NewUUID(), []byte("not json"))
	if err := pubSub.Publish(SuggestionNotifyTopic, bad); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	noUser, _ := json.Marshal(SuggestionPush{UserID: "not-a-uuid", Message: "x"})
	if err := pubSub.Publish(SuggestionNotifyTopic, message.NewMessage(watermill.NewUUID(), noUser)); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	select {
	case got := <-delivery.pushes:
		t.Fatalf("unexpected push for user %s", got.userID)
	case <-time.After(300 * time.Millisecond):
	}
}
