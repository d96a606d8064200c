// FILE: internal/service/notifier_service.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"ai-assistant-be/internal/pkg/logger"
	"ai-assistant-be/internal/pkg/mailer"
	"ai-assistant-be/internal/repository/specification"
	"ai-assistant-be/internal/repository/unitofwork"
	"ai-assistant-be/pkg/assistant"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// SuggestionNotifyTopic is the in-process topic the dispatcher consumes.
const SuggestionNotifyTopic = "suggestion_notify"

// SuggestionPush is the payload carried on the notify topic.
type SuggestionPush struct {
	UserID       string    `json:"user_id"`
	SuggestionID string    `json:"suggestion_id"`
	Type         string    `json:"type"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}

// NotifierService delivers freshly created suggestions: it flips the
// is_notified flag, pushes onto the in-process bus for websocket fan-out,
// and optionally emails the user.
type NotifierService struct {
	uowFactory   unitofwork.RepositoryFactory
	pubSub       *gochannel.GoChannel
	emailService mailer.IEmailService
	emailEnabled bool
	logger       logger.ILogger
}

func NewNotifierService(
	uowFactory unitofwork.RepositoryFactory,
	pubSub *gochannel.GoChannel,
	emailService mailer.IEmailService,
	emailEnabled bool,
	log logger.ILogger,
) *NotifierService {
	return &NotifierService{
		uowFactory:   uowFactory,
		pubSub:       pubSub,
		emailService: emailService,
		emailEnabled: emailEnabled,
		logger:       log,
	}
}

var _ assistant.NotificationSink = (*NotifierService)(nil)

func (s *NotifierService) Notify(ctx context.Context, user assistant.User, sg *assistant.Suggestion) error {
	id, err := uuid.Parse(sg.ID)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	row, err := uow.SuggestionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if row == nil {
		return nil // Deleted between create and notify
	}
	row.IsNotified = true
	if err := uow.SuggestionRepository().Update(ctx, row); err != nil {
		return err
	}

	push := SuggestionPush{
		UserID:       sg.UserID,
		SuggestionID: sg.ID,
		Type:         sg.Type,
		Message:      sg.Message,
		CreatedAt:    row.CreatedAt,
	}
	payload, err := json.Marshal(push)
	if err != nil {
		return err
	}
	if s.pubSub != nil {
		msg := message.NewMessage(watermill.NewUUID(), payload)
		if err := s.pubSub.Publish(SuggestionNotifyTopic, msg); err != nil {
			s.logger.Warn("NotifierService", "Failed to publish suggestion push", map[string]interface{}{"error": err.Error()})
		}
	}

	// Email is a convenience channel; a send failure must not fail delivery.
	if s.emailEnabled && s.emailService != nil && user.Email != "" {
		if err := s.emailService.SendSuggestion(user.Email, sg.Type, sg.Message); err != nil {
			s.logger.Warn("NotifierService", "Suggestion email failed", map[string]interface{}{
				"user_id": sg.UserID,
				"error":   err.Error(),
			})
		}
	}

	return nil
}
