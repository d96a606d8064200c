// FILE: internal/service/assistant_service.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"ai-assistant-be/internal/dto"
	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/pkg/logger"
	"ai-assistant-be/internal/repository/specification"
	"ai-assistant-be/internal/repository/unitofwork"
	"ai-assistant-be/pkg/assistant"

	"github.com/google/uuid"
)

type IAssistantService interface {
	Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error)
	History(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.ChatMessageResponse, error)
}

type assistantService struct {
	uowFactory unitofwork.RepositoryFactory
	classifier *assistant.Classifier
	router     *assistant.Router
	fallback   *assistant.FallbackHandler
	logger     logger.ILogger
}

func NewAssistantService(
	uowFactory unitofwork.RepositoryFactory,
	classifier *assistant.Classifier,
	router *assistant.Router,
	fallback *assistant.FallbackHandler,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		uowFactory: uowFactory,
		classifier: classifier,
		router:     router,
		fallback:   fallback,
		logger:     log,
	}
}

// Chat runs one message through the full pipeline: persist it, classify,
// try the intent branches, fall back to free-form chat, persist the reply.
func (s *assistantService) Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	userMsg := entity.ChatMessage{
		Id:          uuid.New(),
		UserId:      userId,
		Role:        entity.RoleUser,
		MessageType: entity.MessageTypeText,
		Content:     req.Message,
		CreatedAt:   time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, &userMsg); err != nil {
		return nil, err
	}

	ci := s.classifier.Classify(ctx, req.Message)
	s.logger.Debug("AssistantService", "Message classified", map[string]interface{}{
		"user_id": userId,
		"intent":  ci.Intent,
		"action":  ci.Action,
	})

	reply := entity.ChatMessage{
		Id:          uuid.New(),
		UserId:      userId,
		Role:        entity.RoleAssistant,
		MessageType: entity.MessageTypeText,
		CreatedAt:   time.Now(),
	}

	content, handled := s.router.Route(ctx, userId.String(), req.Message, ci)
	if handled {
		reply.Content = content
	} else {
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
		if err != nil {
			return nil, err
		}
		userView := assistant.User{ID: userId.String()}
		if user != nil {
			userView = toAssistantUser(user)
		}

		result := s.fallback.Handle(ctx, userView, req.Message)
		reply.Content = result.Content
		reply.TokensUsed = result.TokensUsed
		reply.ModelUsed = result.ModelUsed
		reply.RelatedTaskId = parseOptionalUUID(result.RelatedTaskID)
		reply.RelatedEventId = parseOptionalUUID(result.RelatedEventID)

		if len(result.Actions) > 0 {
			if raw, err := json.Marshal(result.Actions); err == nil {
				reply.Actions = raw
			}
		}

		switch {
		case reply.RelatedTaskId != nil:
			reply.MessageType = entity.MessageTypeTaskCreated
		case reply.RelatedEventId != nil:
			reply.MessageType = entity.MessageTypeCalendarEvent
		}
	}

	if err := uow.ChatMessageRepository().Create(ctx, &reply); err != nil {
		return nil, err
	}

	return &dto.ChatResponse{
		Id:             reply.Id,
		Reply:          reply.Content,
		MessageType:    reply.MessageType,
		Actions:        json.RawMessage(reply.Actions),
		RelatedTaskId:  reply.RelatedTaskId,
		RelatedEventId: reply.RelatedEventId,
		TokensUsed:     reply.TokensUsed,
		ModelUsed:      reply.ModelUsed,
		CreatedAt:      reply.CreatedAt,
	}, nil
}

func (s *assistantService) History(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	// Newest-first from the DB, oldest-first for the client.
	out := make([]*dto.ChatMessageResponse, len(messages))
	for i, m := range messages {
		out[len(messages)-1-i] = &dto.ChatMessageResponse{
			Id:             m.Id,
			Role:           m.Role,
			MessageType:    m.MessageType,
			Content:        m.Content,
			Actions:        json.RawMessage(m.Actions),
			RelatedTaskId:  m.RelatedTaskId,
			RelatedEventId: m.RelatedEventId,
			CreatedAt:      m.CreatedAt,
		}
	}
	return out, nil
}
