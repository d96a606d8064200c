// FILE: internal/service/suggestion_service.go
package service

import (
	"context"

	"ai-assistant-be/internal/dto"
	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/repository/specification"
	"ai-assistant-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISuggestionService interface {
	List(ctx context.Context, userId uuid.UUID, unreadOnly bool) ([]*dto.SuggestionResponse, error)
	MarkRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.SuggestionResponse, error)
	ClearAll(ctx context.Context, userId uuid.UUID) error
}

type suggestionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSuggestionService(uowFactory unitofwork.RepositoryFactory) ISuggestionService {
	return &suggestionService{uowFactory: uowFactory}
}

func toSuggestionResponse(sg *entity.Suggestion) *dto.SuggestionResponse {
	return &dto.SuggestionResponse{
		Id:             sg.Id,
		Type:           sg.Type,
		Message:        sg.Message,
		RelatedTaskId:  sg.RelatedTaskId,
		RelatedEmailId: sg.RelatedEmailId,
		RelatedEventId: sg.RelatedEventId,
		IsRead:         sg.IsRead,
		IsNotified:     sg.IsNotified,
		CreatedAt:      sg.CreatedAt,
	}
}

func (s *suggestionService) List(ctx context.Context, userId uuid.UUID, unreadOnly bool) ([]*dto.SuggestionResponse, error) {
	specs := []specification.Specification{
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if unreadOnly {
		specs = append(specs, specification.UnreadOnly{})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	suggestions, err := uow.SuggestionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.SuggestionResponse, 0, len(suggestions))
	for _, sg := range suggestions {
		out = append(out, toSuggestionResponse(sg))
	}
	return out, nil
}

func (s *suggestionService) MarkRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.SuggestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	suggestion, err := uow.SuggestionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if suggestion == nil {
		return nil, nil
	}

	if !suggestion.IsRead {
		suggestion.IsRead = true
		if err := uow.SuggestionRepository().Update(ctx, suggestion); err != nil {
			return nil, err
		}
	}
	return toSuggestionResponse(suggestion), nil
}

func (s *suggestionService) ClearAll(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.SuggestionRepository().DeleteAllByUserId(ctx, userId)
}
