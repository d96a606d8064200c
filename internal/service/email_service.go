// FILE: internal/service/email_service.go
package service

import (
	"context"

	"ai-assistant-be/internal/dto"
	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/repository/specification"
	"ai-assistant-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IEmailService interface {
	List(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.EmailResponse, error)
	MarkRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.EmailResponse, error)
}

type emailService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewEmailService(uowFactory unitofwork.RepositoryFactory) IEmailService {
	return &emailService{uowFactory: uowFactory}
}

func toEmailResponse(e *entity.EmailMessage) *dto.EmailResponse {
	return &dto.EmailResponse{
		Id:               e.Id,
		Subject:          e.Subject,
		Sender:           e.Sender,
		IsRead:           e.IsRead,
		IsImportant:      e.IsImportant,
		AiSummary:        e.AiSummary,
		AiPriorityScore:  e.AiPriorityScore,
		AiActionRequired: e.AiActionRequired,
		ReceivedAt:       e.ReceivedAt,
	}
}

func (s *emailService) List(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.EmailResponse, error) {
	specs := []specification.Specification{
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "received_at", Desc: true},
	}
	if limit > 0 {
		specs = append(specs, specification.Limit{Limit: limit})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	emails, err := uow.EmailRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.EmailResponse, 0, len(emails))
	for _, e := range emails {
		out = append(out, toEmailResponse(e))
	}
	return out, nil
}

func (s *emailService) MarkRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.EmailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	email, err := uow.EmailRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if email == nil {
		return nil, nil
	}

	if !email.IsRead {
		email.IsRead = true
		if err := uow.EmailRepository().Update(ctx, email); err != nil {
			return nil, err
		}
	}
	return toEmailResponse(email), nil
}
