package contract

import (
	"context"

	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

type EmailRepository interface {
	Create(ctx context.Context, email *entity.EmailMessage) error
	Update(ctx context.Context, email *entity.EmailMessage) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EmailMessage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EmailMessage, error)
}
