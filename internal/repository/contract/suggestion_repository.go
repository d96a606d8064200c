package contract

import (
	"context"

	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SuggestionRepository interface {
	Create(ctx context.Context, suggestion *entity.Suggestion) error
	Update(ctx context.Context, suggestion *entity.Suggestion) error
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Suggestion, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Suggestion, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
