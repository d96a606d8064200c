package contract

import (
	"context"

	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/repository/specification"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
}
