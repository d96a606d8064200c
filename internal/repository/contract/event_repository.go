package contract

import (
	"context"

	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.CalendarEvent) error
	Update(ctx context.Context, event *entity.CalendarEvent) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CalendarEvent, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CalendarEvent, error)
}
