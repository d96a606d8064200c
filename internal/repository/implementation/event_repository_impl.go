package implementation

import (
	"context"
	"errors"

	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/mapper"
	"ai-assistant-be/internal/model"
	"ai-assistant-be/internal/repository/contract"
	"ai-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EventMapper
}

func NewEventRepository(db *gorm.DB) contract.EventRepository {
	return &EventRepositoryImpl{
		db:     db,
		mapper: mapper.NewEventMapper(),
	}
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *entity.CalendarEvent) error {
	m := r.mapper.ToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.ToEntity(m)
	return nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, event *entity.CalendarEvent) error {
	m := r.mapper.ToModel(event)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.ToEntity(m)
	return nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CalendarEvent{}, id).Error
}

func (r *EventRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CalendarEvent, error) {
	var m model.CalendarEvent
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CalendarEvent, error) {
	var models []*model.CalendarEvent
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
