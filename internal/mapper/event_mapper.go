package mapper

import (
	"time"

	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/model"

	"gorm.io/gorm"
)

type EventMapper struct{}

func NewEventMapper() *EventMapper {
	return &EventMapper{}
}

func (m *EventMapper) ToEntity(e *model.CalendarEvent) *entity.CalendarEvent {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.CalendarEvent{
		Id:            e.Id,
		UserId:        e.UserId,
		GoogleEventId: e.GoogleEventId,
		Title:         e.Title,
		Description:   e.Description,
		Location:      e.Location,
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		AllDay:        e.AllDay,
		CalendarId:    e.CalendarId,
		Attendees:     e.Attendees,
		AiSuggested:   e.AiSuggested,
		AiNotes:       e.AiNotes,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
		IsDeleted:     e.DeletedAt.Valid,
	}
}

func (m *EventMapper) ToModel(e *entity.CalendarEvent) *model.CalendarEvent {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.CalendarEvent{
		Id:            e.Id,
		UserId:        e.UserId,
		GoogleEventId: e.GoogleEventId,
		Title:         e.Title,
		Description:   e.Description,
		Location:      e.Location,
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		AllDay:        e.AllDay,
		CalendarId:    e.CalendarId,
		Attendees:     e.Attendees,
		AiSuggested:   e.AiSuggested,
		AiNotes:       e.AiNotes,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}

func (m *EventMapper) ToEntities(events []*model.CalendarEvent) []*entity.CalendarEvent {
	entities := make([]*entity.CalendarEvent, len(events))
	for i, e := range events {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
