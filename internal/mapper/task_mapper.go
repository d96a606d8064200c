package mapper

import (
	"time"

	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/model"

	"gorm.io/gorm"
)

type TaskMapper struct{}

func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

func (m *TaskMapper) ToEntity(t *model.Task) *entity.Task {
	if t == nil {
		return nil
	}

	var deletedAt *time.Time
	if t.DeletedAt.Valid {
		dt := t.DeletedAt.Time
		deletedAt = &dt
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		ut := t.UpdatedAt
		updatedAt = &ut
	}

	return &entity.Task{
		Id:            t.Id,
		UserId:        t.UserId,
		Title:         t.Title,
		Description:   t.Description,
		Priority:      t.Priority,
		Status:        t.Status,
		DueDate:       t.DueDate,
		ReminderDate:  t.ReminderDate,
		CompletedAt:   t.CompletedAt,
		LinkedEmailId: t.LinkedEmailId,
		AiSuggested:   t.AiSuggested,
		AiConfidence:  t.AiConfidence,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
		IsDeleted:     t.DeletedAt.Valid,
	}
}

func (m *TaskMapper) ToModel(t *entity.Task) *model.Task {
	if t == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if t.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *t.DeletedAt, Valid: true}
	} else if t.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}

	return &model.Task{
		Id:            t.Id,
		UserId:        t.UserId,
		Title:         t.Title,
		Description:   t.Description,
		Priority:      t.Priority,
		Status:        t.Status,
		DueDate:       t.DueDate,
		ReminderDate:  t.ReminderDate,
		CompletedAt:   t.CompletedAt,
		LinkedEmailId: t.LinkedEmailId,
		AiSuggested:   t.AiSuggested,
		AiConfidence:  t.AiConfidence,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}

func (m *TaskMapper) ToEntities(tasks []*model.Task) []*entity.Task {
	entities := make([]*entity.Task, len(tasks))
	for i, t := range tasks {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
