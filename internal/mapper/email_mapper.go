package mapper

import (
	"encoding/json"
	"time"

	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/model"

	"gorm.io/datatypes"
)

type EmailMapper struct{}

func NewEmailMapper() *EmailMapper {
	return &EmailMapper{}
}

func (m *EmailMapper) ToEntity(e *model.EmailMessage) *entity.EmailMessage {
	if e == nil {
		return nil
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	var recipients []string
	if len(e.Recipients) > 0 {
		// Invalid stored JSON degrades to an empty list
		_ = json.Unmarshal(e.Recipients, &recipients)
	}

	return &entity.EmailMessage{
		Id:               e.Id,
		UserId:           e.UserId,
		GmailId:          e.GmailId,
		ThreadId:         e.ThreadId,
		Subject:          e.Subject,
		Sender:           e.Sender,
		Recipients:       recipients,
		Body:             e.Body,
		BodyPlain:        e.BodyPlain,
		IsRead:           e.IsRead,
		IsImportant:      e.IsImportant,
		IsStarred:        e.IsStarred,
		AiSummary:        e.AiSummary,
		AiSuggestedReply: e.AiSuggestedReply,
		AiPriorityScore:  e.AiPriorityScore,
		AiActionRequired: e.AiActionRequired,
		ReceivedAt:       e.ReceivedAt,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *EmailMapper) ToModel(e *entity.EmailMessage) *model.EmailMessage {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	var recipients datatypes.JSON
	if len(e.Recipients) > 0 {
		if raw, err := json.Marshal(e.Recipients); err == nil {
			recipients = raw
		}
	}

	return &model.EmailMessage{
		Id:               e.Id,
		UserId:           e.UserId,
		GmailId:          e.GmailId,
		ThreadId:         e.ThreadId,
		Subject:          e.Subject,
		Sender:           e.Sender,
		Recipients:       recipients,
		Body:             e.Body,
		BodyPlain:        e.BodyPlain,
		IsRead:           e.IsRead,
		IsImportant:      e.IsImportant,
		IsStarred:        e.IsStarred,
		AiSummary:        e.AiSummary,
		AiSuggestedReply: e.AiSuggestedReply,
		AiPriorityScore:  e.AiPriorityScore,
		AiActionRequired: e.AiActionRequired,
		ReceivedAt:       e.ReceivedAt,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *EmailMapper) ToEntities(emails []*model.EmailMessage) []*entity.EmailMessage {
	entities := make([]*entity.EmailMessage, len(emails))
	for i, e := range emails {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
