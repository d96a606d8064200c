package mapper

import (
	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMessageMapper struct{}

func NewChatMessageMapper() *ChatMessageMapper {
	return &ChatMessageMapper{}
}

func (m *ChatMessageMapper) ToEntity(c *model.ChatMessage) *entity.ChatMessage {
	if c == nil {
		return nil
	}

	return &entity.ChatMessage{
		Id:             c.Id,
		UserId:         c.UserId,
		Role:           c.Role,
		MessageType:    c.MessageType,
		Content:        c.Content,
		TokensUsed:     c.TokensUsed,
		ModelUsed:      c.ModelUsed,
		Actions:        []byte(c.Actions),
		RelatedTaskId:  c.RelatedTaskId,
		RelatedEventId: c.RelatedEventId,
		CreatedAt:      c.CreatedAt,
	}
}

func (m *ChatMessageMapper) ToModel(c *entity.ChatMessage) *model.ChatMessage {
	if c == nil {
		return nil
	}

	return &model.ChatMessage{
		Id:             c.Id,
		UserId:         c.UserId,
		Role:           c.Role,
		MessageType:    c.MessageType,
		Content:        c.Content,
		TokensUsed:     c.TokensUsed,
		ModelUsed:      c.ModelUsed,
		Actions:        datatypes.JSON(c.Actions),
		RelatedTaskId:  c.RelatedTaskId,
		RelatedEventId: c.RelatedEventId,
		CreatedAt:      c.CreatedAt,
	}
}

func (m *ChatMessageMapper) ToEntities(messages []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(messages))
	for i, c := range messages {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
