package mapper

import (
	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/model"
)

type SuggestionMapper struct{}

func NewSuggestionMapper() *SuggestionMapper {
	return &SuggestionMapper{}
}

func (m *SuggestionMapper) ToEntity(s *model.Suggestion) *entity.Suggestion {
	if s == nil {
		return nil
	}

	return &entity.Suggestion{
		Id:             s.Id,
		UserId:         s.UserId,
		Type:           s.Type,
		Message:        s.Message,
		RelatedTaskId:  s.RelatedTaskId,
		RelatedEmailId: s.RelatedEmailId,
		RelatedEventId: s.RelatedEventId,
		IsRead:         s.IsRead,
		IsNotified:     s.IsNotified,
		CreatedAt:      s.CreatedAt,
	}
}

func (m *SuggestionMapper) ToModel(s *entity.Suggestion) *model.Suggestion {
	if s == nil {
		return nil
	}

	return &model.Suggestion{
		Id:             s.Id,
		UserId:         s.UserId,
		Type:           s.Type,
		Message:        s.Message,
		RelatedTaskId:  s.RelatedTaskId,
		RelatedEmailId: s.RelatedEmailId,
		RelatedEventId: s.RelatedEventId,
		IsRead:         s.IsRead,
		IsNotified:     s.IsNotified,
		CreatedAt:      s.CreatedAt,
	}
}

func (m *SuggestionMapper) ToEntities(suggestions []*model.Suggestion) []*entity.Suggestion {
	entities := make([]*entity.Suggestion, len(suggestions))
	for i, s := range suggestions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
