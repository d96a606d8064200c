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

type SuggestionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SuggestionMapper
}

func NewSuggestionRepository(db *gorm.DB) contract.SuggestionRepository {
	return &SuggestionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSuggestionMapper(),
	}
}

func (r *SuggestionRepositoryImpl) Create(ctx context.Context, suggestion *entity.Suggestion) error {
	m := r.mapper.ToModel(suggestion)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*suggestion = *r.mapper.ToEntity(m)
	return nil
}

func (r *SuggestionRepositoryImpl) Update(ctx context.Context, suggestion *entity.Suggestion) error {
	m := r.mapper.ToModel(suggestion)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*suggestion = *r.mapper.ToEntity(m)
	return nil
}

func (r *SuggestionRepositoryImpl) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.Suggestion{}).Error
}

func (r *SuggestionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Suggestion, error) {
	var m model.Suggestion
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SuggestionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Suggestion, error) {
	var models []*model.Suggestion
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SuggestionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Suggestion{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
