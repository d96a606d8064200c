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

type EmailRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EmailMapper
}

func NewEmailRepository(db *gorm.DB) contract.EmailRepository {
	return &EmailRepositoryImpl{
		db:     db,
		mapper: mapper.NewEmailMapper(),
	}
}

func (r *EmailRepositoryImpl) Create(ctx context.Context, email *entity.EmailMessage) error {
	m := r.mapper.ToModel(email)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*email = *r.mapper.ToEntity(m)
	return nil
}

func (r *EmailRepositoryImpl) Update(ctx context.Context, email *entity.EmailMessage) error {
	m := r.mapper.ToModel(email)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*email = *r.mapper.ToEntity(m)
	return nil
}

func (r *EmailRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.EmailMessage{}, id).Error
}

func (r *EmailRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EmailMessage, error) {
	var m model.EmailMessage
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EmailRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EmailMessage, error) {
	var models []*model.EmailMessage
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
