// FILE: internal/service/user_service.go
package service

import (
	"context"

	"ai-assistant-be/internal/dto"
	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/repository/specification"
	"ai-assistant-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
	UpdateSettings(ctx context.Context, userId uuid.UUID, req *dto.UpdateSettingsRequest) (*dto.UserResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{uowFactory: uowFactory}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:        u.Id,
		Email:     u.Email,
		Name:      u.Name,
		AvatarUrl: u.AvatarUrl,
		Timezone:  u.Timezone,
		CreatedAt: u.CreatedAt,
	}
}

func (s *userService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateSettings(ctx context.Context, userId uuid.UUID, req *dto.UpdateSettingsRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if req.Timezone != "" {
		user.Timezone = req.Timezone
	}
	if req.Language != "" {
		user.Language = req.Language
	}
	if req.NotificationsEnabled != nil {
		user.NotificationsEnabled = *req.NotificationsEnabled
	}

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}
