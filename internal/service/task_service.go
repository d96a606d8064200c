// FILE: internal/service/task_service.go
package service

import (
	"context"
	"time"

	"ai-assistant-be/internal/dto"
	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/pkg/logger"
	"ai-assistant-be/internal/repository/specification"
	"ai-assistant-be/internal/repository/unitofwork"
	"ai-assistant-be/pkg/events"
	pktNats "ai-assistant-be/pkg/nats"

	"github.com/google/uuid"
)

type ITaskService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.TaskResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type taskService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  *pktNats.Publisher
	logger     logger.ILogger
}

func NewTaskService(uowFactory unitofwork.RepositoryFactory, publisher *pktNats.Publisher, log logger.ILogger) ITaskService {
	return &taskService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
	}
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		Id:           t.Id,
		Title:        t.Title,
		Description:  t.Description,
		Priority:     t.Priority,
		Status:       t.Status,
		DueDate:      t.DueDate,
		CompletedAt:  t.CompletedAt,
		AiSuggested:  t.AiSuggested,
		AiConfidence: t.AiConfidence,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (s *taskService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	priority := req.Priority
	if priority == "" {
		priority = entity.TaskPriorityMedium
	}

	task := entity.Task{
		Id:          uuid.New(),
		UserId:      userId,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Status:      entity.TaskStatusTodo,
		DueDate:     req.DueDate,
		CreatedAt:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TaskRepository().Create(ctx, &task); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		evt := events.NewTaskCreated(userId.String(), task.Id.String(), task.Title, false)
		if err := s.publisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("TaskService", "Failed to publish TASK_CREATED event", map[string]interface{}{"error": err.Error()})
		}
	}

	return toTaskResponse(&task), nil
}

func (s *taskService) List(ctx context.Context, userId uuid.UUID) ([]*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tasks, err := uow.TaskRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out, nil
}

func (s *taskService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	task, err := uow.TaskRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil // Not found
	}

	if req.Title != "" {
		task.Title = req.Title
	}
	if req.Description != "" {
		task.Description = req.Description
	}
	if req.Priority != "" {
		task.Priority = req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Status != "" {
		task.Status = req.Status
		if req.Status == entity.TaskStatusDone && task.CompletedAt == nil {
			now := time.Now()
			task.CompletedAt = &now
		}
	}

	if err := uow.TaskRepository().Update(ctx, task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

func (s *taskService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	task, err := uow.TaskRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return err
	}
	if task == nil {
		return nil // Already gone
	}
	return uow.TaskRepository().Delete(ctx, id)
}
