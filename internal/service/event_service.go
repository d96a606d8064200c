// FILE: internal/service/event_service.go
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

// Default duration applied when the client omits an end time.
const defaultEventDuration = time.Hour

type IEventService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	ListUpcoming(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.EventResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type eventService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  *pktNats.Publisher
	logger     logger.ILogger
}

func NewEventService(uowFactory unitofwork.RepositoryFactory, publisher *pktNats.Publisher, log logger.ILogger) IEventService {
	return &eventService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
	}
}

func toEventResponse(e *entity.CalendarEvent) *dto.EventResponse {
	return &dto.EventResponse{
		Id:          e.Id,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		AllDay:      e.AllDay,
		AiSuggested: e.AiSuggested,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (s *eventService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	endTime := req.StartTime.Add(defaultEventDuration)
	if req.EndTime != nil {
		endTime = *req.EndTime
	}

	event := entity.CalendarEvent{
		Id:          uuid.New(),
		UserId:      userId,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     endTime,
		AllDay:      req.AllDay,
		CreatedAt:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.EventRepository().Create(ctx, &event); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		evt := events.NewEventScheduled(userId.String(), event.Id.String(), event.Title, event.StartTime)
		if err := s.publisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("EventService", "Failed to publish EVENT_SCHEDULED event", map[string]interface{}{"error": err.Error()})
		}
	}

	return toEventResponse(&event), nil
}

func (s *eventService) ListUpcoming(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.EventResponse, error) {
	specs := []specification.Specification{
		specification.ByUserID{UserID: userId},
		specification.StartingAfter{At: time.Now()},
		specification.OrderBy{Field: "start_time", Desc: false},
	}
	if limit > 0 {
		specs = append(specs, specification.Limit{Limit: limit})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	eventsList, err := uow.EventRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.EventResponse, 0, len(eventsList))
	for _, e := range eventsList {
		out = append(out, toEventResponse(e))
	}
	return out, nil
}

func (s *eventService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	event, err := uow.EventRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return err
	}
	if event == nil {
		return nil
	}
	return uow.EventRepository().Delete(ctx, id)
}
