// FILE: internal/service/assistant_ports.go
//
// Adapters binding the assistant engine's store ports to the persistence
// layer and the outbound clients. The engine works with string ids and its
// own view structs; everything uuid/entity-shaped is translated here.
package service

import (
	"context"
	"fmt"
	"time"

	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/pkg/logger"
	"ai-assistant-be/internal/repository/specification"
	"ai-assistant-be/internal/repository/unitofwork"
	"ai-assistant-be/pkg/agent"
	"ai-assistant-be/pkg/assistant"
	"ai-assistant-be/pkg/events"
	pktNats "ai-assistant-be/pkg/nats"
	"ai-assistant-be/pkg/websearch"

	"github.com/google/uuid"
)

func parseUserID(userID string) (uuid.UUID, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id %q: %w", userID, err)
	}
	return id, nil
}

func toAssistantUser(u *entity.User) assistant.User {
	return assistant.User{
		ID:       u.Id.String(),
		Name:     u.Name,
		Email:    u.Email,
		Timezone: u.Timezone,
	}
}

func toAssistantTask(t *entity.Task) assistant.Task {
	return assistant.Task{
		ID:          t.Id.String(),
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		DueDate:     t.DueDate,
	}
}

func toAssistantEmail(e *entity.EmailMessage) assistant.Email {
	return assistant.Email{
		ID:         e.Id.String(),
		Subject:    e.Subject,
		Sender:     e.Sender,
		ReceivedAt: e.ReceivedAt,
	}
}

func toAssistantEvent(e *entity.CalendarEvent) assistant.Event {
	return assistant.Event{
		ID:        e.Id.String(),
		Title:     e.Title,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
	}
}

// userDirectory lists every registered user for the review sweep.
type userDirectory struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserDirectory(uowFactory unitofwork.RepositoryFactory) assistant.UserDirectory {
	return &userDirectory{uowFactory: uowFactory}
}

func (d *userDirectory) ListUsers(ctx context.Context) ([]assistant.User, error) {
	uow := d.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]assistant.User, 0, len(users))
	for _, u := range users {
		out = append(out, toAssistantUser(u))
	}
	return out, nil
}

// taskStore persists tasks for the engine and announces creations on the bus.
type taskStore struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  *pktNats.Publisher
	logger     logger.ILogger
}

func NewTaskStore(uowFactory unitofwork.RepositoryFactory, publisher *pktNats.Publisher, log logger.ILogger) assistant.TaskStore {
	return &taskStore{uowFactory: uowFactory, publisher: publisher, logger: log}
}

func (s *taskStore) Create(ctx context.Context, userID string, in assistant.TaskInput) (*assistant.Task, error) {
	uid, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	task := entity.Task{
		Id:           uuid.New(),
		UserId:       uid,
		Title:        in.Title,
		Description:  in.Description,
		Priority:     in.Priority,
		Status:       entity.TaskStatusTodo,
		DueDate:      in.DueDate,
		AiSuggested:  in.AISuggested,
		AiConfidence: in.AIConfidence,
		CreatedAt:    time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TaskRepository().Create(ctx, &task); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		evt := events.NewTaskCreated(userID, task.Id.String(), task.Title, task.AiSuggested)
		if err := s.publisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("TaskStore", "Failed to publish TASK_CREATED event", map[string]interface{}{"error": err.Error()})
		}
	}

	view := toAssistantTask(&task)
	return &view, nil
}

func (s *taskStore) ListRecent(ctx context.Context, userID string, limit int) ([]assistant.Task, error) {
	return s.list(ctx, userID,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Limit: limit},
	)
}

func (s *taskStore) ListAll(ctx context.Context, userID string) ([]assistant.Task, error) {
	return s.list(ctx, userID, specification.OrderBy{Field: "created_at", Desc: true})
}

func (s *taskStore) list(ctx context.Context, userID string, specs ...specification.Specification) ([]assistant.Task, error) {
	uid, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	tasks, err := uow.TaskRepository().FindAll(ctx, append([]specification.Specification{specification.ByUserID{UserID: uid}}, specs...)...)
	if err != nil {
		return nil, err
	}

	out := make([]assistant.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toAssistantTask(t))
	}
	return out, nil
}

// emailStore reads synced mail for prompts and listings. Read-only: mail
// rows are written by the Gmail sync pipeline, never by the engine.
type emailStore struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewEmailStore(uowFactory unitofwork.RepositoryFactory) assistant.EmailStore {
	return &emailStore{uowFactory: uowFactory}
}

func (s *emailStore) ListRecent(ctx context.Context, userID string, limit int) ([]assistant.Email, error) {
	return s.list(ctx, userID,
		specification.OrderBy{Field: "received_at", Desc: true},
		specification.Limit{Limit: limit},
	)
}

func (s *emailStore) ListAll(ctx context.Context, userID string) ([]assistant.Email, error) {
	return s.list(ctx, userID, specification.OrderBy{Field: "received_at", Desc: true})
}

func (s *emailStore) list(ctx context.Context, userID string, specs ...specification.Specification) ([]assistant.Email, error) {
	uid, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	emails, err := uow.EmailRepository().FindAll(ctx, append([]specification.Specification{specification.ByUserID{UserID: uid}}, specs...)...)
	if err != nil {
		return nil, err
	}

	out := make([]assistant.Email, 0, len(emails))
	for _, e := range emails {
		out = append(out, toAssistantEmail(e))
	}
	return out, nil
}

// eventStore persists calendar events and announces creations on the bus.
type eventStore struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  *pktNats.Publisher
	logger     logger.ILogger
}

func NewEventStore(uowFactory unitofwork.RepositoryFactory, publisher *pktNats.Publisher, log logger.ILogger) assistant.EventStore {
	return &eventStore{uowFactory: uowFactory, publisher: publisher, logger: log}
}

func (s *eventStore) Create(ctx context.Context, userID string, in assistant.EventInput) (*assistant.Event, error) {
	uid, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	event := entity.CalendarEvent{
		Id:          uuid.New(),
		UserId:      uid,
		Title:       in.Title,
		Description: in.Description,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		AiSuggested: in.AISuggested,
		CreatedAt:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.EventRepository().Create(ctx, &event); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		evt := events.NewEventScheduled(userID, event.Id.String(), event.Title, event.StartTime)
		if err := s.publisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("EventStore", "Failed to publish EVENT_SCHEDULED event", map[string]interface{}{"error": err.Error()})
		}
	}

	view := toAssistantEvent(&event)
	return &view, nil
}

func (s *eventStore) ListUpcoming(ctx context.Context, userID string, limit int) ([]assistant.Event, error) {
	return s.list(ctx, userID,
		specification.StartingAfter{At: time.Now()},
		specification.OrderBy{Field: "start_time", Desc: false},
		specification.Limit{Limit: limit},
	)
}

func (s *eventStore) ListAll(ctx context.Context, userID string) ([]assistant.Event, error) {
	return s.list(ctx, userID, specification.OrderBy{Field: "start_time", Desc: false})
}

func (s *eventStore) list(ctx context.Context, userID string, specs ...specification.Specification) ([]assistant.Event, error) {
	uid, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	eventsList, err := uow.EventRepository().FindAll(ctx, append([]specification.Specification{specification.ByUserID{UserID: uid}}, specs...)...)
	if err != nil {
		return nil, err
	}

	out := make([]assistant.Event, 0, len(eventsList))
	for _, e := range eventsList {
		out = append(out, toAssistantEvent(e))
	}
	return out, nil
}

// suggestionStore persists review-job output. The unread+message pair is
// the dedupe key, so ExistsUnread is an exact-match count.
type suggestionStore struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  *pktNats.Publisher
	logger     logger.ILogger
}

func NewSuggestionStore(uowFactory unitofwork.RepositoryFactory, publisher *pktNats.Publisher, log logger.ILogger) assistant.SuggestionStore {
	return &suggestionStore{uowFactory: uowFactory, publisher: publisher, logger: log}
}

func (s *suggestionStore) ExistsUnread(ctx context.Context, userID, message string) (bool, error) {
	uid, err := parseUserID(userID)
	if err != nil {
		return false, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.SuggestionRepository().Count(ctx,
		specification.ByUserID{UserID: uid},
		specification.UnreadOnly{},
		specification.ByMessage{Message: message},
	)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *suggestionStore) Create(ctx context.Context, sg *assistant.Suggestion) (*assistant.Suggestion, error) {
	uid, err := parseUserID(sg.UserID)
	if err != nil {
		return nil, err
	}

	row := entity.Suggestion{
		Id:             uuid.New(),
		UserId:         uid,
		Type:           sg.Type,
		Message:        sg.Message,
		RelatedTaskId:  parseOptionalUUID(sg.RelatedTaskID),
		RelatedEmailId: parseOptionalUUID(sg.RelatedEmailID),
		RelatedEventId: parseOptionalUUID(sg.RelatedEventID),
		CreatedAt:      time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SuggestionRepository().Create(ctx, &row); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		evt := events.NewSuggestionCreated(sg.UserID, row.Id.String(), row.Type, row.Message)
		if err := s.publisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("SuggestionStore", "Failed to publish SUGGESTION_CREATED event", map[string]interface{}{"error": err.Error()})
		}
	}

	created := *sg
	created.ID = row.Id.String()
	created.CreatedAt = row.CreatedAt
	return &created, nil
}

// parseOptionalUUID drops unparseable model-provided ids rather than
// failing the whole suggestion.
func parseOptionalUUID(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

// fileFinder adapts the desktop agent client.
type fileFinder struct {
	client *agent.Client
}

func NewFileFinder(client *agent.Client) assistant.FileFinder {
	return &fileFinder{client: client}
}

func (f *fileFinder) Search(ctx context.Context, query string) ([]assistant.FileMatch, error) {
	matches, err := f.client.SearchFile(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]assistant.FileMatch, 0, len(matches))
	for _, m := range matches {
		out = append(out, assistant.FileMatch{
			Name:         m.Name,
			Path:         m.Path,
			LastModified: m.LastModified,
		})
	}
	return out, nil
}

func (f *fileFinder) Open(ctx context.Context, name string) (*assistant.OpenResult, error) {
	status, err := f.client.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &assistant.OpenResult{
		Status:  status.Status,
		Message: status.Message,
	}, nil
}

// webSearcher adapts the SerpAPI client.
type webSearcher struct {
	client *websearch.SerpAPIClient
}

func NewWebSearcher(client *websearch.SerpAPIClient) assistant.WebSearch {
	return &webSearcher{client: client}
}

func (w *webSearcher) Search(ctx context.Context, query string, num int) ([]assistant.WebResult, error) {
	results, err := w.client.Search(ctx, query, num)
	if err != nil {
		return nil, err
	}
	out := make([]assistant.WebResult, 0, len(results))
	for _, r := range results {
		out = append(out, assistant.WebResult{
			Title:   r.Title,
			Link:    r.Link,
			Snippet: r.Snippet,
		})
	}
	return out, nil
}
