package assistant

import (
	"context"
	"log"
	"time"
)

// aiConfidenceDefault is attached to tasks the model proposed on its own.
const aiConfidenceDefault = 80

// Executor applies structured actions extracted from chat completions
// against the store ports. Actions are independent: one failing write must
// not prevent the remaining actions from being attempted.
type Executor struct {
	tasks  TaskStore
	events EventStore
	logger *log.Logger
}

func NewExecutor(tasks TaskStore, events EventStore, logger *log.Logger) *Executor {
	return &Executor{
		tasks:  tasks,
		events: events,
		logger: logger,
	}
}

// Execute applies each recognized action and returns the ids of the
// last-created task and event. Unrecognized types are skipped silently.
func (e *Executor) Execute(ctx context.Context, userID string, actions []ActionCommand) ExecResult {
	var result ExecResult

	for _, action := range actions {
		switch action.Type {
		case ActionTypeCreateTask:
			if action.Title == "" {
				e.logger.Printf("[WARN] create_task action missing title, skipped")
				continue
			}
			priority := action.Priority
			if priority == "" {
				priority = "medium"
			}
			task, err := e.tasks.Create(ctx, userID, TaskInput{
				Title:        action.Title,
				Description:  action.Description,
				Priority:     priority,
				AISuggested:  true,
				AIConfidence: aiConfidenceDefault,
			})
			if err != nil {
				e.logger.Printf("[ERROR] create_task failed: %v", err)
				continue
			}
			result.RelatedTaskID = task.ID

		case ActionTypeScheduleEvent:
			if action.Title == "" {
				e.logger.Printf("[WARN] schedule_event action missing title, skipped")
				continue
			}
			start, err := parseISOTime(action.StartTime)
			if err != nil {
				e.logger.Printf("[ERROR] schedule_event bad start_time %q: %v", action.StartTime, err)
				continue
			}
			end, err := parseISOTime(action.EndTime)
			if err != nil {
				e.logger.Printf("[ERROR] schedule_event bad end_time %q: %v", action.EndTime, err)
				continue
			}
			event, err := e.events.Create(ctx, userID, EventInput{
				Title:       action.Title,
				Description: action.Description,
				StartTime:   start,
				EndTime:     end,
				AISuggested: true,
			})
			if err != nil {
				e.logger.Printf("[ERROR] schedule_event failed: %v", err)
				continue
			}
			result.RelatedEventID = event.ID

		default:
			// Unknown action types are advisory noise from the model.
		}
	}

	return result
}

// parseISOTime accepts RFC 3339 timestamps with or without a zone offset.
func parseISOTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}
