package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "TASK_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type codes published by the assistant backend.
const (
	TypeTaskCreated       = "TASK_CREATED"
	TypeEventScheduled    = "EVENT_SCHEDULED"
	TypeSuggestionCreated = "SUGGESTION_CREATED"
)

// BaseEvent is a generic implementation used both for publishing typed
// events and for reconstructing events on the consumer side.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewTaskCreated builds the event emitted after a task row is persisted.
func NewTaskCreated(userID, taskID, title string, aiSuggested bool) BaseEvent {
	return BaseEvent{
		Type: TypeTaskCreated,
		Data: map[string]interface{}{
			"user_id":      userID,
			"task_id":      taskID,
			"title":        title,
			"ai_suggested": aiSuggested,
		},
		OccurredAt: time.Now(),
	}
}

// NewEventScheduled builds the event emitted after a calendar event is persisted.
func NewEventScheduled(userID, eventID, title string, startTime time.Time) BaseEvent {
	return BaseEvent{
		Type: TypeEventScheduled,
		Data: map[string]interface{}{
			"user_id":    userID,
			"event_id":   eventID,
			"title":      title,
			"start_time": startTime.UTC().Format(time.RFC3339),
		},
		OccurredAt: time.Now(),
	}
}

// NewSuggestionCreated builds the event emitted when the review job
// persists a fresh suggestion.
func NewSuggestionCreated(userID, suggestionID, suggestionType, message string) BaseEvent {
	return BaseEvent{
		Type: TypeSuggestionCreated,
		Data: map[string]interface{}{
			"user_id":       userID,
			"suggestion_id": suggestionID,
			"type":          suggestionType,
			"message":       message,
		},
		OccurredAt: time.Now(),
	}
}
