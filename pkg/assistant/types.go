package assistant

import "time"

// Intent constants - coarse category of what the user wants
const (
	IntentTask     = "task"
	IntentCalendar = "calendar"
	IntentEmail    = "email"
	IntentFile     = "file"
	IntentApp      = "app"
	IntentWeb      = "web"
	IntentChat     = "chat"
	IntentNone     = "none"
)

// Action constants - verb within an intent. The model is free to emit
// other strings; unrecognized ones degrade to the default branch.
const (
	ActionCreate      = "create"
	ActionList        = "list"
	ActionOpen        = "open"
	ActionFind        = "find"
	ActionLastUpdated = "last_updated"
	ActionSearch      = "search"
)

// ClassifiedIntent is the structured result of classifying one free-text
// message. Produced fresh per message, never persisted.
type ClassifiedIntent struct {
	Intent   string         `json:"intent"`
	Action   string         `json:"action"`
	Entities map[string]any `json:"entities"`
}

// NoneIntent routes to the chat fallback.
func NoneIntent() ClassifiedIntent {
	return ClassifiedIntent{
		Intent:   IntentNone,
		Action:   "",
		Entities: map[string]any{},
	}
}

// ActionCommand is one structured action extracted from a chat completion.
// Each command is applied independently; one failing must not abort the rest.
type ActionCommand struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

// Recognized ActionCommand types
const (
	ActionTypeCreateTask    = "create_task"
	ActionTypeScheduleEvent = "schedule_event"
)

// ExecResult carries the id(s) of the last-created entity per category so
// the chat response can correlate back to them.
type ExecResult struct {
	RelatedTaskID  string
	RelatedEventID string
}

// ChatResult is the outcome of the chat fallback path.
type ChatResult struct {
	Content        string
	TokensUsed     int
	ModelUsed      string
	Actions        []ActionCommand
	RelatedTaskID  string
	RelatedEventID string
}

// User is the engine's view of a user record.
type User struct {
	ID       string
	Name     string
	Email    string
	Timezone string
}

// Task is the engine's view of a task record.
type Task struct {
	ID          string
	Title       string
	Description string
	Priority    string
	Status      string
	DueDate     *time.Time
}

// TaskInput holds the fields for a task create call.
type TaskInput struct {
	Title        string
	Description  string
	Priority     string
	DueDate      *time.Time
	AISuggested  bool
	AIConfidence int
}

// Email is the engine's view of a stored email message.
type Email struct {
	ID         string
	Subject    string
	Sender     string
	ReceivedAt time.Time
}

// Event is the engine's view of a calendar event.
type Event struct {
	ID        string
	Title     string
	StartTime time.Time
	EndTime   time.Time
}

// EventInput holds the fields for an event create call.
type EventInput struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	AISuggested bool
}

// Suggestion is a proactively generated nudge surfaced to a user.
// Append-only: the only later mutations are is_read and is_notified flips.
type Suggestion struct {
	ID             string
	UserID         string
	Type           string
	Message        string
	RelatedTaskID  string
	RelatedEmailID string
	RelatedEventID string
	IsRead         bool
	IsNotified     bool
	CreatedAt      time.Time
}

// FileMatch is one ranked result from the file finder.
type FileMatch struct {
	Name         string `json:"name"`
	Path         string `json:"path"`
	LastModified string `json:"last_modified"`
}

// OpenResult reports the outcome of an open request.
type OpenResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// WebResult is one web search hit.
type WebResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}
