package entity

import (
	"time"

	"github.com/google/uuid"
)

// Chat message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Chat message types
const (
	MessageTypeText          = "text"
	MessageTypeTaskCreated   = "task_created"
	MessageTypeCalendarEvent = "calendar_event"
)

type ChatMessage struct {
	Id     uuid.UUID
	UserId uuid.UUID

	Role        string
	MessageType string
	Content     string

	TokensUsed int
	ModelUsed  string

	// Raw JSON of the actions extracted from this reply
	Actions []byte

	RelatedTaskId  *uuid.UUID
	RelatedEventId *uuid.UUID

	CreatedAt time.Time
}
