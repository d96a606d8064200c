package dto

import (
	"time"

	"github.com/google/uuid"
)

type SuggestionResponse struct {
	Id             uuid.UUID  `json:"id"`
	Type           string     `json:"type"`
	Message        string     `json:"message"`
	RelatedTaskId  *uuid.UUID `json:"related_task_id,omitempty"`
	RelatedEmailId *uuid.UUID `json:"related_email_id,omitempty"`
	RelatedEventId *uuid.UUID `json:"related_event_id,omitempty"`
	IsRead         bool       `json:"is_read"`
	IsNotified     bool       `json:"is_notified"`
	CreatedAt      time.Time  `json:"created_at"`
}
