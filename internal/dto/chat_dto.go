package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Id             uuid.UUID       `json:"id"`
	Reply          string          `json:"reply"`
	MessageType    string          `json:"message_type"`
	Actions        json.RawMessage `json:"actions,omitempty"`
	RelatedTaskId  *uuid.UUID      `json:"related_task_id,omitempty"`
	RelatedEventId *uuid.UUID      `json:"related_event_id,omitempty"`
	TokensUsed     int             `json:"tokens_used"`
	ModelUsed      string          `json:"model_used,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

type ChatMessageResponse struct {
	Id             uuid.UUID       `json:"id"`
	Role           string          `json:"role"`
	MessageType    string          `json:"message_type"`
	Content        string          `json:"content"`
	Actions        json.RawMessage `json:"actions,omitempty"`
	RelatedTaskId  *uuid.UUID      `json:"related_task_id,omitempty"`
	RelatedEventId *uuid.UUID      `json:"related_event_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
