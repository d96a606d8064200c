package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateTaskRequest struct {
	Id          uuid.UUID
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Status      string     `json:"status" validate:"omitempty,oneof=todo in_progress done cancelled"`
	DueDate     *time.Time `json:"due_date"`
}

type TaskResponse struct {
	Id           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	AiSuggested  bool       `json:"ai_suggested"`
	AiConfidence int        `json:"ai_confidence,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}
