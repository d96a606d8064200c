package dto

import (
	"time"

	"github.com/google/uuid"
)

type EmailResponse struct {
	Id               uuid.UUID `json:"id"`
	Subject          string    `json:"subject"`
	Sender           string    `json:"sender"`
	IsRead           bool      `json:"is_read"`
	IsImportant      bool      `json:"is_important"`
	AiSummary        string    `json:"ai_summary,omitempty"`
	AiPriorityScore  int       `json:"ai_priority_score,omitempty"`
	AiActionRequired bool      `json:"ai_action_required"`
	ReceivedAt       time.Time `json:"received_at"`
}
