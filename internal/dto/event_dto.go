package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	StartTime   time.Time  `json:"start_time" validate:"required"`
	EndTime     *time.Time `json:"end_time"`
	AllDay      bool       `json:"all_day"`
}

type EventResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	AllDay      bool       `json:"all_day"`
	AiSuggested bool       `json:"ai_suggested"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
