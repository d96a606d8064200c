package entity

import (
	"time"

	"github.com/google/uuid"
)

type CalendarEvent struct {
	Id     uuid.UUID
	UserId uuid.UUID

	GoogleEventId string

	Title       string
	Description string
	Location    string

	StartTime time.Time
	EndTime   time.Time
	AllDay    bool

	CalendarId string
	Attendees  string

	AiSuggested bool
	AiNotes     string

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
