package entity

import (
	"time"

	"github.com/google/uuid"
)

type Suggestion struct {
	Id     uuid.UUID
	UserId uuid.UUID

	Type    string
	Message string

	RelatedTaskId  *uuid.UUID
	RelatedEmailId *uuid.UUID
	RelatedEventId *uuid.UUID

	IsRead     bool
	IsNotified bool

	CreatedAt time.Time
}
