package entity

import (
	"time"

	"github.com/google/uuid"
)

type EmailMessage struct {
	Id     uuid.UUID
	UserId uuid.UUID

	GmailId  string
	ThreadId string

	Subject    string
	Sender     string
	Recipients []string
	Body       string
	BodyPlain  string

	IsRead      bool
	IsImportant bool
	IsStarred   bool

	AiSummary        string
	AiSuggestedReply string
	AiPriorityScore  int
	AiActionRequired bool

	ReceivedAt time.Time
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
