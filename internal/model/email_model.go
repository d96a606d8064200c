package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EmailMessage struct {
	Id     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId uuid.UUID `gorm:"type:uuid;not null;index"`

	GmailId  string `gorm:"type:varchar(255);uniqueIndex"`
	ThreadId string `gorm:"type:varchar(255)"`

	Subject    string         `gorm:"type:varchar(512);not null"`
	Sender     string         `gorm:"type:varchar(255);not null"`
	Recipients datatypes.JSON `gorm:"type:jsonb"`
	Body       string         `gorm:"type:text"`
	BodyPlain  string         `gorm:"type:text"`

	IsRead      bool `gorm:"default:false"`
	IsImportant bool `gorm:"default:false"`
	IsStarred   bool `gorm:"default:false"`

	AiSummary        string `gorm:"type:text"`
	AiSuggestedReply string `gorm:"type:text"`
	AiPriorityScore  int    `gorm:"default:0"`
	AiActionRequired bool   `gorm:"default:false"`

	ReceivedAt time.Time `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (EmailMessage) TableName() string {
	return "email_messages"
}
