package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatMessage struct {
	Id     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId uuid.UUID `gorm:"type:uuid;not null;index"`

	Role        string `gorm:"type:varchar(16);not null"`
	MessageType string `gorm:"type:varchar(32);default:text"`
	Content     string `gorm:"type:text;not null"`

	TokensUsed int    `gorm:"default:0"`
	ModelUsed  string `gorm:"type:varchar(128)"`

	// Actions the model embedded in this reply, as extracted
	Actions datatypes.JSON `gorm:"type:jsonb"`

	RelatedTaskId  *uuid.UUID `gorm:"type:uuid"`
	RelatedEventId *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
