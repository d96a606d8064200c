package model

import (
	"time"

	"github.com/google/uuid"
)

type Suggestion struct {
	Id     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId uuid.UUID `gorm:"type:uuid;not null;index"`

	Type    string `gorm:"type:varchar(32);not null"`
	Message string `gorm:"type:text;not null"`

	RelatedTaskId  *uuid.UUID `gorm:"type:uuid"`
	RelatedEmailId *uuid.UUID `gorm:"type:uuid"`
	RelatedEventId *uuid.UUID `gorm:"type:uuid"`

	IsRead     bool `gorm:"default:false;index"`
	IsNotified bool `gorm:"default:false"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Suggestion) TableName() string {
	return "suggestions"
}
