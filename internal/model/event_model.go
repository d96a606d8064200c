package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CalendarEvent struct {
	Id     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId uuid.UUID `gorm:"type:uuid;not null;index"`

	GoogleEventId string `gorm:"type:varchar(255);uniqueIndex"`

	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	Location    string `gorm:"type:varchar(255)"`

	StartTime time.Time `gorm:"not null;index"`
	EndTime   time.Time `gorm:"not null"`
	AllDay    bool      `gorm:"default:false"`

	CalendarId string `gorm:"type:varchar(255)"`
	Attendees  string `gorm:"type:text"`

	AiSuggested bool   `gorm:"default:false"`
	AiNotes     string `gorm:"type:text"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (CalendarEvent) TableName() string {
	return "calendar_events"
}
