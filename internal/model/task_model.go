package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Priority    string    `gorm:"type:varchar(16);default:medium"`
	Status      string    `gorm:"type:varchar(16);default:todo"`

	DueDate      *time.Time `gorm:"index"`
	ReminderDate *time.Time `gorm:""`
	CompletedAt  *time.Time `gorm:""`

	LinkedEmailId *uuid.UUID `gorm:"type:uuid"`

	AiSuggested  bool `gorm:"default:false"`
	AiConfidence int  `gorm:"default:0"`

	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Task) TableName() string {
	return "tasks"
}
