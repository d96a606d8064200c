package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	AvatarUrl string    `gorm:"type:varchar(512)"`

	// Google OAuth tokens for mail/calendar sync
	GoogleAccessToken    string     `gorm:"type:text"`
	GoogleRefreshToken   string     `gorm:"type:text"`
	GoogleTokenExpiresAt *time.Time `gorm:""`

	Timezone             string `gorm:"type:varchar(64);default:UTC"`
	Language             string `gorm:"type:varchar(8);default:en"`
	NotificationsEnabled bool   `gorm:"default:true"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
