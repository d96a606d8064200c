package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarUrl string    `json:"avatar_url,omitempty"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateSettingsRequest struct {
	Timezone             string `json:"timezone"`
	Language             string `json:"language"`
	NotificationsEnabled *bool  `json:"notifications_enabled"`
}
