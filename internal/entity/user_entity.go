package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id        uuid.UUID
	Email     string
	Name      string
	AvatarUrl string

	GoogleAccessToken    string
	GoogleRefreshToken   string
	GoogleTokenExpiresAt *time.Time

	Timezone             string
	Language             string
	NotificationsEnabled bool

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// IsGoogleTokenExpired reports whether the access token expires within
// the next two minutes (refresh margin).
func (u *User) IsGoogleTokenExpired(now time.Time) bool {
	return u.GoogleTokenExpiresAt != nil && u.GoogleTokenExpiresAt.Before(now.Add(2*time.Minute))
}
