package dto

import "time"

type GoogleAuthURLResponse struct {
	Url string `json:"url"`
}

type AuthCallbackResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type IntegrationStatusResponse struct {
	GoogleConnected      bool       `json:"google_connected"`
	TokenExpiresAt       *time.Time `json:"token_expires_at,omitempty"`
	NotificationsEnabled bool       `json:"notifications_enabled"`
}
