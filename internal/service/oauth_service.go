// FILE: internal/service/oauth_service.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-assistant-be/internal/config"
	"ai-assistant-be/internal/dto"
	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/pkg/logger"
	"ai-assistant-be/internal/repository/specification"
	"ai-assistant-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const accessTokenExpiry = 24 * time.Hour

type IOAuthService interface {
	GetLoginURL() (string, error)
	HandleCallback(ctx context.Context, code string) (*dto.AuthCallbackResponse, error)
	Status(ctx context.Context, userId uuid.UUID) (*dto.IntegrationStatusResponse, error)
}

type oauthService struct {
	uowFactory unitofwork.RepositoryFactory
	googleConf *oauth2.Config
	jwtSecret  string
	logger     logger.ILogger
}

func NewOAuthService(uowFactory unitofwork.RepositoryFactory, cfg *config.Config, log logger.ILogger) IOAuthService {
	conf := &oauth2.Config{
		ClientID:     cfg.Auth.GoogleClientID,
		ClientSecret: cfg.Auth.GoogleClientSecret,
		RedirectURL:  cfg.App.BaseURL + "/api/auth/google/callback",
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
			"https://www.googleapis.com/auth/gmail.readonly",
			"https://www.googleapis.com/auth/calendar",
		},
		Endpoint: google.Endpoint,
	}

	return &oauthService{
		uowFactory: uowFactory,
		googleConf: conf,
		jwtSecret:  cfg.Auth.JWTSecret,
		logger:     log,
	}
}

func (s *oauthService) GetLoginURL() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	state := base64.URLEncoding.EncodeToString(b)

	// offline + consent so Google returns a refresh token we can store
	// for background Gmail/Calendar syncing.
	url := s.googleConf.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
	return url, nil
}

func (s *oauthService) HandleCallback(ctx context.Context, code string) (*dto.AuthCallbackResponse, error) {
	token, err := s.googleConf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	googleUser, err := s.fetchGoogleUser(ctx, token.AccessToken)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: googleUser.Email})
	if err != nil {
		return nil, err
	}

	expiresAt := token.Expiry
	if user == nil {
		user = &entity.User{
			Id:                   uuid.New(),
			Email:                googleUser.Email,
			Name:                 googleUser.Name,
			AvatarUrl:            googleUser.Picture,
			GoogleAccessToken:    token.AccessToken,
			GoogleRefreshToken:   token.RefreshToken,
			GoogleTokenExpiresAt: &expiresAt,
			Timezone:             "UTC",
			Language:             "en",
			NotificationsEnabled: true,
			CreatedAt:            time.Now(),
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return nil, err
		}
		s.logger.Info("OAuthService", "New user registered", map[string]interface{}{"user_id": user.Id, "email": user.Email})
	} else {
		user.Name = googleUser.Name
		user.AvatarUrl = googleUser.Picture
		user.GoogleAccessToken = token.AccessToken
		if token.RefreshToken != "" {
			user.GoogleRefreshToken = token.RefreshToken
		}
		user.GoogleTokenExpiresAt = &expiresAt
		if err := uow.UserRepository().Update(ctx, user); err != nil {
			return nil, err
		}
	}

	signed, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthCallbackResponse{
		Token: signed,
		User: dto.UserResponse{
			Id:        user.Id,
			Email:     user.Email,
			Name:      user.Name,
			AvatarUrl: user.AvatarUrl,
			Timezone:  user.Timezone,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

func (s *oauthService) Status(ctx context.Context, userId uuid.UUID) (*dto.IntegrationStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	return &dto.IntegrationStatusResponse{
		GoogleConnected:      user.GoogleRefreshToken != "" && !user.IsGoogleTokenExpired(time.Now()),
		TokenExpiresAt:       user.GoogleTokenExpiresAt,
		NotificationsEnabled: user.NotificationsEnabled,
	}, nil
}

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (s *oauthService) fetchGoogleUser(ctx context.Context, accessToken string) (*googleUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", "https://www.googleapis.com/oauth2/v2/userinfo", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed getting user info: %w", err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed reading user info: %w", err)
	}

	var info googleUserInfo
	if err := json.Unmarshal(content, &info); err != nil {
		return nil, err
	}
	if info.Email == "" {
		return nil, fmt.Errorf("google userinfo response missing email")
	}
	return &info, nil
}

func (s *oauthService) issueToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"email":   user.Email,
		"exp":     time.Now().Add(accessTokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
