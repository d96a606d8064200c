package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Auth     AuthConfig
	Keys     APIKeys
	Ai       AIConfig
	Review   ReviewConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	AgentBaseURL       string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type AuthConfig struct {
	JWTSecret          string
	GoogleClientID     string
	GoogleClientSecret string
}

type APIKeys struct {
	SerpAPI     string
	HuggingFace string
}

type AIConfig struct {
	LLMProvider string // "ollama" or "huggingface"
	LLMModel    string // e.g. "llama3", "qwen2.5"
	BaseURL     string // provider base URL, empty for the provider default
}

type ReviewConfig struct {
	Interval          time.Duration
	EmailNotification bool
	EmailFrom         string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			AgentBaseURL:       getEnv("AGENT_BASE_URL", "http://localhost:8600"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "AI Assistant"),
		},
		Auth: AuthConfig{
			JWTSecret:          getEnv("JWT_SECRET", ""),
			GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		},
		Keys: APIKeys{
			SerpAPI:     getEnv("SERPAPI_KEY", ""),
			HuggingFace: getEnv("HUGGINGFACE_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider: getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:    getEnv("LLM_MODEL", "llama3"),
			BaseURL:     getEnv("LLM_BASE_URL", ""),
		},
		Review: ReviewConfig{
			Interval:          getEnvAsDuration("REVIEW_INTERVAL", 10*time.Minute),
			EmailNotification: getEnvAsBool("EMAIL_NOTIFICATIONS_ENABLED", false),
			EmailFrom:         getEnv("EMAIL_FROM", "no-reply@ai-assistant.local"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
