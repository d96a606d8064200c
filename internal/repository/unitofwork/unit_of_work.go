package unitofwork

import (
	"context"

	"ai-assistant-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	TaskRepository() contract.TaskRepository
	EmailRepository() contract.EmailRepository
	EventRepository() contract.EventRepository
	SuggestionRepository() contract.SuggestionRepository
	ChatMessageRepository() contract.ChatMessageRepository
}
