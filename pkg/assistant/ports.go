package assistant

import "context"

// Store ports. The engine never owns persistent state; every read and
// write goes through one of these user-scoped contracts.

type UserDirectory interface {
	ListUsers(ctx context.Context) ([]User, error)
}

type TaskStore interface {
	Create(ctx context.Context, userID string, in TaskInput) (*Task, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]Task, error)
	ListAll(ctx context.Context, userID string) ([]Task, error)
}

type EmailStore interface {
	ListRecent(ctx context.Context, userID string, limit int) ([]Email, error)
	ListAll(ctx context.Context, userID string) ([]Email, error)
}

type EventStore interface {
	Create(ctx context.Context, userID string, in EventInput) (*Event, error)
	ListUpcoming(ctx context.Context, userID string, limit int) ([]Event, error)
	ListAll(ctx context.Context, userID string) ([]Event, error)
}

type SuggestionStore interface {
	// ExistsUnread reports whether the user already has an unread
	// suggestion with an identical message. This is the sole dedupe key.
	ExistsUnread(ctx context.Context, userID, message string) (bool, error)
	Create(ctx context.Context, s *Suggestion) (*Suggestion, error)
}

// FileFinder resolves file/app queries against the local agent.
type FileFinder interface {
	Search(ctx context.Context, query string) ([]FileMatch, error)
	Open(ctx context.Context, name string) (*OpenResult, error)
}

// WebSearch performs a web lookup.
type WebSearch interface {
	Search(ctx context.Context, query string, num int) ([]WebResult, error)
}

// NotificationSink delivers a freshly persisted suggestion to a user.
// Delivery is best-effort; errors are logged by callers, never raised.
type NotificationSink interface {
	Notify(ctx context.Context, user User, s *Suggestion) error
}

// ClassificationCache memoizes classifier results. Classification runs at
// temperature 0, so identical messages map to identical triples.
type ClassificationCache interface {
	Get(message string) (ClassifiedIntent, bool)
	Set(message string, ci ClassifiedIntent)
}
