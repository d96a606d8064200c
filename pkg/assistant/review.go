package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"ai-assistant-be/pkg/llm"
)

const (
	reviewTimeout     = 60 * time.Second
	reviewMaxTokens   = 500
	reviewTemperature = 0.3
)

// suggestionProposal is the shape the model returns per suggestion.
type suggestionProposal struct {
	Type           string `json:"type"`
	Message        string `json:"message"`
	RelatedTaskID  string `json:"related_task_id"`
	RelatedEmailID string `json:"related_email_id"`
	RelatedEventID string `json:"related_event_id"`
}

// ReviewJob sweeps every user, asks the model for proactive suggestions
// based on their current tasks, emails, and events, deduplicates against
// unread suggestions, persists the new ones, and fires notifications.
// Users are processed independently; one failing never aborts the cycle.
type ReviewJob struct {
	users       UserDirectory
	tasks       TaskStore
	emails      EmailStore
	events      EventStore
	suggestions SuggestionStore
	llmProvider llm.LLMProvider
	sink        NotificationSink
	logger      *log.Logger
	now         func() time.Time
}

func NewReviewJob(users UserDirectory, tasks TaskStore, emails EmailStore, events EventStore, suggestions SuggestionStore, llmProvider llm.LLMProvider, sink NotificationSink, logger *log.Logger) *ReviewJob {
	return &ReviewJob{
		users:       users,
		tasks:       tasks,
		emails:      emails,
		events:      events,
		suggestions: suggestions,
		llmProvider: llmProvider,
		sink:        sink,
		logger:      logger,
		now:         time.Now,
	}
}

// RunCycle executes one full pass across all users.
func (j *ReviewJob) RunCycle(ctx context.Context) {
	users, err := j.users.ListUsers(ctx)
	if err != nil {
		j.logger.Printf("[ERROR] review cycle: user listing failed: %v", err)
		return
	}

	for _, user := range users {
		if err := j.reviewUser(ctx, user); err != nil {
			j.logger.Printf("[ERROR] suggestion generation failed for user %s: %v", user.Email, err)
		}
	}
}

func (j *ReviewJob) reviewUser(ctx context.Context, user User) error {
	ctx, cancel := context.WithTimeout(ctx, reviewTimeout)
	defer cancel()

	tasks, err := j.tasks.ListAll(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("fetch tasks: %w", err)
	}
	emails, err := j.emails.ListAll(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("fetch emails: %w", err)
	}
	events, err := j.events.ListAll(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("fetch events: %w", err)
	}

	prompt := buildReviewPrompt(tasks, emails, events, j.now())

	response, err := j.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(reviewTemperature),
		llm.WithMaxTokens(reviewMaxTokens),
	)
	if err != nil {
		return fmt.Errorf("model call: %w", err)
	}

	proposals, err := parseSuggestions(response)
	if err != nil {
		return fmt.Errorf("parse suggestions: %w", err)
	}

	for _, p := range proposals {
		if p.Message == "" {
			continue
		}

		exists, err := j.suggestions.ExistsUnread(ctx, user.ID, p.Message)
		if err != nil {
			j.logger.Printf("[ERROR] dedupe check failed for user %s: %v", user.Email, err)
			continue
		}
		if exists {
			continue
		}

		suggestionType := p.Type
		if suggestionType == "" {
			suggestionType = "general"
		}
		created, err := j.suggestions.Create(ctx, &Suggestion{
			UserID:         user.ID,
			Type:           suggestionType,
			Message:        p.Message,
			RelatedTaskID:  p.RelatedTaskID,
			RelatedEmailID: p.RelatedEmailID,
			RelatedEventID: p.RelatedEventID,
		})
		if err != nil {
			j.logger.Printf("[ERROR] suggestion persist failed for user %s: %v", user.Email, err)
			continue
		}

		if err := j.sink.Notify(ctx, user, created); err != nil {
			j.logger.Printf("[ERROR] notification failed for user %s: %v", user.Email, err)
		}
	}

	return nil
}

func parseSuggestions(response string) ([]suggestionProposal, error) {
	jsonContent := extractJSONArray(response)
	if jsonContent == "" {
		return nil, fmt.Errorf("no JSON list found in response")
	}

	var proposals []suggestionProposal
	if err := json.Unmarshal([]byte(jsonContent), &proposals); err != nil {
		return nil, fmt.Errorf("JSON unmarshal failed: %w", err)
	}
	return proposals, nil
}
