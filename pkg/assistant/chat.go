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
	chatTimeout     = 60 * time.Second
	chatMaxTokens   = 500
	chatFetchTasks  = 5
	chatFetchEmails = 3
	chatFetchEvents = 3
	chatTemperature = 0.7
)

// FallbackHandler serves messages no specialized branch claimed. It builds
// a context-rich prompt from the user's recent activity, asks the model for
// a free-form reply, then extracts and executes any actions embedded in it.
type FallbackHandler struct {
	llmProvider llm.LLMProvider
	modelName   string
	tasks       TaskStore
	emails      EmailStore
	events      EventStore
	executor    *Executor
	logger      *log.Logger
}

func NewFallbackHandler(llmProvider llm.LLMProvider, modelName string, tasks TaskStore, emails EmailStore, events EventStore, executor *Executor, logger *log.Logger) *FallbackHandler {
	return &FallbackHandler{
		llmProvider: llmProvider,
		modelName:   modelName,
		tasks:       tasks,
		emails:      emails,
		events:      events,
		executor:    executor,
		logger:      logger,
	}
}

// Handle produces a chat reply for message. It always returns a result;
// model errors surface inline as the chat content, never as an error.
func (h *FallbackHandler) Handle(ctx context.Context, user User, message string) ChatResult {
	tasks, emails, events := h.fetchContext(ctx, user.ID)

	systemPrompt := buildChatSystemPrompt(user, tasks, emails, events)

	llmCtx, cancel := context.WithTimeout(ctx, chatTimeout)
	defer cancel()

	history := []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: message},
	}
	opts := []llm.Option{
		llm.WithTemperature(chatTemperature),
		llm.WithMaxTokens(chatMaxTokens),
	}

	var content string
	var usage llm.Usage
	var err error
	if uc, ok := h.llmProvider.(llm.UsageChatter); ok {
		content, usage, err = uc.ChatWithUsage(llmCtx, history, opts...)
	} else {
		content, err = h.llmProvider.Chat(llmCtx, history, opts...)
	}
	if err != nil {
		h.logger.Printf("[ERROR] chat completion failed: %v", err)
		return ChatResult{
			Content:   fmt.Sprintf("I'm sorry, I encountered an error: %v", err),
			ModelUsed: h.modelName,
		}
	}

	actions := parseActions(content)
	exec := h.executor.Execute(ctx, user.ID, actions)

	return ChatResult{
		Content:        content,
		TokensUsed:     usage.TotalTokens,
		ModelUsed:      h.modelName,
		Actions:        actions,
		RelatedTaskID:  exec.RelatedTaskID,
		RelatedEventID: exec.RelatedEventID,
	}
}

// fetchContext loads the user's recent activity for the prompt. A failed
// fetch logs and contributes an empty section; chat still proceeds.
func (h *FallbackHandler) fetchContext(ctx context.Context, userID string) ([]Task, []Email, []Event) {
	tasks, err := h.tasks.ListRecent(ctx, userID, chatFetchTasks)
	if err != nil {
		h.logger.Printf("[WARN] chat context: task fetch failed: %v", err)
	}
	emails, err := h.emails.ListRecent(ctx, userID, chatFetchEmails)
	if err != nil {
		h.logger.Printf("[WARN] chat context: email fetch failed: %v", err)
	}
	events, err := h.events.ListUpcoming(ctx, userID, chatFetchEvents)
	if err != nil {
		h.logger.Printf("[WARN] chat context: event fetch failed: %v", err)
	}
	return tasks, emails, events
}

// parseActions extracts the actions list from a completion. Absent braces,
// malformed JSON, or a missing actions key all yield zero actions.
func parseActions(response string) []ActionCommand {
	jsonContent := extractJSONObject(response)
	if jsonContent == "" {
		return nil
	}

	var payload struct {
		Actions []ActionCommand `json:"actions"`
	}
	if err := json.Unmarshal([]byte(jsonContent), &payload); err != nil {
		return nil
	}
	return payload.Actions
}
