package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ai-assistant-be/pkg/llm"
)

func newTestFallback(provider *fakeLLM, tasks *fakeTaskStore, events *fakeEventStore) *FallbackHandler {
	if tasks == nil {
		tasks = &fakeTaskStore{}
	}
	if events == nil {
		events = &fakeEventStore{}
	}
	executor := NewExecutor(tasks, events, testLogger())
	return NewFallbackHandler(provider, "test-model", tasks, &fakeEmailStore{}, events, executor, testLogger())
}

func TestParseActions(t *testing.T) {
	tests := []struct {
		name      string
		response  string
		wantCount int
		wantTitle string
		wantType  string
	}{
		{
			name:      "actions wrapped in prose",
			response:  `Here you go {"actions":[{"type":"create_task","title":"Buy milk"}]} thanks`,
			wantCount: 1,
			wantTitle: "Buy milk",
			wantType:  ActionTypeCreateTask,
		},
		{
			name:      "bare actions object",
			response:  `{"actions":[{"type":"schedule_event","title":"Standup","start_time":"2026-09-02T09:00:00Z","end_time":"2026-09-02T09:15:00Z"}]}`,
			wantCount: 1,
			wantTitle: "Standup",
			wantType:  ActionTypeScheduleEvent,
		},
		{
			name:      "no braces",
			response:  "Just a plain answer, nothing to do.",
			wantCount: 0,
		},
		{
			name:      "malformed JSON",
			response:  `{"actions": [oops]}`,
			wantCount: 0,
		},
		{
			name:      "object without actions key",
			response:  `{"reply":"ok"}`,
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions := parseActions(tt.response)
			if len(actions) != tt.wantCount {
				t.Fatalf("got %d actions, want %d", len(actions), tt.wantCount)
			}
			if tt.wantCount > 0 {
				if actions[0].Title != tt.wantTitle {
					t.Errorf("title = %q, want %q", actions[0].Title, tt.wantTitle)
				}
				if actions[0].Type != tt.wantType {
					t.Errorf("type = %q, want %q", actions[0].Type, tt.wantType)
				}
			}
		})
	}
}

func TestFallbackExecutesEmbeddedActions(t *testing.T) {
	response := `I've added that for you. {"actions":[{"type":"create_task","title":"Buy milk"}]}`
	tasks := &fakeTaskStore{}
	h := newTestFallback(&fakeLLM{responses: []string{response}}, tasks, nil)

	result := h.Handle(context.Background(), User{ID: "u1", Name: "Ada"}, "please remember milk")

	if result.Content != response {
		t.Errorf("Content = %q, want full completion text", result.Content)
	}
	if result.ModelUsed != "test-model" {
		t.Errorf("ModelUsed = %q", result.ModelUsed)
	}
	if len(tasks.created) != 1 || tasks.created[0].Title != "Buy milk" {
		t.Fatalf("created = %+v, want one Buy milk task", tasks.created)
	}
	if result.RelatedTaskID == "" {
		t.Error("RelatedTaskID should be set")
	}
}

func TestFallbackReportsTokenUsage(t *testing.T) {
	tasks := &fakeTaskStore{}
	provider := &usageLLM{
		fakeLLM: fakeLLM{responses: []string{"All done."}},
		usage:   llm.Usage{PromptTokens: 120, CompletionTokens: 35, TotalTokens: 155},
	}
	executor := NewExecutor(tasks, &fakeEventStore{}, testLogger())
	h := NewFallbackHandler(provider, "test-model", tasks, &fakeEmailStore{}, &fakeEventStore{}, executor, testLogger())

	result := h.Handle(context.Background(), User{ID: "u1", Name: "Ada"}, "hello")

	if result.TokensUsed != 155 {
		t.Errorf("TokensUsed = %d, want 155", result.TokensUsed)
	}
}

func TestFallbackModelErrorReturnsInlineMessage(t *testing.T) {
	h := newTestFallback(&fakeLLM{errs: []error{errors.New("upstream 503")}}, nil, nil)

	result := h.Handle(context.Background(), User{ID: "u1", Name: "Ada"}, "hello")

	if !strings.HasPrefix(result.Content, "I'm sorry, I encountered an error:") {
		t.Errorf("Content = %q, want inline error message", result.Content)
	}
	if result.RelatedTaskID != "" || result.RelatedEventID != "" {
		t.Error("no actions should execute on model error")
	}
}

func TestFallbackSurvivesContextFetchFailures(t *testing.T) {
	tasks := &fakeTaskStore{listErr: errors.New("db down")}
	h := newTestFallback(&fakeLLM{responses: []string{"All good."}}, tasks, nil)

	result := h.Handle(context.Background(), User{ID: "u1", Name: "Ada"}, "hello")

	if result.Content != "All good." {
		t.Errorf("Content = %q, chat should proceed with empty context", result.Content)
	}
}
