package assistant

import (
	"context"
	"errors"
	"testing"
)

func TestExecuteSkipsInvalidActions(t *testing.T) {
	tasks := &fakeTaskStore{}
	events := &fakeEventStore{}
	e := NewExecutor(tasks, events, testLogger())

	result := e.Execute(context.Background(), "u1", []ActionCommand{
		{Type: "launch_rocket", Title: "nope"},
		{Type: ActionTypeCreateTask, Title: "Buy milk"},
	})

	if len(tasks.created) != 1 {
		t.Fatalf("created %d tasks, want exactly 1", len(tasks.created))
	}
	if tasks.created[0].Title != "Buy milk" {
		t.Errorf("title = %q", tasks.created[0].Title)
	}
	if result.RelatedTaskID == "" {
		t.Error("RelatedTaskID should be set")
	}
}

func TestExecuteCreateTaskDefaults(t *testing.T) {
	tasks := &fakeTaskStore{}
	e := NewExecutor(tasks, &fakeEventStore{}, testLogger())

	e.Execute(context.Background(), "u1", []ActionCommand{
		{Type: ActionTypeCreateTask, Title: "Buy milk"},
	})

	in := tasks.created[0]
	if in.Priority != "medium" {
		t.Errorf("priority = %q, want medium default", in.Priority)
	}
	if !in.AISuggested {
		t.Error("AISuggested should be true")
	}
	if in.AIConfidence != 80 {
		t.Errorf("AIConfidence = %d, want 80", in.AIConfidence)
	}
}

func TestExecuteScheduleEvent(t *testing.T) {
	tests := []struct {
		name        string
		action      ActionCommand
		wantCreated int
	}{
		{
			name: "RFC3339 times",
			action: ActionCommand{
				Type:      ActionTypeScheduleEvent,
				Title:     "Standup",
				StartTime: "2026-09-02T09:00:00Z",
				EndTime:   "2026-09-02T09:15:00Z",
			},
			wantCreated: 1,
		},
		{
			name: "zoneless ISO times",
			action: ActionCommand{
				Type:      ActionTypeScheduleEvent,
				Title:     "Standup",
				StartTime: "2026-09-02T09:00:00",
				EndTime:   "2026-09-02T09:15:00",
			},
			wantCreated: 1,
		},
		{
			name: "bad start time skipped",
			action: ActionCommand{
				Type:      ActionTypeScheduleEvent,
				Title:     "Standup",
				StartTime: "next tuesday",
				EndTime:   "2026-09-02T09:15:00Z",
			},
			wantCreated: 0,
		},
		{
			name:        "missing title skipped",
			action:      ActionCommand{Type: ActionTypeScheduleEvent, StartTime: "2026-09-02T09:00:00Z", EndTime: "2026-09-02T09:15:00Z"},
			wantCreated: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := &fakeEventStore{}
			e := NewExecutor(&fakeTaskStore{}, events, testLogger())

			result := e.Execute(context.Background(), "u1", []ActionCommand{tt.action})

			if len(events.created) != tt.wantCreated {
				t.Errorf("created %d events, want %d", len(events.created), tt.wantCreated)
			}
			if tt.wantCreated == 1 {
				if !events.created[0].AISuggested {
					t.Error("AISuggested should be true")
				}
				if result.RelatedEventID == "" {
					t.Error("RelatedEventID should be set")
				}
			}
		})
	}
}

func TestExecuteFailureDoesNotAbortRemaining(t *testing.T) {
	tasks := &fakeTaskStore{createErr: errors.New("insert failed")}
	events := &fakeEventStore{}
	e := NewExecutor(tasks, events, testLogger())

	result := e.Execute(context.Background(), "u1", []ActionCommand{
		{Type: ActionTypeCreateTask, Title: "doomed"},
		{Type: ActionTypeScheduleEvent, Title: "Standup", StartTime: "2026-09-02T09:00:00Z", EndTime: "2026-09-02T09:15:00Z"},
	})

	if len(events.created) != 1 {
		t.Fatalf("created %d events, want 1 despite earlier task failure", len(events.created))
	}
	if result.RelatedTaskID != "" {
		t.Errorf("RelatedTaskID = %q, want empty after failure", result.RelatedTaskID)
	}
	if result.RelatedEventID == "" {
		t.Error("RelatedEventID should be set")
	}
}

func TestExecuteKeepsLastCreatedID(t *testing.T) {
	tasks := &fakeTaskStore{}
	e := NewExecutor(tasks, &fakeEventStore{}, testLogger())

	result := e.Execute(context.Background(), "u1", []ActionCommand{
		{Type: ActionTypeCreateTask, Title: "first"},
		{Type: ActionTypeCreateTask, Title: "second"},
	})

	if result.RelatedTaskID != "task-2" {
		t.Errorf("RelatedTaskID = %q, want id of last created task", result.RelatedTaskID)
	}
}
