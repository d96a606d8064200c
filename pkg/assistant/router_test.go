package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestRouter(tasks *fakeTaskStore, events *fakeEventStore, emails *fakeEmailStore, files *fakeFileFinder, web *fakeWebSearch) *Router {
	if tasks == nil {
		tasks = &fakeTaskStore{}
	}
	if events == nil {
		events = &fakeEventStore{}
	}
	if emails == nil {
		emails = &fakeEmailStore{}
	}
	if files == nil {
		files = &fakeFileFinder{}
	}
	if web == nil {
		web = &fakeWebSearch{}
	}
	return NewRouter(tasks, events, emails, files, web, testLogger())
}

func TestRouteFallsThrough(t *testing.T) {
	tests := []struct {
		name string
		ci   ClassifiedIntent
	}{
		{"none intent", NoneIntent()},
		{"chat intent", ClassifiedIntent{Intent: IntentChat, Action: "respond"}},
		{"task with unknown action", ClassifiedIntent{Intent: IntentTask, Action: "summarize"}},
		{"email with unknown action", ClassifiedIntent{Intent: IntentEmail, Action: ActionCreate}},
		{"web with unknown action", ClassifiedIntent{Intent: IntentWeb, Action: ActionList}},
		{"unknown intent", ClassifiedIntent{Intent: "music", Action: "play"}},
	}

	r := newTestRouter(nil, nil, nil, nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, handled := r.Route(context.Background(), "u1", "hello", tt.ci)
			if handled {
				t.Errorf("handled = true, want fall-through (reply %q)", reply)
			}
		})
	}
}

func TestListTasksEmpty(t *testing.T) {
	r := newTestRouter(&fakeTaskStore{}, nil, nil, nil, nil)

	reply, handled := r.Route(context.Background(), "u1", "show my tasks", ClassifiedIntent{Intent: IntentTask, Action: ActionList})
	if !handled {
		t.Fatal("task/list should be handled")
	}
	if reply != "You have no tasks." {
		t.Errorf("reply = %q, want exact empty-tasks message", reply)
	}
}

func TestListTasksRendersOneLinePerTask(t *testing.T) {
	due := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	tasks := &fakeTaskStore{tasks: []Task{
		{Title: "call mom", DueDate: &due},
		{Title: "pay rent"},
		{Title: "ship release", DueDate: &due},
	}}
	r := newTestRouter(tasks, nil, nil, nil, nil)

	reply, _ := r.Route(context.Background(), "u1", "show my tasks", ClassifiedIntent{Intent: IntentTask, Action: ActionList})

	lines := strings.Split(reply, "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header plus 3 entries:\n%s", len(lines), reply)
	}
	if lines[0] != "Here are your tasks:" {
		t.Errorf("header = %q", lines[0])
	}
	want := []string{
		"- call mom (due 2026-09-02)",
		"- pay rent (due no due date)",
		"- ship release (due 2026-09-02)",
	}
	for i, w := range want {
		if lines[i+1] != w {
			t.Errorf("line %d = %q, want %q", i+1, lines[i+1], w)
		}
	}
}

func TestCreateTaskRoundTrip(t *testing.T) {
	tasks := &fakeTaskStore{}
	r := newTestRouter(tasks, nil, nil, nil, nil)

	tomorrow := time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339)
	ci := ClassifiedIntent{
		Intent: IntentTask,
		Action: ActionCreate,
		Entities: map[string]any{
			"title":    "call mom tomorrow",
			"due_date": tomorrow,
		},
	}

	reply, handled := r.Route(context.Background(), "u1", "remind me to call mom tomorrow", ci)
	if !handled {
		t.Fatal("task/create should be handled")
	}
	if reply != "Task created: call mom tomorrow" {
		t.Errorf("reply = %q", reply)
	}
	if len(tasks.created) != 1 {
		t.Fatalf("created %d tasks, want 1", len(tasks.created))
	}
	if tasks.created[0].Title != "call mom tomorrow" {
		t.Errorf("title = %q", tasks.created[0].Title)
	}
	if tasks.created[0].DueDate == nil {
		t.Error("due date should be set")
	}
}

func TestCreateTaskFallsBackToMessageTitle(t *testing.T) {
	tasks := &fakeTaskStore{}
	r := newTestRouter(tasks, nil, nil, nil, nil)

	reply, _ := r.Route(context.Background(), "u1", "add task buy milk", ClassifiedIntent{Intent: IntentTask, Action: ActionCreate, Entities: map[string]any{}})
	if reply != "Task created: add task buy milk" {
		t.Errorf("reply = %q", reply)
	}
}

func TestBranchFailuresReturnApologies(t *testing.T) {
	boom := errors.New("db down")
	tests := []struct {
		name   string
		router *Router
		ci     ClassifiedIntent
		want   string
	}{
		{
			name:   "task list failure",
			router: newTestRouter(&fakeTaskStore{listErr: boom}, nil, nil, nil, nil),
			ci:     ClassifiedIntent{Intent: IntentTask, Action: ActionList},
			want:   "Sorry, I couldn't fetch your tasks.",
		},
		{
			name:   "task create failure",
			router: newTestRouter(&fakeTaskStore{createErr: boom}, nil, nil, nil, nil),
			ci:     ClassifiedIntent{Intent: IntentTask, Action: ActionCreate, Entities: map[string]any{"title": "x"}},
			want:   "Sorry, I couldn't create the task.",
		},
		{
			name:   "event list failure",
			router: newTestRouter(nil, &fakeEventStore{listErr: boom}, nil, nil, nil),
			ci:     ClassifiedIntent{Intent: IntentCalendar, Action: ActionList},
			want:   "Sorry, I couldn't fetch your events.",
		},
		{
			name:   "event create failure",
			router: newTestRouter(nil, &fakeEventStore{createErr: boom}, nil, nil, nil),
			ci:     ClassifiedIntent{Intent: IntentCalendar, Action: ActionCreate, Entities: map[string]any{"title": "standup"}},
			want:   "Sorry, I couldn't create the event.",
		},
		{
			name:   "email list failure",
			router: newTestRouter(nil, nil, &fakeEmailStore{listErr: boom}, nil, nil),
			ci:     ClassifiedIntent{Intent: IntentEmail, Action: ActionList},
			want:   "Sorry, I couldn't fetch your emails.",
		},
		{
			name:   "file search failure",
			router: newTestRouter(nil, nil, nil, &fakeFileFinder{searchErr: boom}, nil),
			ci:     ClassifiedIntent{Intent: IntentFile, Action: ActionOpen},
			want:   "Sorry, I couldn't search for files right now.",
		},
		{
			name:   "web search failure",
			router: newTestRouter(nil, nil, nil, nil, &fakeWebSearch{err: boom}),
			ci:     ClassifiedIntent{Intent: IntentWeb, Action: ActionSearch, Entities: map[string]any{"query": "go"}},
			want:   "Sorry, I couldn't search the web right now.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, handled := tt.router.Route(context.Background(), "u1", "msg", tt.ci)
			if !handled {
				t.Fatal("branch should be handled even on failure")
			}
			if reply != tt.want {
				t.Errorf("reply = %q, want %q", reply, tt.want)
			}
		})
	}
}

func TestFileBranch(t *testing.T) {
	match := FileMatch{Name: "resume.pdf", Path: "/docs/resume.pdf", LastModified: "2026-08-30"}

	t.Run("no matches", func(t *testing.T) {
		r := newTestRouter(nil, nil, nil, &fakeFileFinder{}, nil)
		reply, _ := r.Route(context.Background(), "u1", "open my resume", ClassifiedIntent{
			Intent:   IntentFile,
			Action:   ActionOpen,
			Entities: map[string]any{"file_name": "resume"},
		})
		if reply != "I couldn't find any file or app matching 'resume'." {
			t.Errorf("reply = %q", reply)
		}
	})

	t.Run("open success", func(t *testing.T) {
		files := &fakeFileFinder{matches: []FileMatch{match}, openRes: &OpenResult{Status: "opened"}}
		r := newTestRouter(nil, nil, nil, files, nil)
		reply, _ := r.Route(context.Background(), "u1", "open my resume", ClassifiedIntent{Intent: IntentFile, Action: ActionOpen})
		if reply != "I found and opened 'resume.pdf' (last updated 2026-08-30)." {
			t.Errorf("reply = %q", reply)
		}
		if len(files.opened) != 1 || files.opened[0] != "resume.pdf" {
			t.Errorf("opened = %v, want best match name", files.opened)
		}
	})

	t.Run("open rejected", func(t *testing.T) {
		files := &fakeFileFinder{matches: []FileMatch{match}, openRes: &OpenResult{Status: "error", Message: "no handler"}}
		r := newTestRouter(nil, nil, nil, files, nil)
		reply, _ := r.Route(context.Background(), "u1", "open my resume", ClassifiedIntent{Intent: IntentFile, Action: ActionOpen})
		if reply != "I found 'resume.pdf', but couldn't open it. no handler" {
			t.Errorf("reply = %q", reply)
		}
	})

	t.Run("last updated", func(t *testing.T) {
		r := newTestRouter(nil, nil, nil, &fakeFileFinder{matches: []FileMatch{match}}, nil)
		reply, _ := r.Route(context.Background(), "u1", "when did I update my resume", ClassifiedIntent{Intent: IntentFile, Action: ActionLastUpdated})
		if reply != "The file 'resume.pdf' was last updated on 2026-08-30." {
			t.Errorf("reply = %q", reply)
		}
	})

	t.Run("find reports path", func(t *testing.T) {
		r := newTestRouter(nil, nil, nil, &fakeFileFinder{matches: []FileMatch{match}}, nil)
		reply, _ := r.Route(context.Background(), "u1", "where is my resume", ClassifiedIntent{Intent: IntentApp, Action: ActionFind})
		if reply != "I found 'resume.pdf' at /docs/resume.pdf (last updated 2026-08-30)." {
			t.Errorf("reply = %q", reply)
		}
	})
}

func TestListEmails(t *testing.T) {
	emails := &fakeEmailStore{emails: []Email{
		{Subject: "Invoice", Sender: "billing@acme.com"},
		{Subject: "Standup notes", Sender: "team@acme.com"},
	}}
	r := newTestRouter(nil, nil, emails, nil, nil)

	reply, _ := r.Route(context.Background(), "u1", "show my emails", ClassifiedIntent{Intent: IntentEmail, Action: ActionList})
	want := "Here are your recent emails:\n- Invoice from billing@acme.com\n- Standup notes from team@acme.com"
	if reply != want {
		t.Errorf("reply = %q, want %q", reply, want)
	}
}

func TestWebSearchResults(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		r := newTestRouter(nil, nil, nil, nil, &fakeWebSearch{})
		reply, _ := r.Route(context.Background(), "u1", "search go generics", ClassifiedIntent{Intent: IntentWeb, Action: ActionSearch, Entities: map[string]any{"query": "go generics"}})
		if reply != "No web results found." {
			t.Errorf("reply = %q", reply)
		}
	})

	t.Run("renders results", func(t *testing.T) {
		web := &fakeWebSearch{results: []WebResult{
			{Title: "Go Blog", Snippet: "generics landed in 1.18"},
		}}
		r := newTestRouter(nil, nil, nil, nil, web)
		reply, _ := r.Route(context.Background(), "u1", "search go generics", ClassifiedIntent{Intent: IntentWeb, Action: ActionSearch, Entities: map[string]any{"query": "go generics"}})
		want := "Here are some web results:\n- Go Blog: generics landed in 1.18"
		if reply != want {
			t.Errorf("reply = %q, want %q", reply, want)
		}
	})
}
