package assistant

import (
	"context"
	"fmt"
	"io"
	"log"

	"ai-assistant-be/pkg/llm"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// fakeLLM returns canned responses in call order. When errs runs short a
// nil error is assumed; when responses run short the last one repeats.
type fakeLLM struct {
	responses []string
	errs      []error
	calls     int
}

func (f *fakeLLM) next() (string, error) {
	idx := f.calls
	f.calls++

	var err error
	if idx < len(f.errs) {
		err = f.errs[idx]
	}
	if err != nil {
		return "", err
	}
	if len(f.responses) == 0 {
		return "", nil
	}
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	return f.responses[idx], nil
}

func (f *fakeLLM) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return f.next()
}

func (f *fakeLLM) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	return f.next()
}

// usageLLM is a fakeLLM that also reports token usage.
type usageLLM struct {
	fakeLLM
	usage llm.Usage
}

func (f *usageLLM) ChatWithUsage(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, llm.Usage, error) {
	content, err := f.next()
	return content, f.usage, err
}

type mapCache struct {
	entries map[string]ClassifiedIntent
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string]ClassifiedIntent{}}
}

func (c *mapCache) Get(message string) (ClassifiedIntent, bool) {
	ci, ok := c.entries[message]
	return ci, ok
}

func (c *mapCache) Set(message string, ci ClassifiedIntent) {
	c.entries[message] = ci
}

type fakeTaskStore struct {
	tasks     []Task
	created   []TaskInput
	createErr error
	listErr   error
}

func (s *fakeTaskStore) Create(_ context.Context, _ string, in TaskInput) (*Task, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, in)
	return &Task{
		ID:      fmt.Sprintf("task-%d", len(s.created)),
		Title:   in.Title,
		DueDate: in.DueDate,
	}, nil
}

func (s *fakeTaskStore) ListRecent(_ context.Context, _ string, _ int) ([]Task, error) {
	return s.tasks, s.listErr
}

func (s *fakeTaskStore) ListAll(_ context.Context, _ string) ([]Task, error) {
	return s.tasks, s.listErr
}

type fakeEmailStore struct {
	emails  []Email
	listErr error
}

func (s *fakeEmailStore) ListRecent(_ context.Context, _ string, _ int) ([]Email, error) {
	return s.emails, s.listErr
}

func (s *fakeEmailStore) ListAll(_ context.Context, _ string) ([]Email, error) {
	return s.emails, s.listErr
}

type fakeEventStore struct {
	events    []Event
	created   []EventInput
	createErr error
	listErr   error
}

func (s *fakeEventStore) Create(_ context.Context, _ string, in EventInput) (*Event, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, in)
	return &Event{
		ID:        fmt.Sprintf("event-%d", len(s.created)),
		Title:     in.Title,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}, nil
}

func (s *fakeEventStore) ListUpcoming(_ context.Context, _ string, _ int) ([]Event, error) {
	return s.events, s.listErr
}

func (s *fakeEventStore) ListAll(_ context.Context, _ string) ([]Event, error) {
	return s.events, s.listErr
}

type fakeSuggestionStore struct {
	rows      []Suggestion
	existsErr error
	createErr error
}

func (s *fakeSuggestionStore) ExistsUnread(_ context.Context, userID, message string) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	for _, row := range s.rows {
		if row.UserID == userID && row.Message == message && !row.IsRead {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeSuggestionStore) Create(_ context.Context, in *Suggestion) (*Suggestion, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *in
	created.ID = fmt.Sprintf("suggestion-%d", len(s.rows)+1)
	s.rows = append(s.rows, created)
	return &created, nil
}

type fakeUserDirectory struct {
	users   []User
	listErr error
}

func (d *fakeUserDirectory) ListUsers(_ context.Context) ([]User, error) {
	return d.users, d.listErr
}

type fakeSink struct {
	notified []string
	err      error
}

func (f *fakeSink) Notify(_ context.Context, _ User, s *Suggestion) error {
	if f.err != nil {
		return f.err
	}
	f.notified = append(f.notified, s.Message)
	return nil
}

type fakeFileFinder struct {
	matches   []FileMatch
	searchErr error
	openRes   *OpenResult
	openErr   error
	opened    []string
}

func (f *fakeFileFinder) Search(_ context.Context, _ string) ([]FileMatch, error) {
	return f.matches, f.searchErr
}

func (f *fakeFileFinder) Open(_ context.Context, name string) (*OpenResult, error) {
	f.opened = append(f.opened, name)
	return f.openRes, f.openErr
}

type fakeWebSearch struct {
	results []WebResult
	err     error
}

func (f *fakeWebSearch) Search(_ context.Context, _ string, _ int) ([]WebResult, error) {
	return f.results, f.err
}
