package assistant

import (
	"context"
	"errors"
	"testing"
)

func newTestReviewJob(users *fakeUserDirectory, store *fakeSuggestionStore, provider *fakeLLM, sink *fakeSink) *ReviewJob {
	return NewReviewJob(
		users,
		&fakeTaskStore{},
		&fakeEmailStore{},
		&fakeEventStore{},
		store,
		provider,
		sink,
		testLogger(),
	)
}

func TestReviewDeduplicatesUnreadMessages(t *testing.T) {
	store := &fakeSuggestionStore{rows: []Suggestion{
		{ID: "s1", UserID: "u1", Message: "Finish the report", IsRead: false},
	}}
	provider := &fakeLLM{responses: []string{
		`[{"type":"reminder","message":"Finish the report"},{"type":"reminder","message":"Reply to the invoice email"}]`,
	}}
	sink := &fakeSink{}
	job := newTestReviewJob(&fakeUserDirectory{users: []User{{ID: "u1", Email: "u1@x.io"}}}, store, provider, sink)

	job.RunCycle(context.Background())

	if len(store.rows) != 2 {
		t.Fatalf("store has %d rows, want 2 (duplicate must be skipped)", len(store.rows))
	}
	if store.rows[1].Message != "Reply to the invoice email" {
		t.Errorf("new row message = %q", store.rows[1].Message)
	}
	if len(sink.notified) != 1 || sink.notified[0] != "Reply to the invoice email" {
		t.Errorf("notified = %v, want only the new suggestion", sink.notified)
	}
}

func TestReviewReadSuggestionsDoNotBlockRecreation(t *testing.T) {
	store := &fakeSuggestionStore{rows: []Suggestion{
		{ID: "s1", UserID: "u1", Message: "Finish the report", IsRead: true},
	}}
	provider := &fakeLLM{responses: []string{`[{"message":"Finish the report"}]`}}
	job := newTestReviewJob(&fakeUserDirectory{users: []User{{ID: "u1"}}}, store, provider, &fakeSink{})

	job.RunCycle(context.Background())

	if len(store.rows) != 2 {
		t.Errorf("store has %d rows, want 2 (read rows are not dedupe candidates)", len(store.rows))
	}
}

func TestReviewUserIsolation(t *testing.T) {
	users := &fakeUserDirectory{users: []User{
		{ID: "a", Email: "a@x.io"},
		{ID: "b", Email: "b@x.io"},
	}}
	provider := &fakeLLM{
		errs:      []error{errors.New("model exploded"), nil},
		responses: []string{"", `[{"message":"Plan the sprint"}]`},
	}
	store := &fakeSuggestionStore{}
	job := newTestReviewJob(users, store, provider, &fakeSink{})

	job.RunCycle(context.Background())

	if len(store.rows) != 1 {
		t.Fatalf("store has %d rows, want 1 (user b still processed)", len(store.rows))
	}
	if store.rows[0].UserID != "b" {
		t.Errorf("row user = %q, want b", store.rows[0].UserID)
	}
}

func TestReviewParseFailureCreatesNothing(t *testing.T) {
	provider := &fakeLLM{responses: []string{"I have no suggestions today."}}
	store := &fakeSuggestionStore{}
	job := newTestReviewJob(&fakeUserDirectory{users: []User{{ID: "u1"}}}, store, provider, &fakeSink{})

	job.RunCycle(context.Background())

	if len(store.rows) != 0 {
		t.Errorf("store has %d rows, want 0", len(store.rows))
	}
}

func TestReviewDefaultsTypeToGeneral(t *testing.T) {
	provider := &fakeLLM{responses: []string{`[{"message":"Drink water"}]`}}
	store := &fakeSuggestionStore{}
	job := newTestReviewJob(&fakeUserDirectory{users: []User{{ID: "u1"}}}, store, provider, &fakeSink{})

	job.RunCycle(context.Background())

	if len(store.rows) != 1 {
		t.Fatal("expected one suggestion")
	}
	if store.rows[0].Type != "general" {
		t.Errorf("type = %q, want general", store.rows[0].Type)
	}
}

func TestReviewNotificationFailureKeepsSuggestion(t *testing.T) {
	provider := &fakeLLM{responses: []string{`[{"message":"Check the calendar"}]`}}
	store := &fakeSuggestionStore{}
	sink := &fakeSink{err: errors.New("smtp down")}
	job := newTestReviewJob(&fakeUserDirectory{users: []User{{ID: "u1"}}}, store, provider, sink)

	job.RunCycle(context.Background())

	if len(store.rows) != 1 {
		t.Errorf("store has %d rows, want 1 (notify failure is best-effort)", len(store.rows))
	}
}
