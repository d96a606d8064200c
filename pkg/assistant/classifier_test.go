package assistant

import (
	"context"
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		response   string
		err        error
		wantIntent string
		wantAction string
	}{
		{
			name:       "clean JSON",
			response:   `{"intent":"task","action":"create","entities":{"title":"call mom"}}`,
			wantIntent: IntentTask,
			wantAction: ActionCreate,
		},
		{
			name:       "JSON wrapped in prose",
			response:   `Sure! Here is the result: {"intent":"email","action":"list","entities":{}} hope that helps`,
			wantIntent: IntentEmail,
			wantAction: ActionList,
		},
		{
			name:       "mixed case normalized",
			response:   `{"intent":"Calendar","action":"LIST","entities":{}}`,
			wantIntent: IntentCalendar,
			wantAction: ActionList,
		},
		{
			name:       "model error degrades to none",
			err:        errors.New("connection refused"),
			wantIntent: IntentNone,
			wantAction: "",
		},
		{
			name:       "no JSON degrades to none",
			response:   "I cannot classify that",
			wantIntent: IntentNone,
			wantAction: "",
		},
		{
			name:       "malformed JSON degrades to none",
			response:   `{"intent": task}`,
			wantIntent: IntentNone,
			wantAction: "",
		},
		{
			name:       "missing intent key degrades to none",
			response:   `{"action":"list","entities":{}}`,
			wantIntent: IntentNone,
			wantAction: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeLLM{responses: []string{tt.response}, errs: []error{tt.err}}
			c := NewClassifier(provider, nil, testLogger())

			ci := c.Classify(context.Background(), "some message")

			if ci.Intent != tt.wantIntent {
				t.Errorf("Intent = %q, want %q", ci.Intent, tt.wantIntent)
			}
			if ci.Action != tt.wantAction {
				t.Errorf("Action = %q, want %q", ci.Action, tt.wantAction)
			}
			if ci.Entities == nil {
				t.Error("Entities should never be nil")
			}
		})
	}
}

func TestClassifyUsesCache(t *testing.T) {
	provider := &fakeLLM{responses: []string{`{"intent":"task","action":"list","entities":{}}`}}
	c := NewClassifier(provider, newMapCache(), testLogger())

	first := c.Classify(context.Background(), "show my tasks")
	second := c.Classify(context.Background(), "show my tasks")

	if provider.calls != 1 {
		t.Errorf("provider calls = %d, want 1 (second lookup should hit cache)", provider.calls)
	}
	if first.Intent != second.Intent || first.Action != second.Action {
		t.Errorf("cached result differs: %+v vs %+v", first, second)
	}
}

func TestClassifyFailureNotCached(t *testing.T) {
	provider := &fakeLLM{errs: []error{errors.New("timeout"), nil}, responses: []string{"", `{"intent":"web","action":"search","entities":{}}`}}
	c := NewClassifier(provider, newMapCache(), testLogger())

	if ci := c.Classify(context.Background(), "search cats"); ci.Intent != IntentNone {
		t.Fatalf("first classify = %q, want none", ci.Intent)
	}
	if ci := c.Classify(context.Background(), "search cats"); ci.Intent != IntentWeb {
		t.Errorf("second classify = %q, want web (failure must not be cached)", ci.Intent)
	}
}
