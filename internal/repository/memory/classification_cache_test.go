package memory

import (
	"testing"
	"time"

	"ai-assistant-be/pkg/assistant"
)

func TestClassificationCacheRoundTrip(t *testing.T) {
	c := NewClassificationCache(time.Minute)

	want := assistant.ClassifiedIntent{
		Intent:   assistant.IntentTask,
		Action:   assistant.ActionCreate,
		Entities: map[string]any{"title": "buy milk"},
	}
	c.Set("remind me to buy milk", want)

	got, ok := c.Get("remind me to buy milk")
	if !ok {
		t.Fatal("Get returned ok = false for a stored key")
	}
	if got.Intent != want.Intent || got.Action != want.Action {
		t.Errorf("Get = %s/%s, want %s/%s", got.Intent, got.Action, want.Intent, want.Action)
	}
}

func TestClassificationCacheMiss(t *testing.T) {
	c := NewClassificationCache(time.Minute)

	if _, ok := c.Get("never stored"); ok {
		t.Error("Get returned ok = true for a missing key")
	}
}
