package config

import (
	"testing"
	"time"
)

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback time.Duration
		want     time.Duration
	}{
		{name: "valid minutes", value: "5m", fallback: 10 * time.Minute, want: 5 * time.Minute},
		{name: "valid compound", value: "1h30m", fallback: 10 * time.Minute, want: 90 * time.Minute},
		{name: "garbage falls back", value: "soon", fallback: 10 * time.Minute, want: 10 * time.Minute},
		{name: "unset falls back", value: "", fallback: 10 * time.Minute, want: 10 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("TEST_DURATION", tt.value)
			}
			if got := getEnvAsDuration("TEST_DURATION", tt.fallback); got != tt.want {
				t.Errorf("getEnvAsDuration = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	if !getEnvAsBool("TEST_BOOL", false) {
		t.Error("getEnvAsBool(true) = false")
	}
	t.Setenv("TEST_BOOL", "nope")
	if getEnvAsBool("TEST_BOOL", false) {
		t.Error("getEnvAsBool(garbage) should fall back to false")
	}
}
