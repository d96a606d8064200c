package assistant

import "testing"

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"wrapped in prose", `sure! {"a":1} done`, `{"a":1}`},
		{"greedy across two objects", `{"a":1} and {"b":2}`, `{"a":1} and {"b":2}`},
		{"no braces", "nothing here", ""},
		{"reversed braces", "} oops {", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSONObject(tt.response); got != tt.want {
				t.Errorf("extractJSONObject(%q) = %q, want %q", tt.response, got, tt.want)
			}
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{"bare list", `[{"a":1}]`, `[{"a":1}]`},
		{"wrapped in prose", `here: [1,2,3] bye`, `[1,2,3]`},
		{"no brackets", "nothing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSONArray(tt.response); got != tt.want {
				t.Errorf("extractJSONArray(%q) = %q, want %q", tt.response, got, tt.want)
			}
		})
	}
}
