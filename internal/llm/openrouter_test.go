package llm

import (
	"strings"
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     OpenRouterConfig
		wantErr bool
		want    string
	}{
		{
			name: "default model",
			cfg:  OpenRouterConfig{APIKey: "sk-or-test", Model: "google/gemini-2.0-flash-exp"},
			want: "google/gemini-2.0-flash-exp",
		},
		{
			name:    "empty API key",
			cfg:     OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
			wantErr: true,
		},
		{
			// OpenRouter model IDs must never hit the OpenAI alias table:
			// "gpt-4o-mini" here is an OpenRouter route, not an alias.
			name: "namespaced model passes through",
			cfg:  OpenRouterConfig{APIKey: "sk-or-test", Model: "anthropic/claude-3-haiku"},
			want: "anthropic/claude-3-haiku",
		},
		{
			name: "custom base URL",
			cfg: OpenRouterConfig{
				APIKey:  "sk-or-test",
				Model:   "meta-llama/llama-3-8b",
				BaseURL: "https://custom.openrouter.example/v1",
			},
			want: "meta-llama/llama-3-8b",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), "API key") {
					t.Errorf("error should mention the missing key: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.ModelID() != tt.want {
				t.Errorf("model = %q, want %q", p.ModelID(), tt.want)
			}
		})
	}
}
