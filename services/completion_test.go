package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"suapa/config"
)

func TestFallbackResponseKeywords(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"greeting", "Hello there", "Sua Pa AI"},
		{"math", "Can you explain math to me?", "Mathematics"},
		{"science", "I have a science question", "Physics, Chemistry, and Biology"},
		{"english", "english essay writing", "English Language"},
		{"help", "I need help", "Study tips"},
		{"default", "what is the capital of Ghana", "Feel free to ask"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackResponse(tt.message)
			if !strings.Contains(got, tt.want) {
				t.Errorf("FallbackResponse(%q) = %q, want it to contain %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestFallbackResponseDeterministic(t *testing.T) {
	msg := "tell me about science"
	first := FallbackResponse(msg)
	for i := 0; i < 3; i++ {
		if got := FallbackResponse(msg); got != first {
			t.Fatalf("FallbackResponse not deterministic: %q vs %q", got, first)
		}
	}
}

func TestFallbackResponseCaseInsensitive(t *testing.T) {
	if FallbackResponse("MATH homework") != FallbackResponse("math homework") {
		t.Error("keyword matching should ignore case")
	}
}

// Without an API key the client stays in fallback mode and never errors.
func TestCompleteWithoutAPIKey(t *testing.T) {
	client := NewCompletionClient(config.AIConfig{
		Model:       "gpt-3.5-turbo",
		MaxTokens:   256,
		Temperature: 0.7,
		Timeout:     time.Second,
	})

	got := client.Complete(context.Background(), "system prompt", "hello")
	if got != FallbackResponse("hello") {
		t.Errorf("Complete = %q, want fallback response", got)
	}
}
