package services

import (
	"context"
	"log"
	"strings"

	"suapa/config"
	"suapa/utils"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// CompletionClient wraps the chat-completion API. A client without a
// configured credential is still usable: every call is answered by the
// deterministic local fallback instead of an error.
type CompletionClient struct {
	llm llms.Model
	cfg config.AIConfig
}

func NewCompletionClient(cfg config.AIConfig) *CompletionClient {
	client := &CompletionClient{cfg: cfg}

	if cfg.APIKey == "" {
		log.Println("Completion API key not configured, using fallback responses")
		return client
	}

	llm, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
		openai.WithBaseURL(cfg.BaseURL),
	)
	if err != nil {
		log.Printf("Failed to initialize completion client, using fallback responses: %v", err)
		return client
	}

	client.llm = llm
	return client
}

// Complete sends one system+user prompt pair and returns the completion
// text. Any failure degrades to the fallback; callers never see an error.
func (c *CompletionClient) Complete(ctx context.Context, system, user string) string {
	if c.llm == nil {
		utils.CompletionFallbacksTotal.Inc()
		return FallbackResponse(user)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, user),
	}

	resp, err := c.llm.GenerateContent(ctx, messages,
		llms.WithTemperature(c.cfg.Temperature),
		llms.WithMaxTokens(c.cfg.MaxTokens),
	)
	if err != nil || len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		log.Printf("Completion API error, using fallback response: %v", err)
		utils.TrackError("completion", "api_failure")
		utils.CompletionFallbacksTotal.Inc()
		return FallbackResponse(user)
	}

	return resp.Choices[0].Content
}

// FallbackResponse is the deterministic reply used when the completion API
// is unavailable. It keys off recognized subject words in the message.
func FallbackResponse(message string) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "hello"), strings.Contains(lower, "hi"):
		return "Hello! I'm Sua Pa AI, your educational companion. How can I help you with your studies today?"
	case strings.Contains(lower, "math"):
		return "I can help you with Mathematics! What specific topic would you like to explore? (Algebra, Geometry, Statistics, etc.)"
	case strings.Contains(lower, "science"):
		return "Science is fascinating! I can assist with Physics, Chemistry, and Biology. What would you like to learn about?"
	case strings.Contains(lower, "english"):
		return "I can help with English Language! Whether it's grammar, comprehension, or essay writing, I'm here to assist."
	case strings.Contains(lower, "help"):
		return "I'm here to help with:\n- Mathematics\n- Science (Physics, Chemistry, Biology)\n- English Language\n- Social Studies\n- Study tips and explanations\n\nWhat subject interests you?"
	default:
		return "Thank you for your message! I'm here to help with your studies. Feel free to ask about specific subjects like Math, Science, English, or Social Studies!"
	}
}
