package usecase

import (
	"strings"
	"testing"

	"suapa/dto"
)

func TestCompanionToolsList(t *testing.T) {
	tools := CompanionTools()
	if len(tools) != 4 {
		t.Fatalf("len(tools) = %d, want 4", len(tools))
	}

	byType := make(map[string]CompanionTool)
	for _, tool := range tools {
		byType[tool.Type] = tool
	}
	for _, typ := range []string{"assignment-helper", "content-writer", "explainer", "reference-topic"} {
		if _, ok := byType[typ]; !ok {
			t.Errorf("missing tool %q", typ)
		}
	}
}

func TestAssignmentHelperPromptRequiresFields(t *testing.T) {
	tool := companionTools["assignment-helper"]

	if _, _, err := tool.buildPrompt(dto.CompanionRequest{Subject: "Math"}); err == nil {
		t.Error("expected error for missing topic and description")
	}

	prompt, metadata, err := tool.buildPrompt(dto.CompanionRequest{
		Subject:     "Mathematics",
		Topic:       "Fractions",
		Description: "Adding fractions with unlike denominators",
	})
	if err != nil {
		t.Fatalf("buildPrompt: %v", err)
	}
	if !strings.Contains(prompt, "Subject: Mathematics") || !strings.Contains(prompt, "Topic: Fractions") {
		t.Errorf("prompt missing fields: %q", prompt)
	}
	if metadata["subject"] != "Mathematics" {
		t.Errorf("metadata subject = %q, want Mathematics", metadata["subject"])
	}
}

func TestExplainerLevelMapping(t *testing.T) {
	tool := companionTools["explainer"]

	tests := []struct {
		level string
		want  string
	}{
		{"simple", "Primary School level"},
		{"intermediate", "Junior High School level"},
		{"advanced", "Senior High School level"},
		{"", "Junior High School level"},
	}

	for _, tt := range tests {
		prompt, _, err := tool.buildPrompt(dto.CompanionRequest{
			Subject: "Science",
			Topic:   "Photosynthesis",
			Level:   tt.level,
		})
		if err != nil {
			t.Fatalf("buildPrompt(level=%q): %v", tt.level, err)
		}
		if !strings.Contains(prompt, tt.want) {
			t.Errorf("prompt for level %q does not mention %q", tt.level, tt.want)
		}
	}
}
