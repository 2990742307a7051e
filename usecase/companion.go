package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"suapa/dto"
	"suapa/model"
	"suapa/repository"
	"suapa/services"

	"github.com/google/uuid"
)

var (
	ErrUnknownTool      = errors.New("unknown companion tool")
	ErrInvalidToolInput = errors.New("invalid tool input")
)

// CompanionTool is one templated content-generation tool: a fixed system
// context plus a prompt builder over the submitted form fields.
type CompanionTool struct {
	Type          string `json:"type"`
	Name          string `json:"name"`
	systemContext string
	buildPrompt   func(req dto.CompanionRequest) (string, map[string]string, error)
}

var explainerLevels = map[string]string{
	"simple":       "Primary School level",
	"intermediate": "Junior High School level",
	"advanced":     "Senior High School level",
}

var companionTools = map[string]CompanionTool{
	"assignment-helper": {
		Type:          "assignment-helper",
		Name:          "Assignment Helper",
		systemContext: "You are an educational assistant for Ghana Education Service (GES) curriculum. Help students with their assignments by providing structured guidance.",
		buildPrompt: func(req dto.CompanionRequest) (string, map[string]string, error) {
			if req.Subject == "" || req.Topic == "" || req.Description == "" {
				return "", nil, errors.New("subject, topic, and description are required")
			}
			prompt := fmt.Sprintf(`Subject: %s
Topic: %s
Student needs help with: %s

Provide detailed assignment help including:
1. A suggested outline
2. Key points to cover
3. Real-world examples relevant to Ghanaian students
4. Tips for completing the assignment

Format your response clearly with sections.`, req.Subject, req.Topic, req.Description)
			return prompt, map[string]string{"subject": req.Subject, "topic": req.Topic}, nil
		},
	},
	"content-writer": {
		Type:          "content-writer",
		Name:          "Content Writer",
		systemContext: "You are an educational content writer for Ghana Education Service (GES) curriculum. Create high-quality study materials for students.",
		buildPrompt: func(req dto.CompanionRequest) (string, map[string]string, error) {
			if req.ContentType == "" || req.Topic == "" {
				return "", nil, errors.New("content type and topic are required")
			}
			prompt := fmt.Sprintf("Generate %s about: %s\n", req.ContentType, req.Topic)
			if req.KeyPoints != "" {
				prompt += fmt.Sprintf("Include these key points:\n%s\n", req.KeyPoints)
			}
			prompt += "\nMake it educational, well-structured, and relevant to Ghanaian students following the GES curriculum."
			return prompt, map[string]string{"topic": req.Topic, "type": req.ContentType}, nil
		},
	},
	"explainer": {
		Type:          "explainer",
		Name:          "Concept Explainer",
		systemContext: "You are an educational explainer for Ghana Education Service (GES) curriculum. Break down complex concepts into easy-to-understand explanations.",
		buildPrompt: func(req dto.CompanionRequest) (string, map[string]string, error) {
			if req.Subject == "" || req.Topic == "" {
				return "", nil, errors.New("subject and concept are required")
			}
			level, ok := explainerLevels[req.Level]
			if !ok {
				level = explainerLevels["intermediate"]
			}
			prompt := fmt.Sprintf(`Subject: %s
Concept to explain: %s
Education level: %s

Provide a clear, detailed explanation suitable for %s students in Ghana.
Include:
1. A clear definition
2. Step-by-step explanation
3. Real-world examples relevant to Ghanaian students
4. Key takeaways`, req.Subject, req.Topic, level, level)
			return prompt, map[string]string{"subject": req.Subject, "topic": req.Topic, "levelDescription": level}, nil
		},
	},
	"reference-topic": {
		Type:          "reference-topic",
		Name:          "Reference Topic",
		systemContext: "You are an educational reference assistant for Ghana Education Service (GES) curriculum. Provide comprehensive, well-structured subject explanations for students.",
		buildPrompt: func(req dto.CompanionRequest) (string, map[string]string, error) {
			if req.Subject == "" || req.Topic == "" {
				return "", nil, errors.New("subject and topic are required")
			}
			prompt := fmt.Sprintf(`Subject: %s
Topic: %s

Provide a comprehensive overview of this topic for Ghanaian students following the GES curriculum. Include:
1. Definition and key concepts
2. Important subtopics or areas to study
3. Real-world applications relevant to Ghana
4. Study tips and common misconceptions
5. Sample questions or practice ideas

Make it clear, engaging, and educational.`, req.Subject, req.Topic)
			return prompt, map[string]string{"subject": req.Subject, "topic": req.Topic}, nil
		},
	},
}

// CompanionTools lists the available tools for the UI.
func CompanionTools() []CompanionTool {
	tools := make([]CompanionTool, 0, len(companionTools))
	for _, t := range companionTools {
		tools = append(tools, t)
	}
	return tools
}

type CompanionService struct {
	Chats      *repository.ChatsRepo
	Activity   *ActivityService
	Completion *services.CompletionClient
}

func NewCompanionService(chats *repository.ChatsRepo, activity *ActivityService, completion *services.CompletionClient) *CompanionService {
	return &CompanionService{Chats: chats, Activity: activity, Completion: completion}
}

// Run executes one tool invocation and stores the result as a companion
// chat, which makes it part of the regular chat history.
func (s *CompanionService) Run(ctx context.Context, userID, toolType string, req dto.CompanionRequest) (*model.CompanionChat, error) {
	tool, ok := companionTools[toolType]
	if !ok {
		return nil, ErrUnknownTool
	}

	prompt, metadata, err := tool.buildPrompt(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToolInput, err)
	}

	response := s.Completion.Complete(ctx, tool.systemContext, prompt)

	chat := &model.CompanionChat{
		ChatID:    uuid.NewString(),
		UserID:    userID,
		ToolType:  toolType,
		Prompt:    prompt,
		Response:  response,
		Metadata:  metadata,
		Timestamp: model.NewTimestamp(time.Now()),
	}
	if err := s.Chats.InsertCompanionChat(ctx, chat); err != nil {
		return nil, err
	}

	s.Activity.Track(ctx, userID, tool.Name)
	return chat, nil
}
