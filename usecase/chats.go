package usecase

import (
	"context"
	"time"

	"suapa/model"
	"suapa/repository"
	"suapa/services"

	"github.com/google/uuid"
)

// GESContext is the fixed system prompt every chat turn carries.
const GESContext = `You are Sua Pa AI, an educational assistant for students in Ghana following the Ghana Education Service (GES) curriculum.
You help with subjects including Mathematics, English Language, Integrated Science, Social Studies, and other GES-approved subjects.
Provide accurate, helpful, and age-appropriate answers aligned with Ghanaian educational standards.
Be concise, clear, and use examples relevant to Ghanaian students.`

type ChatService struct {
	Chats      *repository.ChatsRepo
	Activity   *ActivityService
	Completion *services.CompletionClient
}

func NewChatService(chats *repository.ChatsRepo, activity *ActivityService, completion *services.CompletionClient) *ChatService {
	return &ChatService{Chats: chats, Activity: activity, Completion: completion}
}

// SendMessage runs one chat turn: completion, persist, activity tracking.
func (s *ChatService) SendMessage(ctx context.Context, userID, message string) (*model.Chat, error) {
	response := s.Completion.Complete(ctx, GESContext, message)

	chat := &model.Chat{
		ChatID:      uuid.NewString(),
		UserID:      userID,
		UserMessage: message,
		BotResponse: response,
		Timestamp:   model.NewTimestamp(time.Now()),
	}
	if err := s.Chats.InsertChat(ctx, chat); err != nil {
		return nil, err
	}

	s.Activity.Track(ctx, userID, "chat")
	return chat, nil
}

// History returns the merged chat history oldest first, the order the chat
// screen renders it.
func (s *ChatService) History(ctx context.Context, userID string) ([]model.ChatEntry, error) {
	entries, err := s.Chats.GetUserChatEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

func (s *ChatService) DeleteChat(ctx context.Context, userID, chatID string) error {
	if err := s.Chats.DeleteChat(ctx, chatID, userID); err != nil {
		return err
	}
	s.Activity.Cache.Invalidate(ctx, userID)
	return nil
}
