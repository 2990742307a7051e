package model

const (
	ChatKindPlain     = "chat"
	ChatKindCompanion = "companion"
)

// Chat is one free-form conversation turn: the student's message and the
// bot's reply. Immutable after creation.
type Chat struct {
	ChatID      string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	UserMessage string    `bson:"userMessage" json:"userMessage"`
	BotResponse string    `bson:"botResponse" json:"botResponse"`
	Timestamp   Timestamp `bson:"timestamp" json:"timestamp"`
}

// CompanionChat is a chat-like record produced by one of the templated
// content-generation tools. It lives in its own collection but belongs to
// the same per-user chat history as plain chats.
type CompanionChat struct {
	ChatID    string            `bson:"_id,omitempty" json:"id"`
	UserID    string            `bson:"userId" json:"userId"`
	ToolType  string            `bson:"toolType" json:"toolType"`
	Prompt    string            `bson:"prompt" json:"prompt"`
	Response  string            `bson:"response" json:"response"`
	Metadata  map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
	Timestamp Timestamp         `bson:"timestamp" json:"timestamp"`
}

// ChatEntry is the merged view over the two chat collections, used for
// history rendering and for the dashboard counts.
type ChatEntry struct {
	ID          string            `json:"id"`
	Kind        string            `json:"kind"`
	UserMessage string            `json:"userMessage,omitempty"`
	BotResponse string            `json:"botResponse,omitempty"`
	ToolType    string            `json:"toolType,omitempty"`
	Prompt      string            `json:"prompt,omitempty"`
	Response    string            `json:"response,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	Timestamp   Timestamp         `json:"timestamp"`
}

func (c *Chat) Entry() ChatEntry {
	return ChatEntry{
		ID:          c.ChatID,
		Kind:        ChatKindPlain,
		UserMessage: c.UserMessage,
		BotResponse: c.BotResponse,
		Timestamp:   c.Timestamp,
	}
}

func (c *CompanionChat) Entry() ChatEntry {
	return ChatEntry{
		ID:        c.ChatID,
		Kind:      ChatKindCompanion,
		ToolType:  c.ToolType,
		Prompt:    c.Prompt,
		Response:  c.Response,
		Metadata:  c.Metadata,
		Timestamp: c.Timestamp,
	}
}

// FeedTitle is what the recent-activity feed shows for this entry.
func (e ChatEntry) FeedTitle() string {
	if e.UserMessage != "" {
		return e.UserMessage
	}
	return "Chat session"
}
