package handler

import (
	"suapa/dto"
	"suapa/usecase"
	"suapa/utils"

	"github.com/gin-gonic/gin"
)

func SendChatHandler(c *gin.Context, chats *usecase.ChatService) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Message is required")
		return
	}

	userID := c.GetString("user_id")

	chat, err := chats.SendMessage(c.Request.Context(), userID, req.Message)
	if err != nil {
		utils.TrackError("database", "chat_insert")
		utils.InternalError(c, "Failed to save chat")
		return
	}

	utils.Success(c, gin.H{
		"id":        chat.ChatID,
		"message":   chat.UserMessage,
		"response":  chat.BotResponse,
		"timestamp": chat.Timestamp,
	})
}

func ChatHistoryHandler(c *gin.Context, chats *usecase.ChatService) {
	userID := c.GetString("user_id")

	history, err := chats.History(c.Request.Context(), userID)
	if err != nil {
		utils.TrackError("database", "chat_history")
		utils.InternalError(c, "Failed to load chat history")
		return
	}

	utils.Success(c, gin.H{
		"history": history,
		"count":   len(history),
	})
}

func DeleteChatHandler(c *gin.Context, chats *usecase.ChatService) {
	userID := c.GetString("user_id")
	chatID := c.Param("id")

	if err := chats.DeleteChat(c.Request.Context(), userID, chatID); err != nil {
		utils.TrackError("database", "chat_delete")
		utils.InternalError(c, "Failed to delete chat")
		return
	}

	utils.Success(c, gin.H{"message": "Chat deleted"})
}
