package handler

import (
	"errors"

	"suapa/dto"
	"suapa/usecase"
	"suapa/utils"

	"github.com/gin-gonic/gin"
)

func ListCompanionToolsHandler(c *gin.Context) {
	tools := usecase.CompanionTools()

	out := make([]gin.H, 0, len(tools))
	for _, tool := range tools {
		out = append(out, gin.H{
			"type": tool.Type,
			"name": tool.Name,
		})
	}

	utils.Success(c, gin.H{"tools": out})
}

func RunCompanionToolHandler(c *gin.Context, companion *usecase.CompanionService) {
	var req dto.CompanionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	userID := c.GetString("user_id")
	toolType := c.Param("tool")

	chat, err := companion.Run(c.Request.Context(), userID, toolType, req)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownTool) {
			utils.NotFound(c, "Unknown companion tool")
			return
		}
		if errors.Is(err, usecase.ErrInvalidToolInput) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.TrackError("database", "companion_insert")
		utils.InternalError(c, "Failed to run companion tool")
		return
	}

	utils.Success(c, gin.H{
		"id":        chat.ChatID,
		"tool":      chat.ToolType,
		"response":  chat.Response,
		"timestamp": chat.Timestamp,
	})
}
