package handler

import (
	"errors"

	"suapa/dto"
	"suapa/services"
	"suapa/usecase"
	"suapa/utils"

	"github.com/gin-gonic/gin"
)

func RegistrationHandler(c *gin.Context, users *usecase.UserService) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "Invalid request: display name, email and a password with a number and a special character are required")
		return
	}

	dbTimer := utils.TrackDBOperation("insert", "users")
	user, err := users.Register(c.Request.Context(), req)
	dbTimer.ObserveDuration()

	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			utils.TrackAuthAttempt("failure", "email_taken")
			utils.Conflict(c, "Email is already registered")
			return
		}
		utils.TrackError("auth", "registration")
		utils.InternalError(c, "Failed to register user")
		return
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Failed to generate token")
		return
	}
	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "refresh_token_generation")
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	utils.TrackAuthAttempt("success", "register")
	utils.Created(c, gin.H{
		"message": "Registration successful",
		"token":   token,
		"refresh": refreshToken,
		"user": gin.H{
			"id":           user.UserID,
			"display_name": user.DisplayName,
			"email":        user.Email,
			"role":         user.Role,
		},
	})
}
