package handler

import (
	"errors"
	"log"

	"suapa/dto"
	"suapa/services"
	"suapa/usecase"
	"suapa/utils"

	"github.com/gin-gonic/gin"
	"github.com/mileusna/useragent"
)

func LoginHandler(c *gin.Context, users *usecase.UserService) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("auth", "invalid_request")
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "Invalid request")
		return
	}

	dbTimer := utils.TrackDBOperation("find", "users")
	user, err := users.Authenticate(c.Request.Context(), req)
	dbTimer.ObserveDuration()

	switch {
	case errors.Is(err, usecase.ErrTwoFactorRequired):
		utils.TrackAuthAttempt("pending", "2fa_required")
		utils.Success(c, gin.H{
			"requires_2fa": true,
			"message":      "2FA code required",
		})
		return
	case errors.Is(err, usecase.ErrInvalidTwoFactor):
		utils.TrackAuthAttempt("failure", "invalid_2fa")
		utils.Unauthorized(c, "Invalid 2FA code")
		return
	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.TrackAuthAttempt("failure", "invalid_credentials")
		utils.Unauthorized(c, "Invalid email or password")
		return
	case err != nil:
		utils.TrackError("auth", "login")
		utils.InternalError(c, "Login failed")
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

	// Remember which device the user last signed in from
	ua := useragent.Parse(c.Request.UserAgent())
	device := ua.Name
	if ua.OS != "" {
		device = ua.Name + " on " + ua.OS
	}
	if err := users.Repo.UpdateLastLogin(c.Request.Context(), user.UserID, device); err != nil {
		log.Printf("Failed to update last login for %s: %v", user.UserID, err)
	}

	utils.TrackAuthAttempt("success", "login")
	utils.Success(c, gin.H{
		"message": "Login successful",
		"token":   token,
		"refresh": refreshToken,
		"user": gin.H{
			"id":           user.UserID,
			"display_name": user.DisplayName,
			"email":        user.Email,
			"role":         user.Role,
			"photo_url":    user.PhotoURL,
		},
	})
}
