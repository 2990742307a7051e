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

func GoogleLoginHandler(c *gin.Context, users *usecase.UserService) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := users.GoogleSignIn(c.Request.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidGoogleToken) {
			utils.TrackAuthAttempt("failure", "invalid_google_token")
			utils.Unauthorized(c, "Invalid Google ID token")
			return
		}
		utils.TrackError("auth", "google_login")
		utils.InternalError(c, "Google sign-in failed")
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

	ua := useragent.Parse(c.Request.UserAgent())
	device := ua.Name
	if ua.OS != "" {
		device = ua.Name + " on " + ua.OS
	}
	if err := users.Repo.UpdateLastLogin(c.Request.Context(), user.UserID, device); err != nil {
		log.Printf("Failed to update last login for %s: %v", user.UserID, err)
	}

	utils.TrackAuthAttempt("success", "google")
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
