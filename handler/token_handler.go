package handler

import (
	"errors"
	"strings"

	"suapa/services"
	"suapa/utils"

	"github.com/gin-gonic/gin"
)

// RefreshTokenHandler exchanges a valid refresh token for a new token pair.
func RefreshTokenHandler(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		utils.Unauthorized(c, "Missing or invalid refresh token")
		return
	}

	refreshToken := strings.TrimPrefix(authHeader, "Bearer ")

	userID, err := services.ValidateRefreshToken(refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTokenType):
			utils.TrackAuthAttempt("failure", "refresh_wrong_type")
			utils.Unauthorized(c, "Invalid token type")
		case errors.Is(err, services.ErrTokenExpired):
			utils.TrackAuthAttempt("failure", "refresh_expired")
			utils.Unauthorized(c, "Refresh token has expired")
		default:
			utils.TrackAuthAttempt("failure", "refresh_invalid")
			utils.Unauthorized(c, "Invalid refresh token")
		}
		return
	}

	newAccessToken, err := services.GenerateToken(userID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Failed to generate access token")
		return
	}
	newRefreshToken, err := services.GenerateRefreshToken(userID)
	if err != nil {
		utils.TrackError("auth", "refresh_token_generation")
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	utils.TrackAuthAttempt("success", "refresh")
	utils.Success(c, gin.H{
		"token":   newAccessToken,
		"refresh": newRefreshToken,
	})
}
