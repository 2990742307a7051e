package handler

import (
	"suapa/repository"
	"suapa/utils"

	"github.com/gin-gonic/gin"
)

func GetProfileHandler(c *gin.Context, userRepo *repository.UserRepo) {
	userID := c.GetString("user_id")

	dbTimer := utils.TrackDBOperation("find", "users")
	user, err := userRepo.FindUser(c.Request.Context(), userID)
	dbTimer.ObserveDuration()

	if err != nil {
		utils.TrackError("database", "profile_lookup")
		utils.InternalError(c, "Failed to fetch profile")
		return
	}
	if user == nil || user.Deleted {
		utils.NotFound(c, "User not found")
		return
	}

	utils.Success(c, gin.H{
		"user": gin.H{
			"id":                 user.UserID,
			"display_name":       user.DisplayName,
			"email":              user.Email,
			"role":               user.Role,
			"provider":           user.Provider,
			"photo_url":          user.PhotoURL,
			"created_at":         user.CreatedAt,
			"last_login":         user.LastLogin,
			"last_login_device":  user.LastLoginDevice,
			"two_factor_enabled": user.TwoFactorEnabled,
		},
	})
}
