package handler

import (
	"errors"
	"strconv"

	"suapa/dto"
	"suapa/repository"
	"suapa/usecase"
	"suapa/utils"

	"github.com/gin-gonic/gin"
)

func AdminListUsersHandler(c *gin.Context, users *usecase.UserService) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	q := repository.ListUsersQuery{
		Role:   c.Query("role"),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	dbTimer := utils.TrackDBOperation("find", "users")
	list, total, err := users.ListUsers(c.Request.Context(), q)
	dbTimer.ObserveDuration()

	if err != nil {
		utils.TrackError("database", "admin_list_users")
		utils.InternalError(c, "Failed to list users")
		return
	}

	utils.Success(c, gin.H{
		"users": list,
		"total": total,
		"page":  q.Page,
		"limit": q.Limit,
	})
}

func AdminAddUserHandler(c *gin.Context, users *usecase.UserService) {
	var req dto.AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := users.AddUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			utils.Conflict(c, "Email is already registered")
			return
		}
		utils.TrackError("database", "admin_add_user")
		utils.InternalError(c, "Failed to add user")
		return
	}

	utils.Created(c, gin.H{"user": user})
}

func AdminUpdateUserHandler(c *gin.Context, users *usecase.UserService) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	userID := c.Param("id")

	if err := users.UpdateUser(c.Request.Context(), userID, req); err != nil {
		utils.TrackError("database", "admin_update_user")
		utils.InternalError(c, "Failed to update user")
		return
	}

	utils.Success(c, gin.H{"message": "User updated"})
}

// AdminDeleteUserHandler soft-deletes: the account is flagged and hidden,
// its chats and tasks stay in place.
func AdminDeleteUserHandler(c *gin.Context, users *usecase.UserService) {
	userID := c.Param("id")

	if userID == c.GetString("user_id") {
		utils.BadRequest(c, "Cannot delete your own account")
		return
	}

	if err := users.SoftDeleteUser(c.Request.Context(), userID); err != nil {
		utils.TrackError("database", "admin_delete_user")
		utils.InternalError(c, "Failed to delete user")
		return
	}

	utils.Success(c, gin.H{"message": "User deleted"})
}

// AdminSyncProfilesHandler backfills missing profile fields and normalizes
// roles across the users collection.
func AdminSyncProfilesHandler(c *gin.Context, users *usecase.UserService) {
	updated, err := users.SyncProfiles(c.Request.Context())
	if err != nil {
		utils.TrackError("database", "admin_sync_profiles")
		utils.InternalError(c, "Failed to sync profiles")
		return
	}

	utils.Success(c, gin.H{
		"message": "Profiles synced",
		"updated": updated,
	})
}

func AdminStatsHandler(c *gin.Context, users *usecase.UserService) {
	dbTimer := utils.TrackDBOperation("count", "users")
	stats, err := users.AdminStats(c.Request.Context())
	dbTimer.ObserveDuration()

	if err != nil {
		utils.TrackError("database", "admin_stats")
		utils.InternalError(c, "Failed to load admin stats")
		return
	}

	utils.Success(c, gin.H{"stats": stats})
}
