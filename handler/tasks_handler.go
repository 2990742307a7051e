package handler

import (
	"errors"

	"suapa/dto"
	"suapa/usecase"
	"suapa/utils"

	"github.com/gin-gonic/gin"
)

func CreateTaskHandler(c *gin.Context, tasks *usecase.TaskService) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Title is required")
		return
	}

	userID := c.GetString("user_id")

	task, err := tasks.CreateTask(c.Request.Context(), userID, req)
	if err != nil {
		utils.TrackError("database", "task_insert")
		utils.InternalError(c, "Failed to create task")
		return
	}

	utils.Created(c, gin.H{"task": task})
}

func ListTasksHandler(c *gin.Context, tasks *usecase.TaskService) {
	userID := c.GetString("user_id")

	list, err := tasks.GetUserTasks(c.Request.Context(), userID)
	if err != nil {
		utils.TrackError("database", "task_list")
		utils.InternalError(c, "Failed to load tasks")
		return
	}

	utils.Success(c, gin.H{
		"tasks": list,
		"count": len(list),
	})
}

func UpdateTaskHandler(c *gin.Context, tasks *usecase.TaskService) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	userID := c.GetString("user_id")
	taskID := c.Param("id")

	if err := tasks.UpdateTask(c.Request.Context(), userID, taskID, req); err != nil {
		utils.TrackError("database", "task_update")
		utils.InternalError(c, "Failed to update task")
		return
	}

	utils.Success(c, gin.H{"message": "Task updated"})
}

func ToggleTaskHandler(c *gin.Context, tasks *usecase.TaskService) {
	userID := c.GetString("user_id")
	taskID := c.Param("id")

	completed, err := tasks.ToggleComplete(c.Request.Context(), userID, taskID)
	if err != nil {
		utils.TrackError("database", "task_toggle")
		utils.InternalError(c, "Failed to toggle task")
		return
	}

	utils.Success(c, gin.H{"completed": completed})
}

func DeleteTaskHandler(c *gin.Context, tasks *usecase.TaskService) {
	userID := c.GetString("user_id")
	taskID := c.Param("id")

	if err := tasks.DeleteTask(c.Request.Context(), userID, taskID); err != nil {
		utils.TrackError("database", "task_delete")
		utils.InternalError(c, "Failed to delete task")
		return
	}

	utils.Success(c, gin.H{"message": "Task deleted"})
}

func SuggestTaskTipsHandler(c *gin.Context, tasks *usecase.TaskService) {
	userID := c.GetString("user_id")
	taskID := c.Param("id")

	suggestion, err := tasks.SuggestTips(c.Request.Context(), userID, taskID)
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			utils.NotFound(c, "Task not found")
			return
		}
		utils.TrackError("database", "task_suggestion")
		utils.InternalError(c, "Failed to generate suggestion")
		return
	}

	utils.Success(c, gin.H{"suggestion": suggestion})
}
