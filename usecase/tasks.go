package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"suapa/dto"
	"suapa/model"
	"suapa/repository"
	"suapa/services"

	"github.com/google/uuid"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskService struct {
	Repo       *repository.TasksRepo
	Activity   *ActivityService
	Completion *services.CompletionClient
}

func NewTaskService(repo *repository.TasksRepo, activity *ActivityService, completion *services.CompletionClient) *TaskService {
	return &TaskService{Repo: repo, Activity: activity, Completion: completion}
}

func (s *TaskService) CreateTask(ctx context.Context, userID string, req dto.CreateTaskRequest) (*model.Task, error) {
	task := &model.Task{
		TaskID:      uuid.NewString(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		Completed:   false,
		Timestamp:   model.NewTimestamp(time.Now()),
	}
	if err := s.Repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}

	s.Activity.Track(ctx, userID, "task")
	return task, nil
}

func (s *TaskService) GetUserTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	return s.Repo.GetUserTasks(ctx, userID)
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID string, req dto.UpdateTaskRequest) error {
	updates := &model.Task{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
	}
	if err := s.Repo.UpdateTask(ctx, taskID, userID, updates); err != nil {
		return err
	}
	s.Activity.Cache.Invalidate(ctx, userID)
	return nil
}

func (s *TaskService) ToggleComplete(ctx context.Context, userID, taskID string) (bool, error) {
	completed, err := s.Repo.ToggleTaskComplete(ctx, taskID, userID)
	if err != nil {
		return false, err
	}
	s.Activity.Track(ctx, userID, "task")
	return completed, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	if err := s.Repo.DeleteTask(ctx, taskID, userID); err != nil {
		return err
	}
	s.Activity.Cache.Invalidate(ctx, userID)
	return nil
}

// SuggestTips asks the completion API for a few tips on finishing the
// task and attaches them to it.
func (s *TaskService) SuggestTips(ctx context.Context, userID, taskID string) (string, error) {
	task, err := s.Repo.FindTask(ctx, taskID, userID)
	if err != nil {
		return "", err
	}
	if task == nil {
		return "", ErrTaskNotFound
	}

	prompt := fmt.Sprintf("I have a task: %q.", task.Title)
	if task.Description != "" {
		prompt += fmt.Sprintf(" Description: %s.", task.Description)
	}
	prompt += " Give me 2-3 brief tips to help me complete this task efficiently as a student."

	suggestion := s.Completion.Complete(ctx, GESContext, prompt)
	if err := s.Repo.AttachSuggestion(ctx, taskID, userID, suggestion); err != nil {
		return "", err
	}
	return suggestion, nil
}
