package repository

import (
	"context"
	"errors"

	"suapa/model"
	"suapa/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type TasksRepo struct {
	MongoCollection *mongo.Collection
}

func GetTasksRepo(client *mongo.Client) *TasksRepo {
	db := client.Database(utils.GetEnvAsString("MONGO_DB", "suapa"))
	return &TasksRepo{
		MongoCollection: db.Collection(utils.GetEnvAsString("TASKS_COLLECTION", "tasks")),
	}
}

func (r *TasksRepo) CreateTask(ctx context.Context, task *model.Task) error {
	timer := utils.TrackDBOperation("insert", "tasks")
	defer timer.ObserveDuration()

	if task.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}
	if task.Title == "" {
		return errors.New("task title is required")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, task); err != nil {
		utils.TrackError("database", "task_creation_failed")
		return err
	}
	return nil
}

// GetUserTasks returns every task of the user, newest first, using the
// same sorted-query-then-client-sort fallback as the other loaders.
func (r *TasksRepo) GetUserTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	timer := utils.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	var tasks []*model.Task
	if err := findForUser(ctx, r.MongoCollection, userID, &tasks); err != nil {
		utils.TrackError("database", "task_fetch_failed")
		return nil, err
	}
	SortTasksDesc(tasks)
	return tasks, nil
}

func (r *TasksRepo) UpdateTask(ctx context.Context, taskID, userID string, updates *model.Task) error {
	timer := utils.TrackDBOperation("update", "tasks")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": taskID, "userId": userID}
	update := bson.M{"$set": bson.M{
		"title":       updates.Title,
		"description": updates.Description,
		"deadline":    updates.Deadline,
	}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "task_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "task_not_found")
		return errors.New("task not found")
	}
	return nil
}

// ToggleTaskComplete flips the completion flag and returns the new value.
func (r *TasksRepo) ToggleTaskComplete(ctx context.Context, taskID, userID string) (bool, error) {
	timer := utils.TrackDBOperation("update", "tasks")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": taskID, "userId": userID}

	var task model.Task
	if err := r.MongoCollection.FindOne(ctx, filter).Decode(&task); err != nil {
		utils.TrackError("database", "task_not_found")
		return false, err
	}

	completed := !task.Completed
	_, err := r.MongoCollection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"completed": completed}})
	if err != nil {
		utils.TrackError("database", "task_update_failed")
		return false, err
	}
	return completed, nil
}

func (r *TasksRepo) AttachSuggestion(ctx context.Context, taskID, userID, suggestion string) error {
	timer := utils.TrackDBOperation("update", "tasks")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": taskID, "userId": userID}
	result, err := r.MongoCollection.UpdateOne(ctx, filter,
		bson.M{"$set": bson.M{"aiSuggestion": suggestion}})
	if err != nil {
		utils.TrackError("database", "suggestion_save_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("task not found")
	}
	return nil
}

func (r *TasksRepo) DeleteTask(ctx context.Context, taskID, userID string) error {
	timer := utils.TrackDBOperation("delete", "tasks")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": taskID, "userId": userID})
	if err != nil {
		utils.TrackError("database", "task_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "task_not_found")
		return errors.New("task not found")
	}
	return nil
}

func (r *TasksRepo) FindTask(ctx context.Context, taskID, userID string) (*model.Task, error) {
	timer := utils.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	var task model.Task
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": taskID, "userId": userID}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}
