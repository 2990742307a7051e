package repository

import (
	"context"
	"errors"
	"time"

	"suapa/model"
	"suapa/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityRepo owns the append-only activity log and the one-per-user
// streak state document.
type ActivityRepo struct {
	Activities *mongo.Collection
	Streaks    *mongo.Collection
}

func GetActivityRepo(client *mongo.Client) *ActivityRepo {
	db := client.Database(utils.GetEnvAsString("MONGO_DB", "suapa"))
	return &ActivityRepo{
		Activities: db.Collection(utils.GetEnvAsString("ACTIVITIES_COLLECTION", "userActivities")),
		Streaks:    db.Collection(utils.GetEnvAsString("STREAK_COLLECTION", "userActivity")),
	}
}

func (r *ActivityRepo) RecordActivity(ctx context.Context, activity *model.Activity) error {
	timer := utils.TrackDBOperation("insert", "userActivities")
	defer timer.ObserveDuration()

	if activity.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	if _, err := r.Activities.InsertOne(ctx, activity); err != nil {
		utils.TrackError("database", "activity_creation_failed")
		return err
	}
	return nil
}

// GetUserActivities returns every activity marker for a user, newest first.
func (r *ActivityRepo) GetUserActivities(ctx context.Context, userID string) ([]*model.Activity, error) {
	timer := utils.TrackDBOperation("find", "userActivities")
	defer timer.ObserveDuration()

	var activities []*model.Activity
	if err := findForUser(ctx, r.Activities, userID, &activities); err != nil {
		utils.TrackError("database", "activity_fetch_failed")
		return nil, err
	}
	SortActivitiesDesc(activities)
	return activities, nil
}

// GetStreakState returns nil without error when the user has no streak
// document yet.
func (r *ActivityRepo) GetStreakState(ctx context.Context, userID string) (*model.StreakState, error) {
	timer := utils.TrackDBOperation("find", "userActivity")
	defer timer.ObserveDuration()

	var state model.StreakState
	err := r.Streaks.FindOne(ctx, bson.M{"_id": userID}).Decode(&state)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "streak_lookup_failed")
		return nil, err
	}
	return &state, nil
}

// SaveStreakState upserts the per-user streak document. There is no
// transactional guard: two devices racing on the same day can both read
// the stale state and double-count totalDaysActive. Accepted limitation.
func (r *ActivityRepo) SaveStreakState(ctx context.Context, state *model.StreakState) error {
	timer := utils.TrackDBOperation("update", "userActivity")
	defer timer.ObserveDuration()

	state.LastSeen = time.Now()
	opts := options.Replace().SetUpsert(true)
	if _, err := r.Streaks.ReplaceOne(ctx, bson.M{"_id": state.UserID}, state, opts); err != nil {
		utils.TrackError("database", "streak_save_failed")
		return err
	}
	return nil
}
