package usecase

import (
	"context"
	"log"
	"time"

	"suapa/model"
	"suapa/repository"
	"suapa/services"

	"github.com/google/uuid"
)

// ActivityService records trackable actions. Every chat turn, companion
// invocation, and task write goes through Track.
type ActivityService struct {
	Repo    *repository.ActivityRepo
	Streaks *StreakService
	Cache   *services.StatsCache
}

func NewActivityService(repo *repository.ActivityRepo, streaks *StreakService, cache *services.StatsCache) *ActivityService {
	return &ActivityService{Repo: repo, Streaks: streaks, Cache: cache}
}

// Track appends an activity marker, advances the streak state, and drops
// the cached stats. Failures are logged but never propagated: activity
// tracking must not break the interaction that triggered it.
func (s *ActivityService) Track(ctx context.Context, userID, activityType string) {
	activity := &model.Activity{
		ActivityID: uuid.NewString(),
		UserID:     userID,
		Type:       activityType,
		Timestamp:  model.NewTimestamp(time.Now()),
	}
	if err := s.Repo.RecordActivity(ctx, activity); err != nil {
		log.Printf("Error recording activity for %s: %v", userID, err)
	}

	if _, err := s.Streaks.Touch(ctx, userID); err != nil {
		log.Printf("Error updating streak for %s: %v", userID, err)
	}

	s.Cache.Invalidate(ctx, userID)
}
