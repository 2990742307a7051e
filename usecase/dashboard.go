package usecase

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"suapa/model"
	"suapa/services"
	"suapa/utils"
)

// Sources the aggregator reads from. The repositories satisfy these; tests
// inject fakes.
type ChatSource interface {
	GetUserChatEntries(ctx context.Context, userID string) ([]model.ChatEntry, error)
}

type TaskSource interface {
	GetUserTasks(ctx context.Context, userID string) ([]*model.Task, error)
}

type ActivitySource interface {
	GetUserActivities(ctx context.Context, userID string) ([]*model.Activity, error)
}

// DashboardService computes the per-user dashboard stats. One instance
// serves all requests; all per-user state lives on the stack of GetStats.
type DashboardService struct {
	Chats      ChatSource
	Tasks      TaskSource
	Activities ActivitySource
	Cache      *services.StatsCache
}

func NewDashboardService(chats ChatSource, tasks TaskSource, activities ActivitySource, cache *services.StatsCache) *DashboardService {
	return &DashboardService{
		Chats:      chats,
		Tasks:      tasks,
		Activities: activities,
		Cache:      cache,
	}
}

func (s *DashboardService) GetStats(ctx context.Context, userID string) *model.DashboardStats {
	if stats, ok := s.Cache.Get(ctx, userID); ok {
		return stats
	}

	chats, tasks, activities := s.loadAll(ctx, userID)
	stats := BuildStats(chats, tasks, activities, time.Now())

	s.Cache.Set(ctx, userID, stats)
	return stats
}

// loadAll fans out the three reads concurrently and waits for all of them.
// A failed load is logged and degrades to an empty collection, so callers
// cannot distinguish "no data" from "load failed".
func (s *DashboardService) loadAll(ctx context.Context, userID string) ([]model.ChatEntry, []*model.Task, []*model.Activity) {
	var (
		wg         sync.WaitGroup
		chats      []model.ChatEntry
		tasks      []*model.Task
		activities []*model.Activity
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		result, err := s.Chats.GetUserChatEntries(ctx, userID)
		if err != nil {
			log.Printf("Error loading chats for %s: %v", userID, err)
			utils.TrackError("dashboard", "chat_load_failed")
			return
		}
		chats = result
	}()
	go func() {
		defer wg.Done()
		result, err := s.Tasks.GetUserTasks(ctx, userID)
		if err != nil {
			log.Printf("Error loading tasks for %s: %v", userID, err)
			utils.TrackError("dashboard", "task_load_failed")
			return
		}
		tasks = result
	}()
	go func() {
		defer wg.Done()
		result, err := s.Activities.GetUserActivities(ctx, userID)
		if err != nil {
			log.Printf("Error loading activities for %s: %v", userID, err)
			utils.TrackError("dashboard", "activity_load_failed")
			return
		}
		activities = result
	}()
	wg.Wait()

	return chats, tasks, activities
}

// BuildStats is pure: counts and streak are a function of the three loaded
// collections (each sorted newest first) and "now".
func BuildStats(chats []model.ChatEntry, tasks []*model.Task, activities []*model.Activity, now time.Time) *model.DashboardStats {
	midnight := dayOf(now)
	tomorrow := midnight.AddDate(0, 0, 1)

	stats := &model.DashboardStats{
		TotalChats:      len(chats),
		TotalActivities: len(activities),
		StudyStreak:     ComputeStreak(activities, now),
	}

	for _, chat := range chats {
		ts := chat.Timestamp.In(now.Location())
		if !ts.Before(midnight) && ts.Before(tomorrow) {
			stats.ChatsToday++
		}
	}

	for _, task := range tasks {
		if task.Completed {
			stats.CompletedTasks++
		} else {
			stats.ActiveTasks++
		}
	}

	stats.RecentActivity = buildFeed(chats, tasks, activities, now)
	return stats
}

const (
	feedPerSource = 5
	feedLimit     = 10
)

// buildFeed merges the five most recent items of each collection into one
// time-sorted feed, truncated to the ten newest.
func buildFeed(chats []model.ChatEntry, tasks []*model.Task, activities []*model.Activity, now time.Time) []model.FeedItem {
	items := make([]model.FeedItem, 0, 3*feedPerSource)

	for _, chat := range headEntries(chats) {
		items = append(items, model.FeedItem{
			Type:      "chat",
			Title:     chat.FeedTitle(),
			Timestamp: chat.Timestamp.Time,
		})
	}
	for i, task := range tasks {
		if i == feedPerSource {
			break
		}
		items = append(items, model.FeedItem{
			Type:      "task",
			Title:     task.Title,
			Timestamp: task.Timestamp.Time,
		})
	}
	for i, activity := range activities {
		if i == feedPerSource {
			break
		}
		title := activity.Type
		if title == "" {
			title = "Study session"
		}
		items = append(items, model.FeedItem{
			Type:      "activity",
			Title:     title,
			Timestamp: activity.Timestamp.Time,
		})
	}

	sortFeedDesc(items)
	if len(items) > feedLimit {
		items = items[:feedLimit]
	}
	for i := range items {
		items[i].RelativeLabel = utils.FormatRelativeTime(items[i].Timestamp, now)
	}
	return items
}

func headEntries(entries []model.ChatEntry) []model.ChatEntry {
	if len(entries) > feedPerSource {
		return entries[:feedPerSource]
	}
	return entries
}

func sortFeedDesc(items []model.FeedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
}
