package repository

import (
	"sort"

	"suapa/model"
)

// In-memory ordering used by the degraded load path. The sorted Mongo query
// and these helpers must agree: timestamp descending, newest first.

func SortChatEntriesDesc(entries []model.ChatEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp.Time)
	})
}

func SortTasksDesc(tasks []*model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Timestamp.After(tasks[j].Timestamp.Time)
	})
}

func SortActivitiesDesc(activities []*model.Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp.Time)
	})
}
