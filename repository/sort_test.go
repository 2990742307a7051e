package repository

import (
	"math/rand"
	"testing"
	"time"

	"suapa/model"
)

func TestSortChatEntriesDesc(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	entries := []model.ChatEntry{
		{ID: "old", Timestamp: model.NewTimestamp(base.Add(-2 * time.Hour))},
		{ID: "new", Timestamp: model.NewTimestamp(base)},
		{ID: "mid", Timestamp: model.NewTimestamp(base.Add(-time.Hour))},
	}

	SortChatEntriesDesc(entries)

	want := []string{"new", "mid", "old"}
	for i, id := range want {
		if entries[i].ID != id {
			t.Errorf("entries[%d].ID = %q, want %q", i, entries[i].ID, id)
		}
	}
}

func TestSortTasksDescShuffled(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	var tasks []*model.Task
	for i := 0; i < 20; i++ {
		tasks = append(tasks, &model.Task{
			TaskID:    "t",
			Timestamp: model.NewTimestamp(base.Add(-time.Duration(i) * time.Minute)),
		})
	}
	rand.New(rand.NewSource(1)).Shuffle(len(tasks), func(i, j int) {
		tasks[i], tasks[j] = tasks[j], tasks[i]
	})

	SortTasksDesc(tasks)

	for i := 1; i < len(tasks); i++ {
		if tasks[i].Timestamp.After(tasks[i-1].Timestamp.Time) {
			t.Fatalf("tasks out of order at %d", i)
		}
	}
}

func TestSortActivitiesDescStable(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	// Two activities on the same instant keep their original order.
	activities := []*model.Activity{
		{ActivityID: "first", Timestamp: model.NewTimestamp(base)},
		{ActivityID: "second", Timestamp: model.NewTimestamp(base)},
		{ActivityID: "newer", Timestamp: model.NewTimestamp(base.Add(time.Minute))},
	}

	SortActivitiesDesc(activities)

	if activities[0].ActivityID != "newer" {
		t.Errorf("activities[0] = %q, want newer", activities[0].ActivityID)
	}
	if activities[1].ActivityID != "first" || activities[2].ActivityID != "second" {
		t.Errorf("equal timestamps reordered: %q, %q", activities[1].ActivityID, activities[2].ActivityID)
	}
}
