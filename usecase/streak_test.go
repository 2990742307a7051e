package usecase

import (
	"context"
	"testing"
	"time"

	"suapa/model"
)

func activityAt(t time.Time) *model.Activity {
	return &model.Activity{
		ActivityID: "a",
		UserID:     "user-1",
		Type:       "chat",
		Timestamp:  model.NewTimestamp(t),
	}
}

func TestComputeStreakConsecutiveDays(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local)

	var activities []*model.Activity
	for d := 3; d >= 0; d-- {
		activities = append(activities, activityAt(now.AddDate(0, 0, -d)))
	}

	if got := ComputeStreak(activities, now); got != 4 {
		t.Errorf("ComputeStreak = %d, want 4", got)
	}
}

func TestComputeStreakStopsAtGap(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local)

	activities := []*model.Activity{
		activityAt(now),
		activityAt(now.AddDate(0, 0, -1)),
		activityAt(now.AddDate(0, 0, -5)),
	}

	if got := ComputeStreak(activities, now); got != 2 {
		t.Errorf("ComputeStreak = %d, want 2", got)
	}
}

func TestComputeStreakExpiredReturnsZero(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local)

	activities := []*model.Activity{
		activityAt(now.AddDate(0, 0, -2)),
		activityAt(now.AddDate(0, 0, -3)),
	}

	if got := ComputeStreak(activities, now); got != 0 {
		t.Errorf("ComputeStreak = %d, want 0", got)
	}
}

func TestComputeStreakMultipleActivitiesSameDay(t *testing.T) {
	now := time.Date(2025, 3, 10, 20, 0, 0, 0, time.Local)

	// Three activities today and two yesterday count as two distinct days.
	activities := []*model.Activity{
		activityAt(now),
		activityAt(now.Add(-2 * time.Hour)),
		activityAt(now.Add(-5 * time.Hour)),
		activityAt(now.AddDate(0, 0, -1)),
		activityAt(now.AddDate(0, 0, -1).Add(-3 * time.Hour)),
	}

	if got := ComputeStreak(activities, now); got != 2 {
		t.Errorf("ComputeStreak = %d, want 2", got)
	}
}

func TestComputeStreakEmpty(t *testing.T) {
	now := time.Now()
	if got := ComputeStreak(nil, now); got != 0 {
		t.Errorf("ComputeStreak = %d, want 0", got)
	}
}

func TestAdvanceStreakInit(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)

	next, transition := AdvanceStreak(nil, "user-1", now)
	if transition != StreakInit {
		t.Errorf("transition = %q, want %q", transition, StreakInit)
	}
	if next.Streak != 1 || next.TotalDaysActive != 1 {
		t.Errorf("streak = %d, totalDaysActive = %d, want 1 and 1", next.Streak, next.TotalDaysActive)
	}
	if next.LastActiveDate != "2025-03-10" {
		t.Errorf("lastActiveDate = %q, want 2025-03-10", next.LastActiveDate)
	}
}

func TestAdvanceStreakSameDayIsIdempotent(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)

	state := &model.StreakState{
		UserID:          "user-1",
		Streak:          3,
		LastActiveDate:  "2025-03-10",
		TotalDaysActive: 7,
	}

	next, transition := AdvanceStreak(state, "user-1", now.Add(4*time.Hour))
	if transition != StreakSameDay {
		t.Errorf("transition = %q, want %q", transition, StreakSameDay)
	}
	if next.Streak != 3 {
		t.Errorf("streak = %d, want unchanged 3", next.Streak)
	}
	if next.TotalDaysActive != 7 {
		t.Errorf("totalDaysActive = %d, want unchanged 7", next.TotalDaysActive)
	}
	if next.LastActiveDate != "2025-03-10" {
		t.Errorf("lastActiveDate = %q, want unchanged 2025-03-10", next.LastActiveDate)
	}
}

func TestAdvanceStreakExtendsFromYesterday(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)

	state := &model.StreakState{
		UserID:          "user-1",
		Streak:          3,
		LastActiveDate:  "2025-03-09",
		TotalDaysActive: 7,
	}

	next, transition := AdvanceStreak(state, "user-1", now)
	if transition != StreakExtended {
		t.Errorf("transition = %q, want %q", transition, StreakExtended)
	}
	if next.Streak != 4 {
		t.Errorf("streak = %d, want 4", next.Streak)
	}
	if next.TotalDaysActive != 8 {
		t.Errorf("totalDaysActive = %d, want 8", next.TotalDaysActive)
	}
}

func TestAdvanceStreakResetsAfterGap(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)

	state := &model.StreakState{
		UserID:          "user-1",
		Streak:          5,
		LastActiveDate:  "2025-03-07",
		TotalDaysActive: 12,
	}

	next, transition := AdvanceStreak(state, "user-1", now)
	if transition != StreakReset {
		t.Errorf("transition = %q, want %q", transition, StreakReset)
	}
	if next.Streak != 1 {
		t.Errorf("streak = %d, want 1", next.Streak)
	}
	if next.TotalDaysActive != 13 {
		t.Errorf("totalDaysActive = %d, want 13", next.TotalDaysActive)
	}
}

type fakeStreakStore struct {
	state *model.StreakState
	saves int
}

func (f *fakeStreakStore) GetStreakState(ctx context.Context, userID string) (*model.StreakState, error) {
	return f.state, nil
}

func (f *fakeStreakStore) SaveStreakState(ctx context.Context, state *model.StreakState) error {
	f.state = state
	f.saves++
	return nil
}

func TestTouchSameDaySkipsSave(t *testing.T) {
	store := &fakeStreakStore{
		state: &model.StreakState{
			UserID:          "user-1",
			Streak:          2,
			LastActiveDate:  time.Now().Format(model.DayFormat),
			TotalDaysActive: 4,
		},
	}
	svc := NewStreakService(store)

	streak, err := svc.Touch(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Touch: %v", err)
	}
	if streak != 2 {
		t.Errorf("streak = %d, want 2", streak)
	}
	if store.saves != 0 {
		t.Errorf("saves = %d, want 0 for a same-day touch", store.saves)
	}
}

func TestTouchFirstActivitySaves(t *testing.T) {
	store := &fakeStreakStore{}
	svc := NewStreakService(store)

	streak, err := svc.Touch(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Touch: %v", err)
	}
	if streak != 1 {
		t.Errorf("streak = %d, want 1", streak)
	}
	if store.saves != 1 {
		t.Errorf("saves = %d, want 1", store.saves)
	}
	if store.state == nil || store.state.LastActiveDate != time.Now().Format(model.DayFormat) {
		t.Errorf("saved state = %+v, want lastActiveDate of today", store.state)
	}
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2025, 3, 10, 23, 59, 0, 0, time.Local)
	early := time.Date(2025, 3, 9, 0, 1, 0, 0, time.Local)

	if got := daysBetween(late, early); got != 1 {
		t.Errorf("daysBetween = %d, want 1", got)
	}
}
