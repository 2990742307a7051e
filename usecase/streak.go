package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	"suapa/model"
	"suapa/utils"
)

// Streak transitions, tracked in metrics.
const (
	StreakInit     = "init"
	StreakSameDay  = "same_day"
	StreakExtended = "extended"
	StreakReset    = "reset"
)

// dayOf truncates an instant to its local calendar day.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from earlier to later. Rounding absorbs
// DST offsets inside the day arithmetic.
func daysBetween(later, earlier time.Time) int {
	return int(math.Round(dayOf(later).Sub(dayOf(earlier)).Hours() / 24))
}

// ComputeStreak derives the displayed streak from the full activity set:
// group timestamps by local calendar day, sort distinct days descending,
// and walk backward while consecutive days are at most one day apart. The
// walk only starts when the most recent active day is today or yesterday;
// an older last activity displays as 0 until the next write resets it.
func ComputeStreak(activities []*model.Activity, now time.Time) int {
	if len(activities) == 0 {
		return 0
	}

	seen := make(map[time.Time]struct{})
	var days []time.Time
	for _, a := range activities {
		day := dayOf(a.Timestamp.In(now.Location()))
		if _, ok := seen[day]; !ok {
			seen[day] = struct{}{}
			days = append(days, day)
		}
	}

	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	if daysBetween(now, days[0]) > 1 {
		return 0
	}

	streak := 0
	prev := days[0]
	for _, day := range days {
		if daysBetween(prev, day) <= 1 {
			streak++
			prev = day
		} else {
			break
		}
	}
	return streak
}

// AdvanceStreak is the write-path transition: given the stored state and
// "now", it returns the next state and which transition happened. The
// same-day case changes nothing, which is what makes repeated writes on
// one calendar day idempotent.
func AdvanceStreak(state *model.StreakState, userID string, now time.Time) (model.StreakState, string) {
	today := now.Format(model.DayFormat)

	if state == nil {
		return model.StreakState{
			UserID:          userID,
			Streak:          1,
			LastActiveDate:  today,
			TotalDaysActive: 1,
			CreatedAt:       now,
		}, StreakInit
	}

	if state.LastActiveDate == today {
		return *state, StreakSameDay
	}

	next := *state
	next.LastActiveDate = today
	next.TotalDaysActive++

	yesterday := dayOf(now).AddDate(0, 0, -1).Format(model.DayFormat)
	if state.LastActiveDate == yesterday {
		next.Streak++
		return next, StreakExtended
	}

	next.Streak = 1
	return next, StreakReset
}

// StreakStore is the persistence the write path needs.
type StreakStore interface {
	GetStreakState(ctx context.Context, userID string) (*model.StreakState, error)
	SaveStreakState(ctx context.Context, state *model.StreakState) error
}

type StreakService struct {
	Store StreakStore
}

func NewStreakService(store StreakStore) *StreakService {
	return &StreakService{Store: store}
}

// Touch records that the user was active right now and returns the current
// streak. The read-modify-write has no transactional guard; concurrent
// writers on the same day may double-count totalDaysActive.
func (s *StreakService) Touch(ctx context.Context, userID string) (int, error) {
	state, err := s.Store.GetStreakState(ctx, userID)
	if err != nil {
		return 0, err
	}

	next, transition := AdvanceStreak(state, userID, time.Now())
	utils.TrackStreakUpdate(transition)

	if transition == StreakSameDay {
		return next.Streak, nil
	}
	if err := s.Store.SaveStreakState(ctx, &next); err != nil {
		return 0, err
	}
	return next.Streak, nil
}
