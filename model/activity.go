package model

import "time"

// DayFormat is the calendar-day key used for streak bookkeeping.
const DayFormat = "2006-01-02"

// Activity marks that a user performed a trackable action. Append-only.
type Activity struct {
	ActivityID string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"userId" json:"userId"`
	Type       string    `bson:"type" json:"type"`
	Timestamp  Timestamp `bson:"timestamp" json:"timestamp"`
}

// StreakState is the one-per-user streak document, upserted at most once
// per calendar day by the write path.
type StreakState struct {
	UserID          string    `bson:"_id" json:"userId"`
	Streak          int       `bson:"streak" json:"streak"`
	LastActiveDate  string    `bson:"lastActiveDate" json:"lastActiveDate"`
	TotalDaysActive int       `bson:"totalDaysActive" json:"totalDaysActive"`
	LastSeen        time.Time `bson:"lastSeen,omitempty" json:"lastSeen,omitempty"`
	CreatedAt       time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
