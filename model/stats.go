package model

import "time"

// DashboardStats is the data contract the dashboard renders.
type DashboardStats struct {
	ChatsToday      int        `json:"chatsToday"`
	ActiveTasks     int        `json:"activeTasks"`
	CompletedTasks  int        `json:"completedTasks"`
	TotalChats      int        `json:"totalChats"`
	TotalActivities int        `json:"totalActivities"`
	StudyStreak     int        `json:"studyStreak"`
	RecentActivity  []FeedItem `json:"recentActivity"`
}

// FeedItem is one row of the merged recent-activity feed.
type FeedItem struct {
	Type          string    `json:"type"` // chat | task | activity
	Title         string    `json:"title"`
	Timestamp     time.Time `json:"timestamp"`
	RelativeLabel string    `json:"relativeLabel"`
}

// AdminStats summarizes the user base for the admin dashboard.
type AdminStats struct {
	TotalUsers   int `json:"totalUsers"`
	AdminUsers   int `json:"adminUsers"`
	NewThisWeek  int `json:"newThisWeek"`
	DeletedUsers int `json:"deletedUsers"`
}
