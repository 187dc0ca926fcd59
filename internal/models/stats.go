package models

import "time"

type Metric string

const (
	MetricChapters Metric = "chapters"
	MetricStreak   Metric = "streak"
)

type Achievement struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Metric      Metric `json:"metric"`
	Requirement int    `json:"requirement"`
	Icon        string `json:"icon"`
}

type AchievementProgress struct {
	Achievement
	Current  int     `json:"current"`
	Unlocked bool    `json:"unlocked"`
	Percent  float64 `json:"percent"`
}

// Counters is the persisted daily-progress state.
type Counters struct {
	ChaptersToday int    `json:"chaptersToday"`
	DailyGoal     int    `json:"dailyGoal"`
	StreakDays    int    `json:"streakDays"`
	BestStreak    int    `json:"bestStreak"`
	LastReadDate  string `json:"lastReadDate,omitempty"`
	GoalMetToday  string `json:"goalMetToday,omitempty"`
}

type StatsView struct {
	TotalChapters       int                   `json:"totalChapters"`
	ActiveDays          int                   `json:"activeDays"`
	AveragePerActiveDay float64               `json:"averagePerActiveDay"`
	FavoriteReference   string                `json:"favoriteReference,omitempty"`
	FirstRead           *time.Time            `json:"firstRead,omitempty"`
	LastRead            *time.Time            `json:"lastRead,omitempty"`
	ChaptersToday       int                   `json:"chaptersToday"`
	DailyGoal           int                   `json:"dailyGoal"`
	StreakDays          int                   `json:"streakDays"`
	BestStreak          int                   `json:"bestStreak"`
	GoalProgress        float64               `json:"goalProgress"`
	RoundedProgress     int                   `json:"roundedProgress"`
	Achievements        []AchievementProgress `json:"achievements"`
}
