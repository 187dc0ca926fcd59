package models

import "time"

// Celebration is produced the one time per day the daily goal is crossed.
type Celebration struct {
	Date     string `json:"date"`
	Message  string `json:"message"`
	Fallback bool   `json:"fallback"`
}

type Dashboard struct {
	ChaptersToday   int          `json:"chaptersToday"`
	DailyGoal       int          `json:"dailyGoal"`
	StreakDays      int          `json:"streakDays"`
	GoalProgress    float64      `json:"goalProgress"`
	RoundedProgress int          `json:"roundedProgress"`
	CurrentChapter  *Chapter     `json:"currentChapter,omitempty"`
	Celebration     *Celebration `json:"celebration,omitempty"`
}

type MarkResult struct {
	Entry     HistoryEntry `json:"entry"`
	Dashboard Dashboard    `json:"dashboard"`
}

// ResetRequest is the first step of clearing all reading data. The token
// must be sent back before ExpiresAt to confirm.
type ResetRequest struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
