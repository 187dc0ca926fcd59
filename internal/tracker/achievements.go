package tracker

import "readtrack/internal/models"

// Achievements is the fixed catalog, in display order.
var Achievements = []models.Achievement{
	{Name: "First Step", Description: "Read your first chapter", Metric: models.MetricChapters, Requirement: 1, Icon: "star"},
	{Name: "Dedicated", Description: "Read 10 chapters", Metric: models.MetricChapters, Requirement: 10, Icon: "bookmark"},
	{Name: "Persistent", Description: "Read 50 chapters", Metric: models.MetricChapters, Requirement: 50, Icon: "trophy"},
	{Name: "Streak Started", Description: "Meet your goal 3 days in a row", Metric: models.MetricStreak, Requirement: 3, Icon: "fire"},
	{Name: "Committed", Description: "Meet your goal 7 days in a row", Metric: models.MetricStreak, Requirement: 7, Icon: "heart"},
	{Name: "Champion", Description: "Meet your goal 30 days in a row", Metric: models.MetricStreak, Requirement: 30, Icon: "award"},
}

func EvaluateAchievements(totalChapters, streakDays int) []models.AchievementProgress {
	out := make([]models.AchievementProgress, 0, len(Achievements))
	for _, a := range Achievements {
		current := totalChapters
		if a.Metric == models.MetricStreak {
			current = streakDays
		}
		out = append(out, models.AchievementProgress{
			Achievement: a,
			Current:     current,
			Unlocked:    current >= a.Requirement,
			Percent:     percentOf(current, a.Requirement),
		})
	}
	return out
}

// percentOf is min(current/target, 1) * 100.
func percentOf(current, target int) float64 {
	if target <= 0 || current >= target {
		return 100
	}
	if current <= 0 {
		return 0
	}
	return float64(current) * 100 / float64(target)
}
