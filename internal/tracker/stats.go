package tracker

import (
	"math"
	"readtrack/internal/models"
	"time"
)

func ComputeStats(history []models.HistoryEntry, counters models.Counters, loc *time.Location) models.StatsView {
	view := models.StatsView{
		TotalChapters:     len(history),
		ActiveDays:        activeDays(history, loc),
		FavoriteReference: favoriteReference(history),
		ChaptersToday:     counters.ChaptersToday,
		DailyGoal:         counters.DailyGoal,
		StreakDays:        counters.StreakDays,
		BestStreak:        max(counters.BestStreak, counters.StreakDays),
		GoalProgress:      GoalProgress(counters.ChaptersToday, counters.DailyGoal),
	}
	view.RoundedProgress = int(math.Round(view.GoalProgress))

	if view.ActiveDays > 0 {
		avg := float64(view.TotalChapters) / float64(view.ActiveDays)
		view.AveragePerActiveDay = math.Round(avg*10) / 10
	}

	if len(history) > 0 {
		first := history[0].At().In(loc)
		last := history[len(history)-1].At().In(loc)
		view.FirstRead = &first
		view.LastRead = &last
	}

	view.Achievements = EvaluateAchievements(view.TotalChapters, counters.StreakDays)
	return view
}

// GoalProgress is the daily goal bar percentage, clamped at 100.
func GoalProgress(chaptersToday, dailyGoal int) float64 {
	return percentOf(chaptersToday, dailyGoal)
}

func activeDays(history []models.HistoryEntry, loc *time.Location) int {
	days := make(map[string]struct{}, len(history))
	for _, e := range history {
		days[CalendarDate(e.At(), loc)] = struct{}{}
	}
	return len(days)
}

// favoriteReference scans left to right; a reference replaces the current
// favorite only when it strictly exceeds the best count, so the earliest to
// reach the maximum wins ties.
func favoriteReference(history []models.HistoryEntry) string {
	counts := make(map[string]int, len(history))
	favorite, best := "", 0
	for _, e := range history {
		counts[e.Reference]++
		if counts[e.Reference] > best {
			best = counts[e.Reference]
			favorite = e.Reference
		}
	}
	return favorite
}
