package tracker

import (
	"readtrack/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byName(list []models.AchievementProgress) map[string]models.AchievementProgress {
	out := make(map[string]models.AchievementProgress, len(list))
	for _, a := range list {
		out[a.Name] = a
	}
	return out
}

func TestAchievements_Catalog(t *testing.T) {
	require.Len(t, Achievements, 6)

	want := []struct {
		name   string
		metric models.Metric
		req    int
	}{
		{"First Step", models.MetricChapters, 1},
		{"Dedicated", models.MetricChapters, 10},
		{"Persistent", models.MetricChapters, 50},
		{"Streak Started", models.MetricStreak, 3},
		{"Committed", models.MetricStreak, 7},
		{"Champion", models.MetricStreak, 30},
	}
	for i, w := range want {
		assert.Equal(t, w.name, Achievements[i].Name)
		assert.Equal(t, w.metric, Achievements[i].Metric)
		assert.Equal(t, w.req, Achievements[i].Requirement)
	}
}

func TestEvaluateAchievements_NothingUnlocked(t *testing.T) {
	for _, a := range EvaluateAchievements(0, 0) {
		assert.False(t, a.Unlocked, a.Name)
		assert.Zero(t, a.Percent, a.Name)
	}
}

func TestEvaluateAchievements_ThresholdsAreInclusive(t *testing.T) {
	got := byName(EvaluateAchievements(10, 3))

	assert.True(t, got["First Step"].Unlocked)
	assert.True(t, got["Dedicated"].Unlocked)
	assert.False(t, got["Persistent"].Unlocked)
	assert.Equal(t, 20.0, got["Persistent"].Percent)
	assert.True(t, got["Streak Started"].Unlocked)
	assert.False(t, got["Committed"].Unlocked)
	assert.Equal(t, 3, got["Committed"].Current)
}

func TestEvaluateAchievements_PercentCapped(t *testing.T) {
	got := byName(EvaluateAchievements(80, 45))

	for _, a := range got {
		assert.True(t, a.Unlocked, a.Name)
		assert.Equal(t, 100.0, a.Percent, a.Name)
	}
	assert.Equal(t, 80, got["Persistent"].Current)
	assert.Equal(t, 45, got["Champion"].Current)
}
