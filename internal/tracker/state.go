package tracker

import (
	"readtrack/internal/models"
	"readtrack/internal/storage/interfaces"
	"strconv"
	"strings"
)

const (
	KeyLastReadDate   = "lastReadDate"
	KeyChaptersToday  = "chaptersToday"
	KeyDailyGoal      = "dailyGoal"
	KeyStreakDays     = "streakDays"
	KeyBestStreak     = "bestStreak"
	KeyGoalMetToday   = "goalMetToday"
	KeyReadingHistory = "readingHistory"
)

// StateStore is the only place that reads or writes the persisted counters.
// Absent or unparseable values fall back to their defaults.
type StateStore struct {
	store       interfaces.KeyValueStore
	defaultGoal int
}

func NewStateStore(store interfaces.KeyValueStore, defaultGoal int) *StateStore {
	if defaultGoal < 1 {
		defaultGoal = 3
	}
	return &StateStore{store: store, defaultGoal: defaultGoal}
}

func (s *StateStore) intValue(key string, def int) int {
	raw, ok := s.store.Get(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return def
	}
	return n
}

func (s *StateStore) setInt(key string, n int) {
	s.store.Set(key, strconv.Itoa(n))
}

func (s *StateStore) ChaptersToday() int     { return s.intValue(KeyChaptersToday, 0) }
func (s *StateStore) SetChaptersToday(n int) { s.setInt(KeyChaptersToday, n) }
func (s *StateStore) StreakDays() int        { return s.intValue(KeyStreakDays, 0) }
func (s *StateStore) SetStreakDays(n int)    { s.setInt(KeyStreakDays, n) }
func (s *StateStore) BestStreak() int        { return s.intValue(KeyBestStreak, 0) }
func (s *StateStore) SetBestStreak(n int)    { s.setInt(KeyBestStreak, n) }

func (s *StateStore) DailyGoal() int {
	goal := s.intValue(KeyDailyGoal, s.defaultGoal)
	if goal < 1 {
		return s.defaultGoal
	}
	return goal
}

func (s *StateStore) SetDailyGoal(n int) { s.setInt(KeyDailyGoal, n) }

func (s *StateStore) LastReadDate() (string, bool) {
	v, ok := s.store.Get(KeyLastReadDate)
	return v, ok && v != ""
}

func (s *StateStore) SetLastReadDate(date string) { s.store.Set(KeyLastReadDate, date) }

func (s *StateStore) GoalMetToday() (string, bool) {
	v, ok := s.store.Get(KeyGoalMetToday)
	return v, ok && v != ""
}

func (s *StateStore) SetGoalMetToday(date string) { s.store.Set(KeyGoalMetToday, date) }

func (s *StateStore) Counters() models.Counters {
	last, _ := s.LastReadDate()
	met, _ := s.GoalMetToday()
	return models.Counters{
		ChaptersToday: s.ChaptersToday(),
		DailyGoal:     s.DailyGoal(),
		StreakDays:    s.StreakDays(),
		BestStreak:    s.BestStreak(),
		LastReadDate:  last,
		GoalMetToday:  met,
	}
}
