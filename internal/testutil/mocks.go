package testutil

import (
	"context"
	"readtrack/internal/models"
	"readtrack/internal/providers"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, l := range m.Logs {
		if l.Level == level {
			n++
		}
	}
	return n
}

// MockMetrics implements providers.MetricsProviderInterface with counters.
type MockMetrics struct {
	mu                 sync.Mutex
	Requests           int
	CacheHits          int
	CacheMisses        int
	Persists           int
	ChaptersRead       int
	GoalCelebrations   int
	QuoteFallbacks     int
	ChapterFetchErrors int
	LastProgress       [3]int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Persists++
}
func (m *MockMetrics) IncChaptersRead() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ChaptersRead++
}
func (m *MockMetrics) IncGoalCelebrations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GoalCelebrations++
}
func (m *MockMetrics) IncQuoteFallbacks() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QuoteFallbacks++
}
func (m *MockMetrics) IncChapterFetchErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ChapterFetchErrors++
}
func (m *MockMetrics) SetProgress(chaptersToday, streakDays, historySize int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastProgress = [3]int{chaptersToday, streakDays, historySize}
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

// MockDayRoller implements interfaces.DayRoller.
type MockDayRoller struct {
	mu    sync.Mutex
	Calls []time.Time
}

func (m *MockDayRoller) RollDay(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, now)
}

// MockChapterFetcher serves one chapter per book from Chapters.
type MockChapterFetcher struct {
	mu       sync.Mutex
	Chapters map[string]*models.Chapter
	Err      error
	NotFound error
	Calls    int
}

func (m *MockChapterFetcher) FetchChapter(_ context.Context, book string, chapter int) (*models.Chapter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	for key, c := range m.Chapters {
		if key == book && c.Number == chapter {
			return c, nil
		}
	}
	if m.NotFound != nil {
		return nil, m.NotFound
	}
	return nil, ErrMockNotFound
}

// MockQuoteFetcher returns Quote or Err and counts calls.
type MockQuoteFetcher struct {
	mu    sync.Mutex
	Quote models.Quote
	Err   error
	Calls int
}

func (m *MockQuoteFetcher) FetchQuote(_ context.Context) (models.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return models.Quote{}, m.Err
	}
	return m.Quote, nil
}

func (m *MockQuoteFetcher) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}
