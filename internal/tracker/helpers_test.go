package tracker

import (
	"readtrack/internal/models"
	"readtrack/internal/storage"
	"readtrack/internal/storage/interfaces"
	"readtrack/internal/structures"
	"readtrack/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var day1 = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func testConfig() *structures.Config {
	return &structures.Config{
		Quotes: structures.QuotesConfig{FallbackMessage: "Continue firme na sua jornada de fé!"},
		Tracker: structures.TrackerConfig{
			DefaultGoal:   3,
			HistoryCap:    100,
			HistoryLimit:  20,
			Timezone:      "UTC",
			ResetTokenTTL: 2 * time.Minute,
		},
	}
}

type fixture struct {
	svc     *Service
	store   interfaces.KeyValueStore
	state   *StateStore
	fetcher *testutil.MockChapterFetcher
	quotes  *testutil.MockQuoteFetcher
	logger  *testutil.MockLogger
	metrics *testutil.MockMetrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store: storage.NewMemoryStore(),
		fetcher: &testutil.MockChapterFetcher{
			Chapters: map[string]*models.Chapter{
				"João":   {Book: "João", Number: 3, Reference: "João 3", Verses: []models.Verse{{Number: 16, Text: "Porque Deus amou o mundo"}}},
				"Salmos": {Book: "Salmos", Number: 23, Reference: "Salmos 23", Verses: []models.Verse{{Number: 1, Text: "O Senhor é o meu pastor"}}},
			},
			NotFound: ErrChapterNotFound,
		},
		quotes:  &testutil.MockQuoteFetcher{Quote: models.Quote{Content: "Keep going", Author: "Anon"}},
		logger:  &testutil.MockLogger{},
		metrics: &testutil.MockMetrics{},
	}
	svc, err := NewService(testConfig(), f.store, f.fetcher, f.quotes, f.logger, f.metrics)
	require.NoError(t, err)
	f.svc = svc
	f.state = svc.state
	return f
}

// read loads a chapter and marks it read at now.
func (f *fixture) read(t *testing.T, book, chapter string, now time.Time) *models.MarkResult {
	t.Helper()
	_, err := f.svc.SearchChapter(t.Context(), book, chapter)
	require.NoError(t, err)
	res, err := f.svc.MarkRead(t.Context(), now)
	require.NoError(t, err)
	return res
}
