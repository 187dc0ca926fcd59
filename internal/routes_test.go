package internal

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"readtrack/internal/controllers"
	"readtrack/internal/models"
	"readtrack/internal/storage"
	"readtrack/internal/structures"
	"readtrack/internal/testutil"
	"readtrack/internal/tracker"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routeTestScheduler struct {
	restoreErr error
	restored   int
	inits      int
	stops      int
	persists   int
}

func (s *routeTestScheduler) Init() error    { s.inits++; return nil }
func (s *routeTestScheduler) Stop()          { s.stops++ }
func (s *routeTestScheduler) Restore() error { s.restored++; return s.restoreErr }
func (s *routeTestScheduler) Persist() error { s.persists++; return nil }

func testConfig(metrics bool) *structures.Config {
	return &structures.Config{
		AppName:   "ReadTrack",
		WebServer: structures.Server{Host: "127.0.0.1", Port: 0},
		Metrics:   structures.MetricsConfig{Enabled: metrics},
		Tracker:   structures.TrackerConfig{DefaultGoal: 3, HistoryCap: 100, HistoryLimit: 20, Timezone: "UTC"},
	}
}

func newTestHandler(t *testing.T, conf *structures.Config) (http.Handler, *testutil.MockMetrics) {
	t.Helper()
	logger := &testutil.MockLogger{}
	metrics := &testutil.MockMetrics{}
	fetcher := &testutil.MockChapterFetcher{
		Chapters: map[string]*models.Chapter{"Salmos": {Book: "Salmos", Number: 23, Reference: "Salmos 23", Verses: []models.Verse{{Number: 1, Text: "O Senhor é o meu pastor"}}}},
		NotFound: tracker.ErrChapterNotFound,
	}
	svc, err := tracker.NewService(conf, storage.NewMemoryStore(), fetcher, &testutil.MockQuoteFetcher{}, logger, metrics)
	require.NoError(t, err)

	router := InitRoutes(controllers.NewReadingController(logger, svc))
	return NewHandler(controllers.NewHealthController(svc), conf, logger, router, metrics), metrics
}

func do(h http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestInitRoutes_RegistersReadingRoutes(t *testing.T) {
	rc := controllers.NewReadingController(&testutil.MockLogger{}, nil)

	routes := InitRoutes(rc).GetRoutes()

	urls := make([]string, 0, len(routes))
	for _, r := range routes {
		urls = append(urls, r.Url)
	}
	assert.Equal(t, []string{"/dashboard", "/chapter", "/chapter/read", "/goal", "/stats", "/achievements", "/history", "/history/reset"}, urls)
}

func TestHandler_ReadingFlow(t *testing.T) {
	h, metrics := newTestHandler(t, testConfig(false))

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/dashboard", "").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/chapter?book=Salmos&chapter=23", "").Code)
	assert.Equal(t, http.StatusCreated, do(h, http.MethodPost, "/chapter/read", "").Code)
	assert.Equal(t, http.StatusConflict, do(h, http.MethodPost, "/chapter/read", "").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodPut, "/goal", `{"goal":1}`).Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/stats", "").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/achievements", "").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/history?limit=5", "").Code)
	assert.Equal(t, http.StatusPreconditionFailed, do(h, http.MethodDelete, "/history", "").Code)
	assert.Equal(t, http.StatusAccepted, do(h, http.MethodPost, "/history/reset", "").Code)

	assert.Equal(t, 10, metrics.Requests)
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler(t, testConfig(false))

	rr := do(h, http.MethodPatch, "/history", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "DELETE, GET", rr.Header().Get("Allow"))
}

func TestHandler_UnknownPath(t *testing.T) {
	h, _ := newTestHandler(t, testConfig(false))
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/nope", "").Code)
}

func TestHandler_HealthBypassesMetrics(t *testing.T) {
	h, metrics := newTestHandler(t, testConfig(false))

	rr := do(h, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"history_size":0`)
	assert.Zero(t, metrics.Requests)
}

func TestHandler_MetricsEndpoint(t *testing.T) {
	h, _ := newTestHandler(t, testConfig(true))
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/metrics", "").Code)

	h, _ = newTestHandler(t, testConfig(false))
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/metrics", "").Code)
}

func TestNewApp_RestoresState(t *testing.T) {
	sched := &routeTestScheduler{restoreErr: errors.New("corrupt snapshot")}
	logger := &testutil.MockLogger{}

	app, err := NewApp(http.NotFoundHandler(), sched, testConfig(false), logger)

	require.NoError(t, err)
	assert.Equal(t, 1, sched.restored)
	assert.Equal(t, "127.0.0.1:0", app.WebServer.Addr)
	assert.Equal(t, 1, logger.Count("error"))
}

func TestApp_ShutdownPersists(t *testing.T) {
	sched := &routeTestScheduler{}
	app, err := NewApp(http.NotFoundHandler(), sched, testConfig(false), &testutil.MockLogger{})
	require.NoError(t, err)

	go func() { _ = app.WebServer.ListenAndServe() }()
	time.Sleep(20 * time.Millisecond)

	require.NoError(t, app.Shutdown())
	assert.Equal(t, 1, sched.stops)
	assert.Equal(t, 1, sched.persists)
}
