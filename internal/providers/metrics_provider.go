package providers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"readtrack/internal/structures"
	"time"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObservePersistenceDuration(duration time.Duration)
	IncChaptersRead()
	IncGoalCelebrations()
	IncQuoteFallbacks()
	IncChapterFetchErrors()
	SetProgress(chaptersToday, streakDays, historySize int)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	persistenceDuration prometheus.Histogram
	chaptersRead        prometheus.Counter
	goalCelebrations    prometheus.Counter
	quoteFallbacks      prometheus.Counter
	chapterFetchErrors  prometheus.Counter
	progress            *prometheus.GaugeVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncChaptersRead() {
	m.chaptersRead.Inc()
}

func (m *MetricsProvider) IncGoalCelebrations() {
	m.goalCelebrations.Inc()
}

func (m *MetricsProvider) IncQuoteFallbacks() {
	m.quoteFallbacks.Inc()
}

func (m *MetricsProvider) IncChapterFetchErrors() {
	m.chapterFetchErrors.Inc()
}

func (m *MetricsProvider) SetProgress(chaptersToday, streakDays, historySize int) {
	m.progress.WithLabelValues("chapters_today").Set(float64(chaptersToday))
	m.progress.WithLabelValues("streak_days").Set(float64(streakDays))
	m.progress.WithLabelValues("history_size").Set(float64(historySize))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "readtrack_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "readtrack_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "readtrack_chapter_cache_hits_total",
			Help: "Total number of chapter cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "readtrack_chapter_cache_misses_total",
			Help: "Total number of chapter cache misses",
		}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "readtrack_persistence_duration_seconds",
			Help:    "Duration of snapshot persistence in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		chaptersRead: promauto.NewCounter(prometheus.CounterOpts{
			Name: "readtrack_chapters_read_total",
			Help: "Chapters marked as read since start",
		}),

		goalCelebrations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "readtrack_goal_celebrations_total",
			Help: "Daily goal completions celebrated",
		}),

		quoteFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "readtrack_quote_fallbacks_total",
			Help: "Celebrations that fell back to the default message",
		}),

		chapterFetchErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "readtrack_chapter_fetch_errors_total",
			Help: "Chapter lookups that failed or were not found",
		}),

		progress: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "readtrack_progress",
			Help: "Current reading counters",
		}, []string{"counter"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (n *noopMetrics) IncChaptersRead()                                 {}
func (n *noopMetrics) IncGoalCelebrations()                             {}
func (n *noopMetrics) IncQuoteFallbacks()                               {}
func (n *noopMetrics) IncChapterFetchErrors()                           {}
func (n *noopMetrics) SetProgress(_, _, _ int)                          {}
