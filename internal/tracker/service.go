package tracker

import (
	"context"
	"errors"
	"fmt"
	"math"
	"readtrack/internal/models"
	"readtrack/internal/providers"
	"readtrack/internal/storage/interfaces"
	"readtrack/internal/structures"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultHistoryLimit  = 20
	DefaultResetTokenTTL = 2 * time.Minute
)

type ChapterFetcher interface {
	FetchChapter(ctx context.Context, book string, chapter int) (*models.Chapter, error)
}

type ReadingServiceInterface interface {
	Open(ctx context.Context, now time.Time) models.Dashboard
	SearchChapter(ctx context.Context, book, chapter string) (*models.Chapter, error)
	MarkRead(ctx context.Context, now time.Time) (*models.MarkResult, error)
	SetGoal(ctx context.Context, goal int, now time.Time) (models.Dashboard, error)
	RequestReset(now time.Time) models.ResetRequest
	ConfirmReset(token string, now time.Time) error
	Stats(now time.Time) models.StatsView
	Achievements(now time.Time) []models.AchievementProgress
	History(limit int) []models.HistoryEntry
	HistorySize() int
	RollDay(now time.Time)
}

// session is what the reader currently has on screen. It is not persisted.
type session struct {
	chapter *models.Chapter
	marked  bool
}

type pendingReset struct {
	token     string
	expiresAt time.Time
}

// Service runs the user actions one at a time against the persisted state.
type Service struct {
	mu           sync.Mutex
	state        *StateStore
	ledger       *Ledger
	notifier     *GoalNotifier
	chapters     ChapterFetcher
	loc          *time.Location
	historyLimit int
	resetTTL     time.Duration
	logger       providers.Logger
	metrics      providers.MetricsProviderInterface

	session session
	reset   *pendingReset
}

func (s *Service) reconcile(now time.Time) {
	res := ReconcileDay(s.state, now, s.loc)
	if res.StreakBroken {
		s.logger.Infof(providers.TypeApp, "Streak broken, last activity before yesterday")
	}
}

func (s *Service) publishProgress() {
	s.metrics.SetProgress(s.state.ChaptersToday(), s.state.StreakDays(), s.ledger.Len())
}

func (s *Service) dashboard(celebration *models.Celebration) models.Dashboard {
	c := s.state.Counters()
	progress := GoalProgress(c.ChaptersToday, c.DailyGoal)
	return models.Dashboard{
		ChaptersToday:   c.ChaptersToday,
		DailyGoal:       c.DailyGoal,
		StreakDays:      c.StreakDays,
		GoalProgress:    progress,
		RoundedProgress: int(math.Round(progress)),
		CurrentChapter:  s.session.chapter,
		Celebration:     celebration,
	}
}

// Open is the page-load step: roll the day over if needed and celebrate a
// goal that was reached but not yet celebrated today.
func (s *Service) Open(ctx context.Context, now time.Time) models.Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reconcile(now)
	celebration, _ := s.notifier.Check(ctx, now)
	s.publishProgress()
	return s.dashboard(celebration)
}

// SearchChapter validates the input and loads the chapter into the session.
// On failure the session keeps whatever chapter it had.
func (s *Service) SearchChapter(ctx context.Context, book, chapter string) (*models.Chapter, error) {
	in, err := ParseSearchInput(book, chapter)
	if err != nil {
		return nil, err
	}

	// The fetch runs unlocked so a slow service does not stall other actions.
	loaded, err := s.chapters.FetchChapter(ctx, in.Book, in.Chapter)
	if err != nil {
		s.metrics.IncChapterFetchErrors()
		s.logger.Warnf(providers.TypeGet, "Chapter %s %d not loaded: %s", in.Book, in.Chapter, err)
		if errors.Is(err, ErrChapterNotFound) || errors.Is(err, ErrChapterUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrChapterUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session{chapter: loaded}
	return loaded, nil
}

// MarkRead records the loaded chapter once per load.
func (s *Service) MarkRead(ctx context.Context, now time.Time) (*models.MarkResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.chapter == nil {
		return nil, ErrNoChapterLoaded
	}
	if s.session.marked {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyMarked, s.session.chapter.Reference)
	}

	s.reconcile(now)
	s.state.SetChaptersToday(s.state.ChaptersToday() + 1)

	entry := models.NewHistoryEntry(s.session.chapter.Reference, now)
	if err := s.ledger.Append(entry); err != nil {
		return nil, fmt.Errorf("append history: %w", err)
	}
	s.session.marked = true
	s.metrics.IncChaptersRead()
	s.logger.Infof(providers.TypePost, "Marked %s as read", entry.Reference)

	celebration, _ := s.notifier.Check(ctx, now)
	s.publishProgress()
	return &models.MarkResult{Entry: entry, Dashboard: s.dashboard(celebration)}, nil
}

func (s *Service) SetGoal(ctx context.Context, goal int, now time.Time) (models.Dashboard, error) {
	if goal < 1 {
		return models.Dashboard{}, fmt.Errorf("%w: got %d", ErrInvalidGoal, goal)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reconcile(now)
	s.state.SetDailyGoal(goal)
	s.logger.Infof(providers.TypePost, "Daily goal set to %d", goal)

	celebration, _ := s.notifier.Check(ctx, now)
	s.publishProgress()
	return s.dashboard(celebration), nil
}

// RequestReset issues the single-use token ConfirmReset expects. A new
// request replaces any earlier token.
func (s *Service) RequestReset(now time.Time) models.ResetRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset = &pendingReset{token: uuid.NewString(), expiresAt: now.Add(s.resetTTL)}
	return models.ResetRequest{Token: s.reset.token, ExpiresAt: s.reset.expiresAt}
}

// ConfirmReset clears the history and zeroes today's count, the streak and
// the best streak. The daily goal is kept.
func (s *Service) ConfirmReset(token string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reset == nil || token == "" || token != s.reset.token {
		return ErrConfirmationRequired
	}
	if now.After(s.reset.expiresAt) {
		s.reset = nil
		return fmt.Errorf("%w: token expired", ErrConfirmationRequired)
	}
	s.reset = nil

	s.state.SetChaptersToday(0)
	s.state.SetStreakDays(0)
	s.state.SetBestStreak(0)
	s.ledger.Clear()
	s.session = session{}
	s.logger.Infof(providers.TypeApp, "Reading history cleared")

	s.publishProgress()
	return nil
}

func (s *Service) Stats(now time.Time) models.StatsView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reconcile(now)
	return ComputeStats(s.ledger.All(), s.state.Counters(), s.loc)
}

func (s *Service) Achievements(now time.Time) []models.AchievementProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reconcile(now)
	return EvaluateAchievements(s.ledger.Len(), s.state.StreakDays())
}

// History returns the most recent entries first. limit <= 0 uses the
// configured default.
func (s *Service) History(limit int) []models.HistoryEntry {
	if limit <= 0 {
		limit = s.historyLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Recent(limit)
}

func (s *Service) HistorySize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Len()
}

// RollDay is the midnight job: it clears yesterday's count so the gauges
// read zero, without recording activity for the new day.
func (s *Service) RollDay(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if RollCounter(s.state, now, s.loc) {
		s.logger.Infof(providers.TypeApp, "Daily chapter count reset for %s", CalendarDate(now, s.loc))
	}
	s.publishProgress()
}

var _ interfaces.DayRoller = (*Service)(nil)

func NewService(conf *structures.Config, store interfaces.KeyValueStore, chapters ChapterFetcher, quotes QuoteFetcher, logger providers.Logger, metrics providers.MetricsProviderInterface) (*Service, error) {
	loc, err := conf.Tracker.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid tracker timezone: %w", err)
	}

	historyLimit := conf.Tracker.HistoryLimit
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	resetTTL := conf.Tracker.ResetTokenTTL
	if resetTTL <= 0 {
		resetTTL = DefaultResetTokenTTL
	}

	state := NewStateStore(store, conf.Tracker.DefaultGoal)
	return &Service{
		state:        state,
		ledger:       NewLedger(store, conf.Tracker.HistoryCap, logger),
		notifier:     NewGoalNotifier(state, quotes, conf.Quotes.FallbackMessage, loc, logger, metrics),
		chapters:     chapters,
		loc:          loc,
		historyLimit: historyLimit,
		resetTTL:     resetTTL,
		logger:       logger,
		metrics:      metrics,
	}, nil
}
