package tracker

import (
	"context"
	"readtrack/internal/models"
	"readtrack/internal/providers"
	"strings"
	"time"
)

type QuoteFetcher interface {
	FetchQuote(ctx context.Context) (models.Quote, error)
}

// GoalNotifier celebrates the daily goal at most once per calendar day.
// goalMetToday holding today's date is the "celebrated" state; any other
// value is "pending".
type GoalNotifier struct {
	state    *StateStore
	quotes   QuoteFetcher
	fallback string
	loc      *time.Location
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
}

func NewGoalNotifier(state *StateStore, quotes QuoteFetcher, fallback string, loc *time.Location, logger providers.Logger, metrics providers.MetricsProviderInterface) *GoalNotifier {
	if fallback == "" {
		fallback = providers.DefaultFallbackMessage
	}
	return &GoalNotifier{
		state:    state,
		quotes:   quotes,
		fallback: fallback,
		loc:      loc,
		logger:   logger,
		metrics:  metrics,
	}
}

// Check fires the pending -> celebrated transition when today's count has
// reached the goal. Streak bookkeeping is written before the quote is
// fetched, and a failed fetch only swaps in the fallback message.
func (n *GoalNotifier) Check(ctx context.Context, now time.Time) (*models.Celebration, bool) {
	today := CalendarDate(now, n.loc)
	if n.state.ChaptersToday() < n.state.DailyGoal() {
		return nil, false
	}
	if met, ok := n.state.GoalMetToday(); ok && met == today {
		return nil, false
	}

	streak := n.state.StreakDays() + 1
	n.state.SetStreakDays(streak)
	n.state.SetBestStreak(max(n.state.BestStreak(), streak))
	n.state.SetGoalMetToday(today)
	n.metrics.IncGoalCelebrations()
	n.logger.Infof(providers.TypeApp, "Daily goal met on %s, streak is now %d", today, streak)

	celebration := &models.Celebration{Date: today}
	quote, err := n.quotes.FetchQuote(ctx)
	switch {
	case err != nil:
		n.logger.Warnf(providers.TypeApp, "Quote fetch failed, using fallback: %s", err)
		celebration.Message, celebration.Fallback = n.fallback, true
	case strings.TrimSpace(quote.Content) == "":
		n.logger.Warnf(providers.TypeApp, "Quote service returned an empty quote, using fallback")
		celebration.Message, celebration.Fallback = n.fallback, true
	default:
		celebration.Message = quote.Message()
	}
	if celebration.Fallback {
		n.metrics.IncQuoteFallbacks()
	}
	return celebration, true
}
