package tracker

import "time"

const DateLayout = "2006-01-02"

// CalendarDate is the date of t in loc, the unit every day comparison uses.
func CalendarDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// daysBetween counts calendar days from one date string to another. Dates
// are parsed in UTC so DST shifts never change the result.
func daysBetween(from, to string) (int, bool) {
	a, err := time.Parse(DateLayout, from)
	if err != nil {
		return 0, false
	}
	b, err := time.Parse(DateLayout, to)
	if err != nil {
		return 0, false
	}
	return int(b.Sub(a).Hours() / 24), true
}

type DayResult struct {
	ChaptersToday int
	StreakDays    int
	Rolled        bool
	StreakBroken  bool
}

// ReconcileDay rolls the daily counter over when now falls on a different
// calendar day than the last recorded activity. Yesterday keeps the streak,
// an older date resets it. A missing, unreadable or future date leaves the
// streak alone. Calling it again on the same day changes nothing.
func ReconcileDay(state *StateStore, now time.Time, loc *time.Location) DayResult {
	today := CalendarDate(now, loc)
	last, ok := state.LastReadDate()
	if ok && last == today {
		return DayResult{ChaptersToday: state.ChaptersToday(), StreakDays: state.StreakDays()}
	}

	res := DayResult{Rolled: true}
	state.SetChaptersToday(0)

	if ok {
		if gap, valid := daysBetween(last, today); valid && gap > 1 {
			state.SetStreakDays(0)
			res.StreakBroken = true
		}
	}
	state.SetLastReadDate(today)

	res.StreakDays = state.StreakDays()
	return res
}

// RollCounter zeroes today's count once now falls on a later calendar day
// than the last activity. It is not activity itself: the last read date and
// the streak stay as they are for the next ReconcileDay to judge the gap.
func RollCounter(state *StateStore, now time.Time, loc *time.Location) bool {
	last, ok := state.LastReadDate()
	if ok && last == CalendarDate(now, loc) {
		return false
	}
	if state.ChaptersToday() == 0 {
		return false
	}
	state.SetChaptersToday(0)
	return true
}
