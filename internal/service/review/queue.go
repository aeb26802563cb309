package review

import (
	"time"

	"github.com/fluentdeck/fluentdeck-backend/internal/domain"
)

// IsDueToday reports whether a word should be offered for review before the
// end of now's calendar day in the given timezone. Words that have never been
// scheduled are always due.
func IsDueToday(state domain.WordState, now time.Time, loc *time.Location) bool {
	if state.NextDueAt == nil {
		return true
	}
	return state.NextDueAt.Before(NextDayStart(now, loc))
}

// Priority scores a word for queue ordering. Never-scheduled words get a
// fixed maximal score; otherwise staleness and low mastery both raise the
// score:
//
//	priority = overdueDays*10 + (5-familiarity)*2
//
// Words not yet due score negative overdue and sink accordingly.
func Priority(state domain.WordState, now time.Time) float64 {
	if state.NextDueAt == nil {
		return NewWordPriority
	}
	overdueDays := now.Sub(*state.NextDueAt).Hours() / 24
	return overdueDays*10 + float64(domain.MaxFamiliarity-clampFamiliarity(state.Familiarity))*2
}

// DayStart returns the start of the current day in the given timezone,
// converted to UTC.
func DayStart(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start.UTC()
}

// NextDayStart returns the start of the next day in the given timezone,
// converted to UTC.
func NextDayStart(now time.Time, loc *time.Location) time.Time {
	start := DayStart(now, loc)
	// AddDate handles DST correctly, Add(24h) does not.
	next := start.In(loc).AddDate(0, 0, 1)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, loc).UTC()
}

// ParseTimezone parses a timezone string, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
