package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/minglu-edu/schedule-proxy/internal/dto"
)

// Week selector offsets: 0 = the week containing "today", 1 = the next.
const (
	WeekCurrent = 0
	WeekNext    = 1
)

// WeekRange is the Monday-through-Sunday window used to bucket courses.
type WeekRange struct {
	Start time.Time
	End   time.Time
}

// StartTs and EndTs expose the boundaries as millisecond timestamps.
func (r WeekRange) StartTs() int64 { return r.Start.UnixMilli() }
func (r WeekRange) EndTs() int64   { return r.End.UnixMilli() }

// Range computes the week window containing now, shifted by offset
// weeks: Monday 00:00:00.000 through Sunday 23:59:59.999 local time.
func Range(now time.Time, offset int) WeekRange {
	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	// Weekday with Monday as 0, Sunday as 6.
	sinceMonday := (int(today.Weekday()) + 6) % 7
	monday := today.AddDate(0, 0, -sinceMonday+offset*7)

	// The end bound is a wall-clock time, not Monday minus a duration:
	// on a DST-transition week those differ by an hour.
	s := monday.AddDate(0, 0, 6)
	sunday := time.Date(s.Year(), s.Month(), s.Day(), 23, 59, 59, 999000000, s.Location())

	return WeekRange{Start: monday, End: sunday}
}

var dateOnlyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsDateOnly reports whether s is a bare calendar date (YYYY-MM-DD).
func IsDateOnly(s string) bool {
	return dateOnlyPattern.MatchString(s)
}

func localStartOfDay(s string, loc *time.Location) int64 {
	y, m, d := splitDate(s)
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc).UnixMilli()
}

func localEndOfDay(s string, loc *time.Location) int64 {
	y, m, d := splitDate(s)
	return time.Date(y, time.Month(m), d, 23, 59, 59, 999000000, loc).UnixMilli()
}

func splitDate(s string) (int, int, int) {
	parts := strings.SplitN(s, "-", 3)
	y, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	d, _ := strconv.Atoi(parts[2])
	return y, m, d
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NormalizeTimestamp resolves a wire date value to a local millisecond
// timestamp. A bare calendar date maps to local midnight when used as a
// start bound and to local end-of-day when used as an end bound, so the
// same literal string resolves differently per role. Unparseable input
// yields ok=false.
func NormalizeTimestamp(s string, asEnd bool, loc *time.Location) (int64, bool) {
	if s == "" {
		return 0, false
	}
	if IsDateOnly(s) {
		if asEnd {
			return localEndOfDay(s, loc), true
		}
		return localStartOfDay(s, loc), true
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.UnixMilli(), true
		}
	}
	return 0, false
}

// Overlaps applies the closed-interval test: [s, e] intersects
// [startTs, endTs] with inclusive boundaries.
func Overlaps(s, e, startTs, endTs int64) bool {
	return s <= endTs && e >= startTs
}

// FilterByWeek returns the records whose date interval overlaps the
// week window at the given offset. Records without a resolvable start
// are always excluded; a record without an end is an instantaneous
// event anchored at its start.
func FilterByWeek(list []dto.CourseRecord, offset int, now time.Time) []dto.CourseRecord {
	week := Range(now, offset)
	startTs, endTs := week.StartTs(), week.EndTs()
	loc := now.Location()

	filtered := make([]dto.CourseRecord, 0, len(list))
	for _, item := range list {
		if item.DateStart == nil {
			continue
		}
		s, ok := NormalizeTimestamp(*item.DateStart, false, loc)
		if !ok {
			continue
		}
		e := s
		if item.DateEnd != nil {
			if ts, ok := NormalizeTimestamp(*item.DateEnd, true, loc); ok {
				e = ts
			}
		}
		if Overlaps(s, e, startTs, endTs) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// WeekCounts derives the tab badge counts for both selectable weeks.
func WeekCounts(list []dto.CourseRecord, now time.Time) (current, next int) {
	return len(FilterByWeek(list, WeekCurrent, now)), len(FilterByWeek(list, WeekNext, now))
}
