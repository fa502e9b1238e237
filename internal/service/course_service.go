package service

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/minglu-edu/schedule-proxy/internal/dto"
	"github.com/minglu-edu/schedule-proxy/internal/notion"
)

// Property names of the source database. The date property is
// configurable for the upstream query sort; the rest are fixed by the
// workspace schema.
const (
	propTitlePrimary  = "课程主题/日期"
	propTitleSecond   = "课程主题"
	propTitleFallback = "名称"
	propTeacher       = "老师"
	propClazz         = "关联班级"
	propStatus        = "课程状态"
	propAttendance    = "出勤率"
	propDate          = "日期"
)

// Placeholder strings for missing display fields.
const (
	fallbackCourseName = "未命名课程"
	fallbackTeacher    = "未指定老师"
)

type pageSource interface {
	QueryDatabase(ctx context.Context) ([]notion.Page, error)
}

type courseCache interface {
	Get(ctx context.Context) ([]dto.CourseRecord, bool)
	Set(ctx context.Context, courses []dto.CourseRecord)
}

// CourseService queries the workspace database and normalizes rows into
// the flat wire records served to the schedule client.
type CourseService struct {
	source  pageSource
	cache   courseCache
	metrics *MetricsService
	logger  *zap.Logger
}

// NewCourseService builds the service. cache may be nil (caching off).
func NewCourseService(source pageSource, cache courseCache, metrics *MetricsService, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{source: source, cache: cache, metrics: metrics, logger: logger}
}

// ListCourses returns the normalized course list. Each call is a fresh
// upstream snapshot unless the optional response cache is enabled.
func (s *CourseService) ListCourses(ctx context.Context) ([]dto.CourseRecord, error) {
	if s.cache != nil {
		if courses, ok := s.cache.Get(ctx); ok {
			return courses, nil
		}
	}

	start := time.Now()
	pages, err := s.source.QueryDatabase(ctx)
	s.metrics.ObserveUpstreamQuery(time.Since(start))
	if err != nil {
		return nil, err
	}

	courses := make([]dto.CourseRecord, 0, len(pages))
	for _, page := range pages {
		courses = append(courses, normalizePage(page))
	}

	s.logger.Info("courses mapped",
		zap.Int("results", len(pages)),
		zap.Int("courses", len(courses)),
	)

	if s.cache != nil {
		s.cache.Set(ctx, courses)
	}

	return courses, nil
}

func normalizePage(page notion.Page) dto.CourseRecord {
	props := page.Properties

	title := props[propTitlePrimary].Text()
	if title == "" {
		title = props[propTitleSecond].Text()
	}
	if title == "" {
		title = props[propTitleFallback].Text()
	}
	if title == "" {
		title = fallbackCourseName
	}

	teacher := props[propTeacher].Text()
	if teacher == "" {
		teacher = fallbackTeacher
	}

	// The related-class label doubles as the room; both wire fields
	// carry the same value for client compatibility.
	clazz := props[propClazz].Text()

	dates := props[propDate].DateValue()

	return dto.CourseRecord{
		Name:            title,
		DateStart:       dates.Start,
		DateEnd:         dates.End,
		Teacher:         teacher,
		Room:            clazz,
		Clazz:           clazz,
		Status:          props[propStatus].StatusName(),
		DurationMinutes: durationMinutes(dates.Start, dates.End),
		AttendanceRate:  props[propAttendance].NumberLike(),
	}
}

// durationMinutes derives the session length when both bounds parse,
// rounded to whole minutes and floored at zero.
func durationMinutes(startISO, endISO *string) *int {
	if startISO == nil || endISO == nil {
		return nil
	}
	start, okStart := parseISO(*startISO)
	end, okEnd := parseISO(*endISO)
	if !okStart || !okEnd {
		return nil
	}
	diff := end.Sub(start)
	if diff < 0 {
		diff = 0
	}
	minutes := int(math.Round(diff.Minutes()))
	return &minutes
}

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseISO(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
