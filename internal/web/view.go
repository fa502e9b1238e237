package web

import (
	"fmt"
	"time"

	"github.com/minglu-edu/schedule-proxy/internal/dto"
	"github.com/minglu-edu/schedule-proxy/internal/schedule"
)

// Week selector values carried in the query string.
const (
	WeekCurrent = "current"
	WeekNext    = "next"
)

// Card is the view model for one course entry.
type Card struct {
	Name        string
	TimeText    string
	Teacher     string
	Clazz       string
	Status      string
	StatusClass string
	Attendance  string
}

// Tab is one week selector button.
type Tab struct {
	Week      string
	Label     string
	Count     int
	ShowCount bool
	Active    bool
	AriaLabel string
}

// Page is the full view model for the schedule page.
type Page struct {
	Title        string
	Week         string
	Tabs         []Tab
	Cards        []Card
	Empty        bool
	EmptyText    string
	FadeClass    string
	ErrorMessage string
	Loading      bool
}

// BuildPage derives the page for the selected week from the full cached
// list. Tab counts are recomputed from the full list on every build.
func BuildPage(list []dto.CourseRecord, week string, now time.Time) Page {
	if week != WeekNext {
		week = WeekCurrent
	}

	offset := schedule.WeekCurrent
	title := "本周课表"
	emptyText := "本周暂无课程"
	if week == WeekNext {
		offset = schedule.WeekNext
		title = "下周课表"
		emptyText = "下周暂无课程"
	}

	filtered := schedule.FilterByWeek(list, offset, now)
	cards := make([]Card, 0, len(filtered))
	for _, item := range filtered {
		cards = append(cards, buildCard(item, now.Location()))
	}

	currentCount, nextCount := schedule.WeekCounts(list, now)

	return Page{
		Title: title,
		Week:  week,
		Tabs: []Tab{
			{
				Week:      WeekCurrent,
				Label:     "本周",
				Count:     currentCount,
				ShowCount: currentCount > 0,
				Active:    week == WeekCurrent,
				AriaLabel: fmt.Sprintf("本周（%d节课）", currentCount),
			},
			{
				Week:      WeekNext,
				Label:     "下周",
				Count:     nextCount,
				ShowCount: nextCount > 0,
				Active:    week == WeekNext,
				AriaLabel: fmt.Sprintf("下周（%d节课）", nextCount),
			},
		},
		Cards:     cards,
		Empty:     len(cards) == 0,
		EmptyText: emptyText,
	}
}

func buildCard(item dto.CourseRecord, loc *time.Location) Card {
	name := item.Name
	if name == "" {
		name = "未命名课程"
	}

	teacher := item.Teacher
	if teacher == "" {
		teacher = "未指定老师"
	}

	clazz := item.Clazz
	if clazz == "" {
		clazz = item.Room
	}
	if clazz == "" {
		clazz = "未关联班级"
	}

	timeText := schedule.FormatWeekTime(item.DateStart, item.DateEnd, loc)
	if item.DurationMinutes != nil && *item.DurationMinutes > 0 {
		timeText = fmt.Sprintf("%s · %d分钟", timeText, *item.DurationMinutes)
	}

	card := Card{
		Name:     name,
		TimeText: timeText,
		Teacher:  teacher,
		Clazz:    clazz,
		Status:   item.Status,
	}
	if item.Status != "" {
		card.StatusClass = schedule.MapStatusToClass(item.Status)
	}
	if item.AttendanceRate != nil {
		card.Attendance = schedule.FormatAttendance(*item.AttendanceRate)
	}
	return card
}
