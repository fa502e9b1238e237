package schedule

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Style classes for the status badge.
const (
	ClassOngoing   = "status-ongoing"
	ClassPlanned   = "status-planned"
	ClassCompleted = "status-completed"
	ClassCancelled = "status-cancelled"
)

var statusClassMap = map[string]string{
	"进行中": ClassOngoing,
	"计划中": ClassPlanned,
	"已完成": ClassCompleted,
	"已取消": ClassCancelled,
}

// MapStatusToClass resolves a status label to its badge style class.
// Labels outside the four canonical ones match by substring; anything
// unrecognized counts as planned.
func MapStatusToClass(status string) string {
	s := strings.TrimSpace(status)
	if class, ok := statusClassMap[s]; ok {
		return class
	}
	switch {
	case strings.Contains(s, "进行"):
		return ClassOngoing
	case strings.Contains(s, "计划"), strings.Contains(s, "未开始"):
		return ClassPlanned
	case strings.Contains(s, "完成"):
		return ClassCompleted
	case strings.Contains(s, "取消"):
		return ClassCancelled
	default:
		return ClassPlanned
	}
}

// FormatAttendance renders an attendance value as "出勤率 N%".
// The source is ambiguous about units: values at or below 1 are read as
// fractions, larger values as percentages already. A genuine "1%" on a
// percentage scale therefore displays as 100%; preserved for
// compatibility with the workspace data, pending product clarification.
func FormatAttendance(value float64) string {
	v := value
	if v <= 1 {
		v = v * 100
	}
	return fmt.Sprintf("出勤率 %d%%", int(math.Round(v)))
}

var weekdayLabels = [...]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

// FormatWeekTime renders "周X HH:MM" or "周X HH:MM - HH:MM" from the
// start's weekday and both local clock times. A missing or unparseable
// start yields a fixed placeholder.
func FormatWeekTime(startISO, endISO *string, loc *time.Location) string {
	if startISO == nil {
		return "未设置时间"
	}
	start, ok := parseLocal(*startISO, loc)
	if !ok {
		return "未设置时间"
	}

	startStr := fmt.Sprintf("%s %02d:%02d", weekdayLabels[int(start.Weekday())], start.Hour(), start.Minute())
	if endISO == nil {
		return startStr
	}
	end, ok := parseLocal(*endISO, loc)
	if !ok {
		return startStr
	}
	return fmt.Sprintf("%s - %02d:%02d", startStr, end.Hour(), end.Minute())
}

var displayLayouts = append([]string{"2006-01-02"}, timestampLayouts...)

func parseLocal(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range displayLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}
