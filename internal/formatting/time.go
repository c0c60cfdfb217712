package formatting

import (
	"fmt"
	"time"
)

// FormatDateTime форматирует дату и время
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// FormatTime форматирует только время
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// FormatShortDate форматирует дату с днём недели: "1/10(금)"
func FormatShortDate(t time.Time) string {
	return fmt.Sprintf("%d/%d(%s)", int(t.Month()), t.Day(), GetWeekdayShort(int(t.Weekday())))
}

// FormatWindow форматирует окно недели набора: "1/4(토) ~ 1/10(금) 21:00"
func FormatWindow(start, end time.Time) string {
	return fmt.Sprintf("%s ~ %s %s", FormatShortDate(start), FormatShortDate(end), FormatTime(end))
}

// GetWeekdayName возвращает название дня недели на корейском
func GetWeekdayName(weekday int) string {
	names := []string{
		"일요일",
		"월요일",
		"화요일",
		"수요일",
		"목요일",
		"금요일",
		"토요일",
	}
	if weekday >= 0 && weekday < len(names) {
		return names[weekday]
	}
	return "?"
}

// GetWeekdayShort возвращает короткое название дня недели
func GetWeekdayShort(weekday int) string {
	names := []string{"일", "월", "화", "수", "목", "금", "토"}
	if weekday >= 0 && weekday < len(names) {
		return names[weekday]
	}
	return "?"
}
