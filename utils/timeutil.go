package utils

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// DefaultTimezone múi giờ cố định của bot (ko-KR)
const DefaultTimezone = "Asia/Seoul"

const (
	DayKeyLayout = "2006-01-02"
	TimeLayout   = "15:04"
)

var koreanWeekdays = [...]string{"일", "월", "화", "수", "목", "금", "토"}

var location = mustLoadLocation(DefaultTimezone)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("timezone không hợp lệ %q: %v", name, err))
	}
	return loc
}

// Location trả về múi giờ cố định
func Location() *time.Location {
	return location
}

// StartOfDay 00:00:00.000 theo giờ địa phương
func StartOfDay(t time.Time) time.Time {
	t = t.In(location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, location)
}

// EndOfDay 23:59:59.999 theo giờ địa phương
func EndOfDay(t time.Time) time.Time {
	t = t.In(location)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), location)
}

// DayKey khóa ngày dạng YYYY-MM-DD
func DayKey(t time.Time) string {
	return t.In(location).Format(DayKeyLayout)
}

// FormatDate định dạng giống ko-KR: "2024. 06. 12. (수)"
func FormatDate(t time.Time) string {
	t = t.In(location)
	return fmt.Sprintf("%04d. %02d. %02d. (%s)", t.Year(), int(t.Month()), t.Day(), koreanWeekdays[t.Weekday()])
}

// FormatTime định dạng giờ 24h "09:05"
func FormatTime(t time.Time) string {
	return t.In(location).Format(TimeLayout)
}
