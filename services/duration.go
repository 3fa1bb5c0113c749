package services

import (
	"time"

	"attendbot/models"
)

// CalculateWorkHours tính thời gian làm việc: floor(giờ) giờ và floor(phần lẻ*60) phút.
// Khoảng âm bị kẹp về 0 và đánh dấu Anomaly.
func CalculateWorkHours(start, end time.Time) models.WorkDuration {
	d := end.Sub(start)
	if d < 0 {
		return models.WorkDuration{Anomaly: true}
	}
	totalMinutes := int(d / time.Minute)
	return models.WorkDuration{
		Hours:   totalMinutes / 60,
		Minutes: totalMinutes % 60,
	}
}
