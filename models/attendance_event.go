package models

import "time"

// EventKind loại sự kiện chấm công
type EventKind string

const (
	KindCheckIn  EventKind = "check_in"
	KindCheckOut EventKind = "check_out"
)

// Label tên hiển thị tiếng Hàn
func (k EventKind) Label() string {
	switch k {
	case KindCheckIn:
		return "출근"
	case KindCheckOut:
		return "퇴근"
	default:
		return string(k)
	}
}

func (k EventKind) Valid() bool {
	return k == KindCheckIn || k == KindCheckOut
}

// AttendanceEvent một lần chấm công vào hoặc ra.
// WorkDay là ngày (YYYY-MM-DD) theo múi giờ của bot, dùng cho unique index.
type AttendanceEvent struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_attendance_user_kind_day,priority:1;index:idx_attendance_user_time,priority:1" json:"userId"`
	DisplayName string    `gorm:"type:varchar(100)" json:"displayName"`
	Kind        EventKind `gorm:"type:varchar(16);not null;uniqueIndex:idx_attendance_user_kind_day,priority:2" json:"kind"`
	WorkDay     string    `gorm:"type:char(10);not null;uniqueIndex:idx_attendance_user_kind_day,priority:3" json:"workDay"`
	Timestamp   time.Time `gorm:"not null;index:idx_attendance_user_time,priority:2" json:"timestamp"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (AttendanceEvent) TableName() string {
	return "attendance_events"
}
