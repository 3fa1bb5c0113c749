package models

import "time"

// WorkDuration thời gian làm việc đã làm tròn xuống theo giờ và phút
type WorkDuration struct {
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Anomaly bool `json:"anomaly,omitempty"`
}

// DaySummary tổng hợp chấm công của một ngày
type DaySummary struct {
	Day      string        `json:"day"`
	Label    string        `json:"label"`
	CheckIn  *time.Time    `json:"checkIn,omitempty"`
	CheckOut *time.Time    `json:"checkOut,omitempty"`
	Work     *WorkDuration `json:"work,omitempty"`
	// Anomaly đánh dấu nhóm ngày có bản ghi trùng loại
	Anomaly bool `json:"anomaly,omitempty"`
}
