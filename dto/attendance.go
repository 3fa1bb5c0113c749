package dto

import "time"

// DaySummaryResponse là DTO cho một ngày trong báo cáo
type DaySummaryResponse struct {
	Day         string     `json:"day"`
	Label       string     `json:"label"`
	CheckIn     *time.Time `json:"checkIn,omitempty"`
	CheckOut    *time.Time `json:"checkOut,omitempty"`
	WorkHours   *int       `json:"workHours,omitempty"`
	WorkMinutes *int       `json:"workMinutes,omitempty"`
}

// ReportResponse là DTO cho báo cáo chấm công
type ReportResponse struct {
	UserID      string               `json:"userId"`
	PeriodLabel string               `json:"periodLabel"`
	Start       time.Time            `json:"start"`
	End         time.Time            `json:"end"`
	Days        []DaySummaryResponse `json:"days"`
}

// OpenSessionResponse là DTO cho người chưa chấm công ra
type OpenSessionResponse struct {
	UserID      string    `json:"userId"`
	DisplayName string    `json:"displayName"`
	CheckIn     time.Time `json:"checkIn"`
}
