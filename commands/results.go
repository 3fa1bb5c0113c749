package commands

import (
	"time"

	apperrors "attendbot/errors"
	"attendbot/models"
	"attendbot/services"
)

// Result kết quả trả về cho tầng hiển thị
type Result interface {
	Kind() Kind
}

type CheckInAccepted struct {
	Timestamp time.Time
}

type CheckInRejected struct {
	Reason   apperrors.ErrorCode
	Existing *time.Time
}

type CheckOutAccepted struct {
	CheckIn     time.Time
	CheckOut    time.Time
	WorkHours   int
	WorkMinutes int
	Anomaly     bool
}

type CheckOutRejected struct {
	Reason   apperrors.ErrorCode
	Existing *time.Time
}

// ReportResult Days rỗng nghĩa là không có bản ghi trong kỳ
type ReportResult struct {
	PeriodLabel string
	Days        []models.DaySummary
}

type ReportRejected struct {
	Reason     apperrors.ErrorCode
	Suggestion string
}

type DeleteAccepted struct {
	PeriodLabel  string
	DeletedCount int64
}

type DeleteRejected struct {
	Reason      apperrors.ErrorCode
	PeriodLabel string
	Suggestion  string
}

type LottoResult struct {
	Numbers []int
}

type MenuResult struct {
	services.MenuRecommendation
}

func (CheckInAccepted) Kind() Kind  { return KindCheckIn }
func (CheckInRejected) Kind() Kind  { return KindCheckIn }
func (CheckOutAccepted) Kind() Kind { return KindCheckOut }
func (CheckOutRejected) Kind() Kind { return KindCheckOut }
func (ReportResult) Kind() Kind     { return KindReport }
func (ReportRejected) Kind() Kind   { return KindReport }
func (DeleteAccepted) Kind() Kind   { return KindDelete }
func (DeleteRejected) Kind() Kind   { return KindDelete }
func (LottoResult) Kind() Kind      { return KindLotto }
func (MenuResult) Kind() Kind       { return KindMenu }
