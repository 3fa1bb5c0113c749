package models

import (
	"attendbot/errors"
)

// DayState định nghĩa interface cho trạng thái chấm công của một user trong một ngày
type DayState interface {
	Name() string
	CheckIn() error
	CheckOut() error
}

// NotStartedState chưa chấm công vào
type NotStartedState struct{}

func (s *NotStartedState) Name() string { return "not_started" }

func (s *NotStartedState) CheckIn() error { return nil }

func (s *NotStartedState) CheckOut() error {
	return errors.NewValidationError(errors.ErrCodeNoCheckInRecord, "오늘 출근 기록이 없습니다.", nil)
}

// CheckedInState đã chấm công vào, chưa ra
type CheckedInState struct {
	In *AttendanceEvent
}

func (s *CheckedInState) Name() string { return "checked_in" }

func (s *CheckedInState) CheckIn() error {
	return alreadyCheckedIn(s.In)
}

func (s *CheckedInState) CheckOut() error { return nil }

// CheckedOutState đã ra, trạng thái cuối của ngày
type CheckedOutState struct {
	In  *AttendanceEvent
	Out *AttendanceEvent
}

func (s *CheckedOutState) Name() string { return "checked_out" }

func (s *CheckedOutState) CheckIn() error {
	return alreadyCheckedIn(s.In)
}

func (s *CheckedOutState) CheckOut() error {
	at := s.Out.Timestamp
	return errors.NewValidationError(errors.ErrCodeAlreadyCheckedOut, "이미 퇴근했습니다.", &at)
}

func alreadyCheckedIn(in *AttendanceEvent) error {
	at := in.Timestamp
	return errors.NewValidationError(errors.ErrCodeAlreadyCheckedIn, "이미 오늘 출근했습니다.", &at)
}

// GetDayState trả về state tương ứng với các bản ghi trong ngày.
// Một bản ghi ra không có bản ghi vào được coi như chưa bắt đầu.
func GetDayState(in, out *AttendanceEvent) DayState {
	switch {
	case in == nil:
		return &NotStartedState{}
	case out == nil:
		return &CheckedInState{In: in}
	default:
		return &CheckedOutState{In: in, Out: out}
	}
}
