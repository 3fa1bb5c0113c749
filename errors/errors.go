package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Attendance validation errors
	ErrCodeAlreadyCheckedIn      ErrorCode = "ALREADY_CHECKED_IN"
	ErrCodeAlreadyCheckedOut     ErrorCode = "ALREADY_CHECKED_OUT"
	ErrCodeNoCheckInRecord       ErrorCode = "NO_CHECK_IN_RECORD"
	ErrCodeNothingToDelete       ErrorCode = "NOTHING_TO_DELETE"
	ErrCodeInvalidDateExpression ErrorCode = "INVALID_DATE_EXPRESSION"
	ErrCodeInvalidCommand        ErrorCode = "INVALID_COMMAND"

	// Database errors
	ErrCodeDBError ErrorCode = "DB_ERROR"

	// Config errors
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
	// Existing là thời điểm của bản ghi đã tồn tại (nếu có)
	Existing *time.Time
	// Suggestion gợi ý từ khóa gần đúng cho lỗi ngày tháng
	Suggestion string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidationError tạo lỗi nghiệp vụ kèm thời điểm bản ghi đã có
func NewValidationError(code ErrorCode, message string, existing *time.Time) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Existing: existing,
	}
}

// NewStorageError bọc lỗi từ tầng lưu trữ
func NewStorageError(message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeDBError,
		Message: message,
		Err:     err,
	}
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsValidation trả về true với các lỗi nghiệp vụ có thể báo lại cho người dùng
func IsValidation(err error) bool {
	appErr := GetAppError(err)
	if appErr == nil {
		return false
	}
	switch appErr.Code {
	case ErrCodeAlreadyCheckedIn, ErrCodeAlreadyCheckedOut, ErrCodeNoCheckInRecord,
		ErrCodeNothingToDelete, ErrCodeInvalidDateExpression, ErrCodeInvalidCommand:
		return true
	}
	return false
}

// HasCode kiểm tra mã lỗi
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	// ErrDuplicateEvent trả về khi store từ chối bản ghi trùng (user, kind, ngày)
	ErrDuplicateEvent = errors.New("attendance event already exists for this day")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidKind    = errors.New("invalid attendance event kind")
)
