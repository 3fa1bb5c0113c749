package commands

import (
	"context"

	apperrors "attendbot/errors"
	"attendbot/models"
	"attendbot/services"
	"attendbot/validator"
)

// Kind loại lệnh gửi tới bot
type Kind string

const (
	KindCheckIn  Kind = "check_in"
	KindCheckOut Kind = "check_out"
	KindReport   Kind = "report"
	KindDelete   Kind = "delete"
	KindLotto    Kind = "lotto"
	KindMenu     Kind = "menu"
)

// Request lệnh đến từ tầng transport
type Request struct {
	Kind       Kind   `validate:"required,oneof=check_in check_out report delete lotto menu"`
	CallerID   string `validate:"required,max=64"`
	CallerName string `validate:"max=100"`
	DateArg    string
}

// Command định nghĩa interface cho các command
type Command interface {
	Execute(ctx context.Context) (Result, error)
}

// AttendanceRules các thao tác ghi của AttendanceService
type AttendanceRules interface {
	CheckIn(ctx context.Context, userID, displayName string) (*models.AttendanceEvent, error)
	CheckOut(ctx context.Context, userID, displayName string) (*services.CheckOutResult, error)
	DeleteDay(ctx context.Context, userID, displayName, dateExpr string) (services.DeleteResult, error)
}

// Reporter đọc báo cáo
type Reporter interface {
	Report(ctx context.Context, userID, dateExpr string) (*services.Report, error)
}

// Dispatcher tạo và chạy command tương ứng với Request
type Dispatcher struct {
	attendance AttendanceRules
	reports    Reporter
	rand       services.IntNSource
}

func NewDispatcher(attendance AttendanceRules, reports Reporter, rand services.IntNSource) *Dispatcher {
	if rand == nil {
		rand = services.DefaultRand
	}
	return &Dispatcher{attendance: attendance, reports: reports, rand: rand}
}

// Dispatch kiểm tra Request rồi chạy command. Lỗi nghiệp vụ được trả về dưới dạng Result,
// chỉ lỗi lưu trữ mới trả về error.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (Result, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	cmd, err := d.Build(req)
	if err != nil {
		return nil, err
	}
	return cmd.Execute(ctx)
}

func (d *Dispatcher) Build(req Request) (Command, error) {
	switch req.Kind {
	case KindCheckIn:
		return &CheckInCommand{rules: d.attendance, req: req}, nil
	case KindCheckOut:
		return &CheckOutCommand{rules: d.attendance, req: req}, nil
	case KindReport:
		return &ReportCommand{reports: d.reports, req: req}, nil
	case KindDelete:
		return &DeleteCommand{rules: d.attendance, req: req}, nil
	case KindLotto:
		return &LottoCommand{rand: d.rand}, nil
	case KindMenu:
		return &MenuCommand{rand: d.rand}, nil
	}
	return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidCommand, "알 수 없는 명령입니다.", apperrors.ErrUnknownCommand)
}

// CheckInCommand chấm công vào
type CheckInCommand struct {
	rules AttendanceRules
	req   Request
}

func (c *CheckInCommand) Execute(ctx context.Context) (Result, error) {
	event, err := c.rules.CheckIn(ctx, c.req.CallerID, c.req.CallerName)
	if err != nil {
		if appErr, ok := rejection(err); ok {
			return CheckInRejected{Reason: appErr.Code, Existing: appErr.Existing}, nil
		}
		return nil, err
	}
	return CheckInAccepted{Timestamp: event.Timestamp}, nil
}

// CheckOutCommand chấm công ra
type CheckOutCommand struct {
	rules AttendanceRules
	req   Request
}

func (c *CheckOutCommand) Execute(ctx context.Context) (Result, error) {
	res, err := c.rules.CheckOut(ctx, c.req.CallerID, c.req.CallerName)
	if err != nil {
		if appErr, ok := rejection(err); ok {
			return CheckOutRejected{Reason: appErr.Code, Existing: appErr.Existing}, nil
		}
		return nil, err
	}
	return CheckOutAccepted{
		CheckIn:     res.In.Timestamp,
		CheckOut:    res.Out.Timestamp,
		WorkHours:   res.Work.Hours,
		WorkMinutes: res.Work.Minutes,
		Anomaly:     res.Work.Anomaly,
	}, nil
}

// ReportCommand xem báo cáo, mặc định là hôm nay
type ReportCommand struct {
	reports Reporter
	req     Request
}

func (c *ReportCommand) Execute(ctx context.Context) (Result, error) {
	expr := c.req.DateArg
	if expr == "" {
		expr = string(services.SymbolToday)
	}
	report, err := c.reports.Report(ctx, c.req.CallerID, expr)
	if err != nil {
		if appErr, ok := rejection(err); ok {
			return ReportRejected{Reason: appErr.Code, Suggestion: appErr.Suggestion}, nil
		}
		return nil, err
	}
	return ReportResult{PeriodLabel: report.Period.Label, Days: report.Days}, nil
}

// DeleteCommand xóa bản ghi của một ngày cụ thể
type DeleteCommand struct {
	rules AttendanceRules
	req   Request
}

func (c *DeleteCommand) Execute(ctx context.Context) (Result, error) {
	res, err := c.rules.DeleteDay(ctx, c.req.CallerID, c.req.CallerName, c.req.DateArg)
	if err != nil {
		if appErr, ok := rejection(err); ok {
			return DeleteRejected{Reason: appErr.Code, PeriodLabel: res.Period.Label, Suggestion: appErr.Suggestion}, nil
		}
		return nil, err
	}
	return DeleteAccepted{PeriodLabel: res.Period.Label, DeletedCount: res.Deleted}, nil
}

type LottoCommand struct {
	rand services.IntNSource
}

func (c *LottoCommand) Execute(context.Context) (Result, error) {
	return LottoResult{Numbers: services.GenerateLottoNumbers(c.rand)}, nil
}

type MenuCommand struct {
	rand services.IntNSource
}

func (c *MenuCommand) Execute(context.Context) (Result, error) {
	return MenuResult{MenuRecommendation: services.RecommendMenu(c.rand)}, nil
}

func rejection(err error) (*apperrors.AppError, bool) {
	if !apperrors.IsValidation(err) {
		return nil, false
	}
	return apperrors.GetAppError(err), true
}
