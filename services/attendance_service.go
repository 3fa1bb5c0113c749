package services

import (
	"context"
	"errors"
	"time"

	apperrors "attendbot/errors"
	"attendbot/models"
	"attendbot/services/logger"
	"attendbot/services/notification"
	"attendbot/utils"
)

// CheckOutResult kết quả chấm công ra thành công
type CheckOutResult struct {
	In   models.AttendanceEvent
	Out  models.AttendanceEvent
	Work models.WorkDuration
}

// DeleteResult kết quả xóa bản ghi của một ngày
type DeleteResult struct {
	Period  DateRange
	Deleted int64
}

// AttendanceService kiểm tra luật chấm công vào/ra và ghi sự kiện
type AttendanceService struct {
	store    EventStore
	cache    ReportCache
	notifier notification.Service
	logger   logger.Logger
	now      func() time.Time
}

type AttendanceServiceOptions struct {
	Store    EventStore
	Cache    ReportCache
	Notifier notification.Service
	Logger   logger.Logger
	Now      func() time.Time
}

func NewAttendanceService(opts AttendanceServiceOptions) *AttendanceService {
	s := &AttendanceService{
		store:    opts.Store,
		cache:    opts.Cache,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		now:      opts.Now,
	}
	if s.cache == nil {
		s.cache = NopReportCache{}
	}
	if s.notifier == nil {
		s.notifier = notification.NopService{}
	}
	if s.logger == nil {
		s.logger = logger.NopLogger{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// CheckIn ghi nhận chấm công vào, mỗi user chỉ một lần mỗi ngày
func (s *AttendanceService) CheckIn(ctx context.Context, userID, displayName string) (*models.AttendanceEvent, error) {
	now := s.now().In(utils.Location())
	start, end := utils.StartOfDay(now), utils.EndOfDay(now)

	in, err := s.store.FindOne(ctx, userID, models.KindCheckIn, start, end)
	if err != nil {
		return nil, apperrors.NewStorageError("lỗi khi truy vấn bản ghi chấm công", err)
	}
	if err := models.GetDayState(in, nil).CheckIn(); err != nil {
		return nil, err
	}

	event := &models.AttendanceEvent{
		UserID:      userID,
		DisplayName: displayName,
		Kind:        models.KindCheckIn,
		WorkDay:     utils.DayKey(now),
		Timestamp:   now,
	}
	if _, err := s.store.Insert(ctx, event); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEvent) {
			return nil, s.lostRace(ctx, userID, models.KindCheckIn, start, end)
		}
		return nil, apperrors.NewStorageError("lỗi khi lưu bản ghi chấm công", err)
	}

	s.afterWrite(ctx, userID, notification.NewMessageBuilder(*event).Build())
	s.logger.Info("✅ %s (%s) chấm công vào lúc %s", userID, displayName, utils.FormatTime(now))
	return event, nil
}

// CheckOut ghi nhận chấm công ra, yêu cầu đã có bản ghi vào cùng ngày
func (s *AttendanceService) CheckOut(ctx context.Context, userID, displayName string) (*CheckOutResult, error) {
	now := s.now().In(utils.Location())
	start, end := utils.StartOfDay(now), utils.EndOfDay(now)

	in, err := s.store.FindOne(ctx, userID, models.KindCheckIn, start, end)
	if err != nil {
		return nil, apperrors.NewStorageError("lỗi khi truy vấn bản ghi chấm công", err)
	}
	var out *models.AttendanceEvent
	if in != nil {
		out, err = s.store.FindOne(ctx, userID, models.KindCheckOut, start, end)
		if err != nil {
			return nil, apperrors.NewStorageError("lỗi khi truy vấn bản ghi chấm công", err)
		}
	}
	if err := models.GetDayState(in, out).CheckOut(); err != nil {
		return nil, err
	}

	event := &models.AttendanceEvent{
		UserID:      userID,
		DisplayName: displayName,
		Kind:        models.KindCheckOut,
		WorkDay:     utils.DayKey(now),
		Timestamp:   now,
	}
	if _, err := s.store.Insert(ctx, event); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEvent) {
			return nil, s.lostRace(ctx, userID, models.KindCheckOut, start, end)
		}
		return nil, apperrors.NewStorageError("lỗi khi lưu bản ghi chấm công", err)
	}

	work := CalculateWorkHours(in.Timestamp, now)
	if work.Anomaly {
		s.logger.Warn("⚠️ %s: giờ ra %s trước giờ vào %s", userID, now.Format(time.RFC3339), in.Timestamp.Format(time.RFC3339))
	}

	s.afterWrite(ctx, userID, notification.NewMessageBuilder(*event).Build())
	s.logger.Info("✅ %s (%s) chấm công ra lúc %s", userID, displayName, utils.FormatTime(now))
	return &CheckOutResult{In: *in, Out: *event, Work: work}, nil
}

// DeleteDay xóa toàn bộ bản ghi vào/ra của một ngày cụ thể
func (s *AttendanceService) DeleteDay(ctx context.Context, userID, displayName, dateExpr string) (DeleteResult, error) {
	period, err := ResolveDay(dateExpr)
	if err != nil {
		return DeleteResult{}, err
	}

	deleted, err := s.store.DeleteAll(ctx, userID, period.Start, period.End)
	if err != nil {
		return DeleteResult{Period: period}, apperrors.NewStorageError("lỗi khi xóa bản ghi chấm công", err)
	}
	if deleted == 0 {
		return DeleteResult{Period: period}, apperrors.NewValidationError(apperrors.ErrCodeNothingToDelete,
			period.Label+"의 기록이 없습니다.", nil)
	}

	s.afterWrite(ctx, userID, notification.NewDeleteMessageBuilder(userID, displayName, period.Label, deleted).Build())
	s.logger.Info("✅ Đã xóa %d bản ghi của %s ngày %s", deleted, userID, utils.DayKey(period.Start))
	return DeleteResult{Period: period, Deleted: deleted}, nil
}

// OpenSessions danh sách người đã vào nhưng chưa ra trong hôm nay
func (s *AttendanceService) OpenSessions(ctx context.Context) ([]models.AttendanceEvent, error) {
	now := s.now()
	events, err := s.store.FindOpenSessions(ctx, utils.StartOfDay(now), utils.EndOfDay(now))
	if err != nil {
		return nil, apperrors.NewStorageError("lỗi khi truy vấn phiên chưa kết thúc", err)
	}
	return events, nil
}

// lostRace chuyển lỗi trùng từ store thành lỗi nghiệp vụ kèm thời điểm đã có
func (s *AttendanceService) lostRace(ctx context.Context, userID string, kind models.EventKind, start, end time.Time) error {
	s.logger.Warn("⚠️ %s: store từ chối bản ghi %s trùng", userID, kind)

	code, msg := apperrors.ErrCodeAlreadyCheckedIn, "이미 오늘 출근했습니다."
	if kind == models.KindCheckOut {
		code, msg = apperrors.ErrCodeAlreadyCheckedOut, "이미 퇴근했습니다."
	}

	existing, err := s.store.FindOne(ctx, userID, kind, start, end)
	if err != nil || existing == nil {
		return apperrors.NewValidationError(code, msg, nil)
	}
	at := existing.Timestamp
	return apperrors.NewValidationError(code, msg, &at)
}

func (s *AttendanceService) afterWrite(ctx context.Context, userID, message string) {
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.logger.Error("❌ Lỗi khi xóa cache báo cáo của %s: %v", userID, err)
	}
	if err := s.notifier.SendMessage(message); err != nil {
		s.logger.Error("❌ Lỗi gửi thông báo: %v", err)
	}
}
