package services

import (
	"context"
	"time"

	apperrors "attendbot/errors"
	"attendbot/models"
	"attendbot/services/logger"
	"attendbot/utils"
)

// Report báo cáo chấm công của một khoảng thời gian
type Report struct {
	Period DateRange           `json:"period"`
	Days   []models.DaySummary `json:"days"`
}

type ReportService struct {
	store  EventStore
	cache  ReportCache
	logger logger.Logger
	now    func() time.Time
}

type ReportServiceOptions struct {
	Store  EventStore
	Cache  ReportCache
	Logger logger.Logger
	Now    func() time.Time
}

func NewReportService(opts ReportServiceOptions) *ReportService {
	s := &ReportService{
		store:  opts.Store,
		cache:  opts.Cache,
		logger: opts.Logger,
		now:    opts.Now,
	}
	if s.cache == nil {
		s.cache = NopReportCache{}
	}
	if s.logger == nil {
		s.logger = logger.NopLogger{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Report tổng hợp bản ghi của user theo ngày trong khoảng dateExpr
func (s *ReportService) Report(ctx context.Context, userID, dateExpr string) (*Report, error) {
	period, err := ResolveRange(dateExpr, s.now())
	if err != nil {
		return nil, err
	}

	gen, genErr := s.cache.Generation(ctx, userID)
	if genErr != nil {
		s.logger.Error("❌ Lỗi khi đọc generation cache của %s: %v", userID, genErr)
	} else if days, ok, err := s.cache.Get(ctx, userID, period); err != nil {
		s.logger.Error("❌ Lỗi khi đọc cache báo cáo: %v", err)
	} else if ok {
		s.logger.Debug("Dữ liệu lấy từ cache: %s %s", userID, period.Label)
		return &Report{Period: period, Days: days}, nil
	}

	events, err := s.store.FindAll(ctx, userID, period.Start, period.End)
	if err != nil {
		return nil, apperrors.NewStorageError("lỗi khi truy vấn báo cáo chấm công", err)
	}

	days := SummarizeDays(events)
	for _, d := range days {
		if d.Anomaly {
			s.logger.Warn("⚠️ %s: ngày %s có nhiều bản ghi cùng loại", userID, d.Day)
		}
		if d.Work != nil && d.Work.Anomaly {
			s.logger.Warn("⚠️ %s: ngày %s giờ ra trước giờ vào", userID, d.Day)
		}
	}

	if genErr == nil {
		if err := s.cache.Set(ctx, userID, gen, period, days); err != nil {
			s.logger.Error("❌ Lỗi khi lưu dữ liệu vào Redis: %v", err)
		}
	}
	return &Report{Period: period, Days: days}, nil
}

type dayGroup struct {
	key       string
	label     string
	in, out   *models.AttendanceEvent
	duplicate bool
}

// SummarizeDays nhóm sự kiện (đã sắp xếp tăng dần) theo ngày, giữ thứ tự xuất hiện.
// Nếu một ngày có nhiều bản ghi cùng loại thì giữ bản ghi cuối và đánh dấu Anomaly.
func SummarizeDays(events []models.AttendanceEvent) []models.DaySummary {
	var groups []*dayGroup
	byKey := make(map[string]*dayGroup)

	for i := range events {
		e := &events[i]
		key := utils.DayKey(e.Timestamp)
		g, ok := byKey[key]
		if !ok {
			g = &dayGroup{key: key, label: utils.FormatDate(e.Timestamp)}
			byKey[key] = g
			groups = append(groups, g)
		}
		switch e.Kind {
		case models.KindCheckIn:
			if g.in != nil {
				g.duplicate = true
			}
			g.in = e
		case models.KindCheckOut:
			if g.out != nil {
				g.duplicate = true
			}
			g.out = e
		}
	}

	summaries := make([]models.DaySummary, 0, len(groups))
	for _, g := range groups {
		summary := models.DaySummary{Day: g.key, Label: g.label, Anomaly: g.duplicate}
		if g.in != nil {
			at := g.in.Timestamp
			summary.CheckIn = &at
		}
		if g.out != nil {
			at := g.out.Timestamp
			summary.CheckOut = &at
		}
		if g.in != nil && g.out != nil {
			work := CalculateWorkHours(g.in.Timestamp, g.out.Timestamp)
			summary.Work = &work
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
