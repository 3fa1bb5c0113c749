package jobs

import (
	"context"
	"fmt"
	"time"

	"attendbot/models"
	"attendbot/services/logger"
	"attendbot/services/notification"

	"github.com/robfig/cron/v3"
)

// OpenSessionLister liệt kê người đã vào nhưng chưa ra hôm nay
type OpenSessionLister interface {
	OpenSessions(ctx context.Context) ([]models.AttendanceEvent, error)
}

// Reminder nhắc những người quên chấm công ra
type Reminder struct {
	sessions OpenSessionLister
	notifier notification.Service
	logger   logger.Logger
	timeout  time.Duration
}

func NewReminder(sessions OpenSessionLister, notifier notification.Service, log logger.Logger) *Reminder {
	return &Reminder{
		sessions: sessions,
		notifier: notifier,
		logger:   log,
		timeout:  30 * time.Second,
	}
}

// Run gửi một tin nhắc cho mỗi phiên còn mở, trả về số tin đã gửi
func (r *Reminder) Run(ctx context.Context) int {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	open, err := r.sessions.OpenSessions(ctx)
	if err != nil {
		r.logger.Error("❌ Lỗi khi lấy danh sách chưa chấm công ra: %v", err)
		return 0
	}

	sent := 0
	for _, event := range open {
		if err := r.notifier.SendMessage(notification.NewReminderBuilder(event).Build()); err != nil {
			r.logger.Warn("⚠️ Không gửi được nhắc nhở cho %s: %v", event.UserID, err)
			continue
		}
		sent++
	}
	r.logger.Info("⏰ Đã gửi %d/%d nhắc nhở chấm công ra", sent, len(open))
	return sent
}

// InitCronJobs đăng ký job nhắc nhở theo lịch spec và khởi động cron
func InitCronJobs(c *cron.Cron, spec string, reminder *Reminder) error {
	_, err := c.AddFunc(spec, func() {
		reminder.Run(context.Background())
	})
	if err != nil {
		return fmt.Errorf("lịch cron không hợp lệ %q: %w", spec, err)
	}

	c.Start()
	reminder.logger.Info("Cron jobs initialized successfully")
	return nil
}
