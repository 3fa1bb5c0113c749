package notification

import (
	"fmt"

	"attendbot/models"
	"attendbot/utils"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// NopService bỏ qua mọi thông báo
type NopService struct{}

func (NopService) SendMessage(string) error { return nil }

// MessageBuilder tạo nội dung thông báo cho một sự kiện chấm công
type MessageBuilder struct {
	event   models.AttendanceEvent
	deleted int64
}

func NewMessageBuilder(event models.AttendanceEvent) *MessageBuilder {
	return &MessageBuilder{event: event}
}

// NewDeleteMessageBuilder thông báo xóa bản ghi của một ngày
func NewDeleteMessageBuilder(userID, displayName, dayLabel string, deleted int64) *MessageBuilder {
	return &MessageBuilder{
		event:   models.AttendanceEvent{UserID: userID, DisplayName: displayName, WorkDay: dayLabel},
		deleted: deleted,
	}
}

func (b *MessageBuilder) Build() string {
	name := b.event.DisplayName
	if name == "" {
		name = b.event.UserID
	}
	if b.deleted > 0 {
		return fmt.Sprintf("🗑️ %s 님의 %s 기록 %d개가 삭제되었습니다.", name, b.event.WorkDay, b.deleted)
	}
	return fmt.Sprintf("🔔 %s 님 %s %s", name, b.event.Kind.Label(), utils.FormatTime(b.event.Timestamp))
}

// ReminderBuilder nhắc người chưa chấm công ra
type ReminderBuilder struct {
	event models.AttendanceEvent
}

func NewReminderBuilder(event models.AttendanceEvent) *ReminderBuilder {
	return &ReminderBuilder{event: event}
}

func (b *ReminderBuilder) Build() string {
	name := b.event.DisplayName
	if name == "" {
		name = b.event.UserID
	}
	return fmt.Sprintf("⏰ %s 님, 아직 퇴근 기록이 없습니다. (출근 %s)", name, utils.FormatTime(b.event.Timestamp))
}
