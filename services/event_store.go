package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "attendbot/errors"
	"attendbot/models"
	"attendbot/utils"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// EventStore lưu các sự kiện chấm công. Mọi khoảng thời gian đều bao gồm hai đầu.
// Store chỉ chặn trùng (user, kind, ngày); mọi luật nghiệp vụ khác nằm ở AttendanceService.
type EventStore interface {
	Insert(ctx context.Context, event *models.AttendanceEvent) (uint, error)
	FindOne(ctx context.Context, userID string, kind models.EventKind, start, end time.Time) (*models.AttendanceEvent, error)
	FindAll(ctx context.Context, userID string, start, end time.Time) ([]models.AttendanceEvent, error)
	DeleteAll(ctx context.Context, userID string, start, end time.Time) (int64, error)
	FindOpenSessions(ctx context.Context, start, end time.Time) ([]models.AttendanceEvent, error)
}

// GormEventStore lưu sự kiện vào postgres qua gorm
type GormEventStore struct {
	db *gorm.DB
}

func NewGormEventStore(db *gorm.DB) *GormEventStore {
	return &GormEventStore{db: db}
}

// Migrate tạo bảng và unique index (user_id, kind, work_day)
func (s *GormEventStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&models.AttendanceEvent{})
}

func (s *GormEventStore) Insert(ctx context.Context, event *models.AttendanceEvent) (uint, error) {
	if !event.Kind.Valid() {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidKind, event.Kind)
	}
	if event.WorkDay == "" {
		event.WorkDay = utils.DayKey(event.Timestamp)
	}
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.ErrDuplicateEvent
		}
		return 0, fmt.Errorf("insert attendance event: %w", err)
	}
	return event.ID, nil
}

func (s *GormEventStore) FindOne(ctx context.Context, userID string, kind models.EventKind, start, end time.Time) (*models.AttendanceEvent, error) {
	var event models.AttendanceEvent
	err := s.db.WithContext(ctx).
		Where(`user_id = ? AND kind = ? AND "timestamp" BETWEEN ? AND ?`, userID, kind, start, end).
		First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find attendance event: %w", err)
	}
	return &event, nil
}

func (s *GormEventStore) FindAll(ctx context.Context, userID string, start, end time.Time) ([]models.AttendanceEvent, error) {
	var events []models.AttendanceEvent
	err := s.db.WithContext(ctx).
		Where(`user_id = ? AND "timestamp" BETWEEN ? AND ?`, userID, start, end).
		Order(`"timestamp" asc, id asc`).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("list attendance events: %w", err)
	}
	return events, nil
}

func (s *GormEventStore) DeleteAll(ctx context.Context, userID string, start, end time.Time) (int64, error) {
	res := s.db.WithContext(ctx).
		Where(`user_id = ? AND "timestamp" BETWEEN ? AND ?`, userID, start, end).
		Delete(&models.AttendanceEvent{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete attendance events: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *GormEventStore) FindOpenSessions(ctx context.Context, start, end time.Time) ([]models.AttendanceEvent, error) {
	var events []models.AttendanceEvent
	err := s.db.WithContext(ctx).
		Where(`kind = ? AND "timestamp" BETWEEN ? AND ?`, models.KindCheckIn, start, end).
		Where(`NOT EXISTS (SELECT 1 FROM attendance_events o WHERE o.user_id = attendance_events.user_id AND o.work_day = attendance_events.work_day AND o.kind = ?)`, models.KindCheckOut).
		Order(`"timestamp" asc`).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("list open sessions: %w", err)
	}
	return events, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
