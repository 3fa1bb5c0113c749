package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	apperrors "attendbot/errors"
	"attendbot/models"
	"attendbot/utils"
)

// MemoryEventStore lưu sự kiện trong bộ nhớ, dùng cho STORE=memory và test
type MemoryEventStore struct {
	mu     sync.Mutex
	nextID uint
	events []models.AttendanceEvent
}

func NewMemoryEventStore() *MemoryEventStore {
	return &MemoryEventStore{}
}

func (s *MemoryEventStore) Insert(_ context.Context, event *models.AttendanceEvent) (uint, error) {
	if !event.Kind.Valid() {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidKind, event.Kind)
	}
	if event.WorkDay == "" {
		event.WorkDay = utils.DayKey(event.Timestamp)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.events {
		if e.UserID == event.UserID && e.Kind == event.Kind && e.WorkDay == event.WorkDay {
			return 0, apperrors.ErrDuplicateEvent
		}
	}

	s.nextID++
	event.ID = s.nextID
	if event.CreatedAt.IsZero() {
		event.CreatedAt = event.Timestamp
	}
	s.events = append(s.events, *event)
	return event.ID, nil
}

func (s *MemoryEventStore) FindOne(_ context.Context, userID string, kind models.EventKind, start, end time.Time) (*models.AttendanceEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.events {
		if e.UserID == userID && e.Kind == kind && inRange(e.Timestamp, start, end) {
			found := e
			return &found, nil
		}
	}
	return nil, nil
}

func (s *MemoryEventStore) FindAll(_ context.Context, userID string, start, end time.Time) ([]models.AttendanceEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.AttendanceEvent
	for _, e := range s.events {
		if e.UserID == userID && inRange(e.Timestamp, start, end) {
			out = append(out, e)
		}
	}
	sortByTimestamp(out)
	return out, nil
}

func (s *MemoryEventStore) DeleteAll(_ context.Context, userID string, start, end time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.events[:0]
	var deleted int64
	for _, e := range s.events {
		if e.UserID == userID && inRange(e.Timestamp, start, end) {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	s.events = kept
	return deleted, nil
}

func (s *MemoryEventStore) FindOpenSessions(_ context.Context, start, end time.Time) ([]models.AttendanceEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	closed := make(map[string]bool)
	for _, e := range s.events {
		if e.Kind == models.KindCheckOut {
			closed[e.UserID+"|"+e.WorkDay] = true
		}
	}

	var out []models.AttendanceEvent
	for _, e := range s.events {
		if e.Kind == models.KindCheckIn && inRange(e.Timestamp, start, end) && !closed[e.UserID+"|"+e.WorkDay] {
			out = append(out, e)
		}
	}
	sortByTimestamp(out)
	return out, nil
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func sortByTimestamp(events []models.AttendanceEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Timestamp.Equal(events[j].Timestamp) {
			return events[i].ID < events[j].ID
		}
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
}
