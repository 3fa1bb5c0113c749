package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"attendbot/models"
	"attendbot/services/logger"
	"attendbot/utils"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessions struct {
	events []models.AttendanceEvent
	err    error
}

func (s stubSessions) OpenSessions(context.Context) ([]models.AttendanceEvent, error) {
	return s.events, s.err
}

type collectNotifier struct {
	messages []string
	failOn   string
}

func (n *collectNotifier) SendMessage(message string) error {
	if n.failOn != "" && message == n.failOn {
		return errors.New("closed")
	}
	n.messages = append(n.messages, message)
	return nil
}

func TestReminderRun(t *testing.T) {
	at := time.Date(2024, 6, 12, 9, 0, 0, 0, utils.Location())
	sessions := stubSessions{events: []models.AttendanceEvent{
		{UserID: "1", DisplayName: "minji", Kind: models.KindCheckIn, Timestamp: at},
		{UserID: "2", Kind: models.KindCheckIn, Timestamp: at.Add(15 * time.Minute)},
	}}
	n := &collectNotifier{}

	sent := NewReminder(sessions, n, logger.NopLogger{}).Run(context.Background())
	assert.Equal(t, 2, sent)
	require.Len(t, n.messages, 2)
	assert.Equal(t, "⏰ minji 님, 아직 퇴근 기록이 없습니다. (출근 09:00)", n.messages[0])
	assert.Equal(t, "⏰ 2 님, 아직 퇴근 기록이 없습니다. (출근 09:15)", n.messages[1])
}

func TestReminderSkipsFailures(t *testing.T) {
	at := time.Date(2024, 6, 12, 9, 0, 0, 0, utils.Location())
	sessions := stubSessions{events: []models.AttendanceEvent{
		{UserID: "1", Timestamp: at},
		{UserID: "2", Timestamp: at},
	}}
	n := &collectNotifier{failOn: "⏰ 1 님, 아직 퇴근 기록이 없습니다. (출근 09:00)"}
	assert.Equal(t, 1, NewReminder(sessions, n, logger.NopLogger{}).Run(context.Background()))

	assert.Zero(t, NewReminder(stubSessions{err: errors.New("db down")}, n, logger.NopLogger{}).Run(context.Background()))
}

func TestInitCronJobs(t *testing.T) {
	c := cron.New(cron.WithLocation(utils.Location()))
	defer c.Stop()
	r := NewReminder(stubSessions{}, &collectNotifier{}, logger.NopLogger{})

	require.NoError(t, InitCronJobs(c, "0 19 * * 1-5", r))
	assert.Len(t, c.Entries(), 1)

	assert.Error(t, InitCronJobs(cron.New(), "not a schedule", r))
}
