package builders

import (
	"testing"
	"time"

	"attendbot/commands"
	"attendbot/constants"
	"attendbot/dto"
	apperrors "attendbot/errors"
	"attendbot/models"
	"attendbot/services"
	"attendbot/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(d, hh, mm int) time.Time {
	return time.Date(2024, time.June, d, hh, mm, 0, 0, utils.Location())
}

func field(t *testing.T, e dto.Embed, name string) string {
	t.Helper()
	for _, f := range e.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	t.Fatalf("field %q not found in %+v", name, e.Fields)
	return ""
}

func TestEmbedBuilderSkipsEmptyFields(t *testing.T) {
	e := NewEmbedBuilder().
		WithTitle("t").
		AddField("a", "1").
		AddField("b", "").
		WithTimestamp(time.Date(2024, 6, 12, 9, 0, 0, 0, utils.Location())).
		Build()
	require.Len(t, e.Fields, 1)
	assert.Equal(t, "2024-06-12T00:00:00Z", e.Timestamp)
}

func TestRenderCheckIn(t *testing.T) {
	e := RenderResult(commands.CheckInAccepted{Timestamp: at(12, 9, 5)}, at(12, 9, 5))
	assert.Equal(t, constants.ColorSuccess, e.Color)
	assert.Equal(t, "✅ 출근 완료", e.Title)
	assert.Equal(t, "2024. 06. 12. (수)", field(t, e, "날짜"))
	assert.Equal(t, "09:05", field(t, e, "출근 시간"))

	existing := at(12, 9, 5)
	e = RenderResult(commands.CheckInRejected{Reason: apperrors.ErrCodeAlreadyCheckedIn, Existing: &existing}, at(12, 10, 0))
	assert.Equal(t, constants.ColorFailure, e.Color)
	assert.Equal(t, "이미 오늘 출근했습니다.", e.Description)
	assert.Equal(t, "09:05", field(t, e, "출근 시간"))
}

func TestRenderCheckOut(t *testing.T) {
	e := RenderResult(commands.CheckOutAccepted{
		CheckIn: at(12, 9, 0), CheckOut: at(12, 18, 30), WorkHours: 9, WorkMinutes: 30,
	}, at(12, 18, 30))
	assert.Equal(t, "✅ 퇴근 완료", e.Title)
	assert.Equal(t, "9시간 30분", field(t, e, "근무 시간"))

	e = RenderResult(commands.CheckOutRejected{Reason: apperrors.ErrCodeNoCheckInRecord}, at(12, 18, 0))
	assert.Equal(t, "오늘 출근 기록이 없습니다.", e.Description)

	out := at(12, 18, 30)
	e = RenderResult(commands.CheckOutRejected{Reason: apperrors.ErrCodeAlreadyCheckedOut, Existing: &out}, at(12, 19, 0))
	assert.Equal(t, "이미 퇴근했습니다.", e.Description)
	assert.Equal(t, "18:30", field(t, e, "퇴근 시간"))
}

func TestRenderReport(t *testing.T) {
	in, out := at(10, 9, 0), at(10, 18, 30)
	e := RenderResult(commands.ReportResult{
		PeriodLabel: "이번 주",
		Days: []models.DaySummary{
			{Day: "2024-06-10", Label: "2024. 06. 10. (월)", CheckIn: &in, CheckOut: &out, Work: &models.WorkDuration{Hours: 9, Minutes: 30}},
		},
	}, at(12, 9, 0))
	assert.Equal(t, constants.ColorReport, e.Color)
	assert.Equal(t, "이번 주의 출퇴근 기록", e.Description)
	assert.Equal(t, "출근: 09:00\n퇴근: 18:30\n근무: 9시간 30분", field(t, e, "2024. 06. 10. (월)"))

	e = RenderResult(commands.ReportResult{PeriodLabel: "오늘"}, at(12, 9, 0))
	assert.Equal(t, constants.ColorFailure, e.Color)
	assert.Equal(t, "오늘의 출퇴근 기록이 없습니다.", e.Description)
	assert.Empty(t, e.Fields)
}

func TestRenderReportRejectedSuggestion(t *testing.T) {
	e := RenderResult(commands.ReportRejected{Reason: apperrors.ErrCodeInvalidDateExpression, Suggestion: "today"}, at(12, 9, 0))
	assert.Contains(t, e.Description, "YYYY-MM-DD, 오늘, 이번주, 이번달")
	assert.Contains(t, e.Description, `혹시 "today"을(를) 입력하려고 하셨나요?`)

	e = RenderResult(commands.ReportRejected{Reason: apperrors.ErrCodeInvalidDateExpression}, at(12, 9, 0))
	assert.NotContains(t, e.Description, "혹시")
}

func TestRenderDelete(t *testing.T) {
	e := RenderResult(commands.DeleteAccepted{PeriodLabel: "2024. 06. 12. (수)", DeletedCount: 2}, at(12, 9, 0))
	assert.Equal(t, "2개", field(t, e, "삭제된 기록 수"))

	e = RenderResult(commands.DeleteRejected{Reason: apperrors.ErrCodeNothingToDelete, PeriodLabel: "2024. 06. 12. (수)"}, at(12, 9, 0))
	assert.Equal(t, "2024. 06. 12. (수)의 기록이 없습니다.", e.Description)
}

func TestRenderNovelty(t *testing.T) {
	e := RenderResult(commands.LottoResult{Numbers: []int{3, 15, 22, 33, 41, 45}}, at(12, 9, 0))
	assert.Equal(t, constants.ColorLotto, e.Color)
	assert.Equal(t, "🔴 03  🟡 15  🟢 22  🔵 33  ⚫ 41  ⚫ 45", field(t, e, "🎱 자동 생성 번호"))
	require.NotNil(t, e.Footer)

	e = RenderResult(commands.MenuResult{MenuRecommendation: services.MenuRecommendation{Category: "일식", Emoji: "🍱", Menu: "라멘"}}, at(12, 12, 0))
	assert.Equal(t, "🍱 **라멘** (일식)", field(t, e, "추천 메뉴"))
}

func TestErrorEmbedHidesDetail(t *testing.T) {
	e := ErrorEmbed()
	assert.Equal(t, "처리 중 오류가 발생했습니다.", e.Description)
	assert.Equal(t, constants.ColorFailure, e.Color)
}
