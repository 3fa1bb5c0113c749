package builders

import (
	"fmt"
	"strings"
	"time"

	"attendbot/commands"
	"attendbot/constants"
	"attendbot/dto"
	apperrors "attendbot/errors"
	"attendbot/models"
	"attendbot/services"
	"attendbot/utils"
)

// FormatWork "9시간 30분"
func FormatWork(hours, minutes int) string {
	return fmt.Sprintf("%d시간 %d분", hours, minutes)
}

// RenderResult chuyển kết quả command thành embed Discord
func RenderResult(res commands.Result, now time.Time) dto.Embed {
	switch r := res.(type) {
	case commands.CheckInAccepted:
		return NewEmbedBuilder().
			WithColor(constants.ColorSuccess).
			WithTitle("✅ 출근 완료").
			AddField("날짜", utils.FormatDate(r.Timestamp)).
			AddField("출근 시간", utils.FormatTime(r.Timestamp)).
			Build()

	case commands.CheckInRejected:
		return NewEmbedBuilder().
			WithColor(constants.ColorFailure).
			WithTitle("⚠️ 출근 실패").
			WithDescription("이미 오늘 출근했습니다.").
			AddField("출근 시간", formatOptionalTime(r.Existing)).
			Build()

	case commands.CheckOutAccepted:
		work := FormatWork(r.WorkHours, r.WorkMinutes)
		if r.Anomaly {
			work += " (확인 필요)"
		}
		return NewEmbedBuilder().
			WithColor(constants.ColorSuccess).
			WithTitle("✅ 퇴근 완료").
			AddField("날짜", utils.FormatDate(r.CheckOut)).
			AddField("출근 시간", utils.FormatTime(r.CheckIn)).
			AddField("퇴근 시간", utils.FormatTime(r.CheckOut)).
			AddField("근무 시간", work).
			Build()

	case commands.CheckOutRejected:
		b := NewEmbedBuilder().WithColor(constants.ColorFailure).WithTitle("⚠️ 퇴근 실패")
		if r.Reason == apperrors.ErrCodeAlreadyCheckedOut {
			return b.WithDescription("이미 퇴근했습니다.").
				AddField("퇴근 시간", formatOptionalTime(r.Existing)).
				Build()
		}
		return b.WithDescription("오늘 출근 기록이 없습니다.").Build()

	case commands.ReportResult:
		return renderReport(r)

	case commands.ReportRejected:
		return NewEmbedBuilder().
			WithColor(constants.ColorFailure).
			WithTitle("⚠️ 조회 실패").
			WithDescription("올바른 날짜 형식이 아닙니다.\n사용 가능한 형식: YYYY-MM-DD, 오늘, 이번주, 이번달" + suggestionLine(r.Suggestion)).
			Build()

	case commands.DeleteAccepted:
		return NewEmbedBuilder().
			WithColor(constants.ColorSuccess).
			WithTitle("✅ 삭제 완료").
			WithDescription(r.PeriodLabel + "의 출퇴근 기록이 삭제되었습니다.").
			AddField("삭제된 기록 수", fmt.Sprintf("%d개", r.DeletedCount)).
			Build()

	case commands.DeleteRejected:
		b := NewEmbedBuilder().WithColor(constants.ColorFailure).WithTitle("⚠️ 삭제 실패")
		if r.Reason == apperrors.ErrCodeNothingToDelete {
			return b.WithDescription(r.PeriodLabel + "의 기록이 없습니다.").Build()
		}
		return b.WithDescription("올바른 날짜 형식이 아닙니다. (YYYY-MM-DD)" + suggestionLine(r.Suggestion)).Build()

	case commands.LottoResult:
		balls := make([]string, 0, len(r.Numbers))
		for _, n := range r.Numbers {
			balls = append(balls, services.FormatLottoBall(n))
		}
		return NewEmbedBuilder().
			WithColor(constants.ColorLotto).
			WithTitle("🎰 로또 번호 생성기").
			WithDescription("이번주 행운의 번호입니다!").
			AddField("🎱 자동 생성 번호", strings.Join(balls, "  ")).
			WithFooter("행운을 빕니다! 당첨되면 나눠주세요 😉").
			WithTimestamp(now).
			Build()

	case commands.MenuResult:
		return NewEmbedBuilder().
			WithColor(constants.ColorMenu).
			WithTitle("🍽️ 점심 메뉴 추천").
			WithDescription("오늘은 이거 어때요?").
			AddField("추천 메뉴", fmt.Sprintf("%s **%s** (%s)", r.Emoji, r.Menu, r.Category)).
			WithFooter("맛있게 드세요! 😋").
			WithTimestamp(now).
			Build()
	}
	return ErrorEmbed()
}

// ErrorEmbed lỗi hệ thống, không lộ chi tiết bên trong
func ErrorEmbed() dto.Embed {
	return NewEmbedBuilder().
		WithColor(constants.ColorFailure).
		WithTitle("⚠️ 오류 발생").
		WithDescription("처리 중 오류가 발생했습니다.").
		Build()
}

// InvalidRequestEmbed lệnh không hợp lệ
func InvalidRequestEmbed(message string) dto.Embed {
	return NewEmbedBuilder().
		WithColor(constants.ColorFailure).
		WithTitle("⚠️ 요청 실패").
		WithDescription(message).
		Build()
}

func renderReport(r commands.ReportResult) dto.Embed {
	if len(r.Days) == 0 {
		return NewEmbedBuilder().
			WithColor(constants.ColorFailure).
			WithTitle("📊 근태 기록").
			WithDescription(r.PeriodLabel + "의 출퇴근 기록이 없습니다.").
			Build()
	}

	b := NewEmbedBuilder().
		WithColor(constants.ColorReport).
		WithTitle("📊 근태 기록").
		WithDescription(r.PeriodLabel + "의 출퇴근 기록")
	for _, day := range r.Days {
		b.AddField(day.Label, DaySummaryText(day))
	}
	return b.Build()
}

// DaySummaryText nội dung một ngày trong báo cáo
func DaySummaryText(day models.DaySummary) string {
	var lines []string
	if day.CheckIn != nil {
		lines = append(lines, "출근: "+utils.FormatTime(*day.CheckIn))
	}
	if day.CheckOut != nil {
		lines = append(lines, "퇴근: "+utils.FormatTime(*day.CheckOut))
	}
	if day.Work != nil {
		lines = append(lines, "근무: "+FormatWork(day.Work.Hours, day.Work.Minutes))
	}
	return strings.Join(lines, "\n")
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return utils.FormatTime(*t)
}

func suggestionLine(s string) string {
	if s == "" {
		return ""
	}
	return fmt.Sprintf("\n혹시 \"%s\"을(를) 입력하려고 하셨나요?", s)
}
