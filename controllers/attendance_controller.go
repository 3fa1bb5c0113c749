package controllers

import (
	"context"
	"strconv"
	"strings"

	"attendbot/dto"
	"attendbot/models"
	"attendbot/response"
	"attendbot/services"

	"github.com/gin-gonic/gin"
)

type ReportReader interface {
	Report(ctx context.Context, userID, dateExpr string) (*services.Report, error)
}

type OpenSessionLister interface {
	OpenSessions(ctx context.Context) ([]models.AttendanceEvent, error)
}

// AttendanceController các truy vấn đọc cho REST API
type AttendanceController struct {
	reports  ReportReader
	sessions OpenSessionLister
}

func NewAttendanceController(reports ReportReader, sessions OpenSessionLister) *AttendanceController {
	return &AttendanceController{reports: reports, sessions: sessions}
}

// GetReport báo cáo chấm công của một user, date mặc định là hôm nay
func (a *AttendanceController) GetReport(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		response.BadRequest(c, "Thiếu userId")
		return
	}
	date := c.DefaultQuery("date", string(services.SymbolToday))

	report, err := a.reports.Report(c.Request.Context(), userID, date)
	if err != nil {
		_ = c.Error(err)
		return
	}

	days := make([]dto.DaySummaryResponse, 0, len(report.Days))
	for _, d := range report.Days {
		item := dto.DaySummaryResponse{
			Day:      d.Day,
			Label:    d.Label,
			CheckIn:  d.CheckIn,
			CheckOut: d.CheckOut,
		}
		if d.Work != nil {
			hours, minutes := d.Work.Hours, d.Work.Minutes
			item.WorkHours, item.WorkMinutes = &hours, &minutes
		}
		days = append(days, item)
	}

	response.Success(c, dto.ReportResponse{
		UserID:      userID,
		PeriodLabel: report.Period.Label,
		Start:       report.Period.Start,
		End:         report.Period.End,
		Days:        days,
	})
}

const maxPageLimit = 100

// GetOpenSessions danh sách người đã vào nhưng chưa ra hôm nay
func (a *AttendanceController) GetOpenSessions(c *gin.Context) {
	events, err := a.sessions.OpenSessions(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = min(parsedLimit, maxPageLimit)
		}
	}

	total := len(events)
	startIdx := total
	if page <= total/limit {
		startIdx = page * limit
	}
	endIdx := min(startIdx+limit, total)

	sessions := make([]dto.OpenSessionResponse, 0, endIdx-startIdx)
	for _, e := range events[startIdx:endIdx] {
		sessions = append(sessions, dto.OpenSessionResponse{
			UserID:      e.UserID,
			DisplayName: e.DisplayName,
			CheckIn:     e.Timestamp,
		})
	}

	response.SuccessWithPagination(c, sessions, page, limit, total)
}
