package services

import (
	"testing"
	"time"

	apperrors "attendbot/errors"
	"attendbot/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seoul(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, utils.Location())
}

func endOfDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), utils.Location())
}

func TestResolveRangeSymbols(t *testing.T) {
	now := seoul(2024, time.June, 12, 14, 30) // thứ Tư

	tests := []struct {
		expr  string
		start time.Time
		end   time.Time
		label string
	}{
		{"today", seoul(2024, time.June, 12, 0, 0), endOfDay(2024, time.June, 12), "오늘"},
		{"오늘", seoul(2024, time.June, 12, 0, 0), endOfDay(2024, time.June, 12), "오늘"},
		{"this-week", seoul(2024, time.June, 9, 0, 0), endOfDay(2024, time.June, 15), "이번 주"},
		{" 이번 주 ", seoul(2024, time.June, 9, 0, 0), endOfDay(2024, time.June, 15), "이번 주"},
		{"THIS-MONTH", seoul(2024, time.June, 1, 0, 0), endOfDay(2024, time.June, 30), "이번 달"},
		{"이번달", seoul(2024, time.June, 1, 0, 0), endOfDay(2024, time.June, 30), "이번 달"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			r, err := ResolveRange(tt.expr, now)
			require.NoError(t, err)
			assert.True(t, tt.start.Equal(r.Start), "start %s", r.Start)
			assert.True(t, tt.end.Equal(r.End), "end %s", r.End)
			assert.Equal(t, tt.label, r.Label)
		})
	}
}

func TestResolveRangeWeekCrossesMonth(t *testing.T) {
	// 2024-06-01 là thứ Bảy, tuần bắt đầu từ Chủ nhật 2024-05-26
	r, err := ResolveRange("이번주", seoul(2024, time.June, 1, 9, 0))
	require.NoError(t, err)
	assert.Equal(t, "2024-05-26", utils.DayKey(r.Start))
	assert.Equal(t, "2024-06-01", utils.DayKey(r.End))
}

func TestResolveRangeMonthEnd(t *testing.T) {
	r, err := ResolveRange("this-month", seoul(2024, time.February, 10, 9, 0))
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", utils.DayKey(r.End))

	r, err = ResolveRange("this-month", seoul(2024, time.December, 31, 23, 0))
	require.NoError(t, err)
	assert.Equal(t, "2024-12-01", utils.DayKey(r.Start))
	assert.Equal(t, "2024-12-31", utils.DayKey(r.End))
}

func TestResolveRangeLiteralDate(t *testing.T) {
	for _, expr := range []string{"2024-06-10", "2024/06/10", "2024.06.10", "20240610"} {
		r, err := ResolveRange(expr, seoul(2024, time.June, 12, 0, 0))
		require.NoError(t, err, expr)
		assert.Equal(t, SymbolDate, r.Symbol)
		assert.True(t, seoul(2024, time.June, 10, 0, 0).Equal(r.Start))
		assert.True(t, endOfDay(2024, time.June, 10).Equal(r.End))
		assert.Equal(t, "2024. 06. 10. (월)", r.Label)
	}
}

func TestResolveRangeInvalid(t *testing.T) {
	for _, expr := range []string{"not-a-date", "", "2024-13-01", "2024-02-30"} {
		_, err := ResolveRange(expr, time.Now())
		require.Error(t, err, expr)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidDateExpression), expr)
		assert.True(t, apperrors.IsValidation(err))
	}
}

func TestResolveRangeIsPure(t *testing.T) {
	now := seoul(2024, time.June, 12, 14, 30)
	a, errA := ResolveRange("this-week", now)
	b, errB := ResolveRange("this-week", now)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
}

func TestResolveDayRejectsSymbols(t *testing.T) {
	_, err := ResolveDay("today")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidDateExpression))
}

func TestSuggestKeyword(t *testing.T) {
	assert.Equal(t, "today", SuggestKeyword("tody"))
	assert.Equal(t, "this-week", SuggestKeyword("this-wek"))
	assert.Equal(t, "this-month", SuggestKeyword("this-mnth"))
	assert.Equal(t, "", SuggestKeyword(""))
	assert.Equal(t, "", SuggestKeyword("zzzzzzzzzzzzzzzzzz"))
}

func TestInvalidDateCarriesSuggestion(t *testing.T) {
	_, err := ResolveRange("tody", time.Now())
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "today", appErr.Suggestion)
}
