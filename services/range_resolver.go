package services

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "attendbot/errors"
	"attendbot/utils"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// RangeSymbol các khoảng thời gian có tên
type RangeSymbol string

const (
	SymbolToday     RangeSymbol = "today"
	SymbolThisWeek  RangeSymbol = "this-week"
	SymbolThisMonth RangeSymbol = "this-month"
	SymbolDate      RangeSymbol = "date"
)

const (
	suggestionThreshold = 0.5
	// chuỗi dài hơn thì không tính gợi ý
	maxSuggestionInput = 32
)

// DateRange khoảng [Start, End] bao gồm hai đầu, Label chỉ dùng để hiển thị
type DateRange struct {
	Symbol RangeSymbol `json:"symbol"`
	Start  time.Time   `json:"start"`
	End    time.Time   `json:"end"`
	Label  string      `json:"label"`
}

var symbolAliases = map[string]RangeSymbol{
	"today":      SymbolToday,
	"오늘":         SymbolToday,
	"this-week":  SymbolThisWeek,
	"thisweek":   SymbolThisWeek,
	"week":       SymbolThisWeek,
	"이번주":        SymbolThisWeek,
	"this-month": SymbolThisMonth,
	"thismonth":  SymbolThisMonth,
	"month":      SymbolThisMonth,
	"이번달":        SymbolThisMonth,
}

var symbolLabels = map[RangeSymbol]string{
	SymbolToday:     "오늘",
	SymbolThisWeek:  "이번 주",
	SymbolThisMonth: "이번 달",
}

// suggestionKeywords là các từ khóa được gợi ý khi nhập sai
var suggestionKeywords = []string{"오늘", "이번주", "이번달", "today", "this-week", "this-month"}

var literalLayouts = []string{"2006-01-02", "2006/01/02", "2006.01.02", "20060102"}

// ResolveRange chuyển biểu thức ngày ("오늘", "이번주", "이번달" hoặc YYYY-MM-DD) thành khoảng thời gian
func ResolveRange(expr string, now time.Time) (DateRange, error) {
	key := strings.ToLower(strings.Join(strings.Fields(expr), ""))
	if symbol, ok := symbolAliases[key]; ok {
		return resolveSymbol(symbol, now), nil
	}
	return ResolveDay(expr)
}

// ResolveDay chỉ chấp nhận ngày cụ thể
func ResolveDay(expr string) (DateRange, error) {
	day, ok := parseLiteralDate(expr)
	if !ok {
		return DateRange{}, invalidDateError(expr)
	}
	return DateRange{
		Symbol: SymbolDate,
		Start:  utils.StartOfDay(day),
		End:    utils.EndOfDay(day),
		Label:  utils.FormatDate(day),
	}, nil
}

func resolveSymbol(symbol RangeSymbol, now time.Time) DateRange {
	loc := utils.Location()
	now = now.In(loc)
	r := DateRange{Symbol: symbol, Label: symbolLabels[symbol]}

	switch symbol {
	case SymbolThisWeek:
		// tuần bắt đầu từ Chủ nhật, có thể lùi sang tháng trước
		weekStart := time.Date(now.Year(), now.Month(), now.Day()-int(now.Weekday()), 0, 0, 0, 0, loc)
		r.Start = weekStart
		r.End = utils.EndOfDay(weekStart.AddDate(0, 0, 6))
	case SymbolThisMonth:
		r.Start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		// ngày 0 của tháng sau là ngày cuối tháng này
		r.End = utils.EndOfDay(time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, loc))
	default:
		r.Start = utils.StartOfDay(now)
		r.End = utils.EndOfDay(now)
	}
	return r
}

func parseLiteralDate(expr string) (time.Time, bool) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return time.Time{}, false
	}
	for _, layout := range literalLayouts {
		if t, err := time.ParseInLocation(layout, expr, utils.Location()); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func invalidDateError(expr string) error {
	appErr := apperrors.NewValidationError(apperrors.ErrCodeInvalidDateExpression,
		"올바른 날짜 형식이 아닙니다.\n사용 가능한 형식: YYYY-MM-DD, 오늘, 이번주, 이번달", nil)
	appErr.Suggestion = SuggestKeyword(expr)
	return appErr
}

// SuggestKeyword tìm từ khóa gần đúng nhất, trả về "" nếu không đủ giống
func SuggestKeyword(input string) string {
	query := normalizeInput(input)
	if query == "" || utf8.RuneCountInString(query) > maxSuggestionInput {
		return ""
	}

	byNormalized := make(map[string]string, len(suggestionKeywords))
	normalized := make([]string, 0, len(suggestionKeywords))
	for _, kw := range suggestionKeywords {
		n := normalizeInput(kw)
		byNormalized[n] = kw
		normalized = append(normalized, n)
	}

	best := createMatcher(normalized).Closest(query)
	if best == "" || calculateSimilarity(query, best) < suggestionThreshold {
		return ""
	}
	return byNormalized[best]
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}
