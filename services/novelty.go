package services

import (
	"fmt"
	"math/rand/v2"
	"sort"
)

// IntNSource nguồn ngẫu nhiên, *rand.Rand thỏa interface này
type IntNSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRand dùng bộ sinh số toàn cục của math/rand/v2
var DefaultRand IntNSource = globalRand{}

const (
	lottoCount = 6
	lottoMax   = 45
)

// GenerateLottoNumbers sinh 6 số khác nhau trong 1..45, tăng dần
func GenerateLottoNumbers(r IntNSource) []int {
	seen := make(map[int]bool, lottoCount)
	numbers := make([]int, 0, lottoCount)
	for len(numbers) < lottoCount {
		n := r.IntN(lottoMax) + 1
		if seen[n] {
			continue
		}
		seen[n] = true
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

// LottoBallColor màu bóng theo nhóm số
func LottoBallColor(n int) string {
	switch {
	case n <= 10:
		return "🔴"
	case n <= 20:
		return "🟡"
	case n <= 30:
		return "🟢"
	case n <= 40:
		return "🔵"
	default:
		return "⚫"
	}
}

// FormatLottoBall "🔴 07"
func FormatLottoBall(n int) string {
	return fmt.Sprintf("%s %02d", LottoBallColor(n), n)
}

// MenuCategory một nhóm món ăn
type MenuCategory struct {
	Name  string
	Emoji string
	Items []string
}

var menuCategories = []MenuCategory{
	{Name: "한식", Emoji: "🍚", Items: []string{
		"김치찌개", "된장찌개", "비빔밥", "불고기", "삼겹살",
		"제육볶음", "김밥", "떡볶이", "순대국", "감자탕",
		"칼국수", "냉면", "삼계탕", "국수", "부대찌개",
	}},
	{Name: "중식", Emoji: "🥢", Items: []string{
		"짜장면", "짬뽕", "탕수육", "마라탕", "양꼬치",
		"마파두부", "깐풍기", "볶음밥", "동파육", "훠궈",
	}},
	{Name: "일식", Emoji: "🍱", Items: []string{
		"초밥", "라멘", "우동", "돈까스", "덮밥",
		"카레", "오니기리", "규동", "가츠동", "소바",
	}},
	{Name: "양식", Emoji: "🍝", Items: []string{
		"파스타", "피자", "햄버거", "스테이크", "샐러드",
		"리조또", "오믈렛", "샌드위치", "타코", "브리또",
	}},
}

// MenuRecommendation món được gợi ý
type MenuRecommendation struct {
	Category string
	Emoji    string
	Menu     string
}

// RecommendMenu chọn ngẫu nhiên một nhóm rồi một món trong nhóm
func RecommendMenu(r IntNSource) MenuRecommendation {
	c := menuCategories[r.IntN(len(menuCategories))]
	return MenuRecommendation{
		Category: c.Name,
		Emoji:    c.Emoji,
		Menu:     c.Items[r.IntN(len(c.Items))],
	}
}
