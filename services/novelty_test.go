package services

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted trả lần lượt các giá trị đã định sẵn
type scripted struct {
	values []int
	i      int
}

func (s *scripted) IntN(n int) int {
	v := s.values[s.i%len(s.values)] % n
	s.i++
	return v
}

func TestGenerateLottoNumbers(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		nums := GenerateLottoNumbers(r)
		require.Len(t, nums, 6)
		assert.True(t, sort.IntsAreSorted(nums))
		seen := map[int]bool{}
		for _, n := range nums {
			assert.GreaterOrEqual(t, n, 1)
			assert.LessOrEqual(t, n, 45)
			assert.False(t, seen[n], "duplicate %d", n)
			seen[n] = true
		}
	}
}

func TestGenerateLottoNumbersSkipsRepeats(t *testing.T) {
	nums := GenerateLottoNumbers(&scripted{values: []int{44, 44, 0, 0, 9, 10, 19, 20, 29}})
	assert.Equal(t, []int{1, 10, 11, 20, 21, 45}, nums)
}

func TestFormatLottoBall(t *testing.T) {
	assert.Equal(t, "🔴 07", FormatLottoBall(7))
	assert.Equal(t, "🔴 10", FormatLottoBall(10))
	assert.Equal(t, "🟡 11", FormatLottoBall(11))
	assert.Equal(t, "🟢 30", FormatLottoBall(30))
	assert.Equal(t, "🔵 31", FormatLottoBall(31))
	assert.Equal(t, "⚫ 45", FormatLottoBall(45))
}

func TestRecommendMenu(t *testing.T) {
	rec := RecommendMenu(&scripted{values: []int{1, 0}})
	assert.Equal(t, MenuRecommendation{Category: "중식", Emoji: "🥢", Menu: "짜장면"}, rec)

	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 50; i++ {
		rec := RecommendMenu(r)
		var found bool
		for _, c := range menuCategories {
			if c.Name == rec.Category {
				assert.Equal(t, c.Emoji, rec.Emoji)
				assert.Contains(t, c.Items, rec.Menu)
				found = true
			}
		}
		assert.True(t, found, rec.Category)
	}
}
