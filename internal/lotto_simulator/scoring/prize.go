// Package scoring 計算預測與開獎結果的命中數、獎金，以及遊玩時間換算。
package scoring

import (
	"sort"
)

// Tier 獎金等級
type Tier struct {
	CorrectCount int    `json:"correct_count"`
	Name         string `json:"name"`
	Prize        int    `json:"prize"`
}

// prizeTiers 固定獎金表，依命中數遞減排列，不可修改
var prizeTiers = []Tier{
	{CorrectCount: 6, Name: "Jackpot", Prize: 20_000_000},
	{CorrectCount: 5, Name: "5-Number", Prize: 50_000},
	{CorrectCount: 4, Name: "4-Number", Prize: 1_000},
	{CorrectCount: 3, Name: "3-Number", Prize: 10},
	{CorrectCount: 2, Name: "2-Number", Prize: 5},
}

// Tiers 返回獎金表的副本
func Tiers() []Tier {
	return append([]Tier(nil), prizeTiers...)
}

// Prize 查詢命中數對應的獎金，未列出的命中數為 0
func Prize(correctCount int) int {
	for _, tier := range prizeTiers {
		if tier.CorrectCount == correctCount {
			return tier.Prize
		}
	}
	return 0
}

// TierName 返回命中數對應的獎項名稱，無獎項時返回空字串
func TierName(correctCount int) string {
	for _, tier := range prizeTiers {
		if tier.CorrectCount == correctCount {
			return tier.Name
		}
	}
	return ""
}

// Score 比對預測與開獎號碼，返回命中數、獎金與遞增排序的命中號碼。
// 兩組號碼均視為集合。
func Score(prediction, draw []int) (correctCount int, prize int, matched []int) {
	drawn := make(map[int]bool, len(draw))
	for _, n := range draw {
		drawn[n] = true
	}

	matched = make([]int, 0, len(prediction))
	for _, n := range prediction {
		if drawn[n] {
			matched = append(matched, n)
			// 同一號碼只計一次
			delete(drawn, n)
		}
	}
	sort.Ints(matched)

	correctCount = len(matched)
	return correctCount, Prize(correctCount), matched
}
