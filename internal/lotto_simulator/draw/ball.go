package draw

import (
	"sort"
)

const (
	MinNumber  = 1  // 最小球號
	MaxNumber  = 49 // 最大球號
	PickCount  = 6  // 每注號碼數
	RecentSpan = 10 // 冷號統計的近期期數
	PoolSize   = 10 // 熱號/冷號池大小
)

// ValidateNumber 驗證球號是否有效
func ValidateNumber(number int) error {
	if number < MinNumber || number > MaxNumber {
		return NewLotteryErrorWithFormat(ErrInvalidBall.Code,
			"無效的球號: %d，球號必須在 %d-%d 之間", number, MinNumber, MaxNumber)
	}
	return nil
}

// IsNumberDuplicate 檢查號碼是否已存在
func IsNumberDuplicate(number int, existing []int) bool {
	for _, n := range existing {
		if n == number {
			return true
		}
	}
	return false
}

// NormalizePrediction 驗證一組號碼並返回遞增排序後的副本
func NormalizePrediction(numbers []int) ([]int, error) {
	if len(numbers) != PickCount {
		return nil, NewLotteryErrorWithFormat(ErrInvalidPrediction.Code,
			"每組號碼必須恰好選擇 %d 個，實際為 %d 個", PickCount, len(numbers))
	}

	sorted := make([]int, 0, PickCount)
	for _, n := range numbers {
		if err := ValidateNumber(n); err != nil {
			return nil, err
		}
		if IsNumberDuplicate(n, sorted) {
			return nil, NewLotteryErrorWithFormat(ErrDuplicateBall.Code, "重複的球號: %d", n)
		}
		sorted = append(sorted, n)
	}

	sort.Ints(sorted)
	return sorted, nil
}

// comboKey 以排序後的號碼作為組合的 map 鍵
type comboKey [PickCount]int

func keyOf(numbers []int) (comboKey, bool) {
	var key comboKey
	if len(numbers) != PickCount {
		return key, false
	}
	sorted := append([]int(nil), numbers...)
	sort.Ints(sorted)
	copy(key[:], sorted)
	return key, true
}
