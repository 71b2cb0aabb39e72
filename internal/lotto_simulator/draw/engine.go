// Package draw 實作 6/49 開獎引擎：抽號、歷史與頻率統計、熱冷號預測。
package draw

import (
	"sort"
)

// maxPredictAttempts 預測時重抽的上限，超過後以未使用的隨機號碼補足
const maxPredictAttempts = 1000

// hotProbability 每個位置從熱號池選號的機率
const hotProbability = 0.5

// Source 引擎所需的隨機來源，由 pkg/utils.RandomGenerator 實作
type Source interface {
	Float64() float64
	Choice(values []int) int
	RandRange(min, max int) int
	Sample(min, max, k int) []int
	ShuffleInts(values []int)
}

// Engine 持有開獎歷史與號碼頻率。非線程安全，由呼叫端（Session）保證串行存取。
type Engine struct {
	rng       Source
	history   [][]int
	frequency map[int]int
	order     []int // 號碼首次出現的順序，頻率相同時依此排序
	popular   map[comboKey]struct{}
}

// NewEngine 建立一個空的開獎引擎
func NewEngine(rng Source) *Engine {
	e := &Engine{rng: rng}
	e.Reset()
	return e
}

// Reset 清空歷史、頻率與已開出組合
func (e *Engine) Reset() {
	e.history = make([][]int, 0)
	e.frequency = make(map[int]int)
	e.order = make([]int, 0, MaxNumber)
	e.popular = make(map[comboKey]struct{})
}

// Draw 均勻且不重複地從 1-49 抽出 6 個號碼，遞增排序，並更新統計
func (e *Engine) Draw() []int {
	numbers := e.rng.Sample(MinNumber, MaxNumber, PickCount)
	sort.Ints(numbers)

	e.history = append(e.history, numbers)
	for _, n := range numbers {
		if _, seen := e.frequency[n]; !seen {
			e.order = append(e.order, n)
		}
		e.frequency[n]++
	}
	key, _ := keyOf(numbers)
	e.popular[key] = struct{}{}

	return append([]int(nil), numbers...)
}

// rankedNumbers 依出現次數遞減排序已開出的號碼；次數相同時保持首次出現順序
func (e *Engine) rankedNumbers() []int {
	ranked := append([]int(nil), e.order...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return e.frequency[ranked[i]] > e.frequency[ranked[j]]
	})
	return ranked
}

// FrequentNumbers 返回出現次數最多的 10 個號碼（熱號）
func (e *Engine) FrequentNumbers() []int {
	ranked := e.rankedNumbers()
	if len(ranked) > PoolSize {
		ranked = ranked[:PoolSize]
	}
	return ranked
}

// ColdNumbers 返回已開出號碼中出現次數最少的 10 個（冷號）
func (e *Engine) ColdNumbers() []int {
	ranked := e.rankedNumbers()
	if len(ranked) > PoolSize {
		ranked = ranked[len(ranked)-PoolSize:]
	}
	return ranked
}

// Predict 以熱冷號啟發式產生一組 6 個不重複的號碼。
// 每個位置有一半機率取自熱號池，否則取自冷號池；兩池皆空時取 1-49 的隨機號碼。
// 重複的號碼會被捨棄並重抽。
func (e *Engine) Predict() []int {
	hot := e.FrequentNumbers()
	cold := e.ColdNumbers()

	picked := make([]int, 0, PickCount)
	for attempt := 0; len(picked) < PickCount && attempt < maxPredictAttempts; attempt++ {
		var number int
		if len(hot) > 0 && e.rng.Float64() < hotProbability {
			number = e.rng.Choice(hot)
		} else if len(cold) > 0 {
			number = e.rng.Choice(cold)
		} else {
			number = e.rng.RandRange(MinNumber, MaxNumber)
		}

		if !IsNumberDuplicate(number, picked) {
			picked = append(picked, number)
		}
	}

	if len(picked) < PickCount {
		picked = e.fillRandom(picked)
	}

	sort.Ints(picked)
	return picked
}

// fillRandom 以未被選中的隨機號碼補足預測
func (e *Engine) fillRandom(picked []int) []int {
	remaining := make([]int, 0, MaxNumber)
	for n := MinNumber; n <= MaxNumber; n++ {
		if !IsNumberDuplicate(n, picked) {
			remaining = append(remaining, n)
		}
	}
	e.rng.ShuffleInts(remaining)
	return append(picked, remaining[:PickCount-len(picked)]...)
}

// OverdueNumbers 返回最近 10 期未開出的號碼，順序隨機
func (e *Engine) OverdueNumbers() []int {
	recent := make(map[int]bool)
	start := len(e.history) - RecentSpan
	if start < 0 {
		start = 0
	}
	for _, numbers := range e.history[start:] {
		for _, n := range numbers {
			recent[n] = true
		}
	}

	overdue := make([]int, 0, MaxNumber)
	for n := MinNumber; n <= MaxNumber; n++ {
		if !recent[n] {
			overdue = append(overdue, n)
		}
	}
	e.rng.ShuffleInts(overdue)
	return overdue
}

// IsPopular 判斷該組號碼（不計順序）是否曾經開出
func (e *Engine) IsPopular(numbers []int) bool {
	key, ok := keyOf(numbers)
	if !ok {
		return false
	}
	_, found := e.popular[key]
	return found
}

// History 返回所有開獎結果的副本
func (e *Engine) History() [][]int {
	out := make([][]int, len(e.history))
	for i, numbers := range e.history {
		out[i] = append([]int(nil), numbers...)
	}
	return out
}

// DrawCount 返回已開獎次數
func (e *Engine) DrawCount() int {
	return len(e.history)
}

// Frequency 返回號碼的累計出現次數
func (e *Engine) Frequency(number int) int {
	return e.frequency[number]
}
