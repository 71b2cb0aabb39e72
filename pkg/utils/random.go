package utils

import (
	"math/rand"
	"sync"
	"time"
)

// RandomGenerator 提供線程安全、可指定種子的隨機數生成
type RandomGenerator struct {
	rng  *rand.Rand
	lock sync.Mutex
}

var (
	defaultGenerator *RandomGenerator
	once             sync.Once
)

// GetRandomGenerator 返回預設的隨機數生成器實例
func GetRandomGenerator() *RandomGenerator {
	once.Do(func() {
		defaultGenerator = NewRandomGenerator(time.Now().UnixNano())
	})
	return defaultGenerator
}

// NewRandomGenerator 以指定種子建立生成器，相同種子產生相同序列
func NewRandomGenerator(seed int64) *RandomGenerator {
	return &RandomGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn 生成 [0,n) 範圍內的隨機整數
func (r *RandomGenerator) Intn(n int) int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.rng.Intn(n)
}

// Float64 返回 [0.0,1.0) 範圍內的隨機浮點數
func (r *RandomGenerator) Float64() float64 {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.rng.Float64()
}

// RandRange 生成指定範圍內的隨機整數 [min,max]
func (r *RandomGenerator) RandRange(min, max int) int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.rng.Intn(max-min+1) + min
}

// Choice 從切片中均勻選取一個元素，切片不可為空
func (r *RandomGenerator) Choice(values []int) int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return values[r.rng.Intn(len(values))]
}

// ShuffleInts 就地打亂整數切片
func (r *RandomGenerator) ShuffleInts(values []int) {
	r.lock.Lock()
	defer r.lock.Unlock()

	for i := len(values) - 1; i > 0; i-- {
		j := r.rng.Intn(i + 1)
		values[i], values[j] = values[j], values[i]
	}
}

// Sample 從 [min,max] 中不重複地抽取 k 個整數（部分 Fisher-Yates），
// 結果依抽取順序返回
func (r *RandomGenerator) Sample(min, max, k int) []int {
	pool := make([]int, 0, max-min+1)
	for n := min; n <= max; n++ {
		pool = append(pool, n)
	}
	if k > len(pool) {
		k = len(pool)
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	for i := 0; i < k; i++ {
		j := i + r.rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
