package utils

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleIsDistinctAndInRange(t *testing.T) {
	rng := NewRandomGenerator(42)

	for i := 0; i < 500; i++ {
		got := rng.Sample(1, 49, 6)
		require.Len(t, got, 6)

		seen := make(map[int]bool)
		for _, n := range got {
			assert.GreaterOrEqual(t, n, 1)
			assert.LessOrEqual(t, n, 49)
			assert.False(t, seen[n], "重複的號碼 %d", n)
			seen[n] = true
		}
	}
}

func TestSampleClampsToPoolSize(t *testing.T) {
	rng := NewRandomGenerator(1)

	got := rng.Sample(1, 3, 10)
	sort.Ints(got)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSameSeedSameSequence(t *testing.T) {
	a := NewRandomGenerator(7)
	b := NewRandomGenerator(7)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(49), b.Intn(49))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestShuffleIntsKeepsElements(t *testing.T) {
	rng := NewRandomGenerator(3)
	values := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	rng.ShuffleInts(values)
	sort.Ints(values)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, values)
}

func TestChoiceAndRandRange(t *testing.T) {
	rng := NewRandomGenerator(9)
	pool := []int{4, 8, 15}

	for i := 0; i < 100; i++ {
		assert.Contains(t, pool, rng.Choice(pool))

		n := rng.RandRange(1, 49)
		assert.True(t, n >= 1 && n <= 49)
	}
}
