package layerpar

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeCoversEveryIndexExactlyOnce(t *testing.T) {
	n := 997 // prime, exercises the remainder-distribution branch
	seen := make([]int32, n)
	var mu sync.Mutex

	Range(n, func(lo, hi int) {
		local := make([]int, 0, hi-lo)
		for i := lo; i < hi; i++ {
			local = append(local, i)
		}
		mu.Lock()
		for _, i := range local {
			seen[i]++
		}
		mu.Unlock()
	})

	for i, c := range seen {
		assert.Equal(t, int32(1), c, "index %d visited %d times", i, c)
	}
}

func TestRangeEmpty(t *testing.T) {
	called := false
	Range(0, func(lo, hi int) { called = true })
	assert.False(t, called)
}

func TestDegreeNeverExceedsN(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 1000} {
		d := Degree(n)
		assert.GreaterOrEqual(t, d, 1)
		if n > 0 {
			assert.LessOrEqual(t, d, n)
		}
	}
}
