package goid

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStableWithinGoroutine(t *testing.T) {
	a := Get()
	b := Get()
	require.NotZero(t, a)
	assert.Equal(t, a, b)
}

func TestGetDistinctAcrossGoroutines(t *testing.T) {
	self := Get()

	var wg sync.WaitGroup
	ids := make([]int64, 8)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = Get()
		}(i)
	}
	wg.Wait()

	seen := map[int64]bool{self: true}
	for _, id := range ids {
		require.NotZero(t, id)
		assert.False(t, seen[id], "goroutine IDs must be distinct")
		seen[id] = true
	}
}
