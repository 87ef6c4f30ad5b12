package projects

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocator_ConcurrentAllocationsAreDistinct(t *testing.T) {
	const n = 100

	alloc := NewAllocator()
	addrs := make(chan string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			addrs <- alloc.Allocate()
		}()
	}
	wg.Wait()
	close(addrs)

	seen := make(map[string]struct{}, n)
	for addr := range addrs {
		_, dup := seen[addr]
		assert.False(t, dup, "duplicate address %s", addr)
		seen[addr] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestAllocator_ReleaseMakesAddressReusable(t *testing.T) {
	alloc := NewAllocator()

	addr := alloc.Allocate()
	alloc.Release(addr)
	alloc.Reserve(addr)

	alloc.mu.Lock()
	_, taken := alloc.used[addr]
	alloc.mu.Unlock()
	assert.True(t, taken)
}
