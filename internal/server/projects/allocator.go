package projects

import (
	"fmt"
	"math/rand"
	"sync"
)

// Allocator hands out unique multicast chat addresses in the
// administratively scoped 239.0.0.0/8 block. Draws are random and retried
// on collision; the address space dwarfs any realistic project count, so
// the retry loop terminates quickly in practice. Addresses return to the
// pool only when a project is cancelled.
type Allocator struct {
	mu   sync.Mutex
	used map[string]struct{}
}

func NewAllocator() *Allocator {
	return &Allocator{used: make(map[string]struct{})}
}

// Allocate draws a free address and marks it used.
func (a *Allocator) Allocate() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	for {
		addr := fmt.Sprintf("239.%d.%d.%d", rand.Intn(256), rand.Intn(256), rand.Intn(256))
		if _, taken := a.used[addr]; !taken {
			a.used[addr] = struct{}{}
			return addr
		}
	}
}

// Release returns addr to the pool. Called exactly once per project, at
// cancellation.
func (a *Allocator) Release(addr string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.used, addr)
}

// Reserve marks an address restored from storage as used so later
// allocations cannot collide with it.
func (a *Allocator) Reserve(addr string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.used[addr] = struct{}{}
}
