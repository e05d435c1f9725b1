package lvlog

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// MaxSinks is the default registry capacity.
const MaxSinks = 32

type entry struct {
	handle   SinkHandle
	sink     Sink
	userData any
	minLevel Level
}

// Registry is the ordered, append-only list of sinks of a Logger.
//
// Reads are lock-free on an immutable snapshot; Add and Remove copy the list
// under mu and publish a new snapshot.
type Registry struct {
	capacity int // 0 = unbounded

	mu      sync.Mutex
	next    SinkHandle
	entries atomic.Pointer[[]entry]
}

// NewRegistry returns an empty registry holding at most capacity sinks.
// A capacity of 0 removes the limit.
func NewRegistry(capacity int) *Registry {
	if capacity < 0 {
		capacity = 0
	}
	return &Registry{capacity: capacity}
}

// Add appends a sink that receives events at minLevel and above.
func (r *Registry) Add(s Sink, userData any, minLevel Level) (SinkHandle, error) {
	if s == nil {
		return -1, ErrNilSink
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.snapshot()
	if r.capacity > 0 && len(cur) >= r.capacity {
		return -1, errors.Wrapf(ErrCapacityExceeded, "capacity %d", r.capacity)
	}
	h := r.next
	r.next++
	next := make([]entry, len(cur), len(cur)+1)
	copy(next, cur)
	next = append(next, entry{handle: h, sink: s, userData: userData, minLevel: minLevel})
	r.entries.Store(&next)
	return h, nil
}

// Remove drops the sink registered under h, keeping the order of the others.
// It reports whether h was registered.
func (r *Registry) Remove(h SinkHandle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.snapshot()
	for i := range cur {
		if cur[i].handle != h {
			continue
		}
		next := make([]entry, 0, len(cur)-1)
		next = append(next, cur[:i]...)
		next = append(next, cur[i+1:]...)
		r.entries.Store(&next)
		return true
	}
	return false
}

// Len returns the number of registered sinks.
func (r *Registry) Len() int { return len(r.snapshot()) }

// Capacity returns the configured limit, 0 when unbounded.
func (r *Registry) Capacity() int { return r.capacity }

// snapshot MUST be treated as immutable by callers.
func (r *Registry) snapshot() []entry {
	p := r.entries.Load()
	if p == nil {
		return nil
	}
	return *p
}
