package poller

import (
	"sync"

	"github.com/google/uuid"
)

// inflightRegistry guarantees at most one in-flight poll per campaign id.
// A second poll arriving while one is running is rejected, not queued:
// queued cycles would act on observations staler than the one being
// written.
type inflightRegistry struct {
	mu       sync.Mutex
	inflight map[uuid.UUID]struct{}
}

func newInflightRegistry() *inflightRegistry {
	return &inflightRegistry{inflight: make(map[uuid.UUID]struct{})}
}

// tryAcquire claims the campaign for one poll cycle. It returns false when
// a cycle is already in flight.
func (r *inflightRegistry) tryAcquire(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, held := r.inflight[id]; held {
		return false
	}
	r.inflight[id] = struct{}{}
	return true
}

// release frees the campaign for the next cycle. Called on every exit path
// of a poll, including errors.
func (r *inflightRegistry) release(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inflight, id)
}
