// Package queue implements the ordered hand-off between the ingestion
// pipeline and the queue processor. FIFO ordering is the only guarantee:
// no priority, no dedup, no bound beyond available memory.
package queue

import (
	"sync"

	"coverly.com/claimflow/internal/core/domain"
)

// Queue is a mutex-guarded FIFO of email records. It is safe for concurrent
// use; pushes never block and pops never wait.
type Queue struct {
	mu    sync.Mutex
	items []*domain.EmailRecord
}

func New() *Queue {
	return &Queue{}
}

// Push appends a record. It never fails: the queue enforces no bound.
func (q *Queue) Push(record *domain.EmailRecord) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, record)
}

// PopOrEmpty removes and returns the oldest record, or reports empty rather
// than blocking.
func (q *Queue) PopOrEmpty() (*domain.EmailRecord, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil, false
	}
	record := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return record, true
}

// Len reports the current queue depth.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
