package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"coverly.com/claimflow/internal/core/domain"
)

func TestQueue_FIFOOrder(t *testing.T) {
	q := New()

	q.Push(&domain.EmailRecord{ClaimID: "CLAIM_AAAAAAAA"})
	q.Push(&domain.EmailRecord{ClaimID: "CLAIM_BBBBBBBB"})
	q.Push(&domain.EmailRecord{ClaimID: "CLAIM_CCCCCCCC"})

	assert.Equal(t, 3, q.Len())

	first, ok := q.PopOrEmpty()
	assert.True(t, ok)
	assert.Equal(t, "CLAIM_AAAAAAAA", first.ClaimID)

	second, ok := q.PopOrEmpty()
	assert.True(t, ok)
	assert.Equal(t, "CLAIM_BBBBBBBB", second.ClaimID)

	third, ok := q.PopOrEmpty()
	assert.True(t, ok)
	assert.Equal(t, "CLAIM_CCCCCCCC", third.ClaimID)

	assert.Equal(t, 0, q.Len())
}

func TestQueue_PopEmpty(t *testing.T) {
	q := New()

	record, ok := q.PopOrEmpty()
	assert.False(t, ok)
	assert.Nil(t, record)
}

func TestQueue_ConcurrentPushPop(t *testing.T) {
	q := New()
	const producers = 4
	const perProducer = 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(&domain.EmailRecord{ClaimID: "CLAIM_CONCURRENT"})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, producers*perProducer, q.Len())

	popped := 0
	for {
		if _, ok := q.PopOrEmpty(); !ok {
			break
		}
		popped++
	}
	assert.Equal(t, producers*perProducer, popped)
}
