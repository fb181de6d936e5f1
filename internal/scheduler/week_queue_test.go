package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQueue() (weekQueue, time.Time) {
	base := time.Date(2023, 10, 1, 12, 0, 0, 0, time.UTC)
	q := newWeekQueue(DefaultConfig())
	// Anchor all cadences at base so only elapsed intervals fire
	q.lastPrevious = base
	q.lastCurrent = base
	q.lastFuture = base
	return q, base
}

func TestWeekQueueFirstScheduleCoversSeason(t *testing.T) {
	q := newWeekQueue(DefaultConfig())
	q.schedule(time.Date(2023, 10, 1, 12, 0, 0, 0, time.UTC), 4)

	batch := q.drain()
	require.Len(t, batch, 18, "startup must enqueue every week once")
	// Previous weeks first, then the current week, then the future
	assert.Equal(t, []int{1, 2, 3}, batch[:3])
	assert.Equal(t, 4, batch[3])
	assert.Equal(t, 5, batch[4])
	assert.Equal(t, 18, batch[17])
}

func TestWeekQueueCadences(t *testing.T) {
	q, base := testQueue()

	q.schedule(base.Add(time.Second), 4)
	assert.Empty(t, q.drain(), "nothing due after one second")

	q.schedule(base.Add(11*time.Second), 4)
	assert.Equal(t, []int{4}, q.drain(), "current week due after 10s")

	q.schedule(base.Add(61*time.Minute), 4)
	batch := q.drain()
	require.Len(t, batch, 15, "current week plus all future weeks due after an hour")
	assert.Equal(t, 4, batch[0])
	assert.Equal(t, []int{5, 6, 7}, batch[1:4])

	q.schedule(base.Add(25*time.Hour), 4)
	batch = q.drain()
	assert.Equal(t, []int{1, 2, 3}, batch[:3], "previous weeks due after a day")
}

func TestWeekQueueRequeueWaitsForNextDrain(t *testing.T) {
	q, base := testQueue()

	q.schedule(base.Add(11*time.Second), 4)
	batch := q.drain()
	require.Equal(t, []int{4}, batch)

	q.requeue(4)
	assert.Equal(t, []int{4}, q.drain(), "failed week comes back on the following drain")
	assert.Empty(t, q.drain())
}
