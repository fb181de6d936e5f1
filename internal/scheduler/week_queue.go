package scheduler

import (
	"time"

	"github.com/GhostCrab/parlay-club-server/internal/league"
)

// weekQueue decides which weeks are due for a poll. Three cadences:
// the current week polls aggressively, future weeks hourly for line
// movement, previous weeks daily for stat corrections.
//
// Due weeks accumulate in a FIFO; a failed poll requeues its week, so no
// cadence slot is ever silently dropped.
type weekQueue struct {
	config *Config

	lastPrevious time.Time
	lastCurrent  time.Time
	lastFuture   time.Time

	pending []int
}

func newWeekQueue(config *Config) weekQueue {
	return weekQueue{config: config}
}

// schedule appends every week whose cadence has elapsed at now.
func (q *weekQueue) schedule(now time.Time, currentWeek int) {
	if now.Sub(q.lastPrevious) > q.config.PreviousInterval {
		q.lastPrevious = now
		for week := league.FirstWeek; week < currentWeek; week++ {
			q.pending = append(q.pending, week)
		}
	}

	if now.Sub(q.lastCurrent) > q.config.CurrentInterval {
		q.lastCurrent = now
		q.pending = append(q.pending, currentWeek)
	}

	if now.Sub(q.lastFuture) > q.config.FutureInterval {
		q.lastFuture = now
		for week := currentWeek + 1; week <= league.LastWeek; week++ {
			q.pending = append(q.pending, week)
		}
	}
}

// drain takes everything currently due. Weeks requeued mid-drain wait for
// the next tick, so a persistently failing week cannot spin the loop.
func (q *weekQueue) drain() []int {
	batch := q.pending
	q.pending = nil
	return batch
}

func (q *weekQueue) requeue(week int) {
	q.pending = append(q.pending, week)
}
