// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package timing

import "time"

type entry struct {
	id    ID
	owner string
	due   time.Time
	seq   uint64
	index int

	cancelled bool

	// progress sequences
	progress   bool
	spec       ProgressSpec
	elapsed    int
	onTick     func(int)
	onComplete func()

	// delays
	onFire func()
}

// queue is a container/heap min-heap ordered by due time, then by the order
// entries were scheduled.
type queue []*entry

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q queue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *queue) Push(x any) {
	e := x.(*entry)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}
