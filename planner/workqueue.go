package planner

import (
	"sort"
	"sync"
)

// WorkQueuePlan implements spec.md §4.F: every ordered class pair (i, j),
// i < j, enumerated once, sorted descending by count[i]*count[j] so the
// largest, most expensive tasks are handed out first, and consumed
// through a mutex-guarded FIFO.
type WorkQueuePlan struct {
	mu    sync.Mutex
	tasks []Task
	next  int
}

// NewWorkQueuePlan builds a work-queue plan for classCount classes with
// the given per-class row counts. Panics if any count is negative: a
// negative class size cannot come out of partition.Partition and signals
// a caller passing counts it never got from there.
func NewWorkQueuePlan(counts []int) *WorkQueuePlan {
	for _, c := range counts {
		if c < 0 {
			panic("planner: NewWorkQueuePlan(negative count)")
		}
	}

	type pair struct{ i, j int }
	var pairs []pair
	for i := 0; i < len(counts); i++ {
		for j := i + 1; j < len(counts); j++ {
			pairs = append(pairs, pair{i, j})
		}
	}
	sort.SliceStable(pairs, func(a, b int) bool {
		costA := int64(counts[pairs[a].i]) * int64(counts[pairs[a].j])
		costB := int64(counts[pairs[b].i]) * int64(counts[pairs[b].j])
		return costA > costB
	})

	tasks := make([]Task, len(pairs))
	for k, p := range pairs {
		tasks[k] = Task{Left: []int{p.i}, Right: []int{p.j}}
	}
	return &WorkQueuePlan{tasks: tasks}
}

// Len reports the total number of tasks in the queue, regardless of how
// many have already been popped.
func (p *WorkQueuePlan) Len() int { return len(p.tasks) }

// Pop removes and returns the next task, or (Task{}, false) once the
// queue is empty. Pop never blocks: callers exit their worker loop on a
// false result rather than waiting for more work to appear, since the
// full task set is known up front.
func (p *WorkQueuePlan) Pop() (Task, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.next >= len(p.tasks) {
		return Task{}, false
	}
	t := p.tasks[p.next]
	p.next++
	return t, true
}
