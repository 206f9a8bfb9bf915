package boolde

import "container/heap"

// candidate is a pair (candidate time, source tag): an internal engine
// entity produced by projecting a past switch time forward through a delay.
// seq breaks ties deterministically between candidates enqueued at the same
// time from different sources, independent of map iteration order.
type candidate struct {
	time   float64
	source string
	seq    int64
}

// candidateQueue is a container/heap-based priority queue of pending
// candidate events, ordered by time and, for equal times (outside
// tolerance), by enqueue sequence. This adapts the deterministic
// (timestamp, priority, seqID) shape of a cluster event heap to delay-event
// candidates: there is no separate "priority" axis here, so sequence alone
// breaks time ties.
type candidateQueue []candidate

func (q candidateQueue) Len() int            { return len(q) }
func (q candidateQueue) Less(i, j int) bool  { return q[i].time < q[j].time || (q[i].time == q[j].time && q[i].seq < q[j].seq) }
func (q candidateQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *candidateQueue) Push(x interface{}) { *q = append(*q, x.(candidate)) }
func (q *candidateQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// scheduler wraps candidateQueue with a monotonic sequence counter and the
// heap.Interface bookkeeping, so the engine can just Push/Pop times.
type scheduler struct {
	q       candidateQueue
	nextSeq int64
}

func newScheduler() *scheduler {
	s := &scheduler{}
	heap.Init(&s.q)
	return s
}

func (s *scheduler) push(time float64, source string) {
	heap.Push(&s.q, candidate{time: time, source: source, seq: s.nextSeq})
	s.nextSeq++
}

func (s *scheduler) empty() bool { return s.q.Len() == 0 }

// popCoalesced pops the earliest candidate and every other queued candidate
// within tolerance of it, since arithmetically distinct but semantically
// identical timestamps (t1+delay2 vs t2+delay1) must collapse to a single
// evaluation.
func (s *scheduler) popCoalesced(tol Tolerance) (float64, []string) {
	first := heap.Pop(&s.q).(candidate)
	t := first.time
	sources := []string{first.source}
	for s.q.Len() > 0 && tol.Equal(s.q[0].time, t) {
		c := heap.Pop(&s.q).(candidate)
		sources = append(sources, c.source)
	}
	return t, sources
}
