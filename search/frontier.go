package search

import "container/heap"

// frontier holds arena indices of nodes waiting to be expanded.
type frontier interface {
	push(idx, f, h int)
	pop() int
	Len() int
}

// fifoFrontier ignores scores and returns nodes in insertion order.
type fifoFrontier struct {
	items []int
	head  int
}

func (q *fifoFrontier) push(idx, _, _ int) { q.items = append(q.items, idx) }

func (q *fifoFrontier) pop() int {
	idx := q.items[q.head]
	q.head++
	// reclaim the consumed prefix once it dominates the backing array
	if q.head > 64 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return idx
}

func (q *fifoFrontier) Len() int { return len(q.items) - q.head }

// pqItem is one frontier entry ordered by (f, h, seq).
type pqItem struct {
	idx int // arena index
	f   int // evaluation score
	h   int // heuristic alone, breaks f ties towards the goal
	seq int // insertion order, breaks remaining ties first-in first-out
}

// nodePQ is a min-heap of pqItem. Stale entries are left in place when a
// better one is pushed (lazy decrease-key) and skipped by the caller on pop.
type nodePQ []pqItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a pqItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }

// Pop is called by heap.Pop and removes the last element.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// priorityFrontier returns the lowest-scoring node first.
type priorityFrontier struct {
	pq  nodePQ
	seq int
}

func (p *priorityFrontier) push(idx, f, h int) {
	heap.Push(&p.pq, pqItem{idx: idx, f: f, h: h, seq: p.seq})
	p.seq++
}

func (p *priorityFrontier) pop() int { return heap.Pop(&p.pq).(pqItem).idx }

func (p *priorityFrontier) Len() int { return p.pq.Len() }
