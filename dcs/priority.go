// SPDX-License-Identifier: MIT
package dcs

import "container/heap"

// pairPQItem is one entry in the Undetermined bucket's pair priority queue:
// pair k, snapshotted at priority p at push time.
type pairPQItem[V comparable] struct {
	key      pairKey[V]
	priority int64
}

// pairPQ is a container/heap max-heap over pairs, ordered by priority
// (larger first), using the same lazy decrease-key idiom as
// feasible's distPQ and the teacher's dijkstra.nodePQ: a pair whose
// priority rises gets a fresh entry pushed rather than an in-place update,
// and stale entries (priority no longer matching the pair's current
// high-water mark, or the pair no longer live) are skipped on pop.
type pairPQ[V comparable] []pairPQItem[V]

func (pq pairPQ[V]) Len() int            { return len(pq) }
func (pq pairPQ[V]) Less(i, j int) bool  { return pq[i].priority > pq[j].priority }
func (pq pairPQ[V]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *pairPQ[V]) Push(x interface{}) { *pq = append(*pq, x.(pairPQItem[V])) }

func (pq *pairPQ[V]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// pushPair records that pair k is live in the Undetermined bucket at
// priority p (the pair's current high-water mark).
func (d *DCS[V]) pushPair(k pairKey[V], p int64) {
	heap.Push(&d.pq, pairPQItem[V]{key: k, priority: p})
}

// popHighestPair pops and returns the highest-priority pair still live in
// the Undetermined bucket, skipping stale entries. It returns false once
// the queue has been drained of anything live.
func (d *DCS[V]) popHighestPair() (pairKey[V], bool) {
	for d.pq.Len() > 0 {
		item := heap.Pop(&d.pq).(pairPQItem[V])
		if _, live := d.undetermined.edges[item.key]; !live {
			continue
		}
		if d.priority[item.key] != item.priority {
			continue // superseded by a later, higher push for this pair.
		}
		return item.key, true
	}
	return pairKey[V]{}, false
}
