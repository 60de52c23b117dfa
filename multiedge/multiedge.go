// SPDX-License-Identifier: MIT
// Package multiedge implements the multiset of parallel constraint weights
// between one ordered variable pair.
//
// A MultiEdge collapses every currently-live constraint "v - u <= c" for one
// ordered pair (u, v) into a single effective edge weight: the minimum c.
// Removal of any one c value never disturbs the others, so the structure
// must track multiplicity, not just membership.
//
// Backing store: an indexed min-heap over the distinct c values
// (container/heap, same family as lvlath/dijkstra's nodePQ) plus a
// multiplicity count per value. The index side-table lets Remove evict an
// arbitrary (non-minimum) key in O(log n), which a plain container/heap
// does not offer on its own.
package multiedge

import (
	"container/heap"
	"errors"
)

// ErrNotPresent indicates Remove was called with a c value that is not
// currently live in this MultiEdge.
var ErrNotPresent = errors.New("multiedge: weight not present")

// MultiEdge is a multiset of int64 weights supporting O(log n) push,
// remove, and peek-minimum. The zero value is not usable; construct with
// New.
type MultiEdge struct {
	h      minHeap
	counts map[int64]int
}

// New returns an empty MultiEdge.
func New() *MultiEdge {
	return &MultiEdge{
		h:      minHeap{keys: nil, pos: make(map[int64]int)},
		counts: make(map[int64]int),
	}
}

// Len reports the number of distinct live weights (not total multiplicity).
func (m *MultiEdge) Len() int {
	return len(m.h.keys)
}

// Empty reports whether the MultiEdge currently holds no weights at all.
func (m *MultiEdge) Empty() bool {
	return len(m.h.keys) == 0
}

// Peek returns the minimum live c value and true, or (0, false) if the
// MultiEdge is empty.
func (m *MultiEdge) Peek() (int64, bool) {
	if len(m.h.keys) == 0 {
		return 0, false
	}
	return m.h.keys[0], true
}

// Push increments the multiplicity of c by one. It returns true iff the new
// minimum is strictly smaller than the previous minimum, i.e. the effective
// edge weight dropped (spec.md I5).
func (m *MultiEdge) Push(c int64) bool {
	return m.PushN(c, 1)
}

// PushN increments the multiplicity of c by n (n >= 1), used when merging
// an entire MultiEdge's contents into another one at once. It reports the
// same monotonicity signal as Push.
func (m *MultiEdge) PushN(c int64, n int) bool {
	if n <= 0 {
		return false
	}
	prevMin, hadMin := m.Peek()

	if m.counts[c] == 0 {
		heap.Push(&m.h, c)
	}
	m.counts[c] += n

	newMin, _ := m.Peek()
	return !hadMin || newMin < prevMin
}

// Remove decrements the multiplicity of c; once it reaches zero, c is
// evicted entirely. It returns true iff the effective minimum strictly
// increased (the edge became looser), and a non-nil error (ErrNotPresent)
// if c was not live at all.
func (m *MultiEdge) Remove(c int64) (bool, error) {
	if m.counts[c] == 0 {
		return false, ErrNotPresent
	}

	prevMin, _ := m.Peek()

	m.counts[c]--
	if m.counts[c] == 0 {
		delete(m.counts, c)
		if idx, ok := m.h.pos[c]; ok {
			heap.Remove(&m.h, idx)
		}
	}

	newMin, stillHasMin := m.Peek()
	if !stillHasMin {
		return true, nil
	}
	return newMin > prevMin, nil
}

// Weights returns every distinct live weight paired with its multiplicity.
// The order is unspecified.
func (m *MultiEdge) Weights() map[int64]int {
	out := make(map[int64]int, len(m.counts))
	for c, n := range m.counts {
		out[c] = n
	}
	return out
}

// minHeap is a container/heap-backed min-heap of distinct int64 keys. pos
// tracks each key's current slot so Remove can evict any element, not just
// the root, in O(log n).
type minHeap struct {
	keys []int64
	pos  map[int64]int
}

func (h minHeap) Len() int           { return len(h.keys) }
func (h minHeap) Less(i, j int) bool { return h.keys[i] < h.keys[j] }

func (h minHeap) Swap(i, j int) {
	h.keys[i], h.keys[j] = h.keys[j], h.keys[i]
	h.pos[h.keys[i]] = i
	h.pos[h.keys[j]] = j
}

func (h *minHeap) Push(x interface{}) {
	c := x.(int64)
	h.pos[c] = len(h.keys)
	h.keys = append(h.keys, c)
}

func (h *minHeap) Pop() interface{} {
	old := h.keys
	n := len(old)
	c := old[n-1]
	h.keys = old[:n-1]
	delete(h.pos, c)
	return c
}
