// SPDX-License-Identifier: MIT
package feasible

import "container/heap"

// pqItem is one entry in the reduced-weight priority queue: a candidate
// node x reached from the traversal's source at cumulative reduced
// distance scaled, with origD caching phi(x) as it stood before this
// traversal began (phi itself is never mutated mid-traversal).
type pqItem[V comparable] struct {
	node   V
	scaled int64
	origD  int64
}

// distPQ is a container/heap min-heap ordered by scaled distance, using the
// same lazy decrease-key pattern as lvlath/dijkstra's nodePQ: stale
// duplicate entries are pushed rather than updated in place, and are
// skipped on pop once their node is already visited (spec.md §9 sanctions
// this as an alternative to true decrease-key).
type distPQ[V comparable] []pqItem[V]

func (pq distPQ[V]) Len() int            { return len(pq) }
func (pq distPQ[V]) Less(i, j int) bool  { return pq[i].scaled < pq[j].scaled }
func (pq distPQ[V]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ[V]) Push(x interface{}) { *pq = append(*pq, x.(pqItem[V])) }

func (pq *distPQ[V]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// repair runs the single-source Dijkstra of spec.md §4.3 from c.V over the
// existing feasible edge set's reduced weights, attempting to admit the new
// edge u->v (constraint "v - u <= c"). It returns (delta, true, nil) when
// the constraint is accepted -- delta must be applied to the potential
// function with Solution.BatchUpdate -- or (nil, false, nil) on rejection
// (a negative cycle through the proposed edge). A non-nil error means a
// relaxation step overflowed int64; the subsystem is left untouched.
func (fs *FeasibleSubsystem[V]) repair(u, v V, c int64) (map[V]int64, bool, error) {
	dU := fs.sol.GetOr(u, 0)
	dV := fs.sol.GetOr(v, 0)

	delta := make(map[V]int64)
	visited := make(map[V]bool)

	pq := &distPQ[V]{{node: v, scaled: 0, origD: dV}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem[V])
		x := item.node
		if visited[x] {
			continue
		}
		visited[x] = true

		// Descale: delta(v,x) = scaled'(v,x) - phi(v) + phi(x).
		realDist, err := subChecked(item.scaled, dV)
		if err != nil {
			return nil, false, err
		}
		realDist, err = addChecked(realDist, item.origD)
		if err != nil {
			return nil, false, err
		}

		newVal, err := addChecked3(dU, c, realDist)
		if err != nil {
			return nil, false, err
		}

		if newVal >= item.origD {
			continue // x and its forward cone are unaffected; prune.
		}
		if x == u {
			return nil, false, nil // negative cycle through the proposed edge.
		}
		delta[x] = newVal

		for y, me := range fs.successors(x) {
			if visited[y] {
				continue
			}
			w, ok := me.Peek()
			if !ok {
				continue
			}
			dY := fs.sol.GetOr(y, 0)

			// Reduced weight of x->y: phi(x) + w - phi(y).
			xyScaled, err := addChecked(item.origD, w)
			if err != nil {
				return nil, false, err
			}
			xyScaled, err = subChecked(xyScaled, dY)
			if err != nil {
				return nil, false, err
			}
			vyScaled, err := addChecked(item.scaled, xyScaled)
			if err != nil {
				return nil, false, err
			}

			heap.Push(pq, pqItem[V]{node: y, scaled: vyScaled, origD: dY})
		}
	}

	return delta, true, nil
}

// scaledDist runs a plain Dijkstra over the existing feasible edge set's
// reduced weights from "from" to "to", used by ImpliedUB/ImpliedLB. It
// returns the scaled (reduced) shortest distance and whether "to" is
// reachable at all.
func (fs *FeasibleSubsystem[V]) scaledDist(from, to V) (int64, bool, error) {
	dFrom := fs.sol.GetOr(from, 0)
	visited := make(map[V]bool)

	pq := &distPQ[V]{{node: from, scaled: 0, origD: dFrom}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem[V])
		x := item.node
		if visited[x] {
			continue
		}
		visited[x] = true

		if x == to {
			return item.scaled, true, nil
		}

		for y, me := range fs.successors(x) {
			if visited[y] {
				continue
			}
			w, ok := me.Peek()
			if !ok {
				continue
			}
			dY := fs.sol.GetOr(y, 0)

			xyScaled, err := addChecked(item.origD, w)
			if err != nil {
				return 0, false, err
			}
			xyScaled, err = subChecked(xyScaled, dY)
			if err != nil {
				return 0, false, err
			}
			fromYScaled, err := addChecked(item.scaled, xyScaled)
			if err != nil {
				return 0, false, err
			}

			heap.Push(pq, pqItem[V]{node: y, scaled: fromYScaled, origD: dY})
		}
	}

	return 0, false, nil
}
