// SPDX-License-Identifier: MIT
package dcs

import (
	"fmt"

	"github.com/katalvlaran/dcsys/feasible"
	"github.com/katalvlaran/dcsys/multiedge"
)

// Status is the value returned by DCS.Status.
type Status int

const (
	// Feasible means both the Undetermined and Infeasible buckets are
	// empty: every constraint ever added has been tested and accepted.
	Feasible Status = iota
	// Undetermined means Infeasible is empty but at least one constraint
	// is still waiting to be tested by Solve.
	Undetermined
	// Infeasible means at least one constraint has been rejected. Solve
	// stops admitting further constraints once this bucket is non-empty.
	Infeasible
)

// String renders the status the way the teacher renders small enums
// (core's component-state stringers).
func (s Status) String() string {
	switch s {
	case Feasible:
		return "Feasible"
	case Undetermined:
		return "Undetermined"
	case Infeasible:
		return "Infeasible"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// pairKey identifies one ordered variable pair (u, v), the granularity at
// which the Undetermined and Infeasible buckets collapse parallel
// constraints into a single MultiEdge.
type pairKey[V comparable] struct {
	u, v V
}

// bucket is the shared shape of the Undetermined and Infeasible buckets:
// a per-pair MultiEdge map.
type bucket[V comparable] struct {
	edges map[pairKey[V]]*multiedge.MultiEdge
}

func newBucket[V comparable]() bucket[V] {
	return bucket[V]{edges: make(map[pairKey[V]]*multiedge.MultiEdge)}
}

func (b *bucket[V]) ensure(k pairKey[V]) *multiedge.MultiEdge {
	me, ok := b.edges[k]
	if !ok {
		me = multiedge.New()
		b.edges[k] = me
	}
	return me
}

func (b *bucket[V]) prune(k pairKey[V]) {
	if me, ok := b.edges[k]; ok && me.Empty() {
		delete(b.edges, k)
	}
}

// DCS is the three-bucket difference-constraint-system façade: Feasible,
// Undetermined and Infeasible. The zero value is not usable; construct
// with New or FromIter.
//
// Not safe for concurrent use: the engine does no internal locking
// (spec.md §5). A client that needs concurrent access must wrap the whole
// DCS in its own mutual-exclusion primitive.
type DCS[V comparable] struct {
	feasible     *feasible.FeasibleSubsystem[V]
	undetermined bucket[V]
	infeasible   bucket[V]

	// priority is the high-water mark of client-supplied priorities ever
	// attached to a live pair in the Undetermined bucket. It only ever
	// increases on Add; it is not decremented on a partial Remove (see
	// DESIGN.md).
	priority map[pairKey[V]]int64
	pq       pairPQ[V]
}

// New returns an empty DCS: Feasible, with no constraints in any bucket.
func New[V comparable]() *DCS[V] {
	return &DCS[V]{
		feasible:     feasible.New[V](),
		undetermined: newBucket[V](),
		infeasible:   newBucket[V](),
		priority:     make(map[pairKey[V]]int64),
	}
}
