// SPDX-License-Identifier: MIT
package dcs

import (
	"errors"

	"github.com/katalvlaran/dcsys/constraint"
	"github.com/katalvlaran/dcsys/solution"
)

// Add records c in the Undetermined bucket. Any existing feasibility
// knowledge for c's pair is preserved untouched; Solve reconciles the two
// on its next run. Add never fails and never runs Dijkstra.
func (d *DCS[V]) Add(c constraint.Constraint[V], opts ...AddOption) {
	o := addOptions{priority: 0}
	for _, opt := range opts {
		opt(&o)
	}

	k := pairKey[V]{u: c.U, v: c.V}
	d.undetermined.ensure(k).Push(c.C)

	old, had := d.priority[k]
	p := o.priority
	if had && old > p {
		p = old
	}
	d.priority[k] = p
	d.pushPair(k, p)
}

// Solve drains the Undetermined bucket, highest-priority pair first,
// admitting each pair's MultiConstraint into the Feasible subsystem as a
// unit. It stops the moment a pair is rejected, moving that pair whole
// into the Infeasible bucket; any pairs still in Undetermined at that
// point are left untouched for a later Solve to retry (e.g. after a
// Remove).
//
// A self-loop pair with a negative bound (constraint.ErrNegativeSelfLoop)
// is trivially infeasible without running Dijkstra: it is moved straight
// to the Infeasible bucket, the same as any other rejection, and the
// sentinel is returned to the caller as an immediate-rejection signal.
// Any other non-nil error means a relaxation step overflowed int64; the
// bucket structure is left consistent (the offending pair is neither
// admitted nor dropped) but the caller should treat the DCS as unusable
// until the ill-posed input is corrected.
func (d *DCS[V]) Solve() error {
	for len(d.infeasible.edges) == 0 && len(d.undetermined.edges) > 0 {
		k, ok := d.popHighestPair()
		if !ok {
			break
		}
		me := d.undetermined.edges[k]

		accepted, err := d.feasible.TryAddMulti(k.u, k.v, me)
		if err != nil && !errors.Is(err, constraint.ErrNegativeSelfLoop) {
			return err
		}

		delete(d.undetermined.edges, k)
		delete(d.priority, k)

		if !accepted {
			d.infeasible.edges[k] = me
			if err != nil {
				return err
			}
			break
		}
	}
	return nil
}

// Remove deletes weight c.C from whichever bucket holds a live entry for
// c's pair: Undetermined, then Infeasible, then Feasible. It returns true
// iff the effective weight for that pair strictly increased as a result.
// Removal never resurrects a previously rejected pair; a subsequent Solve
// does. ErrNoSuchConstraint is returned if c is not live anywhere.
func (d *DCS[V]) Remove(c constraint.Constraint[V]) (bool, error) {
	k := pairKey[V]{u: c.U, v: c.V}

	if looser, found, err := removeFromBucket(&d.undetermined, k, c.C); found {
		d.undetermined.prune(k)
		if _, live := d.undetermined.edges[k]; !live {
			delete(d.priority, k)
		}
		return looser, err
	}

	if looser, found, err := removeFromBucket(&d.infeasible, k, c.C); found {
		d.infeasible.prune(k)
		return looser, err
	}

	if looser, found, err := d.removeFromFeasible(k, c.C); found {
		return looser, err
	}

	return false, ErrNoSuchConstraint
}

func removeFromBucket[V comparable](b *bucket[V], k pairKey[V], c int64) (looser, found bool, err error) {
	me, ok := b.edges[k]
	if !ok {
		return false, false, nil
	}
	looser, err = me.Remove(c)
	if err != nil {
		return false, false, nil
	}
	return looser, true, nil
}

func (d *DCS[V]) removeFromFeasible(k pairKey[V], c int64) (looser, found bool, err error) {
	looser, err = d.feasible.Remove(k.u, k.v, c)
	if err != nil {
		return false, false, nil
	}
	return looser, true, nil
}

// Status reports which of the three states the DCS currently occupies.
func (d *DCS[V]) Status() Status {
	if len(d.infeasible.edges) > 0 {
		return Infeasible
	}
	if len(d.undetermined.edges) > 0 {
		return Undetermined
	}
	return Feasible
}

// CheckSolution reports whether sol satisfies every live constraint in
// both the Feasible and Undetermined buckets. It returns false
// unconditionally once the Infeasible bucket is non-empty.
func (d *DCS[V]) CheckSolution(sol *solution.Solution[V]) bool {
	if len(d.infeasible.edges) > 0 {
		return false
	}
	if !d.feasible.CheckSolution(sol) {
		return false
	}
	for k, me := range d.undetermined.edges {
		c, ok := me.Peek()
		if !ok {
			continue
		}
		if !sol.CheckConstraint(constraint.Constraint[V]{V: k.v, U: k.u, C: c}) {
			return false
		}
	}
	return true
}

// Solution returns the Feasible subsystem's current potential function.
// Valid to read in state Feasible, and in state Undetermined as long as
// the caller understands it has not yet been checked against the
// still-undetermined pairs (spec.md §6).
func (d *DCS[V]) Solution() *solution.Solution[V] {
	return d.feasible.Solution()
}

// ImpliedUB returns the smallest a such that "x - y <= a" is implied by
// the Feasible bucket alone, or false if unreachable. It panics if a
// relaxation step overflows int64 -- an ill-posed input, fatal at the
// call site per spec.md §7 -- since this accessor's signature carries no
// error return.
func (d *DCS[V]) ImpliedUB(x, y V) (int64, bool) {
	v, ok, err := d.feasible.ImpliedUB(x, y)
	if err != nil {
		panic(err)
	}
	return v, ok
}

// ImpliedLB returns the largest a such that "x - y >= a" is implied by the
// Feasible bucket alone, or false if unreachable. See ImpliedUB for the
// overflow-panic caveat.
func (d *DCS[V]) ImpliedLB(x, y V) (int64, bool) {
	v, ok, err := d.feasible.ImpliedLB(x, y)
	if err != nil {
		panic(err)
	}
	return v, ok
}

// FromIter constructs a DCS and adds every constraint in cs (at the
// default priority) without running Solve.
func FromIter[V comparable](cs []constraint.Constraint[V]) *DCS[V] {
	d := New[V]()
	for _, c := range cs {
		d.Add(c)
	}
	return d
}
