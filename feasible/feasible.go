// SPDX-License-Identifier: MIT
// Package feasible implements the incremental feasibility engine: the
// constrained shortest-path reweighting (Johnson potentials) that lets
// each new constraint be checked with one bounded Dijkstra pass instead of
// a full Bellman-Ford re-solve.
//
// Invariant (spec.md §4.3): at all times, phi is a feasible potential for
// the current edge set -- for every live edge u->v with minimum weight c,
// phi(v) - phi(u) <= c, equivalently the reduced weight
// phi(u) + c - phi(v) is non-negative.
package feasible

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dcsys/constraint"
	"github.com/katalvlaran/dcsys/multiedge"
	"github.com/katalvlaran/dcsys/solution"
)

// TryAdd attempts to admit c into the feasible subsystem.
//
// It returns (true, nil) if c was accepted -- the potential function has
// been repaired in place and the edge recorded -- or (false, nil) if c
// would introduce a negative cycle and was rejected (the subsystem is left
// untouched). Any other non-nil error means a relaxation step overflowed
// int64 (ErrOverflow, spec.md §7); the subsystem is left untouched in that
// case too.
//
// Self-loops (c.IsSelfLoop()) are accepted iff c.C >= 0, per spec.md §3,
// without running Dijkstra; a self-loop with c.C < 0 returns
// (false, constraint.ErrNegativeSelfLoop).
func (fs *FeasibleSubsystem[V]) TryAdd(c constraint.Constraint[V]) (bool, error) {
	ok, err := fs.admit(c.V, c.U, c.C)
	if err != nil || !ok {
		return false, err
	}
	fs.ensureEdge(c.U, c.V).Push(c.C)
	return true, nil
}

// TryAddMulti admits an entire MultiEdge for the ordered pair (u, v) as a
// single unit, using its current minimum weight as the binding constraint
// (spec.md §4.3 "Multi-constraint insertion"): the other parallel weights
// are implied by the minimum and need no separate check. On acceptance,
// every weight in incoming is merged into the subsystem's edge for (u, v).
// An empty or nil incoming MultiEdge is a no-op accept.
func (fs *FeasibleSubsystem[V]) TryAddMulti(u, v V, incoming *multiedge.MultiEdge) (bool, error) {
	if incoming == nil || incoming.Empty() {
		return true, nil
	}
	minC, _ := incoming.Peek()

	ok, err := fs.admit(v, u, minC)
	if err != nil || !ok {
		return false, err
	}

	dst := fs.ensureEdge(u, v)
	for w, n := range incoming.Weights() {
		dst.PushN(w, n)
	}
	return true, nil
}

// admit runs the trivial-or-repair decision of spec.md §4.3 for a single
// proposed edge u->v with weight c (constraint "v - u <= c"), updating phi
// in place on acceptance. It does not touch the edge set; callers own
// merging the accepted weight(s) into fs.edges.
func (fs *FeasibleSubsystem[V]) admit(v, u V, c int64) (bool, error) {
	tmp := constraint.Constraint[V]{V: v, U: u, C: c}
	if tmp.IsSelfLoop() {
		if tmp.SelfLoopFeasible() {
			return true, nil
		}
		return false, constraint.ErrNegativeSelfLoop
	}

	trivial, err := fs.sol.CheckAndAddIfMissing(tmp)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	if trivial {
		return true, nil
	}

	delta, ok, err := fs.repair(u, v, c)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	fs.sol.BatchUpdate(delta)
	return true, nil
}

// Remove deletes weight c from the u->v edge. It returns true iff the
// effective edge weight strictly increased (the MultiEdge's new minimum is
// looser than before), mirroring multiedge.MultiEdge.Remove. phi is left
// untouched: a solution to a superset of constraints remains a solution to
// any subset (spec.md §4.3 "Removal").
func (fs *FeasibleSubsystem[V]) Remove(u, v V, c int64) (bool, error) {
	me := fs.edgeAt(u, v)
	if me == nil {
		return false, multiedge.ErrNotPresent
	}
	looser, err := me.Remove(c)
	if err != nil {
		return false, err
	}
	fs.pruneEdge(u, v)
	return looser, nil
}

// CheckSolution reports whether every live constraint in the subsystem is
// satisfied by sol.
func (fs *FeasibleSubsystem[V]) CheckSolution(sol *solution.Solution[V]) bool {
	for u, from := range fs.edges {
		for v, me := range from {
			c, ok := me.Peek()
			if !ok {
				continue
			}
			if !sol.CheckConstraint(constraint.Constraint[V]{V: v, U: u, C: c}) {
				return false
			}
		}
	}
	return true
}

// Constraints calls yield once for every distinct live (u, v, minimum-c)
// binding edge currently held by the subsystem -- the set that actually
// constrains phi; looser parallel duplicates are implied and omitted.
// Iteration stops early if yield returns false.
func (fs *FeasibleSubsystem[V]) Constraints(yield func(constraint.Constraint[V]) bool) {
	for u, from := range fs.edges {
		for v, me := range from {
			c, ok := me.Peek()
			if !ok {
				continue
			}
			if !yield(constraint.Constraint[V]{V: v, U: u, C: c}) {
				return
			}
		}
	}
}

// ImpliedUB returns the smallest a such that "x - y <= a" is implied by the
// current feasible subsystem, or false if x is unreachable from y in the
// constraint graph. A non-nil error means overflow was detected while
// computing or descaling the shortest reduced distance.
func (fs *FeasibleSubsystem[V]) ImpliedUB(x, y V) (int64, bool, error) {
	scaled, reachable, err := fs.scaledDist(y, x)
	if err != nil {
		return 0, false, err
	}
	if !reachable {
		return 0, false, nil
	}

	dY := fs.sol.GetOr(y, 0)
	dX := fs.sol.GetOr(x, 0)

	real, err := subChecked(scaled, dY)
	if err != nil {
		return 0, false, err
	}
	real, err = addChecked(real, dX)
	if err != nil {
		return 0, false, err
	}
	return real, true, nil
}

// ImpliedLB returns the largest a such that "x - y >= a" is implied by the
// current feasible subsystem (equivalently, -ImpliedUB(y, x)), or false if
// unreachable.
func (fs *FeasibleSubsystem[V]) ImpliedLB(x, y V) (int64, bool, error) {
	ub, reachable, err := fs.ImpliedUB(y, x)
	if err != nil || !reachable {
		return 0, reachable, err
	}
	if ub == math.MinInt64 {
		return 0, false, ErrOverflow
	}
	return -ub, true, nil
}
