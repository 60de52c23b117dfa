// SPDX-License-Identifier: MIT
// Package solution implements the partial variable assignment that both
// witnesses feasibility and serves as the Johnson potential function for
// package feasible's incremental Dijkstra.
//
// A Solution phi is a partial map Var -> int64. A constraint "v - u <= c"
// is satisfied when either endpoint is unmapped, or phi(v) - phi(u) <= c.
package solution

import (
	"errors"
	"math"

	"github.com/katalvlaran/dcsys/constraint"
)

// ErrOverflow signals that deriving a default value for a newly-introduced
// variable would overflow int64.
var ErrOverflow = errors.New("solution: int64 overflow while deriving default")

func addChecked(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, ErrOverflow
	}
	return sum, nil
}

func subChecked(a, b int64) (int64, error) {
	if b == math.MinInt64 {
		return 0, ErrOverflow
	}
	return addChecked(a, -b)
}

// Solution is a partial assignment from a client variable domain to int64.
// The zero value is not usable; construct with New.
type Solution[V comparable] struct {
	vals map[V]int64
}

// New returns an empty Solution.
func New[V comparable]() *Solution[V] {
	return &Solution[V]{vals: make(map[V]int64)}
}

// Get returns the value assigned to var and whether it is present.
func (s *Solution[V]) Get(v V) (int64, bool) {
	val, ok := s.vals[v]
	return val, ok
}

// GetOr returns the value assigned to var, or def if it is unmapped.
func (s *Solution[V]) GetOr(v V, def int64) int64 {
	if val, ok := s.vals[v]; ok {
		return val
	}
	return def
}

// Update overwrites the value assigned to var.
func (s *Solution[V]) Update(v V, val int64) {
	s.vals[v] = val
}

// BatchUpdate overlays delta onto the solution in place, overwriting any
// variable delta maps.
func (s *Solution[V]) BatchUpdate(delta map[V]int64) {
	for v, val := range delta {
		s.vals[v] = val
	}
}

// Len reports how many variables are currently mapped.
func (s *Solution[V]) Len() int {
	return len(s.vals)
}

// All returns a copy of every mapped variable and its value. Iteration
// order is unspecified.
func (s *Solution[V]) All() map[V]int64 {
	out := make(map[V]int64, len(s.vals))
	for v, val := range s.vals {
		out[v] = val
	}
	return out
}

// Clone returns a deep copy of the solution.
func (s *Solution[V]) Clone() *Solution[V] {
	out := New[V]()
	for v, val := range s.vals {
		out.vals[v] = val
	}
	return out
}

// CheckConstraint reports whether c is satisfied: true if either endpoint
// is unmapped (vacuous satisfaction), or phi(v) - phi(u) <= c otherwise.
func (s *Solution[V]) CheckConstraint(c constraint.Constraint[V]) bool {
	dv, vok := s.vals[c.V]
	du, uok := s.vals[c.U]
	if !vok || !uok {
		return true
	}
	return dv-du <= c.C
}

// CheckAndAddIfMissing reports whether c is satisfied, introducing default
// values for any unmapped endpoint so that the constraint holds by
// construction: v <- u + c, u <- v - c, or {v <- c, u <- 0} when neither
// endpoint is mapped. This lets trivial introductions skip the shortest-path
// repair in package feasible. A non-nil error means deriving the default
// would overflow int64; the solution is left untouched in that case.
func (s *Solution[V]) CheckAndAddIfMissing(c constraint.Constraint[V]) (bool, error) {
	dv, vok := s.vals[c.V]
	du, uok := s.vals[c.U]

	switch {
	case vok && uok:
		return dv-du <= c.C, nil
	case !vok && uok:
		val, err := addChecked(c.C, du)
		if err != nil {
			return false, err
		}
		s.Update(c.V, val)
		return true, nil
	case vok && !uok:
		val, err := subChecked(dv, c.C)
		if err != nil {
			return false, err
		}
		s.Update(c.U, val)
		return true, nil
	default:
		s.Update(c.V, c.C)
		s.Update(c.U, 0)
		return true, nil
	}
}
