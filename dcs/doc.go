// SPDX-License-Identifier: MIT

// Package dcs is the public façade of the difference-constraint-system
// engine: a three-bucket lifecycle (Feasible, Undetermined, Infeasible)
// built on top of package feasible's incremental Johnson-reweighted
// Dijkstra.
//
// Add always deposits into Undetermined; Solve drains it, highest
// client-priority pair first, into Feasible until the first rejection,
// which moves that pair whole into Infeasible and stops. Remove locates a
// constraint by its ordered pair, checking Undetermined, then Infeasible,
// then Feasible, and decrements the matching MultiEdge.
//
// Complexity: Add and Remove are O(log n) amortized (MultiEdge and the
// pair priority queue). Solve is O(log n) bookkeeping per pair plus the
// cost of each feasible.TryAddMulti call it drives.
//
// Errors: Remove returns ErrNoSuchConstraint when the given constraint is
// not live in any bucket. Solve returns constraint.ErrNegativeSelfLoop when
// it rejects a self-loop with a negative bound (the pair is also moved to
// Infeasible), and feasible.ErrOverflow on int64 overflow during a
// relaxation step; overflow is a distinct, fatal condition per spec.md §7,
// not an Infeasible verdict.
package dcs
