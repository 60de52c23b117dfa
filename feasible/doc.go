// SPDX-License-Identifier: MIT

// Package feasible is the incremental feasibility engine for a difference
// constraint graph: variables are nodes, a constraint "v - u <= c" is a
// directed edge u->v of weight c, and the subsystem is feasible iff the
// graph has no negative-weight cycle.
//
// Complexity: TryAdd and TryAddMulti run in O((V+E) log V) via a single
// bounded Dijkstra pass over Johnson-reduced weights, never a full
// Bellman-Ford re-solve. Remove is O(log n) in the affected MultiEdge's
// size and never touches the potential function. ImpliedUB/ImpliedLB are a
// second, independent O((V+E) log V) Dijkstra pass each.
//
// Errors: TryAdd, TryAddMulti, ImpliedUB and ImpliedLB return ErrOverflow
// if a relaxation step would overflow int64. Remove returns
// multiedge.ErrNotPresent if the given weight is not currently live for
// that pair.
package feasible
