// SPDX-License-Identifier: MIT
package feasible

import (
	"github.com/katalvlaran/dcsys/multiedge"
	"github.com/katalvlaran/dcsys/solution"
)

// FeasibleSubsystem holds the graph of currently-feasible constraints and
// the potential function (Solution) that witnesses their feasibility. It
// is the ~55% core of the engine: the incremental, Johnson-reweighted
// Dijkstra that accepts or rejects one constraint at a time without ever
// re-running a global shortest-path pass.
//
// The zero value is not usable; construct with New.
type FeasibleSubsystem[V comparable] struct {
	// edges is the outgoing adjacency: edges[u][v] is the MultiEdge
	// collapsing every live constraint "v - u <= c" for that ordered pair.
	// Keyed by the "u" side, per spec.md §3.
	edges map[V]map[V]*multiedge.MultiEdge
	sol   *solution.Solution[V]
}

// New returns an empty FeasibleSubsystem: no edges, no mapped variables.
func New[V comparable]() *FeasibleSubsystem[V] {
	return &FeasibleSubsystem[V]{
		edges: make(map[V]map[V]*multiedge.MultiEdge),
		sol:   solution.New[V](),
	}
}

// Solution returns the current potential function. Valid to read at any
// time; callers must not mutate it directly (see dcs.DCS.Solution, which is
// the intended read path for clients of the façade).
func (fs *FeasibleSubsystem[V]) Solution() *solution.Solution[V] {
	return fs.sol
}

// edgeAt returns the MultiEdge for u->v, or nil if no constraint is live
// for that ordered pair.
func (fs *FeasibleSubsystem[V]) edgeAt(u, v V) *multiedge.MultiEdge {
	from, ok := fs.edges[u]
	if !ok {
		return nil
	}
	return from[v]
}

// ensureEdge returns the MultiEdge for u->v, creating an empty one (and the
// nested map, if needed) when absent.
func (fs *FeasibleSubsystem[V]) ensureEdge(u, v V) *multiedge.MultiEdge {
	from, ok := fs.edges[u]
	if !ok {
		from = make(map[V]*multiedge.MultiEdge)
		fs.edges[u] = from
	}
	me, ok := from[v]
	if !ok {
		me = multiedge.New()
		from[v] = me
	}
	return me
}

// pruneEdge removes the u->v entry if its MultiEdge has emptied, and drops
// the outer map for u if it has no outgoing edges left. Empty inner maps
// are never left lying around (spec.md §3).
func (fs *FeasibleSubsystem[V]) pruneEdge(u, v V) {
	from, ok := fs.edges[u]
	if !ok {
		return
	}
	me, ok := from[v]
	if !ok {
		return
	}
	if me.Empty() {
		delete(from, v)
	}
	if len(from) == 0 {
		delete(fs.edges, u)
	}
}

// successors returns the outgoing adjacency of u, or nil if u has none.
func (fs *FeasibleSubsystem[V]) successors(u V) map[V]*multiedge.MultiEdge {
	return fs.edges[u]
}
