// Package dcsys is an incremental, in-memory, single-threaded feasibility
// engine for systems of integer difference constraints "v - u <= c".
//
// Functional code lives in subpackages:
//
//	constraint/ — the immutable Constraint[V] triple
//	multiedge/  — the per-pair multiset of parallel constraint weights
//	solution/   — the partial variable assignment / Johnson potential
//	feasible/   — the incremental Dijkstra-repair feasibility core
//	dcs/        — the three-bucket (Feasible/Undetermined/Infeasible) façade
//
// Start with dcs.New or dcs.FromIter:
//
//	d := dcs.New[string]()
//	d.Add(constraint.New("y", "x", 1))
//	d.Add(constraint.New("z", "y", 2))
//	if err := d.Solve(); err != nil {
//		// int64 overflow during a relaxation step (ill-posed input), or
//		// constraint.ErrNegativeSelfLoop for a rejected "v - v <= c", c < 0.
//	}
//	d.Status() // dcs.Feasible
//
// go get github.com/katalvlaran/dcsys
package dcsys
