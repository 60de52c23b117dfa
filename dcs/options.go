// SPDX-License-Identifier: MIT
package dcs

// AddOption configures a single call to DCS.Add, following the teacher's
// functional-options idiom (dijkstra.Option, core.GraphOption).
type AddOption func(*addOptions)

type addOptions struct {
	priority int64
}

// WithPriority attaches a client-chosen priority to the constraint being
// added. Solve attempts pairs in descending priority order; a pair's
// effective priority is the highest ever attached to a live constraint in
// that pair (spec.md §4.4 "Priority semantics").
func WithPriority(p int64) AddOption {
	return func(o *addOptions) { o.priority = p }
}
