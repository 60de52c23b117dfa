// SPDX-License-Identifier: MIT
package feasible

import (
	"errors"
	"math"
)

// ErrOverflow signals that a 64-bit signed addition at a Dijkstra
// relaxation step would overflow. Per spec.md §7, this is a distinct,
// fatal condition at the call site -- not an Infeasibility verdict and
// not EdgeDoesNotExist.
var ErrOverflow = errors.New("feasible: int64 overflow during relaxation")

// addChecked returns a+b, or an error if the sum overflows int64.
func addChecked(a, b int64) (int64, error) {
	sum := a + b
	// Overflow iff the operands share a sign and the result's sign differs.
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, ErrOverflow
	}
	return sum, nil
}

// subChecked returns a-b, or an error if the difference overflows int64.
func subChecked(a, b int64) (int64, error) {
	if b == math.MinInt64 {
		return 0, ErrOverflow
	}
	return addChecked(a, -b)
}

// addChecked3 returns a+b+c, or an error if any partial sum overflows.
func addChecked3(a, b, c int64) (int64, error) {
	ab, err := addChecked(a, b)
	if err != nil {
		return 0, err
	}
	return addChecked(ab, c)
}
