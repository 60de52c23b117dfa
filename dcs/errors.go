// SPDX-License-Identifier: MIT
package dcs

import "errors"

// ErrNoSuchConstraint is returned by Remove when the given constraint is
// not live in any of the three buckets.
var ErrNoSuchConstraint = errors.New("dcs: no such constraint")
