// SPDX-License-Identifier: MIT

// Package matrix: Weight, the tagged value stored in every matrix cell.
//
// A Weight is either Finite(v) or Unreachable. Unreachable is the identity of
// min (it loses to every finite candidate) and absorbing for Add; Finite(0) is
// the identity of Add. Together they form the min-plus semiring the tropical
// engine composes over.
package matrix

import (
	"math"
	"strconv"
)

const (
	// Sentinel is the raw integer harnesses use to denote "no edge" in
	// row-wise input, and the value Raw reports for Unreachable.
	Sentinel int64 = math.MaxInt64

	// MaxFinite is the largest finite weight. Add saturates here, so a finite
	// sum can never collide with Sentinel.
	MaxFinite int64 = math.MaxInt64 - 1
)

// Weight is a finite integer weight or Unreachable.
// The zero value is Unreachable.
type Weight struct {
	val    int64 // meaningful only when finite
	finite bool
}

// Finite returns the finite weight v. Values above MaxFinite are clamped.
func Finite(v int64) Weight {
	if v > MaxFinite {
		v = MaxFinite
	}

	return Weight{val: v, finite: true}
}

// Unreachable returns the weight meaning "no path of this length exists".
func Unreachable() Weight { return Weight{} }

// FromRaw maps harness input to a Weight: Sentinel becomes Unreachable,
// everything else is Finite.
func FromRaw(v int64) Weight {
	if v == Sentinel {
		return Unreachable()
	}

	return Finite(v)
}

// IsFinite reports whether w is a finite weight.
func (w Weight) IsFinite() bool { return w.finite }

// Value returns the finite value and true, or (0, false) for Unreachable.
func (w Weight) Value() (int64, bool) {
	if !w.finite {
		return 0, false
	}

	return w.val, true
}

// Raw returns the finite value, or Sentinel for Unreachable.
func (w Weight) Raw() int64 {
	if !w.finite {
		return Sentinel
	}

	return w.val
}

// Add is the semiring product: Unreachable absorbs, finite values add with
// saturation at MaxFinite. It never performs arithmetic on Unreachable.
// Complexity: O(1).
func (w Weight) Add(o Weight) Weight {
	if !w.finite || !o.finite {
		return Unreachable()
	}
	// Checked addition. Only positive overflow can occur for the
	// non-negative weights this module supports; negative operands are
	// added as-is (unspecified territory, see ValidateNonNegative).
	if o.val > 0 && w.val > MaxFinite-o.val {
		return Weight{val: MaxFinite, finite: true}
	}

	return Weight{val: w.val + o.val, finite: true}
}

// Less reports whether w is strictly smaller than o. Unreachable is larger
// than every finite weight and not less than itself.
func (w Weight) Less(o Weight) bool {
	switch {
	case !w.finite:
		return false
	case !o.finite:
		return true
	default:
		return w.val < o.val
	}
}

// Min returns the smaller of w and o (w on ties).
func (w Weight) Min(o Weight) Weight {
	if o.Less(w) {
		return o
	}

	return w
}

// IsZero reports whether w is Finite(0), the additive identity.
func (w Weight) IsZero() bool { return w.finite && w.val == 0 }

// String renders finite weights in decimal and Unreachable as "∞".
func (w Weight) String() string {
	if !w.finite {
		return "∞"
	}

	return strconv.FormatInt(w.val, 10)
}
