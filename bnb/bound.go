// Package bnb - fractional (LP relaxation) upper bound for partial decisions.
//
// The bound answers one question for a decision-tree node: "assuming we may
// take fractions of the remaining items, how much value could this path still
// reach?" Over a density-ordered suffix the continuous relaxation can only do
// better than any 0-1 completion, so the answer never underestimates - which
// is exactly the soundness property pruning relies on.
package bnb

// FractionalBound computes an optimistic upper bound on the total value
// reachable from a partial decision over items[0..level], given the
// accumulated value and weight of that prefix.
//
// Contract:
//  1. If accWeight ≥ capacity, the bound is 0: no further value can be added
//     and an at-or-over-budget node must never look promising. (Over-capacity
//     nodes are not pushed to the frontier in the first place; zeroing here
//     bounds them defensively all the same.)
//  2. Otherwise walk items from level+1 in index order, greedily adding each
//     item's full weight and value while the running weight stays within
//     capacity.
//  3. The first item that would overflow contributes fractionally:
//     (capacity − usedWeight) · value/weight.
//
// Soundness requires the undecided suffix to be in non-increasing value
// density — the order Solve establishes before searching. Under that order
// the walk-plus-fraction is exactly the LP optimum of the remaining items,
// which upper-bounds every 0-1 completion; on an arbitrary order a
// low-density item can block the walk and hide better items behind it,
// undercutting real completions.
//
// The result is deterministic and side-effect free. If no item past level
// fits, the walk contributes nothing beyond accValue.
//
// FractionalBound assumes every weight is positive (the validation default).
// Instances that admit zero-weight items via WithZeroWeightItems are bounded
// by the strict-threshold variant below: at accWeight == capacity a prefix
// can still gain value from remaining zero-weight items, so collapsing its
// bound to 0 would over-prune. The engine selects the variant from the
// configured policy.
//
// Complexity: O(n − level) time, O(1) space.
func FractionalBound(values, weights []float64, capacity float64, level int, accValue, accWeight float64) float64 {
	return fractionalBound(values, weights, capacity, level, accValue, accWeight, false)
}

// fractionalBound is the policy-aware relaxation shared by FractionalBound
// and the engine.
//
// zeroFree selects the zeroing threshold:
//   - false: accWeight ≥ capacity ⇒ 0 (positive weights only; an at-capacity
//     prefix has nothing left to pack).
//   - true:  accWeight > capacity ⇒ 0. At exactly capacity the greedy walk
//     still absorbs zero-weight items for free (used+0 ≤ capacity holds) and
//     the fractional term is (capacity − used) · ratio = 0, so the bound
//     stays sound without ever dividing by a zero weight.
func fractionalBound(values, weights []float64, capacity float64, level int, accValue, accWeight float64, zeroFree bool) float64 {
	// 1) Weight over budget ⇒ nothing more can be packed. Without zero-weight
	//    items, "at budget" is equally dead and zeroes out too.
	if accWeight > capacity || (!zeroFree && accWeight == capacity) {
		return 0
	}

	// 2) Greedy full-item walk over the undecided suffix.
	var (
		n      = len(values)
		bound  = accValue
		used   = accWeight
		onward = level + 1
	)
	for onward < n && used+weights[onward] <= capacity {
		used += weights[onward]
		bound += values[onward]
		onward++
	}

	// 3) Fractional contribution of the first item that does not fit.
	if onward < n {
		bound += (capacity - used) * (values[onward] / weights[onward])
	}

	return bound
}
