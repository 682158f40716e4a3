// Package bnb_test - shared helpers for the knapsack test suite.
//
// All randomness is seeded; every helper is deterministic for a given seed.
// Generated values and weights are small integers (stored as float64) so
// that exact equality assertions stay free of floating-point noise.
package bnb_test

import (
	"math/rand"
	"sort"
)

// bruteForceBest enumerates all 2^n subsets and returns the optimal total
// value for the instance. Feasible only for small n (tests keep n ≤ 20).
func bruteForceBest(values, weights []float64, capacity float64) float64 {
	n := len(values)
	best := 0.0
	var mask, i int
	var v, w float64
	for mask = 0; mask < 1<<uint(n); mask++ {
		v, w = 0, 0
		for i = 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				v += values[i]
				w += weights[i]
			}
		}
		if w <= capacity && v > best {
			best = v
		}
	}

	return best
}

// bruteForceCompletion returns the best total value achievable by deciding
// items after 'level', starting from the accumulated (accValue, accWeight)
// of an already-fixed prefix. Infeasible prefixes (accWeight > capacity)
// return accValue untouched only when they carry no completion; callers
// guard that case themselves.
func bruteForceCompletion(values, weights []float64, capacity float64, level int, accValue, accWeight float64) float64 {
	n := len(values)
	suffix := n - (level + 1)
	best := accValue
	var mask, i int
	var v, w float64
	for mask = 0; mask < 1<<uint(suffix); mask++ {
		v, w = accValue, accWeight
		for i = 0; i < suffix; i++ {
			if mask&(1<<uint(i)) != 0 {
				v += values[level+1+i]
				w += weights[level+1+i]
			}
		}
		if w <= capacity && v > best {
			best = v
		}
	}

	return best
}

// randomInstance produces n items with integer-valued floats:
// values in [1..100], weights in [1..60].
func randomInstance(r *rand.Rand, n int) (values, weights []float64) {
	values = make([]float64, n)
	weights = make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = float64(1 + r.Intn(100))
		weights[i] = float64(1 + r.Intn(60))
	}

	return values, weights
}

// sortByDensity rearranges both slices in place into non-increasing value
// density (cross-multiplied ratios, index tiebreak) — the item order Solve
// itself establishes before evaluating any bound.
func sortByDensity(values, weights []float64) {
	n := len(values)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		vi, vj := idx[a], idx[b]
		li, lj := values[vi]*weights[vj], values[vj]*weights[vi]
		if li == lj {
			return vi < vj
		}

		return li > lj
	})

	ordV := make([]float64, n)
	ordW := make([]float64, n)
	for k, i := range idx {
		ordV[k] = values[i]
		ordW[k] = weights[i]
	}
	copy(values, ordV)
	copy(weights, ordW)
}

// sumWhere adds up xs[i] over indices where pick[i] is true.
func sumWhere(xs []float64, pick []bool) float64 {
	var total float64
	for i, p := range pick {
		if p {
			total += xs[i]
		}
	}

	return total
}
