// Package bnb - validation utilities for the knapsack solver.
//
// This file contains small, tight helpers that:
//  1. Validate Options (time budget, memory mode).
//  2. Validate the instance shape (parallel sequences, capacity).
//  3. Validate per-item domain constraints (finiteness, sign, weight policy).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) worst-case where n is the item count; no hidden allocations.
package bnb

import (
	"fmt"
	"math"
)

// validateInstance verifies Options + instance shape + per-item domain.
// It returns n (item count) on success. The search performs no work on
// invalid input.
//
// Complexity: O(n) time, O(1) space.
func validateInstance(values, weights []float64, capacity float64, opts Options) (int, error) {
	// Stage 1: Options-only sanity.
	if opts.TimeLimit < 0 {
		return 0, ErrBadTimeLimit
	}
	switch opts.MemoryMode {
	case SelectionCopy, SelectionArena:
		// ok
	default:
		return 0, fmt.Errorf("bnb: unknown MemoryMode %d", opts.MemoryMode)
	}

	// Stage 2: instance shape.
	var n int
	n = len(values)
	if n != len(weights) {
		return 0, fmt.Errorf("%w: len(values)=%d len(weights)=%d", ErrLengthMismatch, n, len(weights))
	}
	if math.IsNaN(capacity) || math.IsInf(capacity, 0) {
		return 0, fmt.Errorf("%w: capacity=%v", ErrNonFiniteInput, capacity)
	}
	if capacity < 0 {
		return 0, fmt.Errorf("%w: capacity=%v", ErrNegativeCapacity, capacity)
	}

	// Stage 3: per-item domain. Index context in every error keeps the
	// offending item identifiable without a second pass by the caller.
	var i int
	for i = 0; i < n; i++ {
		if math.IsNaN(values[i]) || math.IsInf(values[i], 0) {
			return 0, fmt.Errorf("%w: values[%d]=%v", ErrNonFiniteInput, i, values[i])
		}
		if math.IsNaN(weights[i]) || math.IsInf(weights[i], 0) {
			return 0, fmt.Errorf("%w: weights[%d]=%v", ErrNonFiniteInput, i, weights[i])
		}
		if values[i] < 0 {
			return 0, fmt.Errorf("%w: values[%d]=%v", ErrNegativeValue, i, values[i])
		}
		if weights[i] < 0 {
			return 0, fmt.Errorf("%w: weights[%d]=%v", ErrNonPositiveWeight, i, weights[i])
		}
		if weights[i] == 0 && !opts.AllowZeroWeight {
			return 0, fmt.Errorf("%w: weights[%d]=0 (see WithZeroWeightItems)", ErrNonPositiveWeight, i)
		}
	}

	return n, nil
}
