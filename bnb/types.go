// Package bnb defines core types, sentinel errors and configuration options
// for the 0-1 knapsack Branch-and-Bound solver.
//
// The solver selects a subset of items, each with a value and a weight,
// maximizing total value subject to a capacity constraint. Search is
// best-first over a binary decision tree, pruned by a fractional
// (greedy-by-ratio) upper bound.
//
// Complexity:
//
//	– Time:  O(2^n) worst case (exact search); practical speed comes from
//	   pruning, which the fractional bound makes aggressive on most inputs.
//	– Space: O(F) where F = frontier size (worst case exponential in n,
//	   mitigated by pruning; SelectionArena additionally removes the O(n)
//	   decision-history copy per node).
//
// Options:
//
//	– TimeLimit:       soft time budget for the search (0 = unlimited).
//	– MemoryMode:      how nodes store their decision history (Copy or Arena).
//	– AllowZeroWeight: accept zero-weight items as "always free to include".
//
// Errors (sentinel):
//
//	– ErrLengthMismatch    if len(values) != len(weights).
//	– ErrNegativeCapacity  if capacity < 0.
//	– ErrNegativeValue     if any item value is negative.
//	– ErrNonPositiveWeight if any item weight is ≤ 0 (zero allowed only via
//	                        WithZeroWeightItems).
//	– ErrNonFiniteInput    if any input is NaN or ±Inf.
//	– ErrTimeLimit         if a positive time budget is exceeded.
//
// Example usage:
//
//	res, err := bnb.Solve(values, weights, 150)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("best value: %v, picked: %v\n", res.Value, res.Selection)
package bnb

import (
	"errors"
	"time"
)

// Sentinel errors returned by the solver and its validation stages.
var (
	// ErrLengthMismatch indicates that values and weights differ in length.
	ErrLengthMismatch = errors.New("bnb: values and weights must have equal length")

	// ErrNegativeCapacity indicates a negative knapsack capacity.
	ErrNegativeCapacity = errors.New("bnb: capacity must be non-negative")

	// ErrNegativeValue indicates an item with a negative value.
	ErrNegativeValue = errors.New("bnb: item value must be non-negative")

	// ErrNonPositiveWeight indicates an item with weight ≤ 0. The fractional
	// bound divides by item weight, so zero weights are rejected unless the
	// caller opts in via WithZeroWeightItems.
	ErrNonPositiveWeight = errors.New("bnb: item weight must be positive")

	// ErrNonFiniteInput indicates a NaN or ±Inf among values, weights or capacity.
	ErrNonFiniteInput = errors.New("bnb: non-finite number in input")

	// ErrBadTimeLimit indicates a negative TimeLimit (undefined as a budget).
	ErrBadTimeLimit = errors.New("bnb: TimeLimit must be non-negative")

	// ErrTimeLimit indicates that the soft time budget was exceeded before
	// the frontier was exhausted.
	ErrTimeLimit = errors.New("bnb: time limit exceeded")
)

// MemoryMode controls how decision nodes store their include/exclude history.
//
//   - SelectionCopy  — each node carries a copy of its parent's decision
//     prefix plus one appended bit. Simple, O(n) memory per node.
//
//   - SelectionArena — nodes store only (parent index, decision bit) in an
//     append-only arena; the winning selection is reconstructed by walking
//     back from the incumbent once the search ends. O(1) extra memory per
//     node, one O(n) reconstruction at the end.
//
// Observable behavior is identical across modes.
type MemoryMode int

const (
	// SelectionCopy mode: copy-on-branch decision prefixes (default).
	SelectionCopy MemoryMode = iota

	// SelectionArena mode: back-referenced decisions in an append-only arena.
	SelectionArena
)

// Result holds the outcome of a knapsack search.
type Result struct {
	// Value is the best total value of a feasible selection.
	Value float64

	// Selection has one entry per input item, in item order:
	// true = included, false = excluded. len(Selection) == len(values);
	// empty input yields an empty (non-nil) slice.
	Selection []bool
}

// Options configures the Branch-and-Bound search.
//
// TimeLimit       – soft time budget; 0 means unlimited. When positive, the
//
//	pop loop performs sparse deadline checks and returns
//	ErrTimeLimit once the budget is exceeded.
//
// MemoryMode      – SelectionCopy (default) or SelectionArena.
// AllowZeroWeight – accept items with weight == 0 and treat them as always
//
//	free to include; the greedy bound walk absorbs them at
//	zero cost, so the fractional step never divides by zero.
type Options struct {
	TimeLimit       time.Duration
	MemoryMode      MemoryMode
	AllowZeroWeight bool
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithTimeLimit sets a soft time budget for the search. Zero disables the
// budget; negative values cause ErrBadTimeLimit at validation.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithMemoryMode selects how nodes store their decision history.
// SelectionCopy mirrors the straightforward copy-on-branch layout;
// SelectionArena trades it for O(1) per-node memory plus a final back-walk.
func WithMemoryMode(mode MemoryMode) Option {
	return func(o *Options) {
		o.MemoryMode = mode
	}
}

// WithZeroWeightItems permits items with weight == 0, treated as always free
// to include. Without this option a zero weight fails validation with
// ErrNonPositiveWeight.
//
// The bound follows suit: a prefix sitting exactly at capacity keeps a
// non-zero bound (remaining zero-weight items can still add value), while
// the default positive-weight policy zeroes it there. See bound.go.
func WithZeroWeightItems() Option {
	return func(o *Options) {
		o.AllowZeroWeight = true
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
// Use this as a starting point for further functional-options overrides.
//
// Defaults:
//   - TimeLimit:       0 (unlimited).
//   - MemoryMode:      SelectionCopy (decision prefixes copied per node).
//   - AllowZeroWeight: false (zero weights rejected).
func DefaultOptions() Options {
	return Options{
		TimeLimit:       0,
		MemoryMode:      SelectionCopy,
		AllowZeroWeight: false,
	}
}
