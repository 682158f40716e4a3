// Package knapsack is a small, focused library for exact 0-1 knapsack
// optimization — pick the best-valued subset of items under a weight budget.
//
// 🚀 What is knapsack?
//
//	A pure-Go implementation of best-first Branch-and-Bound over the binary
//	decision tree, pruned by the fractional (greedy-by-ratio) relaxation:
//		• Exact optimum — pruning never trades away correctness
//		• Deterministic — explicit bound-descending frontier with a stable
//		  insertion-order tie-break
//		• Immutable node model — append-only decision histories, in either
//		  copy-on-branch or arena (back-reference) layout
//		• Optional soft time budget and zero-weight item policy
//
// ✨ Why choose knapsack?
//
//   - Minimal API — one Solve call, functional options, sentinel errors
//   - Pure Go core — no cgo, no hidden deps
//   - Honest contracts — the bound's soundness and the search's invariants
//     are documented where they are implemented, and tested against brute
//     force
//
// Everything lives in one core subpackage, plus a thin console caller:
//
//	bnb/          — bound estimator + best-first Branch-and-Bound search
//	cmd/knapsack/ — CLI front-end (parse lists, solve, map labels back)
//
// Quick example:
//
//	res, err := bnb.Solve(
//	    []float64{15, 20, 5, 25, 22, 17}, // values
//	    []float64{51, 60, 35, 60, 53, 10}, // weights
//	    150,                               // capacity
//	)
//	// res.Value == 64, res.Selection picks items 3, 4, 5.
//
//	go get github.com/katalvlaran/knapsack/bnb
package knapsack
