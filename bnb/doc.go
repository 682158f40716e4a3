// Package bnb solves the 0-1 knapsack problem exactly, via best-first
// Branch-and-Bound with a fractional-relaxation upper bound.
//
// 🚀 What is Branch-and-Bound knapsack?
//
//	Given items with values and weights and a total capacity, pick the
//	subset with maximum value that still fits. BnB walks the binary
//	decision tree (take / skip each item in order), always expanding the
//	partial decision with the highest optimistic bound, and discards whole
//	subtrees that provably cannot beat the best selection found so far.
//	It shows up everywhere resource allocation does:
//	  • Project portfolio selection under a budget
//	  • Cargo loading & cutting stock
//	  • Capital budgeting / procurement
//	  • Sub-problems inside larger MIP solvers
//
// ✨ Key features:
//   - exact optimum, not a heuristic - pruning never sacrifices correctness
//   - items preordered by value density internally, which is what makes the
//     fractional bound a true upper bound on every node (results are always
//     reported in input order)
//   - explicit max-priority frontier: "order by bound, descending", with a
//     deterministic insertion-order tie-break
//   - two decision-history layouts (choose via MemoryMode):
//     SelectionCopy  - each node carries its own prefix, O(n) per node
//     SelectionArena - back-referenced arena entries, O(1) per node
//   - optional soft time budget (WithTimeLimit → ErrTimeLimit)
//   - optional zero-weight item support (WithZeroWeightItems)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/knapsack/bnb"
//
//	values := []float64{15, 20, 5, 25, 22, 17}
//	weights := []float64{51, 60, 35, 60, 53, 10}
//
//	res, err := bnb.Solve(values, weights, 150,
//	    bnb.WithMemoryMode(bnb.SelectionArena),
//	)
//	// res.Value == 64; res.Selection marks items 3, 4 and 5.
//
// Performance:
//
//   - Time:   O(2^n) worst case (exact search); the fractional bound prunes
//     the vast majority of the tree on typical inputs.
//   - Memory: proportional to the surviving frontier.
//
// See examples in example_test.go and the bound contract in bound.go.
package bnb
