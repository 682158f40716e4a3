// Package bnb - best-first Branch-and-Bound search for the 0-1 knapsack.
//
// Solve explores a binary decision tree: level k decides item k, "include"
// or "exclude". A max-priority frontier (ordered by fractional upper bound,
// descending) always expands the most promising partial decision first;
// subtrees whose bound cannot beat the incumbent are pruned wholesale.
//
// Rationale (succinct):
//  1. Strict input validation up front (validate.go); the search performs no
//     work on invalid input.
//  2. Items are preordered by value density, descending, before the search
//     (deterministic: cross-multiplied ratios, index tiebreak). The greedy
//     relaxation equals the LP optimum of the remaining items only under
//     this order; on an arbitrary order a low-density item can block the
//     walk and hide better items behind it, the bound undercuts a real
//     completion, and pruning discards optimal subtrees. The reported
//     selection is mapped back to input order.
//  3. Nodes are immutable after their bound is set. Branching creates two
//     fresh children; nothing is revisited or updated, so the frontier and
//     the incumbent are the only mutable state.
//  4. The frontier is a container/heap max-heap with an explicit
//     "bound, descending" comparator; equal bounds pop in insertion order,
//     keeping runs deterministic without affecting the optimal value.
//  5. Decision histories are stored per Options.MemoryMode: copied prefixes
//     (SelectionCopy) or back-referenced arena entries reconstructed once at
//     the end (SelectionArena).
//  6. Optional soft time budget: rare deadline checks (every 256 pops) keep
//     overhead negligible.
//
// Complexity:
//   - Worst case exponential in n (exact search). Practical speed comes from pruning.
//   - Per node: O(n) bound + O(1) state updates (plus O(n) prefix copy in SelectionCopy).
//   - Memory: O(F) frontier nodes; SelectionArena adds O(nodes) arena entries
//     but drops the per-node O(n) prefix.
package bnb

import (
	"container/heap"
	"sort"
	"time"
)

// node is one partial decision: items 0..level are decided, the rest are open.
// A node is created by branching, assigned its bound once, and never mutated.
type node struct {
	level  int     // index of the last decided item; -1 for the root
	value  float64 // sum of values over included items on this path
	weight float64 // sum of weights over included items on this path
	bound  float64 // fractional upper bound on any completion of this path
	seq    uint64  // insertion sequence; breaks bound ties deterministically

	sel   []bool // SelectionCopy: decision prefix, sel[k] decides item k
	arena int32  // SelectionArena: index of this node's decision entry, -1 for root
}

// frontier is a max-heap of *node ordered by bound, descending.
// Ties on bound pop in insertion order (seq ascending), a consistent
// tie-break that can only affect which of several equally-valued optimal
// selections is reported, never the optimal value itself.
type frontier []*node

// Len returns the number of nodes awaiting expansion.
func (f frontier) Len() int { return len(f) }

// Less orders by bound, descending; insertion order breaks ties.
func (f frontier) Less(i, j int) bool {
	if f[i].bound == f[j].bound {
		return f[i].seq < f[j].seq
	}

	return f[i].bound > f[j].bound
}

// Swap swaps two nodes in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new node; called by heap.Push.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*node)) }

// Pop removes and returns the highest-bound node; called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	nd := old[n-1]
	*f = old[:n-1]

	return nd
}

// densityOrder implements sort.Interface over item indices ordered by
// decreasing value density (v/w). Ratios are compared cross-multiplied, so
// the order is exact and stays well-defined for admitted zero weights
// (a valuable weightless item sorts first). Index tiebreak keeps the order
// fully deterministic.
type densityOrder struct {
	idx     []int
	values  []float64
	weights []float64
}

func (d densityOrder) Len() int { return len(d.idx) }
func (d densityOrder) Less(i, j int) bool {
	vi, vj := d.idx[i], d.idx[j]
	// v_i/w_i > v_j/w_j  ⇔  v_i·w_j > v_j·w_i (weights non-negative).
	li, lj := d.values[vi]*d.weights[vj], d.values[vj]*d.weights[vi]
	if li == lj {
		return vi < vj
	}

	return li > lj
}
func (d *densityOrder) Swap(i, j int) { d.idx[i], d.idx[j] = d.idx[j], d.idx[i] }

// decision is one arena entry in SelectionArena mode: which bit was chosen
// at this node's level, and where its parent's entry lives.
type decision struct {
	parent int32
	bit    bool
}

// traceFn observes every node right after its bound is computed, together
// with the incumbent value at that moment. Test hook; nil in production.
type traceFn func(level int, value, weight, bound, incumbent float64)

// engine holds all search data and policies for a single Solve execution.
// A dedicated struct (instead of closures) keeps hot-path state predictable
// and the branching logic testable in isolation.
type engine struct {
	// Instance (read-only during the search).
	n        int
	capacity float64
	values   []float64
	weights  []float64

	// Policies.
	mode     MemoryMode
	zeroFree bool // zero-weight items admitted; bound uses the strict threshold

	// Time budget.
	useDeadline bool
	deadline    time.Time
	steps       int // sparse deadline check counter

	// Frontier and node bookkeeping.
	pq   frontier
	seq  uint64     // next insertion sequence number
	pool []decision // SelectionArena backing store

	// Incumbent: best complete, feasible value found so far.
	bestValue float64
	bestSel   []bool // SelectionCopy: winning decision prefix
	bestArena int32  // SelectionArena: arena index of the winning node
	bestLevel int    // level of the winning node (prefix length − 1)

	trace traceFn
}

// deadlineCheck performs a rare deadline test (every 256 pop events).
func (e *engine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&255) != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// boundOf evaluates the fractional bound for a node and reports it to the
// trace hook. Every node ever produced passes through here exactly once.
func (e *engine) boundOf(nd *node) float64 {
	b := fractionalBound(e.values, e.weights, e.capacity, nd.level, nd.value, nd.weight, e.zeroFree)
	if e.trace != nil {
		e.trace(nd.level, nd.value, nd.weight, b, e.bestValue)
	}

	return b
}

// push assigns the insertion sequence and inserts the node into the frontier.
func (e *engine) push(nd *node) {
	nd.seq = e.seq
	e.seq++
	heap.Push(&e.pq, nd)
}

// branch creates one child of parent at level lvl with the given decision
// bit, storing the decision history per the configured MemoryMode.
// The child's bound is not yet set.
func (e *engine) branch(parent *node, lvl int, include bool) *node {
	child := &node{
		level:  lvl,
		value:  parent.value,
		weight: parent.weight,
		arena:  -1,
	}
	if include {
		child.value += e.values[lvl]
		child.weight += e.weights[lvl]
	}

	switch e.mode {
	case SelectionArena:
		e.pool = append(e.pool, decision{parent: parent.arena, bit: include})
		child.arena = int32(len(e.pool) - 1)
	default: // SelectionCopy
		child.sel = make([]bool, len(parent.sel)+1)
		copy(child.sel, parent.sel)
		child.sel[len(parent.sel)] = include
	}

	return child
}

// recordIncumbent commits a new best feasible value and remembers where its
// decision history lives. The incumbent only ever grows.
func (e *engine) recordIncumbent(nd *node) {
	e.bestValue = nd.value
	e.bestLevel = nd.level
	if e.mode == SelectionArena {
		e.bestArena = nd.arena
	} else {
		e.bestSel = nd.sel
	}
}

// expand generates both children of nd and feeds each through the bound
// before deciding whether it enters the frontier.
func (e *engine) expand(nd *node) {
	lvl := nd.level + 1

	// Include branch: only while an undecided item remains. The incumbent is
	// updated before the child's bound is computed, so the sibling's push
	// test below already sees the tightened value.
	if lvl < e.n {
		incl := e.branch(nd, lvl, true)
		if incl.weight <= e.capacity && incl.value > e.bestValue {
			e.recordIncumbent(incl)
		}
		incl.bound = e.boundOf(incl)
		if incl.bound > e.bestValue {
			e.push(incl)
		}
	}

	// Exclude branch: built unconditionally, even past the last item. An
	// exhausted path's bound equals its value, which cannot beat an incumbent
	// that has already caught up, so such nodes die at the push test.
	excl := e.branch(nd, lvl, false)
	excl.bound = e.boundOf(excl)
	if excl.bound > e.bestValue {
		e.push(excl)
	}
}

// run is the pop loop: extract the most promising node, prune or expand,
// until the frontier drains or the time budget runs out.
func (e *engine) run() error {
	for e.pq.Len() > 0 {
		// 1) Sparse time check (practically free).
		if e.deadlineCheck() {
			return ErrTimeLimit
		}

		// 2) Pop the node with the largest bound.
		nd := heap.Pop(&e.pq).(*node)

		// 3) Prune: a bound computed at insertion time never needs
		//    recomputation; if the incumbent has since caught up, the whole
		//    subtree is dead.
		if nd.bound <= e.bestValue {
			continue
		}

		// 4) Branch into include/exclude children.
		e.expand(nd)
	}

	return nil
}

// selection materializes the incumbent's decision history as a full-length
// slice: one entry per item, padding undecided tail items with false
// (excluded). With no incumbent at all, every item is excluded.
func (e *engine) selection() []bool {
	sel := make([]bool, e.n)

	switch {
	case e.mode == SelectionArena && e.bestArena >= 0:
		// Walk back through the arena; entry at depth d decides item d.
		idx := e.bestArena
		for lvl := e.bestLevel; idx >= 0; lvl-- {
			sel[lvl] = e.pool[idx].bit
			idx = e.pool[idx].parent
		}
	case e.mode == SelectionCopy && e.bestSel != nil:
		copy(sel, e.bestSel)
	}

	return sel
}

// Solve finds an optimal 0-1 knapsack selection for the given parallel
// values/weights sequences and capacity, using best-first Branch-and-Bound
// with the fractional upper bound.
//
// Returns:
//
//   - Result.Value: the maximum total value of any selection whose total
//     weight is ≤ capacity.
//   - Result.Selection: one bool per item in input order (true = included),
//     summing exactly to Result.Value; an empty instance yields an empty slice.
//   - err: a sentinel from types.go on invalid input, or ErrTimeLimit if a
//     positive TimeLimit elapsed before the search finished. No partial
//     result accompanies an error.
//
// Internally, items are preordered by value density (descending) before the
// search: the greedy relaxation is only a sound upper bound under that
// order, and pruning with an unsound bound can lose the optimum. Values,
// weights and the returned Selection all speak input order; the ordering is
// invisible to callers except through which of several equally-valued
// optimal selections is reported.
//
// Complexity: worst case O(2^n) time; see the package comment for the
// practical picture.
func Solve(values, weights []float64, capacity float64, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return solve(values, weights, capacity, cfg, nil)
}

// solve is the trace-aware entry point shared by Solve and white-box tests.
func solve(values, weights []float64, capacity float64, cfg Options, trace traceFn) (Result, error) {
	// 2) Validate the instance; no work happens on invalid input.
	n, err := validateInstance(values, weights, capacity, cfg)
	if err != nil {
		return Result{}, err
	}

	// 3) Nothing to branch on: the empty selection is the optimum.
	if n == 0 {
		return Result{Value: 0, Selection: []bool{}}, nil
	}

	// 4) Preorder items by value density, descending. ord.idx[k] is the
	//    input index of the item at search level k.
	ord := densityOrder{idx: make([]int, n), values: values, weights: weights}
	for i := range ord.idx {
		ord.idx[i] = i
	}
	sort.Sort(&ord)
	ordValues := make([]float64, n)
	ordWeights := make([]float64, n)
	for k, i := range ord.idx {
		ordValues[k] = values[i]
		ordWeights[k] = weights[i]
	}

	// 5) Engine initialization.
	e := engine{
		n:         n,
		capacity:  capacity,
		values:    ordValues,
		weights:   ordWeights,
		mode:      cfg.MemoryMode,
		zeroFree:  cfg.AllowZeroWeight,
		pq:        make(frontier, 0, n),
		bestArena: -1,
		trace:     trace,
	}
	if cfg.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(cfg.TimeLimit)
	}
	heap.Init(&e.pq)

	// 6) Root: level -1, nothing decided, bound over the whole item set.
	root := &node{level: -1, arena: -1}
	if e.mode == SelectionCopy {
		root.sel = []bool{}
	}
	root.bound = e.boundOf(root)
	e.push(root)

	// 7) Best-first search until the frontier drains.
	if err = e.run(); err != nil {
		return Result{}, err
	}

	// 8) Map the winning decisions from search order back to input order.
	picked := e.selection()
	selection := make([]bool, n)
	for k, i := range ord.idx {
		selection[i] = picked[k]
	}

	return Result{Value: e.bestValue, Selection: selection}, nil
}
