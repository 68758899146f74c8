package search

import "iter"

// Successor describes one outgoing edge from a state: taking Action
// from the state passed to Space.Successors leads to State at cost
// Cost (which must be non-negative — trivially true since Cost is an
// unsigned type).
type Successor[S comparable, A Action, C Cost] struct {
	Action A
	State  S
	Cost   C
}

// Space is the domain's edge-generation contract. Successors must be
// finite for any given state and is consumed lazily: the kernel pulls
// one successor at a time via Go's range-over-func iterators, so a
// domain with expensive or large successor sets can generate them on
// demand instead of materializing a slice.
//
// A state may yield itself as a successor only if the domain truly
// has self-loops; the kernel does not special-case or forbid it.
type Space[S comparable, A Action, C Cost] interface {
	Successors(state S) iter.Seq[Successor[S, A, C]]
}

// Problem supplies the start state and the goal test. IsGoal(Start())
// returning false is fine — the start need not itself be a goal.
type Problem[S comparable, A Action, C Cost] interface {
	Start() S
	IsGoal(state S) bool
}

// Heuristic is consulted only by the A* driver. Estimate must be
// admissible (never overestimate the true cost from state to the
// nearest goal); consistency (h(u) <= cost(u,v) + h(v) for every edge)
// is strongly preferred, since it lets the kernel skip reopening
// closed nodes (Options.AssumeConsistentHeuristic, default true).
type Heuristic[S comparable, C Cost] interface {
	Estimate(state S) C
}

// ZeroHeuristic is the trivial admissible (and consistent) heuristic:
// Estimate always returns 0. A* with ZeroHeuristic expands the exact
// same set of nodes as Dijkstra, in the same order — useful as a
// cross-check in tests.
type ZeroHeuristic[S comparable, C Cost] struct{}

func (ZeroHeuristic[S, C]) Estimate(S) C { var zero C; return zero }
