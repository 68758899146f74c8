package search

// NewAStar constructs a Search that performs best-first search with
// rank (g+h, h) over problem/space, guided by heuristic. Ties on equal
// f break toward lower h — the Rank encoding (f, h) makes that the
// natural lexicographic order, so a closer-to-goal node wins without
// any extra comparator logic.
//
// heuristic must be admissible (never overestimate true cost to the
// nearest goal); if it is also consistent, leave
// Options.AssumeConsistentHeuristic at its default (true) so closed
// nodes are never reopened. The goal test happens on pop, not on
// generation — required for optimality under an admissible-but-
// inconsistent heuristic: testing on generation would return the
// first path found, which can be cheaper-looking but suboptimal.
func NewAStar[S comparable, A Action, C Cost](p Problem[S, A, C], sp Space[S, A, C], heuristic Heuristic[S, C], opts ...Option[C]) *Search[S, A, C] {
	if heuristic == nil {
		panic("search: NewAStar requires a non-nil Heuristic")
	}
	return newSearch[S, A, C](p, sp, heuristic, driverAStar, opts...)
}
