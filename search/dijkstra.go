package search

// NewDijkstra constructs a Search that performs uniform-cost search
// over problem/space: rank is (g, 0), so the cheapest-so-far state is
// always expanded next, with no heuristic guidance. Non-negative edge
// costs (guaranteed by Cost being unsigned) make a closed node's g
// final — Dijkstra never reopens.
//
// Complexity: O((V+E) * log_K V) time with K = Options.HeapBranching,
// O(V) space for the arena and state map plus O(V) worst-case open-set
// entries under the lazy-decrease-key-free intrusive heap (decrease_key
// updates in place rather than pushing duplicates).
func NewDijkstra[S comparable, A Action, C Cost](p Problem[S, A, C], sp Space[S, A, C], opts ...Option[C]) *Search[S, A, C] {
	return newSearch[S, A, C](p, sp, nil, driverDijkstra, opts...)
}
