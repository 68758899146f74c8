// Package search implements a generic heuristic graph-search kernel:
// the node arena, the K-ary intrusive open-set heap, the hashed
// state→node map, and the Dijkstra/A* drivers built on top of them.
//
// The kernel is polymorphic over a problem domain via three small
// interfaces — Space, Problem, and Heuristic — rather than over a
// concrete graph representation. A domain supplies a State type
// (comparable, cheap to copy), an Action type (a small integer), and a
// Cost type (an unsigned integer; the kernel detects additions that
// overflow it), and
// implements Space.Successors to lazily enumerate the edges leaving a
// state. See package maze2d for a reference implementation.
//
// Complexity and memory layout are the point of this package: nodes
// never move once allocated (NodeArena), the heap compares ranks
// in-place without dereferencing node pointers (IntrusiveKHeap), and
// the closed/open bookkeeping for every discovered state lives in one
// hashed table with a packed closed bit (StateNodeMap) instead of a
// separate set.
//
// Search is single-threaded and synchronous: Run executes to
// completion (or failure) without yielding, and a Search instance may
// not be shared across goroutines. Two Search instances over the same
// Problem may run concurrently on separate goroutines.
//
// Determinism: for a fixed (Problem, Heuristic, HeapBranching), two
// Search instances produce identical paths and identical expansion
// counts — the open set never relies on Go map iteration order, and
// StateNodeMap, whose hash seed differs from instance to instance, is
// only used for lookups and never iterated.
package search
