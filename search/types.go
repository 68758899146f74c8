package search

import "errors"

// Sentinel errors returned by Search.Run. Callers branch on these with
// errors.Is, never by comparing error strings.
var (
	// ErrNoPath indicates the open set emptied before any goal node was
	// closed. This is a normal, expected outcome for an unsolvable
	// instance, not a bug — it is still returned as an error so callers
	// can't mistake a nil *Path for a zero-cost path.
	ErrNoPath = errors.New("search: no path to any goal")

	// ErrBudgetExhausted indicates Options.ExpansionBudget was reached
	// before the search concluded.
	ErrBudgetExhausted = errors.New("search: expansion budget exhausted")

	// ErrCostOverflow indicates a successor's edge cost, added to its
	// parent's g, would exceed Cost's range. Only returned when
	// Options.StrictOverflow is set; otherwise the successor is skipped
	// and Stats.CostOverflows is incremented.
	ErrCostOverflow = errors.New("search: edge cost addition overflowed")

	// ErrInvalidProblem names a domain that violated its contract.
	// Search.Run never returns it: Cost is unsigned, so no successor can
	// carry a negative edge cost, and Run performs no other contract
	// check.
	ErrInvalidProblem = errors.New("search: problem implementation violated its contract")
)

// Cost is the constraint satisfied by a domain's edge/path cost type.
// Costs are unsigned and totally ordered so that addition either
// produces an in-range sum or wraps below the augend, giving an O(1)
// saturation check (see addCost).
type Cost interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Action is the constraint satisfied by a domain's action type. Actions
// are small, fixed-width values (directions, move indices, …) so that
// SearchTreeNode stays compact; they are never hashed or compared by
// the kernel itself, only carried through to Path.
type Action interface {
	~uint8 | ~uint16 | ~uint32 | ~int32
}

// addCost computes a+b and reports whether the sum overflowed C's
// range. Because C is unsigned, overflow is detectable as the sum
// wrapping below either addend.
func addCost[C Cost](a, b C) (sum C, overflow bool) {
	sum = a + b
	return sum, sum < a
}

// Rank is the heap ordering key: (Key, Tie) compared lexicographically,
// smallest first. Dijkstra uses Rank{Key: g, Tie: 0}; A* uses
// Rank{Key: g+h, Tie: h}, so that among equal f the lower-h (higher-g,
// closer to the goal) node wins ties.
type Rank[C Cost] struct {
	Key C
	Tie C
}

// Less reports whether r sorts before o in the min-heap ordering.
func (r Rank[C]) Less(o Rank[C]) bool {
	if r.Key != o.Key {
		return r.Key < o.Key
	}
	return r.Tie < o.Tie
}
