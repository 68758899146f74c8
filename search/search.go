package search

import "fmt"

// driverKind selects the rank/goal-test/reopen behavior of the shared
// run loop. Dijkstra and A* differ only in these three places; sharing
// one loop keeps that symmetry visible instead of duplicating the pop
// -> relax -> push skeleton twice.
type driverKind int

const (
	driverDijkstra driverKind = iota
	driverAStar
)

// Search owns a NodeArena, an IntrusiveKHeap, and a StateNodeMap
// exclusively, and drives either Dijkstra's algorithm or A* over a
// Problem/Space pair. A Search value is single-use: call Run once,
// read Stats afterward if desired, then discard it.
type Search[S comparable, A Action, C Cost] struct {
	problem   Problem[S, A, C]
	space     Space[S, A, C]
	heuristic Heuristic[S, C]
	kind      driverKind
	opts      Options[C]

	arena   *NodeArena[S, A, C]
	heap    *IntrusiveKHeap[S, A, C]
	states  *StateNodeMap[S]

	expansions uint64
	reopened   uint64
	overflows  uint64
	ran        bool

	// reopenHistory records each reopened state's most recent g, used
	// only by expand's debug-gated monotonicity check.
	reopenHistory map[S]C
}

func newSearch[S comparable, A Action, C Cost](
	p Problem[S, A, C], sp Space[S, A, C], h Heuristic[S, C], kind driverKind, opts ...Option[C],
) *Search[S, A, C] {
	cfg := DefaultOptions[C]()
	for _, opt := range opts {
		opt(&cfg)
	}
	arena := NewNodeArena[S, A, C](cfg.InitialArenaCapacity)
	return &Search[S, A, C]{
		problem:   p,
		space:     sp,
		heuristic: h,
		kind:      kind,
		opts:      cfg,
		arena:     arena,
		heap:      NewIntrusiveKHeap[S, A, C](cfg.HeapBranching, arena, 64),
		states:    NewStateNodeMap[S](64),
	}
}

// Stats reports kernel counters as of the last Run call (zero values
// before Run is called).
func (s *Search[S, A, C]) Stats() Stats {
	return Stats{
		NodesAllocated: uint64(s.arena.Len()),
		NodesExpanded:  s.expansions,
		NodesReopened:  s.reopened,
		CostOverflows:  s.overflows,
		HeapPeak:       s.heap.Peak(),
		MapLoad:        s.states.LoadFactor(),
	}
}

func (s *Search[S, A, C]) estimate(state S) C {
	if s.heuristic == nil {
		var zero C
		return zero
	}
	return s.heuristic.Estimate(state)
}

func (s *Search[S, A, C]) rank(g, h C) Rank[C] {
	if s.kind == driverDijkstra {
		return Rank[C]{Key: g, Tie: 0}
	}
	sum, overflow := addCost(g, h)
	if overflow {
		var zero C
		sum = ^zero // saturate rank key at Cost's maximum; correctness
		// is unaffected since an overflowing f can never be the unique
		// minimum among in-range ranks.
	}
	return Rank[C]{Key: sum, Tie: h}
}

// Run executes the search to completion. It returns ErrNoPath if the
// open set empties without closing a goal, ErrBudgetExhausted if
// Options.ExpansionBudget is reached first, or ErrCostOverflow if
// Options.StrictOverflow is set and an edge relaxation would overflow
// C's range.
func (s *Search[S, A, C]) Run() (*Path[S, A, C], error) {
	if s.ran {
		panic("search: Search.Run called more than once on the same instance")
	}
	s.ran = true

	start := s.problem.Start()
	startNode := SearchTreeNode[S, A, C]{State: start, G: 0, H: s.estimate(start), Parent: NilRef, HeapSlot: sentinelSlot}
	startRef := s.arena.Alloc(startNode)
	s.states.InsertOpen(start, startRef)
	s.heap.Push(s.rank(0, startNode.H), startRef)

	for {
		if s.opts.ExpansionBudget != nil && s.expansions >= *s.opts.ExpansionBudget {
			return nil, ErrBudgetExhausted
		}

		_, ref, ok := s.heap.Pop()
		if !ok {
			return nil, ErrNoPath
		}
		node := s.arena.Get(ref)
		s.states.MarkClosed(node.State)
		s.expansions++

		if s.problem.IsGoal(node.State) {
			return reconstructPath(s.arena, ref), nil
		}

		if err := s.expand(ref, node); err != nil {
			return nil, err
		}
	}
}

// expand computes and relaxes every successor of the just-closed node
// at ref: a Vacant successor is discovered and pushed, an Open one is
// relaxed in place if gPrime improves on it, and a Closed one is
// reopened only under a possibly-inconsistent heuristic and a
// strictly cheaper gPrime.
func (s *Search[S, A, C]) expand(parentRef NodeRef, parent SearchTreeNode[S, A, C]) error {
	for succ := range s.space.Successors(parent.State) {
		gPrime, overflow := addCost(parent.G, succ.Cost)
		if overflow {
			s.overflows++
			s.opts.Logger.Warn().
				Uint64("parent_g", uint64(parent.G)).
				Msg("search: edge cost addition overflowed, skipping successor")
			if s.opts.StrictOverflow {
				return ErrCostOverflow
			}
			continue
		}

		kind, otherRef := s.states.Entry(succ.State)
		switch kind {
		case Vacant:
			h := s.estimate(succ.State)
			node := SearchTreeNode[S, A, C]{
				State: succ.State, G: gPrime, H: h,
				Parent: parentRef, ParentAction: succ.Action, HeapSlot: sentinelSlot,
			}
			ref := s.arena.Alloc(node)
			s.states.InsertOpen(succ.State, ref)
			s.heap.Push(s.rank(gPrime, h), ref)

		case Open:
			other := s.arena.Get(otherRef)
			if gPrime < other.G {
				ptr := s.arena.Ptr(otherRef)
				ptr.G = gPrime
				ptr.Parent = parentRef
				ptr.ParentAction = succ.Action
				s.heap.DecreaseKey(otherRef, s.rank(gPrime, ptr.H))
			}

		case Closed:
			other := s.arena.Get(otherRef)
			// Non-negative edge costs make reopening unnecessary for
			// Dijkstra; for A* it is only needed when the heuristic may
			// be inconsistent.
			if s.kind == driverDijkstra || s.opts.AssumeConsistentHeuristic {
				continue
			}
			if gPrime >= other.G {
				continue
			}
			// Every reopen must strictly lower the node's g relative to its
			// previous value (its original close, or its last reopen) —
			// otherwise the open set could cycle the same state forever.
			// The check above already enforces this; re-validate it here,
			// gated behind debug logging so the comparison costs nothing in
			// the common case, as a guard against that gate regressing.
			if s.opts.Logger.Debug().Enabled() {
				if prevG, ok := s.reopenHistory[succ.State]; ok && gPrime >= prevG {
					panic(fmt.Sprintf("search: reopen monotonicity violated: new g=%v >= previously reopened g=%v", gPrime, prevG))
				}
				if s.reopenHistory == nil {
					s.reopenHistory = make(map[S]C)
				}
				s.reopenHistory[succ.State] = gPrime
			}
			ptr := s.arena.Ptr(otherRef)
			ptr.G = gPrime
			ptr.Parent = parentRef
			ptr.ParentAction = succ.Action
			s.states.Reopen(succ.State, otherRef)
			s.heap.Push(s.rank(gPrime, ptr.H), otherRef)
			s.reopened++
			s.opts.Logger.Debug().Msg("search: reopened a closed node under an inconsistent heuristic")
		}
	}
	return nil
}
