package search

import "github.com/rs/zerolog"

// Options configures a Search. Construct via DefaultOptions and
// functional Option values, mirroring the teacher pattern used
// throughout this lineage's graph packages.
//
// AssumeConsistentHeuristic  – if true (default), closed nodes are
//
//	never reopened; A* relies on the heuristic satisfying
//	h(u) <= cost(u,v) + h(v) for every edge. Set false for an
//	admissible-but-possibly-inconsistent heuristic.
//
// ExpansionBudget            – optional cap on the number of pops;
//
//	exceeding it returns ErrBudgetExhausted. Nil means unlimited.
//
// HeapBranching              – open-set heap fan-out, one of
//
//	Branch2/Branch4/Branch8. Default Branch4.
//
// InitialArenaCapacity       – first chunk size for the node arena.
//
//	0 uses defaultFirstChunkCap.
//
// StrictOverflow             – if true, a CostOverflow aborts the
//
//	search immediately with ErrCostOverflow instead of skipping the
//	offending successor and continuing.
//
// Logger                     - optional diagnostic sink for non-fatal
//
//	events (cost-overflow skips, reopens). Passing one never changes
//	search behavior; the default is zerolog's no-op logger.
type Options[C Cost] struct {
	AssumeConsistentHeuristic bool
	ExpansionBudget           *uint64
	HeapBranching             HeapBranching
	InitialArenaCapacity      int
	StrictOverflow            bool
	Logger                    *zerolog.Logger
}

// Option is a functional option for Options.
type Option[C Cost] func(*Options[C])

// DefaultOptions returns the default configuration: consistent
// heuristic assumed, no budget, K=4, default arena sizing, skip (not
// abort) on overflow, logging disabled.
func DefaultOptions[C Cost]() Options[C] {
	nop := zerolog.Nop()
	return Options[C]{
		AssumeConsistentHeuristic: true,
		ExpansionBudget:           nil,
		HeapBranching:             Branch4,
		InitialArenaCapacity:      0,
		StrictOverflow:            false,
		Logger:                    &nop,
	}
}

// WithAssumeConsistentHeuristic overrides the default (true).
func WithAssumeConsistentHeuristic[C Cost](assume bool) Option[C] {
	return func(o *Options[C]) { o.AssumeConsistentHeuristic = assume }
}

// WithExpansionBudget caps the number of node expansions (heap pops)
// performed before the search aborts with ErrBudgetExhausted.
// Panics if budget is 0, which would abort before any work is done.
func WithExpansionBudget[C Cost](budget uint64) Option[C] {
	if budget == 0 {
		panic("search: ExpansionBudget must be positive")
	}
	return func(o *Options[C]) { o.ExpansionBudget = &budget }
}

// WithHeapBranching sets the open-set heap's fan-out factor. Panics on
// a value other than Branch2/Branch4/Branch8.
func WithHeapBranching[C Cost](k HeapBranching) Option[C] {
	if !k.valid() {
		panic("search: HeapBranching must be 2, 4, or 8")
	}
	return func(o *Options[C]) { o.HeapBranching = k }
}

// WithInitialArenaCapacity sizes the node arena's first chunk. Panics
// if capacity is negative.
func WithInitialArenaCapacity[C Cost](capacity int) Option[C] {
	if capacity < 0 {
		panic("search: InitialArenaCapacity must be non-negative")
	}
	return func(o *Options[C]) { o.InitialArenaCapacity = capacity }
}

// WithStrictOverflow makes a CostOverflow abort the search immediately
// with ErrCostOverflow instead of skipping the offending successor.
func WithStrictOverflow[C Cost](strict bool) Option[C] {
	return func(o *Options[C]) { o.StrictOverflow = strict }
}

// WithLogger attaches a diagnostic sink for non-fatal events. Passing
// nil restores the no-op logger.
func WithLogger[C Cost](logger *zerolog.Logger) Option[C] {
	return func(o *Options[C]) {
		if logger == nil {
			nop := zerolog.Nop()
			logger = &nop
		}
		o.Logger = logger
	}
}
