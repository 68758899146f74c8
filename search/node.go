package search

import "math"

// sentinelSlot marks a SearchTreeNode that is not currently in the
// heap — either because it has been closed (expanded) or because it
// has not been pushed yet.
const sentinelSlot int32 = -1

// NodeRef is a stable, pointer-sized reference to a SearchTreeNode
// inside a NodeArena. It packs the owning chunk's index into the high
// 32 bits and the slot within that chunk into the low 32 bits, so it
// is produced directly by NodeArena.Alloc at allocation time — there
// is no "which chunk owns this index" inversion to compute, unlike a
// flat contiguous vector addressed by a single linear index.
//
// NodeRef never changes meaning for the lifetime of the arena: chunks
// are appended, never resized or moved, so a NodeRef captured before a
// later Alloc remains valid after it (spec invariant: "references
// never invalidate").
type NodeRef uint64

// NilRef is the distinguished "no reference" value, used for
// SearchTreeNode.Parent on start nodes. It is distinct from every
// NodeRef a NodeArena can produce because chunk indices never reach
// math.MaxUint32 in practice (an arena would need to perform 2^32
// chunk-growth events first).
const NilRef NodeRef = math.MaxUint64

func packRef(chunk, slot uint32) NodeRef {
	return NodeRef(chunk)<<32 | NodeRef(slot)
}

func (r NodeRef) chunk() uint32 { return uint32(r >> 32) }
func (r NodeRef) slot() uint32  { return uint32(r) }

// IsNil reports whether r is NilRef.
func (r NodeRef) IsNil() bool { return r == NilRef }

// SearchTreeNode is the only heap-residing record in the kernel — one
// per discovered State. It is created once, when the state is first
// discovered, and mutated in place whenever a cheaper path relaxes it
// while it is still open; it is never freed until the whole arena is
// dropped at the end of Run.
//
// Target size for a typical instantiation (C=uint32, A=uint8) is 32
// bytes: State (domain-sized) + G(4) + H(4) + Parent(8) + HeapSlot(4,
// padded) + ParentAction(1, padded). Heavier State types dominate the
// total, as expected.
type SearchTreeNode[S comparable, A Action, C Cost] struct {
	State        S
	G            C
	H            C
	Parent       NodeRef
	ParentAction A
	HeapSlot     int32
}
