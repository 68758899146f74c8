package search

// defaultFirstChunkCap is used when Options.InitialArenaCapacity is
// unset (0). Chosen as a cache-friendly power of two: small grid
// instances (on the order of a 5x5 maze) allocate a single chunk,
// while larger problem instances grow by doubling from here.
const defaultFirstChunkCap = 1024

// NodeArena is an append-only allocator for SearchTreeNode values. It
// is organized as a sequence of fixed-capacity chunks, each allocated
// once and never resized or moved; growth appends a new chunk of
// double the previous chunk's capacity. This gives every NodeRef
// produced by Alloc permanent validity for the arena's lifetime,
// unlike a flat contiguous slice, which would invalidate every prior
// reference on reallocation.
//
// NodeArena is not safe for concurrent use; Search owns it exclusively
// and funnels all mutation of node fields through it (see
// IntrusiveKHeap's doc comment for why that matters).
type NodeArena[S comparable, A Action, C Cost] struct {
	chunks [][]SearchTreeNode[S, A, C]
	count  int
}

// NewNodeArena constructs an empty arena whose first chunk will be
// sized firstCap (rounded up to at least 16). Passing 0 uses
// defaultFirstChunkCap.
func NewNodeArena[S comparable, A Action, C Cost](firstCap int) *NodeArena[S, A, C] {
	if firstCap <= 0 {
		firstCap = defaultFirstChunkCap
	}
	if firstCap < 16 {
		firstCap = 16
	}
	return &NodeArena[S, A, C]{
		chunks: [][]SearchTreeNode[S, A, C]{make([]SearchTreeNode[S, A, C], 0, firstCap)},
	}
}

// Alloc appends node to the arena and returns a NodeRef that remains
// valid for the arena's lifetime. Amortized O(1): a new chunk is
// allocated only when the current one is full, doubling capacity.
func (a *NodeArena[S, A, C]) Alloc(node SearchTreeNode[S, A, C]) NodeRef {
	last := len(a.chunks) - 1
	chunk := a.chunks[last]
	if len(chunk) == cap(chunk) {
		newCap := cap(chunk) * 2
		if newCap == 0 {
			newCap = defaultFirstChunkCap
		}
		a.chunks = append(a.chunks, make([]SearchTreeNode[S, A, C], 0, newCap))
		last++
		chunk = a.chunks[last]
	}
	slot := len(chunk)
	a.chunks[last] = append(chunk, node)
	a.count++
	return packRef(uint32(last), uint32(slot))
}

// Get returns a copy of the node referenced by ref.
func (a *NodeArena[S, A, C]) Get(ref NodeRef) SearchTreeNode[S, A, C] {
	return a.chunks[ref.chunk()][ref.slot()]
}

// Ptr returns a mutable pointer into the arena's backing storage for
// ref. The pointer is stable because chunks are never moved or
// resized after creation — only Search (and the structures it owns,
// IntrusiveKHeap and StateNodeMap, through Search's methods) should
// dereference it.
func (a *NodeArena[S, A, C]) Ptr(ref NodeRef) *SearchTreeNode[S, A, C] {
	return &a.chunks[ref.chunk()][ref.slot()]
}

// SetHeapSlot writes node.HeapSlot for ref. This is the single
// mutation point IntrusiveKHeap uses to keep each node's own record of
// its heap position in sync (the "intrusive" part of the heap).
func (a *NodeArena[S, A, C]) SetHeapSlot(ref NodeRef, slot int32) {
	a.Ptr(ref).HeapSlot = slot
}

// Len returns the number of nodes allocated so far.
func (a *NodeArena[S, A, C]) Len() int { return a.count }

// Iter calls fn for every allocated node, in allocation order. It is
// intended for inspection and tests, not for the hot path.
func (a *NodeArena[S, A, C]) Iter(fn func(NodeRef, SearchTreeNode[S, A, C])) {
	for ci, chunk := range a.chunks {
		for si, n := range chunk {
			fn(packRef(uint32(ci), uint32(si)), n)
		}
	}
}
