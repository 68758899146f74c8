package search

// HeapBranching is the fan-out factor of an IntrusiveKHeap. K=4 is
// recommended: with a 16-byte slot record, four children fit a single
// 64-byte cache line, so sift-down's child-selection scan touches
// exactly one line per level.
type HeapBranching int

const (
	Branch2 HeapBranching = 2
	Branch4 HeapBranching = 4
	Branch8 HeapBranching = 8
)

func (k HeapBranching) valid() bool {
	return k == Branch2 || k == Branch4 || k == Branch8
}

// heapSlot is one entry of the open-set heap: the rank used for
// ordering, stored alongside the NodeRef so that comparisons during
// sift-up/sift-down never dereference the arena.
type heapSlot[C Cost] struct {
	rank Rank[C]
	ref  NodeRef
}

// IntrusiveKHeap is a K-ary min-heap of (Rank, NodeRef) pairs. It is
// "intrusive" because every referenced SearchTreeNode stores its own
// current slot index (via the arena), rather than the heap
// maintaining a separate reverse index — decrease_key locates a node
// in O(1) through that stored index instead of a linear scan.
//
// Invariants: for every non-root slot i, rank[i] >= rank[parent(i)]
// where parent(i) = (i-1)/K; children of i occupy
// [K*i+1, K*i+K]. Every live slot's node has HeapSlot == its index.
//
// All mutation of node.HeapSlot is funneled through the arena pointer
// IntrusiveKHeap holds, so the heap and the StateNodeMap never race to
// write a node field behind each other's backs — Search is the only
// owner of both, and this type's methods are the only place HeapSlot
// changes.
type IntrusiveKHeap[S comparable, A Action, C Cost] struct {
	k      int
	slots  []heapSlot[C]
	arena  *NodeArena[S, A, C]
	peak   int
}

// NewIntrusiveKHeap constructs an empty heap with the given branching
// factor, backed by arena for intrusive slot-index updates.
func NewIntrusiveKHeap[S comparable, A Action, C Cost](k HeapBranching, arena *NodeArena[S, A, C], capacityHint int) *IntrusiveKHeap[S, A, C] {
	if !k.valid() {
		panic("search: invalid heap branching factor")
	}
	return &IntrusiveKHeap[S, A, C]{
		k:     int(k),
		slots: make([]heapSlot[C], 0, capacityHint),
		arena: arena,
	}
}

// Len returns the number of open nodes currently in the heap.
func (h *IntrusiveKHeap[S, A, C]) Len() int { return len(h.slots) }

// Peak returns the largest Len the heap has reached so far, for the
// stats inspection hook.
func (h *IntrusiveKHeap[S, A, C]) Peak() int { return h.peak }

// Peek returns the minimum-rank entry without removing it.
func (h *IntrusiveKHeap[S, A, C]) Peek() (Rank[C], NodeRef, bool) {
	if len(h.slots) == 0 {
		return Rank[C]{}, 0, false
	}
	s := h.slots[0]
	return s.rank, s.ref, true
}

// Push inserts (rank, ref) at the end of the heap and sifts it up.
// O(log_K N).
func (h *IntrusiveKHeap[S, A, C]) Push(rank Rank[C], ref NodeRef) {
	i := len(h.slots)
	h.slots = append(h.slots, heapSlot[C]{rank: rank, ref: ref})
	h.arena.SetHeapSlot(ref, int32(i))
	h.siftUp(i)
	if len(h.slots) > h.peak {
		h.peak = len(h.slots)
	}
}

// Pop removes and returns the minimum-rank entry, marking its node's
// HeapSlot as closed (sentinelSlot). O(K * log_K N) comparisons.
func (h *IntrusiveKHeap[S, A, C]) Pop() (Rank[C], NodeRef, bool) {
	n := len(h.slots)
	if n == 0 {
		return Rank[C]{}, 0, false
	}
	top := h.slots[0]
	h.arena.SetHeapSlot(top.ref, sentinelSlot)

	last := n - 1
	if last == 0 {
		h.slots = h.slots[:0]
		return top.rank, top.ref, true
	}
	h.slots[0] = h.slots[last]
	h.slots = h.slots[:last]
	h.arena.SetHeapSlot(h.slots[0].ref, 0)
	h.siftDown(0)
	return top.rank, top.ref, true
}

// DecreaseKey locates ref via its own stored HeapSlot and overwrites
// its rank, sifting up to restore the heap property. The caller must
// guarantee newRank <= the node's current rank — the heap is never
// asked to increase a key.
func (h *IntrusiveKHeap[S, A, C]) DecreaseKey(ref NodeRef, newRank Rank[C]) {
	slot := h.arena.Get(ref).HeapSlot
	if slot < 0 || int(slot) >= len(h.slots) {
		panic("search: decrease_key on a node not present in the heap")
	}
	h.slots[slot].rank = newRank
	h.siftUp(int(slot))
}

func (h *IntrusiveKHeap[S, A, C]) parent(i int) int { return (i - 1) / h.k }

func (h *IntrusiveKHeap[S, A, C]) siftUp(i int) {
	for i > 0 {
		p := h.parent(i)
		if !h.slots[i].rank.Less(h.slots[p].rank) {
			break
		}
		h.swap(i, p)
		i = p
	}
}

func (h *IntrusiveKHeap[S, A, C]) siftDown(i int) {
	n := len(h.slots)
	for {
		first := h.k*i + 1
		if first >= n {
			return
		}
		smallest := first
		last := first + h.k
		if last > n {
			last = n
		}
		for c := first + 1; c < last; c++ {
			if h.slots[c].rank.Less(h.slots[smallest].rank) {
				smallest = c
			}
		}
		if !h.slots[smallest].rank.Less(h.slots[i].rank) {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *IntrusiveKHeap[S, A, C]) swap(i, j int) {
	h.slots[i], h.slots[j] = h.slots[j], h.slots[i]
	h.arena.SetHeapSlot(h.slots[i].ref, int32(i))
	h.arena.SetHeapSlot(h.slots[j].ref, int32(j))
}
