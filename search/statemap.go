package search

import "github.com/dolthub/maphash"

// packedRef combines a NodeRef with a one-bit "closed" flag in a
// single word: a separate closed-set would double state hashing cost,
// while packing the bit costs one mask per access and zero extra
// space.
//
// Go gives no user-addressable "unused pointer bit" the way a 48-bit
// virtual-address platform does without resorting to unsafe tricks
// (NodeRef here is a plain uint64, not a real pointer). The packing is
// realized instead by shrinking the chunk-index field the NodeRef
// would otherwise use by one bit: bit 63 is the closed flag, bits
// 62..32 are the chunk index, bits 31..0 are the slot index. This
// halves the chunk-address space relative to a bare NodeRef (2^31
// chunks instead of 2^32) which is not a practical limit — reaching it
// requires 2^31 chunk-growth doublings.
type packedRef uint64

const closedBit = uint64(1) << 63

func makePackedRef(ref NodeRef, closed bool) packedRef {
	v := uint64(ref) &^ closedBit
	if closed {
		v |= closedBit
	}
	return packedRef(v)
}

func (p packedRef) ref() NodeRef   { return NodeRef(uint64(p) &^ closedBit) }
func (p packedRef) closed() bool   { return uint64(p)&closedBit != 0 }
func (p packedRef) withClosed(c bool) packedRef {
	return makePackedRef(p.ref(), c)
}

type mapSlotState uint8

const (
	slotEmpty mapSlotState = iota
	slotUsed
)

// StateNodeMap is a hash map from a domain State to a NodeRef plus a
// closed bit, implemented as an open-addressing table with linear
// probing so the closed bit can be packed into the stored value word
// (see packedRef) instead of living in a second map. States are never
// removed once inserted, so no tombstones are needed.
//
// Hashing uses github.com/dolthub/maphash's generic Hasher, which
// mixes the key before bucket selection — important for domains like
// Maze2D whose State packs low-entropy coordinates into a small
// integer, where a naive identity hash would cluster badly.
type StateNodeMap[S comparable] struct {
	hash     maphash.Hasher[S]
	keys     []S
	vals     []packedRef
	state    []mapSlotState
	used     int
	capMask  uint64
}

// EntryKind classifies the result of StateNodeMap.Entry.
type EntryKind int

const (
	Vacant EntryKind = iota
	Open
	Closed
)

// NewStateNodeMap constructs an empty map sized for at least
// capacityHint entries (rounded up to a power of two, minimum 16).
func NewStateNodeMap[S comparable](capacityHint int) *StateNodeMap[S] {
	n := 16
	for n < capacityHint*2 { // keep load factor <= 0.5
		n *= 2
	}
	return &StateNodeMap[S]{
		hash:    maphash.NewHasher[S](),
		keys:    make([]S, n),
		vals:    make([]packedRef, n),
		state:   make([]mapSlotState, n),
		capMask: uint64(n - 1),
	}
}

func (m *StateNodeMap[S]) find(state S) (idx int, found bool) {
	i := m.hash.Hash(state) & m.capMask
	for {
		switch m.state[i] {
		case slotEmpty:
			return int(i), false
		case slotUsed:
			if m.keys[i] == state {
				return int(i), true
			}
		}
		i = (i + 1) & m.capMask
	}
}

// Entry reports whether state is Vacant, Open, or Closed, and if not
// Vacant, which NodeRef it maps to.
func (m *StateNodeMap[S]) Entry(state S) (EntryKind, NodeRef) {
	idx, found := m.find(state)
	if !found {
		return Vacant, 0
	}
	if m.vals[idx].closed() {
		return Closed, m.vals[idx].ref()
	}
	return Open, m.vals[idx].ref()
}

// InsertOpen records state as newly discovered and Open, referencing
// ref. Precondition: state is currently Vacant.
func (m *StateNodeMap[S]) InsertOpen(state S, ref NodeRef) {
	if m.used*2 >= len(m.keys) {
		m.grow()
	}
	idx, found := m.find(state)
	if found {
		panic("search: InsertOpen on a non-vacant state")
	}
	m.keys[idx] = state
	m.vals[idx] = makePackedRef(ref, false)
	m.state[idx] = slotUsed
	m.used++
}

// MarkClosed flips state's entry from Open to Closed in place.
// Precondition: state is currently Open.
func (m *StateNodeMap[S]) MarkClosed(state S) {
	idx, found := m.find(state)
	if !found {
		panic("search: MarkClosed on a vacant state")
	}
	m.vals[idx] = m.vals[idx].withClosed(true)
}

// Reopen flips state's entry from Closed back to Open, updating its
// NodeRef. Only used when Options.AssumeConsistentHeuristic is false
// and a strictly cheaper path to a closed state is discovered.
// Precondition: state is currently Closed.
func (m *StateNodeMap[S]) Reopen(state S, ref NodeRef) {
	idx, found := m.find(state)
	if !found {
		panic("search: Reopen on a vacant state")
	}
	m.vals[idx] = makePackedRef(ref, false)
}

// Len returns the number of distinct states recorded (open + closed).
func (m *StateNodeMap[S]) Len() int { return m.used }

// LoadFactor returns used/capacity, for the stats inspection hook.
func (m *StateNodeMap[S]) LoadFactor() float64 {
	return float64(m.used) / float64(len(m.keys))
}

func (m *StateNodeMap[S]) grow() {
	oldKeys, oldVals, oldState := m.keys, m.vals, m.state
	n := len(oldKeys) * 2
	m.keys = make([]S, n)
	m.vals = make([]packedRef, n)
	m.state = make([]mapSlotState, n)
	m.capMask = uint64(n - 1)
	m.used = 0
	for i, st := range oldState {
		if st == slotUsed {
			idx, _ := m.find(oldKeys[i])
			m.keys[idx] = oldKeys[i]
			m.vals[idx] = oldVals[i]
			m.state[idx] = slotUsed
			m.used++
		}
	}
}
