package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeArena_AllocAndGet(t *testing.T) {
	t.Parallel()

	a := NewNodeArena[int, uint8, uint32](4)
	r1 := a.Alloc(SearchTreeNode[int, uint8, uint32]{State: 1, G: 10})
	r2 := a.Alloc(SearchTreeNode[int, uint8, uint32]{State: 2, G: 20})

	require.False(t, r1.IsNil())
	require.False(t, r2.IsNil())
	require.NotEqual(t, r1, r2)
	require.Equal(t, 1, a.Get(r1).State)
	require.Equal(t, 2, a.Get(r2).State)
	require.Equal(t, 2, a.Len())
}

func TestNodeArena_GrowsAcrossChunks(t *testing.T) {
	t.Parallel()

	a := NewNodeArena[int, uint8, uint32](2)
	refs := make([]NodeRef, 0, 20)
	for i := 0; i < 20; i++ {
		refs = append(refs, a.Alloc(SearchTreeNode[int, uint8, uint32]{State: i, G: uint32(i)}))
	}

	require.Equal(t, 20, a.Len())
	for i, ref := range refs {
		require.Equal(t, i, a.Get(ref).State, "reference %d must remain valid after later growth", i)
	}
}

func TestNodeArena_PtrIsMutableAndStable(t *testing.T) {
	t.Parallel()

	a := NewNodeArena[int, uint8, uint32](2)
	r := a.Alloc(SearchTreeNode[int, uint8, uint32]{State: 1, G: 1})
	for i := 0; i < 10; i++ {
		a.Alloc(SearchTreeNode[int, uint8, uint32]{State: i + 2, G: uint32(i)})
	}

	ptr := a.Ptr(r)
	ptr.G = 99
	require.Equal(t, uint32(99), a.Get(r).G)
}

func TestNodeArena_SetHeapSlot(t *testing.T) {
	t.Parallel()

	a := NewNodeArena[int, uint8, uint32](4)
	r := a.Alloc(SearchTreeNode[int, uint8, uint32]{State: 1, HeapSlot: sentinelSlot})
	a.SetHeapSlot(r, 3)
	require.EqualValues(t, 3, a.Get(r).HeapSlot)
}

func TestNodeArena_Iter(t *testing.T) {
	t.Parallel()

	a := NewNodeArena[int, uint8, uint32](2)
	for i := 0; i < 5; i++ {
		a.Alloc(SearchTreeNode[int, uint8, uint32]{State: i})
	}

	seen := make(map[int]bool)
	a.Iter(func(ref NodeRef, n SearchTreeNode[int, uint8, uint32]) {
		seen[n.State] = true
	})
	require.Len(t, seen, 5)
}
