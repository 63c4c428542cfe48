package heap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlds/heap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// weighted is a composite element that exposes its ordering key via Key().
type weighted struct {
	weight int
	label  string
}

func (w weighted) Key() int { return w.weight }

// drain extracts every element of h in top order.
func drain[T any](t *testing.T, h *heap.Heap[T]) []T {
	t.Helper()
	out := make([]T, 0, h.Size())
	for h.Size() > 0 {
		x, err := h.ExtractTop()
		require.NoError(t, err)
		require.True(t, h.Valid(), "heap property broken after ExtractTop")
		out = append(out, x)
	}

	return out
}

// TestExtractionOrder_MinAndMax checks the canonical multiset {5,3,8,1,9,2}.
func TestExtractionOrder_MinAndMax(t *testing.T) {
	input := []int{5, 3, 8, 1, 9, 2}

	minH := heap.New[int](heap.MinOrder[int]{})
	maxH := heap.New[int](heap.MaxOrder[int]{})
	for _, x := range input {
		minH.Insert(x)
		maxH.Insert(x)
		assert.True(t, minH.Valid())
		assert.True(t, maxH.Valid())
	}

	assert.Equal(t, []int{1, 2, 3, 5, 8, 9}, drain(t, minH))
	assert.Equal(t, []int{9, 8, 5, 3, 2, 1}, drain(t, maxH))
}

// TestDecompile_MaxHeapSmoke reproduces the reference smoke run: insert 1..10,
// extract the top, insert 1 again, checking array order after each step.
func TestDecompile_MaxHeapSmoke(t *testing.T) {
	h := heap.New[int](heap.MaxOrder[int]{})
	for i := 1; i <= 10; i++ {
		h.Insert(i)
	}
	assert.Equal(t, "10 9 6 7 8 2 5 1 4 3", h.String())

	top, err := h.ExtractTop()
	require.NoError(t, err)
	assert.Equal(t, 10, top)
	assert.Equal(t, "9 8 6 7 3 2 5 1 4", h.String())

	h.Insert(1)
	assert.Equal(t, "9 8 6 7 3 2 5 1 4 1", h.String())
}

// TestKeyedPolicies covers MinKeyed/MaxKeyed over a composite type.
func TestKeyedPolicies(t *testing.T) {
	minH := heap.New[weighted](heap.MinKeyed[weighted, int]{})
	maxH := heap.New[weighted](heap.MaxKeyed[weighted, int]{})
	for i, w := range []int{4, 1, 3} {
		x := weighted{weight: w, label: string(rune('a' + i))}
		minH.Insert(x)
		maxH.Insert(x)
	}

	got, err := minH.Peek()
	require.NoError(t, err)
	assert.Equal(t, "b", got.label)

	got, err = maxH.Peek()
	require.NoError(t, err)
	assert.Equal(t, "a", got.label)
	assert.Equal(t, 3, maxH.Size(), "Peek must not remove")
}

// TestKeyFuncPolicies covers MinBy/MaxBy over pointer elements (reference-typed
// elements ordered by the pointed-to value).
func TestKeyFuncPolicies(t *testing.T) {
	deref := func(p *int) int { return *p }
	minH := heap.New[*int](heap.MinBy(deref))
	maxH := heap.New[*int](heap.MaxBy(deref))
	for _, v := range []int{7, 2, 9} {
		v := v
		minH.Insert(&v)
		maxH.Insert(&v)
	}

	p, err := minH.ExtractTop()
	require.NoError(t, err)
	assert.Equal(t, 2, *p)

	p, err = maxH.ExtractTop()
	require.NoError(t, err)
	assert.Equal(t, 9, *p)
}

// TestEmptyHeap verifies ErrEmptyHeap on ExtractTop and Peek.
func TestEmptyHeap(t *testing.T) {
	h := heap.New[int](heap.MinOrder[int]{})

	_, err := h.ExtractTop()
	assert.ErrorIs(t, err, heap.ErrEmptyHeap)
	_, err = h.Peek()
	assert.ErrorIs(t, err, heap.ErrEmptyHeap)

	h.Insert(42)
	x, err := h.ExtractTop()
	require.NoError(t, err)
	assert.Equal(t, 42, x)
	assert.Zero(t, h.Size())

	_, err = h.ExtractTop()
	assert.ErrorIs(t, err, heap.ErrEmptyHeap)
}

// TestTwoElementSiftDown guards the one-child case: after extracting from a
// three-element heap the root has exactly one child and must still be ordered.
func TestTwoElementSiftDown(t *testing.T) {
	h := heap.New[int](heap.MinOrder[int]{})
	h.Insert(1)
	h.Insert(2)
	h.Insert(5)
	h.Insert(3) // [1 2 5 3]

	_, err := h.ExtractTop() // 3 lands on the root with children 2, 5
	require.NoError(t, err)
	_, err = h.ExtractTop() // 5 lands on the root with the single child 3
	require.NoError(t, err)

	assert.True(t, h.Valid())
	assert.Equal(t, []int{3, 5}, h.Items())
}

// TestNilPolicyPanics documents construction-time validation.
func TestNilPolicyPanics(t *testing.T) {
	assert.Panics(t, func() { heap.New[int](nil) })
	assert.Panics(t, func() { heap.MinBy[int, int](nil) })
}

// TestRandomOperations_SizeAndOrder runs a seeded random sequence of inserts
// and extracts, checking the size invariant (k - m) and the heap property.
func TestRandomOperations_SizeAndOrder(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	h := heap.New[int](heap.MinOrder[int]{}, heap.WithCapacity(64))
	inserted, extracted := 0, 0
	last := -1

	for step := 0; step < 2000; step++ {
		if h.Size() == 0 || r.Intn(3) > 0 {
			h.Insert(r.Intn(100))
			inserted++
			last = -1 // order only holds between consecutive extractions
		} else {
			x, err := h.ExtractTop()
			require.NoError(t, err)
			if last >= 0 {
				assert.LessOrEqual(t, last, x)
			}
			last = x
			extracted++
		}
		require.Equal(t, inserted-extracted, h.Size())
		require.True(t, h.Valid())
	}
}
