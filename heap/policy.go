package heap

import "golang.org/x/exp/constraints"

// MinOrder orders constraints.Ordered values ascending: the smallest is on top.
type MinOrder[T constraints.Ordered] struct{}

// Equal reports a == b.
func (MinOrder[T]) Equal(a, b T) bool { return a == b }

// Less reports a < b.
func (MinOrder[T]) Less(a, b T) bool { return a < b }

// MaxOrder orders constraints.Ordered values descending: the largest is on top.
type MaxOrder[T constraints.Ordered] struct{}

// Equal reports a == b.
func (MaxOrder[T]) Equal(a, b T) bool { return a == b }

// Less reports a > b (inverted natural order).
func (MaxOrder[T]) Less(a, b T) bool { return a > b }

// MinKeyed orders Keyed elements by ascending Key().
type MinKeyed[T Keyed[K], K constraints.Ordered] struct{}

// Equal compares keys for equality.
func (MinKeyed[T, K]) Equal(a, b T) bool { return a.Key() == b.Key() }

// Less reports a.Key() < b.Key().
func (MinKeyed[T, K]) Less(a, b T) bool { return a.Key() < b.Key() }

// MaxKeyed orders Keyed elements by descending Key().
type MaxKeyed[T Keyed[K], K constraints.Ordered] struct{}

// Equal compares keys for equality.
func (MaxKeyed[T, K]) Equal(a, b T) bool { return a.Key() == b.Key() }

// Less reports a.Key() > b.Key().
func (MaxKeyed[T, K]) Less(a, b T) bool { return a.Key() > b.Key() }

// keyFunc is a Policy built from a caller-supplied key extraction function.
type keyFunc[T any, K constraints.Ordered] struct {
	key func(T) K
	max bool
}

func (p keyFunc[T, K]) Equal(a, b T) bool { return p.key(a) == p.key(b) }

func (p keyFunc[T, K]) Less(a, b T) bool {
	if p.max {
		return p.key(a) > p.key(b)
	}

	return p.key(a) < p.key(b)
}

// MinBy returns a min Policy ordering elements by key(x) ascending.
// It panics if key is nil.
func MinBy[T any, K constraints.Ordered](key func(T) K) Policy[T] {
	if key == nil {
		panic(ErrNilPolicy.Error())
	}

	return keyFunc[T, K]{key: key}
}

// MaxBy returns a max Policy ordering elements by key(x) descending.
// It panics if key is nil.
func MaxBy[T any, K constraints.Ordered](key func(T) K) Policy[T] {
	if key == nil {
		panic(ErrNilPolicy.Error())
	}

	return keyFunc[T, K]{key: key, max: true}
}

// lessOrEqual is the derived "<=" of a policy: Equal or Less.
func lessOrEqual[T any](p Policy[T], a, b T) bool {
	if p.Equal(a, b) {
		return true
	}

	return p.Less(a, b)
}
