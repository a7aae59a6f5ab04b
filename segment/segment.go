// Package segment implements a static range-sum segment tree.
//
// The tree is a flat slice of length 2n: leaves occupy [n, 2n) and every
// internal node i holds tree[2i] + tree[2i+1]. Point updates and inclusive
// range queries run in O(log n) with the iterative bottom-up technique.
// The size is fixed by Build; rebuilding replaces the whole structure.
package segment

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	// ErrIndexOutOfRange is returned for an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("segment: index out of range")

	// ErrInvertedRange is returned by Query when left > right.
	ErrInvertedRange = errors.New("segment: left bound exceeds right bound")
)

// Number is any type that can be summed.
type Number interface {
	constraints.Integer | constraints.Float
}

type Tree[T Number] struct {
	n    int
	tree []T
}

// New returns a tree built from values.
func New[T Number](values ...T) *Tree[T] {
	var t = &Tree[T]{}
	t.Build(values)
	return t
}

// Build replaces the contents of the tree with values in O(n).
func (t *Tree[T]) Build(values []T) {
	var n = len(values)

	tree := make([]T, 2*n)
	copy(tree[n:], values)

	for i := n - 1; i > 0; i-- {
		tree[i] = tree[2*i] + tree[2*i+1]
	}

	t.n = n
	t.tree = tree
}

// Len returns the number of leaves.
func (t *Tree[T]) Len() int {
	return t.n
}

// Get returns the value stored at index.
func (t *Tree[T]) Get(index int) (T, error) {
	if err := t.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return t.tree[t.n+index], nil
}

// Update sets the value at index and recomputes its ancestors.
func (t *Tree[T]) Update(index int, value T) error {
	if err := t.checkIndex(index); err != nil {
		return err
	}

	i := t.n + index
	t.tree[i] = value

	for i > 1 {
		i >>= 1
		t.tree[i] = t.tree[2*i] + t.tree[2*i+1]
	}

	return nil
}

// Query returns the sum of the values at indexes left..right inclusive.
func (t *Tree[T]) Query(left, right int) (T, error) {
	var sum T

	if err := t.checkIndex(left); err != nil {
		return sum, err
	}
	if err := t.checkIndex(right); err != nil {
		return sum, err
	}
	if left > right {
		return sum, fmt.Errorf("%w: [%d, %d]", ErrInvertedRange, left, right)
	}

	// half-open [l, r) over the leaf layer
	l, r := left+t.n, right+t.n+1

	for l < r {
		if l&1 == 1 {
			sum += t.tree[l]
			l++
		}
		if r&1 == 1 {
			r--
			sum += t.tree[r]
		}
		l >>= 1
		r >>= 1
	}

	return sum, nil
}

func (t *Tree[T]) checkIndex(index int) error {
	if index < 0 || index >= t.n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, t.n)
	}
	return nil
}
