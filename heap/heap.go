// Package heap implements a binary heap over a contiguous slice.
//
// The orientation of the heap is a Less strategy chosen at construction:
// NewMin and NewMax cover ordered types, NewFunc accepts any comparator.
// A Heap is not safe for concurrent use.
package heap

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmpty is returned by Extract when the heap holds no elements.
var ErrEmpty = errors.New("heap: extract from an empty heap")

// Less reports whether a must sit above b in the heap.
type Less[T any] func(a, b T) bool

type Heap[T any] struct {
	data []T
	less Less[T]
}

// New returns a min-heap when isMin is true and a max-heap otherwise.
func New[T constraints.Ordered](isMin bool, values ...T) *Heap[T] {
	if isMin {
		return NewMin(values...)
	}
	return NewMax(values...)
}

func NewMin[T constraints.Ordered](values ...T) *Heap[T] {
	return NewFunc(func(a, b T) bool { return a < b }, values...)
}

func NewMax[T constraints.Ordered](values ...T) *Heap[T] {
	return NewFunc(func(a, b T) bool { return a > b }, values...)
}

// NewFunc builds a heap ordered by less. Initial values are heapified in O(n).
func NewFunc[T any](less Less[T], values ...T) *Heap[T] {
	var h = &Heap[T]{
		data: make([]T, len(values)),
		less: less,
	}

	copy(h.data, values)

	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.down(i)
	}

	return h
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.data)
}

// Peek returns the root element without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	return h.data[0], true
}

// Insert adds v and restores the heap property upwards.
func (h *Heap[T]) Insert(v T) {
	h.data = append(h.data, v)
	h.up(len(h.data) - 1)
}

// Extract removes and returns the root element.
func (h *Heap[T]) Extract() (T, error) {
	var (
		zero T
		n    = len(h.data) - 1
	)

	if n < 0 {
		return zero, ErrEmpty
	}

	var root = h.data[0]

	h.data[0] = h.data[n]
	h.data[n] = zero // release the spare slot
	h.data = h.data[:n]

	if n > 0 {
		h.down(0)
	}

	return root, nil
}

// Values returns a copy of the backing slice in heap order.
func (h *Heap[T]) Values() []T {
	var out = make([]T, len(h.data))
	copy(out, h.data)
	return out
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }

func (h *Heap[T]) up(i int) {
	for i > 0 {
		p := parent(i)
		if !h.less(h.data[i], h.data[p]) {
			break
		}
		h.data[i], h.data[p] = h.data[p], h.data[i]
		i = p
	}
}

func (h *Heap[T]) down(i int) {
	var n = len(h.data)

	for {
		top := i
		l := left(i)
		r := l + 1

		if l < n && h.less(h.data[l], h.data[top]) {
			top = l
		}
		if r < n && h.less(h.data[r], h.data[top]) {
			top = r
		}
		if top == i {
			return
		}

		h.data[i], h.data[top] = h.data[top], h.data[i]
		i = top
	}
}
