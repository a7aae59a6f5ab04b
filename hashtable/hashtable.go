// Package hashtable implements an associative array with a fixed number of
// buckets and separate chaining.
//
// The bucket of a key is hash(key) mod BucketCount(). The bucket count is set
// once by the constructor; the table never grows or rehashes, so heavy load
// degrades lookups towards a linear scan. A Table is not safe for concurrent
// use.
package hashtable

import (
	"errors"
	"fmt"
)

// DefaultBucketCount is used when a constructor is given a non-positive count.
const DefaultBucketCount = 10

// ErrNotFound is returned by Get and Remove for an absent key.
var ErrNotFound = errors.New("hashtable: key not found")

type entry[K comparable, V any] struct {
	key K
	val V
}

type bucket[K comparable, V any] []entry[K, V]

// find returns the position of key in the chain, or -1.
func (b bucket[K, V]) find(key K) int {
	for i := range b {
		if b[i].key == key {
			return i
		}
	}
	return -1
}

type Table[K comparable, V any] struct {
	buckets []bucket[K, V]
	hasher  Hasher[K]
	size    int
}

// New returns a table with bucketCount buckets using the default hasher.
func New[K comparable, V any](bucketCount int) *Table[K, V] {
	return NewWithHasher[K, V](bucketCount, DefaultHasher[K]())
}

// NewWithHasher returns a table with bucketCount buckets that places keys
// with hasher.
func NewWithHasher[K comparable, V any](bucketCount int, hasher Hasher[K]) *Table[K, V] {
	if bucketCount <= 0 {
		bucketCount = DefaultBucketCount
	}

	return &Table[K, V]{
		buckets: make([]bucket[K, V], bucketCount),
		hasher:  hasher,
	}
}

// Len returns the number of stored pairs.
func (t *Table[K, V]) Len() int {
	return t.size
}

// BucketCount returns the fixed number of buckets.
func (t *Table[K, V]) BucketCount() int {
	return len(t.buckets)
}

func (t *Table[K, V]) bucketOf(key K) *bucket[K, V] {
	return &t.buckets[t.hasher(key)%uint64(len(t.buckets))]
}

// Insert stores val under key, overwriting the value of an existing key.
func (t *Table[K, V]) Insert(key K, val V) {
	b := t.bucketOf(key)

	if i := b.find(key); i >= 0 {
		(*b)[i].val = val
		return
	}

	*b = append(*b, entry[K, V]{key, val})
	t.size++
}

// Get returns the value stored under key.
func (t *Table[K, V]) Get(key K) (V, error) {
	b := t.bucketOf(key)

	if i := b.find(key); i >= 0 {
		return (*b)[i].val, nil
	}

	var zero V
	return zero, fmt.Errorf("%w: %v", ErrNotFound, key)
}

// Contains reports whether key is stored.
func (t *Table[K, V]) Contains(key K) bool {
	return t.bucketOf(key).find(key) >= 0
}

// Remove deletes key from the table. The order of the remaining pairs in the
// bucket is preserved.
func (t *Table[K, V]) Remove(key K) error {
	b := t.bucketOf(key)

	i := b.find(key)
	if i < 0 {
		return fmt.Errorf("%w: %v", ErrNotFound, key)
	}

	last := len(*b) - 1
	copy((*b)[i:], (*b)[i+1:])
	(*b)[last] = entry[K, V]{} // release key and value
	*b = (*b)[:last]
	t.size--

	return nil
}

// Walk calls handler for every pair, bucket by bucket in chain order.
// It returns whether all pairs were visited; the handler aborts by returning
// false.
func (t *Table[K, V]) Walk(handler func(key K, val V) bool) bool {
	for _, b := range t.buckets {
		for _, e := range b {
			if !handler(e.key, e.val) {
				return false
			}
		}
	}
	return true
}
