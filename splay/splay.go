package splay

import (
	"github.com/golang-collections/collections/stack"
	"golang.org/x/exp/constraints"
)

// nilIndex marks an absent child or parent link
const nilIndex = -1

// Compare returns a negative number when a < b, zero when a == b
// and a positive number when a > b.
type Compare[K any] func(a, b K) int

type node[K any] struct {
	key    K
	left   int
	right  int
	parent int // back-link, only used while rotating
}

// Tree is a splay tree. Nodes live in an arena and link to each other by index.
type Tree[K any] struct {
	nodes []node[K]
	root  int
	cmp   Compare[K]
}

func New[K constraints.Ordered](keys ...K) *Tree[K] {
	return NewFunc(func(a, b K) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}, keys...)
}

// NewFunc returns a tree ordered by cmp holding the given keys.
func NewFunc[K any](cmp Compare[K], keys ...K) *Tree[K] {
	var t = &Tree[K]{
		nodes: make([]node[K], 0, len(keys)),
		root:  nilIndex,
		cmp:   cmp,
	}

	for _, key := range keys {
		t.Insert(key)
	}

	return t
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	return len(t.nodes)
}

// Root returns the key currently at the root.
func (t *Tree[K]) Root() (K, bool) {
	if t.root == nilIndex {
		var zero K
		return zero, false
	}
	return t.nodes[t.root].key, true
}

// Insert adds key and splays it to the root. Keys that compare equal to an
// existing key go to its right subtree, so duplicates are kept.
func (t *Tree[K]) Insert(key K) {
	var idx = len(t.nodes)

	t.nodes = append(t.nodes, node[K]{
		key:    key,
		left:   nilIndex,
		right:  nilIndex,
		parent: nilIndex,
	})

	if t.root == nilIndex {
		t.root = idx
		return
	}

	var p, cur = nilIndex, t.root

	for cur != nilIndex {
		p = cur
		if t.cmp(key, t.nodes[cur].key) < 0 {
			cur = t.nodes[cur].left
		} else {
			cur = t.nodes[cur].right
		}
	}

	t.nodes[idx].parent = p

	if t.cmp(key, t.nodes[p].key) < 0 {
		t.nodes[p].left = idx
	} else {
		t.nodes[p].right = idx
	}

	t.splay(idx)
}

// Search looks key up. A found node is splayed to the root; a miss leaves
// the tree untouched.
func (t *Tree[K]) Search(key K) (K, bool) {
	var cur = t.root

	for cur != nilIndex {
		c := t.cmp(key, t.nodes[cur].key)

		switch {
		case c == 0:
			t.splay(cur)
			return t.nodes[cur].key, true
		case c < 0:
			cur = t.nodes[cur].left
		default:
			cur = t.nodes[cur].right
		}
	}

	var zero K
	return zero, false
}

// Min returns the smallest key without restructuring the tree.
func (t *Tree[K]) Min() (K, bool) {
	return t.edge(func(n *node[K]) int { return n.left })
}

// Max returns the largest key without restructuring the tree.
func (t *Tree[K]) Max() (K, bool) {
	return t.edge(func(n *node[K]) int { return n.right })
}

func (t *Tree[K]) edge(next func(*node[K]) int) (K, bool) {
	if t.root == nilIndex {
		var zero K
		return zero, false
	}

	var cur = t.root
	for n := next(&t.nodes[cur]); n != nilIndex; n = next(&t.nodes[cur]) {
		cur = n
	}

	return t.nodes[cur].key, true
}

// Walk calls handler for every key in order.
// It returns whether all keys were visited; the handler aborts by returning false.
func (t *Tree[K]) Walk(handler func(K) bool) bool {
	var (
		toVisit = stack.New()
		cur     = t.root
	)

	for cur != nilIndex || toVisit.Len() > 0 {
		for cur != nilIndex {
			toVisit.Push(cur)
			cur = t.nodes[cur].left
		}

		cur = toVisit.Pop().(int)

		if !handler(t.nodes[cur].key) {
			return false
		}

		cur = t.nodes[cur].right
	}

	return true
}

// Keys returns all keys in order.
func (t *Tree[K]) Keys() []K {
	var keys = make([]K, 0, len(t.nodes))

	t.Walk(func(key K) bool {
		keys = append(keys, key)
		return true
	})

	return keys
}
