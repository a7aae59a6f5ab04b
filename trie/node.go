package trie

import (
	"math/bits"

	"github.com/hideo55/go-popcount"
)

// node keeps its children in a compact slice ordered by symbol. A 256-bit
// bitmap tells which symbols are present; the rank of a symbol's bit is its
// position in the slice.
type node struct {
	bitmap   [4]uint64 // 256 bits representing 2**8 symbols
	children []*node
	end      bool
}

// locate returns the slice position of sym and whether sym is present.
func (n *node) locate(sym byte) (int, bool) {
	var (
		ofs = sym >> 6
		idx = sym & 0x3F // the lowest 6 bits (2**6 == 64)
		bmp = n.bitmap[ofs]
		cnt = int(popcount.Count(bmp & ((1 << idx) - 1)))
	)

	for j := byte(0); j < ofs; j++ {
		cnt += int(popcount.Count(n.bitmap[j]))
	}

	return cnt, (bmp>>idx)&0x01 != 0
}

func (n *node) child(sym byte) *node {
	if pos, ok := n.locate(sym); ok {
		return n.children[pos]
	}
	return nil
}

// childOrAdd returns the child for sym, creating it when missing.
func (n *node) childOrAdd(sym byte) *node {
	pos, ok := n.locate(sym)
	if ok {
		return n.children[pos]
	}

	next := &node{}

	n.children = append(n.children, nil)
	copy(n.children[pos+1:], n.children[pos:])
	n.children[pos] = next

	n.bitmap[sym>>6] |= 1 << (sym & 0x3F)

	return next
}

// symbols lists the present symbols in ascending order, matching n.children.
func (n *node) symbols() []byte {
	var syms = make([]byte, 0, len(n.children))

	for ofs, bmp := range n.bitmap {
		for bmp != 0 {
			syms = append(syms, byte(ofs<<6|bits.TrailingZeros64(bmp)))
			bmp &= bmp - 1
		}
	}

	return syms
}
