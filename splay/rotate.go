package splay

// splay moves the node at x up to the root.
func (t *Tree[K]) splay(x int) {
	for {
		p := t.nodes[x].parent
		if p == nilIndex {
			return
		}

		g := t.nodes[p].parent
		xLeft := t.nodes[p].left == x

		switch {
		case g == nilIndex:
			// zig
			t.rotateUp(p, xLeft)
		case xLeft == (t.nodes[g].left == p):
			// zig-zig: rotate the grandparent first, then the parent
			t.rotateUp(g, xLeft)
			t.rotateUp(p, xLeft)
		default:
			// zig-zag: rotate the parent, then the new parent (former grandparent)
			t.rotateUp(p, xLeft)
			t.rotateUp(g, !xLeft)
		}
	}
}

// rotateUp rotates the child of n on the given side into n's place.
// A left child means a right rotation, a right child a left rotation.
func (t *Tree[K]) rotateUp(n int, leftChild bool) {
	if leftChild {
		t.rotateRight(n)
	} else {
		t.rotateLeft(n)
	}
}

func (t *Tree[K]) rotateLeft(n int) {
	var (
		r  = t.nodes[n].right
		rl = t.nodes[r].left
		p  = t.nodes[n].parent
	)

	t.nodes[n].right = rl
	if rl != nilIndex {
		t.nodes[rl].parent = n
	}

	t.replaceChild(p, n, r)

	t.nodes[r].left = n
	t.nodes[n].parent = r
}

func (t *Tree[K]) rotateRight(n int) {
	var (
		l  = t.nodes[n].left
		lr = t.nodes[l].right
		p  = t.nodes[n].parent
	)

	t.nodes[n].left = lr
	if lr != nilIndex {
		t.nodes[lr].parent = n
	}

	t.replaceChild(p, n, l)

	t.nodes[l].right = n
	t.nodes[n].parent = l
}

// replaceChild hooks c where old used to hang below p (or at the root).
func (t *Tree[K]) replaceChild(p, old, c int) {
	t.nodes[c].parent = p

	switch {
	case p == nilIndex:
		t.root = c
	case t.nodes[p].left == old:
		t.nodes[p].left = c
	default:
		t.nodes[p].right = c
	}
}
