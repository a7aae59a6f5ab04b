// Package splay implements a self-adjusting binary search tree.
//
// Every insert and every successful search rotates the touched node up to the
// root (splaying), which gives amortized O(log n) access. Three rotation
// patterns are used, depending on the position of node x, its parent p and
// grandparent g:
//
//   - zig: p is the root; rotate p once.
//   - zig-zig: x and p are both left (or both right) children; rotate g, then p.
//   - zig-zag: x and p are children on opposite sides; rotate p, then g.
//
// Zig-zig on a left-left path:
//
//	      g            x
//	     / \          / //	    p   D        A   p
//	   / \      =>      / //	  x   C            B   g
//	 / \                  / //	A   B                C   D
//
// A search miss does not restructure the tree. Equal keys are inserted into
// the right subtree of their twin.
//
// Nodes are kept in an arena slice and refer to each other by index; the
// parent index is only consulted while rotating. A Tree is not safe for
// concurrent use.
package splay
