// Package trie implements a prefix tree over strings.
//
// Symbols are the bytes of a word's UTF-8 encoding, so a prefix of a word
// (in characters) is also a prefix of its path. Words can only be added;
// there is no deletion. A Trie is not safe for concurrent use.
package trie

import (
	"github.com/golang-collections/collections/stack"
)

type Trie struct {
	root node
}

// New returns a trie holding the given words.
func New(words ...string) *Trie {
	var t = &Trie{}

	for _, word := range words {
		t.Insert(word)
	}

	return t
}

// Insert adds word, creating the missing part of its path.
func (t *Trie) Insert(word string) {
	var cur = &t.root

	for i := 0; i < len(word); i++ {
		cur = cur.childOrAdd(word[i])
	}

	cur.end = true
}

// Search reports whether word itself was inserted.
func (t *Trie) Search(word string) bool {
	n := t.find(word)
	return n != nil && n.end
}

// StartsWith reports whether any inserted word has the given prefix path.
// The empty prefix always exists.
func (t *Trie) StartsWith(prefix string) bool {
	return t.find(prefix) != nil
}

func (t *Trie) find(path string) *node {
	var cur = &t.root

	for i := 0; i < len(path) && cur != nil; i++ {
		cur = cur.child(path[i])
	}

	return cur
}

type visit struct {
	node *node
	word string
}

// Walk calls handler for every word starting with prefix, in byte order.
// It returns whether all such words were visited; the handler aborts by
// returning false.
func (t *Trie) Walk(prefix string, handler func(word string) bool) bool {
	var start = t.find(prefix)
	if start == nil {
		return true
	}

	toVisit := stack.New()
	toVisit.Push(visit{start, prefix})

	for toVisit.Len() > 0 {
		v := toVisit.Pop().(visit)

		if v.node.end && !handler(v.word) {
			return false
		}

		// push in reverse so the smallest symbol is popped first
		syms := v.node.symbols()
		for i := len(syms) - 1; i >= 0; i-- {
			toVisit.Push(visit{v.node.children[i], v.word + string(syms[i:i+1])})
		}
	}

	return true
}

// Words returns all words starting with prefix, in byte order.
func (t *Trie) Words(prefix string) []string {
	var words []string

	t.Walk(prefix, func(word string) bool {
		words = append(words, word)
		return true
	})

	return words
}
