package perf

import (
	"fmt"
	"sort"

	"github.com/aglyzov/go-idx/hashtable"
	"github.com/aglyzov/go-idx/heap"
	"github.com/aglyzov/go-idx/segment"
	"github.com/aglyzov/go-idx/splay"
	"github.com/aglyzov/go-idx/trie"
)

// dataset is the generated input shared by all scenarios of a run.
type dataset struct {
	words []string
	nums  []int
}

// timer wraps a single operation so it gets recorded.
type timer func(op func())

// scenario prepares its structure outside of the timed section and times
// every operation of the measured phase through tm.
type scenario struct {
	structure string
	op        string
	run       func(cfg Config, data *dataset, tm timer) error
}

func (s scenario) name() string {
	return s.structure + "-" + s.op
}

var scenarios = []scenario{
	{"heap", "insert", heapInsert},
	{"heap", "extract", heapExtract},
	{"splay", "insert", splayInsert},
	{"splay", "search", splaySearch},
	{"segment", "update", segmentUpdate},
	{"segment", "query", segmentQuery},
	{"trie", "insert", trieInsert},
	{"trie", "search", trieSearch},
	{"hashtable", "insert", tableInsert},
	{"hashtable", "get", tableGet},
}

// ScenarioNames lists the names accepted by Config.Skip.
func ScenarioNames() []string {
	var names = make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.name()
	}
	return names
}

func knownScenario(name string) bool {
	for _, s := range scenarios {
		if s.name() == name {
			return true
		}
	}
	return false
}

func heapInsert(_ Config, data *dataset, tm timer) error {
	h := heap.NewMin[int]()

	for _, v := range data.nums {
		tm(func() { h.Insert(v) })
	}

	if h.Len() != len(data.nums) {
		return fmt.Errorf("%w: heap holds %d of %d values", ErrCheckFailed, h.Len(), len(data.nums))
	}
	return nil
}

func heapExtract(_ Config, data *dataset, tm timer) error {
	var (
		h    = heap.NewMin(data.nums...)
		prev int
		err  error
	)

	for i := range data.nums {
		var v int
		tm(func() { v, err = h.Extract() })

		if err != nil {
			return err
		}
		if i > 0 && v < prev {
			return fmt.Errorf("%w: heap returned %d after %d", ErrCheckFailed, v, prev)
		}
		prev = v
	}

	if _, err = h.Extract(); err == nil {
		return fmt.Errorf("%w: drained heap is not empty", ErrCheckFailed)
	}
	return nil
}

func splayInsert(_ Config, data *dataset, tm timer) error {
	tr := splay.New[string]()

	for _, w := range data.words {
		tm(func() { tr.Insert(w) })
	}

	if !sort.StringsAreSorted(tr.Keys()) {
		return fmt.Errorf("%w: splay tree keys out of order", ErrCheckFailed)
	}
	return nil
}

func splaySearch(_ Config, data *dataset, tm timer) error {
	tr := splay.New(data.words...)

	for _, w := range data.words {
		var ok bool
		tm(func() { _, ok = tr.Search(w) })

		if !ok {
			return fmt.Errorf("%w: splay tree lost %q", ErrCheckFailed, w)
		}
		if root, _ := tr.Root(); root != w {
			return fmt.Errorf("%w: %q was not splayed to the root", ErrCheckFailed, w)
		}
	}
	return nil
}

func segmentUpdate(_ Config, data *dataset, tm timer) error {
	var (
		n     = len(data.nums)
		tr    = segment.New(make([]int, n)...)
		total int
		err   error
	)

	for i, v := range data.nums {
		tm(func() { err = tr.Update(i, v) })
		if err != nil {
			return err
		}
		total += v
	}

	sum, err := tr.Query(0, n-1)
	if err != nil {
		return err
	}
	if sum != total {
		return fmt.Errorf("%w: segment tree sums to %d, want %d", ErrCheckFailed, sum, total)
	}
	return nil
}

func segmentQuery(_ Config, data *dataset, tm timer) error {
	var (
		n      = len(data.nums)
		tr     = segment.New(data.nums...)
		prefix = make([]int, n+1)
	)

	for i, v := range data.nums {
		prefix[i+1] = prefix[i] + v
	}

	for i := 0; i < n; i++ {
		// ranges of varying width: [i/2, i]
		var (
			l, r = i / 2, i
			sum  int
			err  error
		)

		tm(func() { sum, err = tr.Query(l, r) })

		if err != nil {
			return err
		}
		if want := prefix[r+1] - prefix[l]; sum != want {
			return fmt.Errorf("%w: segment query [%d, %d] = %d, want %d", ErrCheckFailed, l, r, sum, want)
		}
	}
	return nil
}

func trieInsert(_ Config, data *dataset, tm timer) error {
	t := trie.New()

	for _, w := range data.words {
		tm(func() { t.Insert(w) })
	}

	if words := t.Words(""); !sort.StringsAreSorted(words) {
		return fmt.Errorf("%w: trie words out of order", ErrCheckFailed)
	}
	return nil
}

func trieSearch(_ Config, data *dataset, tm timer) error {
	t := trie.New(data.words...)

	for _, w := range data.words {
		var ok bool
		tm(func() { ok = t.Search(w) })

		if !ok {
			return fmt.Errorf("%w: trie lost %q", ErrCheckFailed, w)
		}
	}
	return nil
}

func tableInsert(cfg Config, data *dataset, tm timer) error {
	ht := hashtable.New[string, int](cfg.Buckets)

	for i, w := range data.words {
		tm(func() { ht.Insert(w, i) })
	}

	if ht.BucketCount() != cfg.Buckets {
		return fmt.Errorf("%w: table has %d buckets, want %d", ErrCheckFailed, ht.BucketCount(), cfg.Buckets)
	}
	return nil
}

func tableGet(cfg Config, data *dataset, tm timer) error {
	ht := hashtable.New[string, int](cfg.Buckets)

	// later duplicates overwrite earlier ones
	last := make(map[string]int, len(data.words))
	for i, w := range data.words {
		ht.Insert(w, i)
		last[w] = i
	}

	for _, w := range data.words {
		var (
			v   int
			err error
		)

		tm(func() { v, err = ht.Get(w) })

		if err != nil {
			return err
		}
		if v != last[w] {
			return fmt.Errorf("%w: table returned %d for %q, want %d", ErrCheckFailed, v, w, last[w])
		}
	}
	return nil
}
