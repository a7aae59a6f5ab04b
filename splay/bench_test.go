package splay

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func BenchmarkSplay_Insert(b *testing.B) {
	var (
		keys = getKeys(b.N)
		tr   = New[string]()
	)

	b.ResetTimer()

	for _, key := range keys {
		tr.Insert(key)
	}
}

func BenchmarkSplay_Search(b *testing.B) {
	var (
		keys = getKeys(b.N)
		tr   = New(keys...)
	)

	b.ResetTimer()

	for _, key := range keys {
		_, _ = tr.Search(key)
	}
}

func getKeys(total int) []string {
	const seed = 1234567890

	var (
		faker = gofakeit.New(seed)
		keys  = make([]string, total)
	)

	for i := range keys {
		keys[i] = faker.Sentence(4)
	}

	return keys
}
