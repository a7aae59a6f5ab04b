package heap

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func BenchmarkHeap_Insert(b *testing.B) {
	var (
		values = getValues(b.N)
		h      = NewMin[int]()
	)

	b.ResetTimer()

	for _, v := range values {
		h.Insert(v)
	}
}

func BenchmarkHeap_Extract(b *testing.B) {
	var h = NewMin(getValues(b.N)...)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = h.Extract()
	}
}

func getValues(total int) []int {
	const seed = 1234567890

	var (
		faker  = gofakeit.New(seed)
		values = make([]int, total)
	)

	for i := range values {
		values[i] = faker.Number(0, 1<<30)
	}

	return values
}
