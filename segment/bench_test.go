package segment

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

const benchSize = 1 << 16

func BenchmarkSegment_Update(b *testing.B) {
	var (
		faker = gofakeit.New(1234567890)
		tr    = New(make([]int, benchSize)...)
	)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = tr.Update(i%benchSize, faker.Number(0, 1000))
	}
}

func BenchmarkSegment_Query(b *testing.B) {
	var (
		faker = gofakeit.New(1234567890)
		tr    = New(make([]int, benchSize)...)
	)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l := faker.Number(0, benchSize-1)
		_, _ = tr.Query(l, benchSize-1)
	}
}
