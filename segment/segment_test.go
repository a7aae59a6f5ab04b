package segment

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naiveSum(values []int, l, r int) (sum int) {
	for _, v := range values[l : r+1] {
		sum += v
	}
	return
}

func TestScenario(t *testing.T) {
	t.Parallel()

	tr := New(1, 2, 3, 4, 5)

	sum, err := tr.Query(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 9, sum)

	require.NoError(t, tr.Update(0, 10))

	sum, err = tr.Query(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 12, sum)
}

func TestQuery_AllRanges(t *testing.T) {
	t.Parallel()

	// sizes that are and are not powers of two
	for _, size := range []int{1, 2, 3, 5, 8, 13, 16, 17} {
		size := size

		t.Run(fmt.Sprint(size), func(t *testing.T) {
			values := make([]int, size)
			for i := range values {
				values[i] = (i+1)*7 - 20
			}

			tr := New(values...)
			require.Equal(t, size, tr.Len())

			for l := 0; l < size; l++ {
				for r := l; r < size; r++ {
					sum, err := tr.Query(l, r)
					require.NoError(t, err)
					require.Equal(t, naiveSum(values, l, r), sum, "[%d, %d]", l, r)
				}
			}
		})
	}
}

func TestBounds(t *testing.T) {
	t.Parallel()

	tr := New(1.5, 2.5, 3.0)
	before := append([]float64(nil), tr.tree...)

	for _, tcase := range []*struct {
		Name   string
		Left   int
		Right  int
		ExpErr error
	}{
		{"negative-left", -1, 1, ErrIndexOutOfRange},
		{"right-past-end", 0, 3, ErrIndexOutOfRange},
		{"inverted", 2, 1, ErrInvertedRange},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			_, err := tr.Query(tcase.Left, tcase.Right)
			assert.ErrorIs(t, err, tcase.ExpErr)
		})
	}

	assert.ErrorIs(t, tr.Update(3, 1), ErrIndexOutOfRange)
	assert.ErrorIs(t, tr.Update(-1, 1), ErrIndexOutOfRange)

	_, err := tr.Get(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	assert.Equal(t, before, tr.tree)
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	tr := New[int]()

	assert.Equal(t, 0, tr.Len())

	_, err := tr.Query(0, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestBuild_Replaces(t *testing.T) {
	t.Parallel()

	tr := New[int64](1, 2, 3)
	tr.Build([]int64{10, 20})

	assert.Equal(t, 2, tr.Len())

	sum, err := tr.Query(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(30), sum)

	_, err = tr.Get(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestBuild_CopiesInput(t *testing.T) {
	t.Parallel()

	values := []int{1, 2, 3}
	tr := New(values...)

	require.NoError(t, tr.Update(1, 100))

	assert.Equal(t, []int{1, 2, 3}, values)

	v, err := tr.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 100, v)
}

func TestInterleaved_FakeData(t *testing.T) {
	t.Parallel()

	const (
		size  = 257
		total = 20_000
		seed  = 1234567890
	)

	var (
		fake   = gofakeit.New(seed)
		values = make([]int, size)
	)

	for i := range values {
		values[i] = fake.Number(-100, 100)
	}

	tr := New(values...)

	for i := 0; i < total; i++ {
		if i%2 == 0 {
			idx, v := fake.Number(0, size-1), fake.Number(-100, 100)
			require.NoError(t, tr.Update(idx, v))
			values[idx] = v
			continue
		}

		l := fake.Number(0, size-1)
		r := fake.Number(l, size-1)

		sum, err := tr.Query(l, r)
		require.NoError(t, err)
		require.Equal(t, naiveSum(values, l, r), sum)
	}
}
