package hashtable

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hasher maps a key to a 64-bit hash. Keys that are equal must hash equally.
type Hasher[K comparable] func(K) uint64

// DefaultHasher returns an xxhash64 based Hasher. Strings and scalar kinds are
// hashed from their bytes; any other key is hashed from its %#v rendering,
// so composite keys holding floats or interfaces deserve a custom Hasher.
func DefaultHasher[K comparable]() Hasher[K] {
	return func(key K) uint64 {
		return hashAny(key)
	}
}

func hashAny(key any) uint64 {
	switch k := key.(type) {
	case string:
		return xxhash.Sum64String(k)
	case int:
		return hashUint64(uint64(k))
	case int8:
		return hashUint64(uint64(k))
	case int16:
		return hashUint64(uint64(k))
	case int32:
		return hashUint64(uint64(k))
	case int64:
		return hashUint64(uint64(k))
	case uint:
		return hashUint64(uint64(k))
	case uint8:
		return hashUint64(uint64(k))
	case uint16:
		return hashUint64(uint64(k))
	case uint32:
		return hashUint64(uint64(k))
	case uint64:
		return hashUint64(k)
	case uintptr:
		return hashUint64(uint64(k))
	case bool:
		if k {
			return hashUint64(1)
		}
		return hashUint64(0)
	case float32:
		return hashFloat64(float64(k))
	case float64:
		return hashFloat64(k)
	}

	return xxhash.Sum64String(fmt.Sprintf("%#v", key))
}

func hashUint64(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return xxhash.Sum64(buf[:])
}

func hashFloat64(v float64) uint64 {
	if v == 0 {
		v = 0 // -0 == +0, so both must land in one bucket
	}
	return hashUint64(math.Float64bits(v))
}
