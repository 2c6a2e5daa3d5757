package named

import (
	"cmp"
	"hash/maphash"

	"unit-generator/utils"
)

// Summable covers every representation with a built-in + operator.
type Summable interface {
	utils.Number | ~string
}

// The capability operations are free functions constrained on T, so a tag
// whose representation lacks a capability simply cannot call it.

func Equal[T comparable, Tag any](a, b Value[T, Tag]) bool { return a.raw == b.raw }

func NotEqual[T comparable, Tag any](a, b Value[T, Tag]) bool { return a.raw != b.raw }

func Less[T cmp.Ordered, Tag any](a, b Value[T, Tag]) bool { return a.raw < b.raw }

func Add[T Summable, Tag any](a, b Value[T, Tag]) Value[T, Tag] {
	return Value[T, Tag]{raw: a.raw + b.raw}
}

func Sub[T utils.Number, Tag any](a, b Value[T, Tag]) Value[T, Tag] {
	return Value[T, Tag]{raw: a.raw - b.raw}
}

// Hash folds the wrapped value with hash/maphash. Equal values hash equal
// under the same seed; distinct seeds give unrelated hashes.
func Hash[T comparable, Tag any](seed maphash.Seed, v Value[T, Tag]) uint64 {
	return maphash.Comparable(seed, v.raw)
}
