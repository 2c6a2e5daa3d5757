package named

// Value wraps a single value of type T under a phantom Tag. Two
// instantiations with the same T but different tags are distinct Go types,
// so a quantity never crosses into another role without an explicit rewrap.
// Value semantics: copies are independent, nothing is shared.
type Value[T any, Tag any] struct {
	raw T
}

// New wraps v. Both type arguments must be spelled out; Of is the tag-first
// form that infers T from the argument.
func New[T any, Tag any](v T) Value[T, Tag] {
	return Value[T, Tag]{raw: v}
}

// Of wraps v under Tag, deducing T from the argument.
func Of[Tag any, T any](v T) Value[T, Tag] {
	return Value[T, Tag]{raw: v}
}

// Get returns the wrapped value.
func (v Value[T, Tag]) Get() T { return v.raw }
