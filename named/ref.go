package named

// Ref wraps a pointer to the caller's storage under a phantom Tag. Unlike
// Value it never owns the referenced memory: Get reads through the pointer
// and Set writes through it, so a mutation is visible at the bound variable
// after the call returns.
type Ref[T any, Tag any] struct {
	ptr *T
}

// RefOf wraps p under Tag, deducing T from the argument.
func RefOf[Tag any, T any](p *T) Ref[T, Tag] {
	return Ref[T, Tag]{ptr: p}
}

func (r Ref[T, Tag]) Get() T  { return *r.ptr }
func (r Ref[T, Tag]) Set(v T) { *r.ptr = v }
