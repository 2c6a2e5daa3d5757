package gen

import "strconv"

// NewStem creates a name generator over the stem word. The nil namespace is
// treated as free, meaning every numbered name is available.
func NewStem(stem string, namespace map[string]struct{}) *Stem {
	return &Stem{
		taken: namespace,
		stem:  stem,
		last:  0,
	}
}

// Stem hands out stem1, stem2, ... skipping names the namespace already
// holds, and records every name it returns.
type Stem struct {
	taken map[string]struct{}
	stem  string
	last  int
}

func (s *Stem) Next() string {
	if s.taken == nil {
		s.taken = make(map[string]struct{})
	}

	for {
		s.last++
		name := s.stem + strconv.Itoa(s.last)

		if _, ok := s.taken[name]; !ok {
			s.taken[name] = struct{}{}
			return name
		}
	}
}

// namespace tracks the identifiers already emitted into one scope, the file
// top level or the method set of a single type.
type namespace struct {
	taken map[string]struct{}
}

func newNamespace() *namespace {
	return &namespace{taken: make(map[string]struct{})}
}

// Claim returns want when it is still free, and otherwise the first free
// numbered variant. Variants start at want2 so the renamed identifier reads
// as the second of its kind.
func (n *namespace) Claim(want string) string {
	if _, ok := n.taken[want]; !ok {
		n.taken[want] = struct{}{}
		return want
	}

	st := NewStem(want, n.taken)
	st.last = 1

	return st.Next()
}
