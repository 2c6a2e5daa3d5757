package unit

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownUnit   = errors.New("unit is not registered")
	ErrDuplicateUnit = errors.New("unit is already registered")
)

// step is one hop toward the root of a family: an exact ratio, or a formula
// pair applied through ToBase on the way down and FromBase on the way up.
type step struct {
	ratio  Ratio
	conv   Conv
	isConv bool
}

// entry is a registered unit with its compiled path toward the root.
// Adjacent ratio hops are merged at registration time, so a path alternates
// between a single exact ratio and a formula step.
type entry struct {
	base string
	path []step
}

// System is the runtime registry for one unit family: a root, ratio-scaled
// members and formula-convertible members. Registration must happen before
// use and is not safe for concurrent calls; Convert on a fully registered
// System is, since conversion never mutates the registry.
type System struct {
	root  string
	units map[string]entry
}

func NewSystem(root string) *System {
	return &System{
		root:  root,
		units: map[string]entry{root: {}},
	}
}

func (s *System) Root() string { return s.root }

// Units lists every registered unit name in sorted order.
func (s *System) Units() []string {
	names := make([]string, 0, len(s.units))
	for name := range s.units {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Scaled registers name as base scaled by r, meaning 1 name = r base. The
// base must already be registered, which rules out cycles by construction.
func (s *System) Scaled(name, base string, r Ratio) error {
	parent, err := s.checkPair(name, base)
	if err != nil {
		return err
	}

	s.units[name] = entry{base: base, path: compose(step{ratio: r}, parent.path)}
	return nil
}

// Formula registers name against base through a formula pair: fromBase maps
// a base amount into the unit, toBase maps it back.
func (s *System) Formula(name, base string, fromBase, toBase func(float64) float64) error {
	parent, err := s.checkPair(name, base)
	if err != nil {
		return err
	}

	conv, err := ParseConv(fromBase, toBase)
	if err != nil {
		return fmt.Errorf("unit %s: %w", name, err)
	}

	s.units[name] = entry{base: base, path: compose(step{conv: conv, isConv: true}, parent.path)}
	return nil
}

func (s *System) checkPair(name, base string) (entry, error) {
	if _, ok := s.units[name]; ok {
		return entry{}, fmt.Errorf("%w: %s", ErrDuplicateUnit, name)
	}

	parent, ok := s.units[base]
	if !ok {
		return entry{}, fmt.Errorf("%w: base %s of %s", ErrUnknownUnit, base, name)
	}

	return parent, nil
}

// compose prepends one hop to an already compiled path, folding adjacent
// ratio hops into a single exact ratio.
func compose(first step, rest []step) []step {
	if !first.isConv && len(rest) > 0 && !rest[0].isConv {
		merged := step{ratio: first.ratio.Mul(rest[0].ratio)}
		return append([]step{merged}, rest[1:]...)
	}

	return append([]step{first}, rest...)
}

// Convert carries v from one registered unit to another. The walk descends
// from the source to the root and climbs back out to the target; every
// maximal run of ratio hops, the root crossing included, collapses into one
// exact rational before touching the payload, so a pure-ratio pair costs a
// single multiply or divide and exactly cancelling ratios cost nothing.
func (s *System) Convert(v float64, from, to string) (float64, error) {
	src, ok := s.units[from]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownUnit, from)
	}

	dst, ok := s.units[to]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownUnit, to)
	}

	if from == to {
		return v, nil
	}

	pending := One()
	haveRatio := false

	flush := func() {
		if !haveRatio {
			return
		}

		if !pending.IsOne() {
			v = Apply(v, pending)
		}

		pending = One()
		haveRatio = false
	}

	for _, st := range src.path {
		if st.isConv {
			flush()
			v = st.conv.ToBase(v)
			continue
		}

		pending = pending.Mul(st.ratio)
		haveRatio = true
	}

	for i := len(dst.path) - 1; i >= 0; i-- {
		st := dst.path[i]
		if st.isConv {
			flush()
			v = st.conv.FromBase(v)
			continue
		}

		pending = pending.Div(st.ratio)
		haveRatio = true
	}

	flush()
	return v, nil
}

// Factor reports the single exact ratio carrying from into to. Pairs with a
// formula hop on either path have no constant factor to report.
func (s *System) Factor(from, to string) (Ratio, bool) {
	src, ok := s.units[from]
	if !ok {
		return Ratio{}, false
	}

	dst, ok := s.units[to]
	if !ok {
		return Ratio{}, false
	}

	f := One()

	for _, st := range src.path {
		if st.isConv {
			return Ratio{}, false
		}

		f = f.Mul(st.ratio)
	}

	for _, st := range dst.path {
		if st.isConv {
			return Ratio{}, false
		}

		f = f.Div(st.ratio)
	}

	return f, true
}
