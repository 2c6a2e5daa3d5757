package gen

import "unit-generator/internal/plan"

// names resolves every top-level identifier of the generated file up front
// so later references always use the final spelling.
type names struct {
	types    map[unitKey]string
	ctors    map[unitKey]string
	literals map[unitKey]string
}

type unitKey struct {
	family string
	unit   string
}

// newNames claims the type names of every unit first and the constructor
// and literal names after, so a colliding constructor never steals a later
// unit's type name.
func newNames(p *plan.Plan) *names {
	n := &names{
		types:    make(map[unitKey]string),
		ctors:    make(map[unitKey]string),
		literals: make(map[unitKey]string),
	}

	ns := newNamespace()

	for fi := range p.Families {
		f := &p.Families[fi]

		for ui := range f.Units {
			u := &f.Units[ui]
			n.types[unitKey{f.Name, u.Name}] = ns.Claim(u.Type)
		}
	}

	for fi := range p.Families {
		f := &p.Families[fi]

		for ui := range f.Units {
			u := &f.Units[ui]
			k := unitKey{f.Name, u.Name}
			n.ctors[k] = ns.Claim("New" + n.types[k])
			n.literals[k] = ns.Claim(u.Literal)
		}
	}

	return n
}

// Type returns the final type name of a unit.
func (n *names) Type(family, unit string) string {
	return n.types[unitKey{family, unit}]
}

// Ctor returns the final constructor name of a unit.
func (n *names) Ctor(family, unit string) string {
	return n.ctors[unitKey{family, unit}]
}

// Literal returns the final literal constructor name of a unit.
func (n *names) Literal(family, unit string) string {
	return n.literals[unitKey{family, unit}]
}
